package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/hydrafit/hydra-api/internal/apierrors"
	"github.com/hydrafit/hydra-api/internal/dto"
	"github.com/hydrafit/hydra-api/internal/models"
	"github.com/hydrafit/hydra-api/internal/repository"
	"github.com/hydrafit/hydra-api/internal/token"
)

// TeamService handles team creation and membership queries. The creator's
// OWNER membership is written in the same transaction as the team itself.
type TeamService struct {
	teams repository.TeamRepository
}

func NewTeamService(teams repository.TeamRepository) *TeamService {
	return &TeamService{teams: teams}
}

// CreateTeam creates a team with the caller as its owner.
func (s *TeamService) CreateTeam(caller *token.Identity, req dto.CreateTeamRequest) (*dto.TeamResponse, error) {
	if req.ImageURL != "" && !strings.HasPrefix(req.ImageURL, "http") {
		return nil, apierrors.BadRequest("image URL must start with http")
	}

	team := &models.Team{
		Name:        req.Name,
		Description: req.Description,
		City:        req.City,
		UF:          req.UF,
		Color:       req.Color,
		ImageURL:    req.ImageURL,
		CreatedByID: caller.UserID,
	}
	owner := &models.TeamMember{
		UserID: caller.UserID,
		Role:   models.RoleOwner,
	}
	if err := s.teams.CreateWithOwner(team, owner); err != nil {
		return nil, err
	}

	resp := dto.FromTeam(team)
	return &resp, nil
}

// GetTeam returns team details for a member.
func (s *TeamService) GetTeam(caller *token.Identity, teamID string) (*dto.TeamResponse, error) {
	team, err := s.teams.FindByID(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierrors.NotFound("team not found")
		}
		return nil, err
	}

	if err := s.requireMember(teamID, caller.UserID); err != nil {
		return nil, err
	}

	resp := dto.FromTeam(team)
	return &resp, nil
}

// ListMembers lists a team's members ordered owner, coach, athlete.
func (s *TeamService) ListMembers(caller *token.Identity, teamID string) ([]dto.TeamMemberResponse, error) {
	if _, err := s.teams.FindByID(teamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierrors.NotFound("team not found")
		}
		return nil, err
	}

	if err := s.requireMember(teamID, caller.UserID); err != nil {
		return nil, err
	}

	members, err := s.teams.ListMembersOrdered(teamID)
	if err != nil {
		return nil, err
	}
	return dto.FromTeamMembers(members), nil
}

// GetMainTeam returns the caller's earliest-joined team, the one the client
// opens by default.
func (s *TeamService) GetMainTeam(caller *token.Identity) (*dto.TeamResponse, error) {
	member, err := s.teams.FindFirstMembershipByUser(caller.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierrors.NotFound("no team membership found")
		}
		return nil, err
	}

	resp := dto.FromTeam(&member.Team)
	return &resp, nil
}

func (s *TeamService) requireMember(teamID, userID string) error {
	if _, err := s.teams.FindMember(teamID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierrors.Forbidden("not a member of this team")
		}
		return err
	}
	return nil
}
