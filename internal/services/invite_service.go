package services

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/hydrafit/hydra-api/internal/apierrors"
	"github.com/hydrafit/hydra-api/internal/dto"
	"github.com/hydrafit/hydra-api/internal/models"
	"github.com/hydrafit/hydra-api/internal/repository"
	"github.com/hydrafit/hydra-api/internal/token"
)

// InviteService implements the invite lifecycle: Requested -> Issued ->
// (Redeemed | Rejected | Expired). Issuance is stateless; the token is the
// only record of a pending invite, and redemption is the single durable
// effect.
//
// Methods take the raw Authorization header instead of a pre-resolved
// identity because the precondition order matters: field and role validation
// must fail before identity resolution does.
type InviteService struct {
	users  repository.UserRepository
	teams  repository.TeamRepository
	tokens *token.Service
	email  EmailSender
	logger *zap.Logger
}

func NewInviteService(
	users repository.UserRepository,
	teams repository.TeamRepository,
	tokens *token.Service,
	email EmailSender,
	logger *zap.Logger,
) *InviteService {
	return &InviteService{
		users:  users,
		teams:  teams,
		tokens: tokens,
		email:  email,
		logger: logger,
	}
}

// CreateInviteToken validates an invite request and mints a one-hour invite
// token wrapped in a shareable URL. No database write happens here.
func (s *InviteService) CreateInviteToken(authHeader, teamID string, req dto.CreateInviteRequest) (*dto.InviteTokenResponse, error) {
	if strings.TrimSpace(req.InviteeIdentifier) == "" || strings.TrimSpace(req.CoachID) == "" {
		return nil, apierrors.BadRequest("invitee identifier and coach id are required")
	}

	role := models.ParseTeamRole(req.Role)
	if role != models.RoleCoach && role != models.RoleAthlete {
		return nil, apierrors.BadRequest("invalid role")
	}

	caller, err := s.resolveCaller(authHeader)
	if err != nil {
		return nil, err
	}
	if caller.UserID != req.CoachID {
		return nil, apierrors.Forbidden("cannot issue an invite on another coach's behalf")
	}

	team, err := s.teams.FindByID(teamID)
	if err != nil {
		return nil, s.notFoundOr(err, "team not found")
	}

	issuer, err := s.teams.FindMember(team.ID, req.CoachID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierrors.Forbidden("only a coach or owner of the team can invite members")
		}
		return nil, err
	}
	if issuer.Role != models.RoleCoach && issuer.Role != models.RoleOwner {
		return nil, apierrors.Forbidden("only a coach or owner of the team can invite members")
	}

	invitee, err := s.users.FindByEmailOrUsername(req.InviteeIdentifier, req.InviteeIdentifier)
	if err != nil {
		return nil, s.notFoundOr(err, "user not found")
	}

	if _, err := s.teams.FindMember(team.ID, invitee.ID); err == nil {
		return nil, apierrors.Forbidden("user is already a member of the team")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	inviteToken, err := s.tokens.IssueInviteToken(team.ID, invitee.ID, string(role), req.CoachID)
	if err != nil {
		return nil, err
	}

	return &dto.InviteTokenResponse{
		Token:     inviteToken,
		InviteURL: s.tokens.InviteURL(inviteToken),
	}, nil
}

// AcceptInviteToken redeems an invite: it validates the token against the
// caller and the current membership state, then inserts the one membership
// row. Replaying a token after a successful accept hits the conflict path.
func (s *InviteService) AcceptInviteToken(authHeader, inviteToken string) (*dto.AcceptInviteResponse, string, error) {
	claims, err := s.decodeInvite(inviteToken)
	if err != nil {
		return nil, "", err
	}

	caller, err := s.resolveCaller(authHeader)
	if err != nil {
		return nil, "", err
	}
	if caller.UserID != claims.UserID {
		return nil, "", apierrors.Forbidden("this invite belongs to another user")
	}

	role := models.ParseTeamRole(claims.Role)
	if role == "" {
		return nil, "", apierrors.BadRequest("invalid role")
	}
	if role == models.RoleOwner {
		return nil, "", apierrors.Forbidden("cannot accept an invite as owner")
	}

	if err := s.checkNotMember(claims.TeamID, claims.UserID); err != nil {
		return nil, "", err
	}

	team, err := s.teams.FindByID(claims.TeamID)
	if err != nil {
		return nil, "", s.notFoundOr(err, "team not found")
	}
	invitee, err := s.users.FindByID(claims.UserID)
	if err != nil {
		return nil, "", s.notFoundOr(err, "invited user not found")
	}
	if _, err := s.users.FindByID(claims.InvitedBy); err != nil {
		return nil, "", s.notFoundOr(err, "inviter not found")
	}

	member := &models.TeamMember{
		TeamID:      team.ID,
		UserID:      invitee.ID,
		Role:        role,
		InvitedByID: &claims.InvitedBy,
	}
	if err := s.teams.AddMember(member); err != nil {
		return nil, "", err
	}

	message := fmt.Sprintf("Welcome to %s! You joined as an athlete.", team.Name)
	if role == models.RoleCoach {
		message = fmt.Sprintf("Welcome to %s! You joined as a coach.", team.Name)
	}

	return &dto.AcceptInviteResponse{
		TeamID:   team.ID,
		TeamName: team.Name,
		Role:     string(role),
	}, message, nil
}

// SendInviteByEmail re-validates an issued invite and emails its URL to the
// invitee. Only the original issuer may trigger the send. No durable effect;
// a dispatch failure fails the operation.
func (s *InviteService) SendInviteByEmail(authHeader, inviteToken string) error {
	claims, err := s.decodeInvite(inviteToken)
	if err != nil {
		return err
	}

	caller, err := s.resolveCaller(authHeader)
	if err != nil {
		return err
	}
	if caller.UserID != claims.InvitedBy {
		return apierrors.Forbidden("only the inviter can send this invite")
	}

	role := models.ParseTeamRole(claims.Role)
	if role == "" {
		return apierrors.BadRequest("invalid role")
	}
	if role == models.RoleOwner {
		return apierrors.Forbidden("cannot invite as owner")
	}

	if err := s.checkNotMember(claims.TeamID, claims.UserID); err != nil {
		return err
	}

	team, err := s.teams.FindByID(claims.TeamID)
	if err != nil {
		return s.notFoundOr(err, "team not found")
	}
	invitee, err := s.users.FindByID(claims.UserID)
	if err != nil {
		return s.notFoundOr(err, "invited user not found")
	}
	inviter, err := s.users.FindByID(claims.InvitedBy)
	if err != nil {
		return s.notFoundOr(err, "inviter not found")
	}

	if strings.TrimSpace(invitee.Email) == "" {
		return apierrors.BadRequest("invited user has no email address")
	}

	data := InviteEmailData{
		TeamName:     team.Name,
		TeamImageURL: team.ImageURL,
		InviterName:  inviter.Name,
		InviterEmail: inviter.Email,
		InviteeName:  invitee.Name,
		InviteURL:    s.tokens.InviteURL(inviteToken),
	}
	if err := s.email.SendInvite(invitee.Email, data); err != nil {
		s.logger.Error("invite email dispatch failed",
			zap.String("team_id", team.ID),
			zap.String("invitee_id", invitee.ID),
			zap.Error(err))
		return apierrors.Internal("failed to send invite email")
	}

	s.logger.Info("invite email sent",
		zap.String("team_id", team.ID),
		zap.String("invitee_id", invitee.ID))
	return nil
}

// resolveCaller extracts and verifies the caller's identity token. Both
// failure modes surface as unauthorized at the transport layer.
func (s *InviteService) resolveCaller(authHeader string) (*token.Identity, error) {
	tok, err := token.ExtractTokenFromHeader(authHeader)
	if err != nil {
		return nil, err
	}
	return s.tokens.DecodeIdentity(tok)
}

// decodeInvite distinguishes a blank token from a dead one so clients can
// tell a missing field apart from an expired or tampered invite link.
func (s *InviteService) decodeInvite(inviteToken string) (*token.InviteClaims, error) {
	if strings.TrimSpace(inviteToken) == "" {
		return nil, apierrors.BadRequest("invite token is required")
	}
	claims, err := s.tokens.DecodeInvite(inviteToken)
	if err != nil {
		return nil, apierrors.BadRequest("invalid invite token")
	}
	return claims, nil
}

// checkNotMember returns a conflict naming the team and the existing role
// label when a membership already exists for the pair.
func (s *InviteService) checkNotMember(teamID, userID string) error {
	member, err := s.teams.FindMember(teamID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	teamName := "this team"
	if team, terr := s.teams.FindByID(teamID); terr == nil {
		teamName = team.Name
	}
	return apierrors.Conflict(fmt.Sprintf("already a member of %s as %s", teamName, member.Role.Label()))
}

func (s *InviteService) notFoundOr(err error, message string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apierrors.NotFound(message)
	}
	return err
}
