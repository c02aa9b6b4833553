package repository

import (
	"sort"

	"github.com/hydrafit/hydra-api/internal/models"
	"gorm.io/gorm"
)

// GormTeamRepository is a GORM implementation of TeamRepository
type GormTeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new TeamRepository
func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &GormTeamRepository{db: db}
}

// CreateWithOwner creates the team and its owner membership in a transaction
func (r *GormTeamRepository) CreateWithOwner(team *models.Team, owner *models.TeamMember) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(team).Error; err != nil {
			return err
		}
		owner.TeamID = team.ID
		return tx.Create(owner).Error
	})
}

// FindByID finds a team by ID
func (r *GormTeamRepository) FindByID(id string) (*models.Team, error) {
	var team models.Team
	if err := r.db.First(&team, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &team, nil
}

// FindMember finds a specific team membership
func (r *GormTeamRepository) FindMember(teamID, userID string) (*models.TeamMember, error) {
	var member models.TeamMember
	if err := r.db.Where("team_id = ? AND user_id = ?", teamID, userID).
		First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// AddMember inserts one membership row inside a transaction boundary
func (r *GormTeamRepository) AddMember(member *models.TeamMember) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(member).Error
	})
}

// ListMembersOrdered lists all members of a team, owners first. Role
// precedence comes from TeamRole.Order; the database only orders by join
// time, so the sort must be stable.
func (r *GormTeamRepository) ListMembersOrdered(teamID string) ([]models.TeamMember, error) {
	var members []models.TeamMember
	if err := r.db.Preload("User").Preload("InvitedBy").
		Where("team_id = ?", teamID).
		Order("joined_at ASC").
		Find(&members).Error; err != nil {
		return nil, err
	}
	sort.SliceStable(members, func(i, j int) bool {
		return members[i].Role.Order() < members[j].Role.Order()
	})
	return members, nil
}

// FindFirstMembershipByUser returns the earliest membership of a user
func (r *GormTeamRepository) FindFirstMembershipByUser(userID string) (*models.TeamMember, error) {
	var member models.TeamMember
	if err := r.db.Preload("Team").
		Where("user_id = ?", userID).
		Order("joined_at ASC").
		First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}
