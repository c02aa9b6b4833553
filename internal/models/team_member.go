package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamRole is a user's role within one team. Ordering reflects display
// precedence: owners first, then coaches, then athletes.
type TeamRole string

const (
	RoleOwner   TeamRole = "OWNER"
	RoleCoach   TeamRole = "COACH"
	RoleAthlete TeamRole = "ATHLETE"
)

// ParseTeamRole parses a role string case-insensitively. Returns the zero
// value when the string maps to no known role; callers must treat that as
// invalid input.
func ParseTeamRole(s string) TeamRole {
	switch TeamRole(normalizeEnum(s)) {
	case RoleOwner:
		return RoleOwner
	case RoleCoach:
		return RoleCoach
	case RoleAthlete:
		return RoleAthlete
	}
	return ""
}

// Label returns the human-readable display form of the role.
func (r TeamRole) Label() string {
	switch r {
	case RoleOwner:
		return "Owner"
	case RoleCoach:
		return "Coach"
	case RoleAthlete:
		return "Athlete"
	}
	return ""
}

// Order is the sort precedence used when listing members.
func (r TeamRole) Order() int {
	switch r {
	case RoleOwner:
		return 1
	case RoleCoach:
		return 2
	case RoleAthlete:
		return 3
	}
	return 4
}

func normalizeEnum(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// TeamMember is the durable record of a user's role within a team. The
// composite unique index backs the at-most-one-membership invariant; the
// invite workflow still pre-checks existence to produce a friendly conflict.
type TeamMember struct {
	ID          string    `gorm:"primarykey;type:varchar(36)" json:"id"`
	TeamID      string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_team_members_team_user" json:"team_id"`
	UserID      string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_team_members_team_user" json:"user_id"`
	Role        TeamRole  `gorm:"type:varchar(20);not null" json:"role"`
	InvitedByID *string   `gorm:"type:varchar(36)" json:"invited_by,omitempty"`
	JoinedAt    time.Time `gorm:"not null" json:"joined_at"`
	CreatedAt   time.Time `json:"created_at"`

	// Relations
	Team      Team  `gorm:"foreignKey:TeamID" json:"team,omitempty"`
	User      User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	InvitedBy *User `gorm:"foreignKey:InvitedByID" json:"-"`
}

func (m *TeamMember) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.JoinedAt.IsZero() {
		m.JoinedAt = time.Now()
	}
	return nil
}
