package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GlobalRole is the application-wide role carried in identity tokens,
// distinct from per-team roles.
type GlobalRole string

const (
	GlobalRoleAdmin   GlobalRole = "ADMIN"
	GlobalRoleCoach   GlobalRole = "COACH"
	GlobalRoleAthlete GlobalRole = "ATHLETE"
)

// ParseGlobalRole parses a role string case-insensitively. Returns the zero
// value when the string maps to no known role.
func ParseGlobalRole(s string) GlobalRole {
	switch GlobalRole(normalizeEnum(s)) {
	case GlobalRoleAdmin:
		return GlobalRoleAdmin
	case GlobalRoleCoach:
		return GlobalRoleCoach
	case GlobalRoleAthlete:
		return GlobalRoleAthlete
	}
	return ""
}

type User struct {
	ID           string         `gorm:"primarykey;type:varchar(36)" json:"id"`
	Name         string         `gorm:"type:varchar(100);not null" json:"name"`
	Email        string         `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"`
	Username     string         `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	PasswordHash string         `gorm:"type:varchar(255);not null" json:"-"`
	Role         GlobalRole     `gorm:"type:varchar(20);not null;default:'ATHLETE'" json:"role"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Memberships []TeamMember `gorm:"foreignKey:UserID" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
