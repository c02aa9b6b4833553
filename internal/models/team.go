package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Team struct {
	ID          string         `gorm:"primarykey;type:varchar(36)" json:"id"`
	Name        string         `gorm:"type:varchar(50);not null" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	City        string         `gorm:"type:varchar(100);not null" json:"city"`
	UF          string         `gorm:"type:varchar(2);not null" json:"uf"`
	Color       string         `gorm:"type:varchar(7);not null" json:"color"`
	ImageURL    string         `gorm:"type:varchar(255)" json:"image_url"`
	CreatedByID string         `gorm:"type:varchar(36);not null" json:"created_by"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	CreatedBy User         `gorm:"foreignKey:CreatedByID" json:"-"`
	Members   []TeamMember `gorm:"foreignKey:TeamID" json:"members,omitempty"`
}

func (t *Team) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
