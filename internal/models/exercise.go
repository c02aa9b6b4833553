package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MuscleGroup string

const (
	MuscleChest     MuscleGroup = "CHEST"
	MuscleBack      MuscleGroup = "BACK"
	MuscleShoulders MuscleGroup = "SHOULDERS"
	MuscleBiceps    MuscleGroup = "BICEPS"
	MuscleTriceps   MuscleGroup = "TRICEPS"
	MuscleLegs      MuscleGroup = "LEGS"
	MuscleGlutes    MuscleGroup = "GLUTES"
	MuscleCore      MuscleGroup = "CORE"
	MuscleFullBody  MuscleGroup = "FULL_BODY"
)

type Equipment string

const (
	EquipmentBarbell    Equipment = "BARBELL"
	EquipmentDumbbell   Equipment = "DUMBBELL"
	EquipmentMachine    Equipment = "MACHINE"
	EquipmentCable      Equipment = "CABLE"
	EquipmentBodyweight Equipment = "BODYWEIGHT"
	EquipmentKettlebell Equipment = "KETTLEBELL"
	EquipmentBand       Equipment = "BAND"
	EquipmentNone       Equipment = "NONE"
)

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "BEGINNER"
	DifficultyIntermediate Difficulty = "INTERMEDIATE"
	DifficultyAdvanced     Difficulty = "ADVANCED"
)

// ParseMuscleGroup parses a muscle group case-insensitively. Returns the zero
// value for unknown input.
func ParseMuscleGroup(s string) MuscleGroup {
	switch MuscleGroup(normalizeEnum(s)) {
	case MuscleChest, MuscleBack, MuscleShoulders, MuscleBiceps, MuscleTriceps,
		MuscleLegs, MuscleGlutes, MuscleCore, MuscleFullBody:
		return MuscleGroup(normalizeEnum(s))
	}
	return ""
}

// ParseEquipment parses an equipment string case-insensitively.
func ParseEquipment(s string) Equipment {
	switch Equipment(normalizeEnum(s)) {
	case EquipmentBarbell, EquipmentDumbbell, EquipmentMachine, EquipmentCable,
		EquipmentBodyweight, EquipmentKettlebell, EquipmentBand, EquipmentNone:
		return Equipment(normalizeEnum(s))
	}
	return ""
}

// ParseDifficulty parses a difficulty string case-insensitively.
func ParseDifficulty(s string) Difficulty {
	switch Difficulty(normalizeEnum(s)) {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return Difficulty(normalizeEnum(s))
	}
	return ""
}

// Exercise is a catalog entry. Global exercises (IsCustom=false) are visible
// to everyone; custom ones only to their creator.
type Exercise struct {
	ID               string      `gorm:"primarykey;type:varchar(36)" json:"id"`
	Name             string      `gorm:"type:varchar(100);not null" json:"name"`
	Description      string      `gorm:"type:text" json:"description"`
	MuscleGroup      MuscleGroup `gorm:"type:varchar(50)" json:"muscle_group"`
	SecondaryMuscles string      `gorm:"type:varchar(200)" json:"secondary_muscles"` // comma-separated, e.g. "TRICEPS,SHOULDERS"
	Equipment        Equipment   `gorm:"type:varchar(50)" json:"equipment"`
	Difficulty       Difficulty  `gorm:"type:varchar(20)" json:"difficulty"`
	VideoURL         string      `gorm:"type:varchar(255)" json:"video_url"`
	ImageURL         string      `gorm:"type:varchar(255)" json:"image_url"`
	Instructions     string      `gorm:"type:text" json:"instructions"`
	IsCustom         bool        `gorm:"not null;default:false" json:"is_custom"`
	CreatedByID      *string     `gorm:"type:varchar(36)" json:"created_by,omitempty"`
	CreatedAt        time.Time   `json:"created_at"`

	// Relations
	CreatedBy *User `gorm:"foreignKey:CreatedByID" json:"-"`
}

func (e *Exercise) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
