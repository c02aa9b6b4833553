package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WorkoutModality string

const (
	ModalityWeightlifting WorkoutModality = "WEIGHTLIFTING"
	ModalityRunning       WorkoutModality = "RUNNING"
	ModalitySwimming      WorkoutModality = "SWIMMING"
)

type WorkoutIntensity string

const (
	IntensityLight    WorkoutIntensity = "LIGHT"
	IntensityModerate WorkoutIntensity = "MODERATE"
	IntensityHard     WorkoutIntensity = "HARD"
	IntensityMax      WorkoutIntensity = "MAX"
)

// Workout is a structured training session for a team. Exactly one of the
// three part collections is populated, matching the modality.
type Workout struct {
	ID              string           `gorm:"primarykey;type:varchar(36)" json:"id"`
	TeamID          string           `gorm:"type:varchar(36);not null;index" json:"team_id"`
	CreatedByID     string           `gorm:"type:varchar(36);not null" json:"created_by"`
	Title           string           `gorm:"type:varchar(100);not null" json:"title"`
	Description     string           `gorm:"type:text" json:"description"`
	Modality        WorkoutModality  `gorm:"type:varchar(20);not null" json:"modality"`
	ScheduledDate   *time.Time       `json:"scheduled_date"`
	DurationMinutes int              `json:"duration_minutes"`
	Intensity       WorkoutIntensity `gorm:"type:varchar(20)" json:"intensity"`
	Notes           string           `gorm:"type:text" json:"notes"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
	DeletedAt       gorm.DeletedAt   `gorm:"index" json:"-"`

	// Relations
	Team            Team                    `gorm:"foreignKey:TeamID" json:"-"`
	CreatedBy       User                    `gorm:"foreignKey:CreatedByID" json:"-"`
	Exercises       []WorkoutExercise       `gorm:"foreignKey:WorkoutID" json:"exercises,omitempty"`
	RunningSegments []WorkoutRunningSegment `gorm:"foreignKey:WorkoutID" json:"running_segments,omitempty"`
	SwimmingSets    []WorkoutSwimmingSet    `gorm:"foreignKey:WorkoutID" json:"swimming_sets,omitempty"`
}

func (w *Workout) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	return nil
}

// WorkoutExercise is one exercise slot in a weightlifting workout.
type WorkoutExercise struct {
	ID                     string `gorm:"primarykey;type:varchar(36)" json:"id"`
	WorkoutID              string `gorm:"type:varchar(36);not null;index" json:"workout_id"`
	ExerciseID             string `gorm:"type:varchar(36);not null" json:"exercise_id"`
	OrderIndex             int    `gorm:"not null" json:"order_index"`
	Technique              string `gorm:"type:varchar(50)" json:"technique"`
	RestBetweenSetsSeconds int    `json:"rest_between_sets_seconds"`
	Notes                  string `gorm:"type:text" json:"notes"`

	// Relations
	Exercise Exercise             `gorm:"foreignKey:ExerciseID" json:"exercise,omitempty"`
	Sets     []WorkoutExerciseSet `gorm:"foreignKey:WorkoutExerciseID" json:"sets,omitempty"`
}

func (e *WorkoutExercise) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

type WorkoutExerciseSet struct {
	ID                string  `gorm:"primarykey;type:varchar(36)" json:"id"`
	WorkoutExerciseID string  `gorm:"type:varchar(36);not null;index" json:"workout_exercise_id"`
	SetNumber         int     `gorm:"not null" json:"set_number"`
	Reps              int     `json:"reps"`
	Weight            float64 `json:"weight"`
	RPE               float64 `json:"rpe"`
	RestSeconds       int     `json:"rest_seconds"`
	Notes             string  `gorm:"type:text" json:"notes"`
}

func (s *WorkoutExerciseSet) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

type WorkoutRunningSegment struct {
	ID                string `gorm:"primarykey;type:varchar(36)" json:"id"`
	WorkoutID         string `gorm:"type:varchar(36);not null;index" json:"workout_id"`
	OrderIndex        int    `gorm:"not null" json:"order_index"`
	SegmentType       string `gorm:"type:varchar(30)" json:"segment_type"` // WARMUP, INTERVAL, TEMPO, COOLDOWN...
	DistanceMeters    int    `json:"distance_meters"`
	DurationSeconds   int    `json:"duration_seconds"`
	TargetPaceSeconds int    `json:"target_pace_seconds"`
	Intensity         string `gorm:"type:varchar(20)" json:"intensity"`
	Notes             string `gorm:"type:text" json:"notes"`
}

func (s *WorkoutRunningSegment) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

type WorkoutSwimmingSet struct {
	ID                string `gorm:"primarykey;type:varchar(36)" json:"id"`
	WorkoutID         string `gorm:"type:varchar(36);not null;index" json:"workout_id"`
	OrderIndex        int    `gorm:"not null" json:"order_index"`
	Stroke            string `gorm:"type:varchar(30)" json:"stroke"` // FREESTYLE, BACKSTROKE, BREASTSTROKE, BUTTERFLY, MEDLEY
	DistanceMeters    int    `json:"distance_meters"`
	Repetitions       int    `json:"repetitions"`
	TargetPaceSeconds int    `json:"target_pace_seconds"`
	RestSeconds       int    `json:"rest_seconds"`
	Equipment         string `gorm:"type:varchar(50)" json:"equipment"`
	Notes             string `gorm:"type:text" json:"notes"`
}

func (s *WorkoutSwimmingSet) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
