package repository

import (
	"github.com/hydrafit/hydra-api/internal/models"
	"gorm.io/gorm"
)

// GormWorkoutRepository is a GORM implementation of WorkoutRepository
type GormWorkoutRepository struct {
	db *gorm.DB
}

// NewWorkoutRepository creates a new WorkoutRepository
func NewWorkoutRepository(db *gorm.DB) WorkoutRepository {
	return &GormWorkoutRepository{db: db}
}

// Create persists a workout together with its nested parts
func (r *GormWorkoutRepository) Create(workout *models.Workout) error {
	return r.db.Create(workout).Error
}

// FindByID finds a workout with its parts preloaded
func (r *GormWorkoutRepository) FindByID(id string) (*models.Workout, error) {
	var workout models.Workout
	if err := r.db.
		Preload("Exercises", func(db *gorm.DB) *gorm.DB {
			return db.Order("workout_exercises.order_index ASC")
		}).
		Preload("Exercises.Exercise").
		Preload("Exercises.Sets", func(db *gorm.DB) *gorm.DB {
			return db.Order("workout_exercise_sets.set_number ASC")
		}).
		Preload("RunningSegments", func(db *gorm.DB) *gorm.DB {
			return db.Order("workout_running_segments.order_index ASC")
		}).
		Preload("SwimmingSets", func(db *gorm.DB) *gorm.DB {
			return db.Order("workout_swimming_sets.order_index ASC")
		}).
		First(&workout, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &workout, nil
}

// ListByTeam lists a team's workouts, newest scheduled first
func (r *GormWorkoutRepository) ListByTeam(filter WorkoutFilter) ([]models.Workout, int64, error) {
	var workouts []models.Workout
	var total int64

	tx := r.db.Model(&models.Workout{}).Where("team_id = ?", filter.TeamID)
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.PageSize
	if err := tx.
		Order("scheduled_date DESC").
		Offset(offset).
		Limit(filter.PageSize).
		Find(&workouts).Error; err != nil {
		return nil, 0, err
	}
	return workouts, total, nil
}

// Delete soft-deletes a workout; its parts stay attached to the hidden row
func (r *GormWorkoutRepository) Delete(id string) error {
	return r.db.Delete(&models.Workout{}, "id = ?", id).Error
}
