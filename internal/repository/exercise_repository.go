package repository

import (
	"github.com/hydrafit/hydra-api/internal/models"
	"gorm.io/gorm"
)

// GormExerciseRepository is a GORM implementation of ExerciseRepository
type GormExerciseRepository struct {
	db *gorm.DB
}

// NewExerciseRepository creates a new ExerciseRepository
func NewExerciseRepository(db *gorm.DB) ExerciseRepository {
	return &GormExerciseRepository{db: db}
}

// Create creates a new exercise
func (r *GormExerciseRepository) Create(exercise *models.Exercise) error {
	return r.db.Create(exercise).Error
}

// FindByID finds an exercise by ID
func (r *GormExerciseRepository) FindByID(id string) (*models.Exercise, error) {
	var exercise models.Exercise
	if err := r.db.First(&exercise, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &exercise, nil
}

// Search returns global exercises plus the user's own custom ones
func (r *GormExerciseRepository) Search(query string, muscleGroup models.MuscleGroup, userID string) ([]models.Exercise, error) {
	var exercises []models.Exercise

	tx := r.db.Where("is_custom = ? OR created_by_id = ?", false, userID)
	if query != "" {
		tx = tx.Where("LOWER(name) LIKE LOWER(?)", "%"+query+"%")
	}
	if muscleGroup != "" {
		tx = tx.Where("muscle_group = ?", muscleGroup)
	}

	if err := tx.Order("name ASC").Find(&exercises).Error; err != nil {
		return nil, err
	}
	return exercises, nil
}
