package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/hydrafit/hydra-api/internal/apierrors"
	"github.com/hydrafit/hydra-api/internal/dto"
	"github.com/hydrafit/hydra-api/internal/models"
	"github.com/hydrafit/hydra-api/internal/repository"
	"github.com/hydrafit/hydra-api/internal/token"
)

// ExerciseService manages the exercise catalog: a shared global set plus
// per-user custom entries.
type ExerciseService struct {
	exercises repository.ExerciseRepository
}

func NewExerciseService(exercises repository.ExerciseRepository) *ExerciseService {
	return &ExerciseService{exercises: exercises}
}

// CreateExercise adds a custom exercise owned by the caller.
func (s *ExerciseService) CreateExercise(caller *token.Identity, req dto.CreateExerciseRequest) (*dto.ExerciseResponse, error) {
	muscleGroup := models.ParseMuscleGroup(req.MuscleGroup)
	if muscleGroup == "" {
		return nil, apierrors.BadRequest("invalid muscle group")
	}

	// equipment and difficulty are optional, but must be known values when set
	var equipment models.Equipment
	if req.Equipment != "" {
		if equipment = models.ParseEquipment(req.Equipment); equipment == "" {
			return nil, apierrors.BadRequest("invalid equipment")
		}
	}
	var difficulty models.Difficulty
	if req.Difficulty != "" {
		if difficulty = models.ParseDifficulty(req.Difficulty); difficulty == "" {
			return nil, apierrors.BadRequest("invalid difficulty")
		}
	}

	creatorID := caller.UserID
	exercise := &models.Exercise{
		Name:             req.Name,
		Description:      req.Description,
		MuscleGroup:      muscleGroup,
		SecondaryMuscles: req.SecondaryMuscles,
		Equipment:        equipment,
		Difficulty:       difficulty,
		VideoURL:         req.VideoURL,
		ImageURL:         req.ImageURL,
		Instructions:     req.Instructions,
		IsCustom:         true,
		CreatedByID:      &creatorID,
	}
	if err := s.exercises.Create(exercise); err != nil {
		return nil, err
	}

	resp := dto.FromExercise(exercise)
	return &resp, nil
}

// GetExercise returns one catalog entry. Custom exercises are only visible
// to their creator.
func (s *ExerciseService) GetExercise(caller *token.Identity, id string) (*dto.ExerciseResponse, error) {
	exercise, err := s.exercises.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierrors.NotFound("exercise not found")
		}
		return nil, err
	}

	if exercise.IsCustom && (exercise.CreatedByID == nil || *exercise.CreatedByID != caller.UserID) {
		return nil, apierrors.NotFound("exercise not found")
	}

	resp := dto.FromExercise(exercise)
	return &resp, nil
}

// SearchExercises lists global exercises plus the caller's custom ones,
// optionally filtered by name query and muscle group.
func (s *ExerciseService) SearchExercises(caller *token.Identity, query, muscleGroup string) ([]dto.ExerciseResponse, error) {
	exercises, err := s.exercises.Search(query, models.MuscleGroup(muscleGroup), caller.UserID)
	if err != nil {
		return nil, err
	}
	return dto.FromExercises(exercises), nil
}
