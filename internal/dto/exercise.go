package dto

import "github.com/hydrafit/hydra-api/internal/models"

type CreateExerciseRequest struct {
	Name             string `json:"name" binding:"required,max=100"`
	Description      string `json:"description"`
	MuscleGroup      string `json:"muscle_group" binding:"required"`
	SecondaryMuscles string `json:"secondary_muscles"`
	Equipment        string `json:"equipment"`
	Difficulty       string `json:"difficulty"`
	VideoURL         string `json:"video_url"`
	ImageURL         string `json:"image_url"`
	Instructions     string `json:"instructions"`
}

type ExerciseResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	MuscleGroup      string `json:"muscle_group"`
	SecondaryMuscles string `json:"secondary_muscles"`
	Equipment        string `json:"equipment"`
	Difficulty       string `json:"difficulty"`
	VideoURL         string `json:"video_url"`
	ImageURL         string `json:"image_url"`
	Instructions     string `json:"instructions"`
	IsCustom         bool   `json:"is_custom"`
}

func FromExercise(exercise *models.Exercise) ExerciseResponse {
	return ExerciseResponse{
		ID:               exercise.ID,
		Name:             exercise.Name,
		Description:      exercise.Description,
		MuscleGroup:      string(exercise.MuscleGroup),
		SecondaryMuscles: exercise.SecondaryMuscles,
		Equipment:        string(exercise.Equipment),
		Difficulty:       string(exercise.Difficulty),
		VideoURL:         exercise.VideoURL,
		ImageURL:         exercise.ImageURL,
		Instructions:     exercise.Instructions,
		IsCustom:         exercise.IsCustom,
	}
}

func FromExercises(exercises []models.Exercise) []ExerciseResponse {
	out := make([]ExerciseResponse, len(exercises))
	for i := range exercises {
		out[i] = FromExercise(&exercises[i])
	}
	return out
}
