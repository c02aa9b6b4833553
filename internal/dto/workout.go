package dto

import (
	"time"

	"github.com/hydrafit/hydra-api/internal/models"
)

type CreateWorkoutRequest struct {
	Title           string     `json:"title" binding:"required,max=100"`
	Description     string     `json:"description"`
	Modality        string     `json:"modality" binding:"required"`
	ScheduledDate   *time.Time `json:"scheduled_date"`
	DurationMinutes int        `json:"duration_minutes"`
	Intensity       string     `json:"intensity"`
	Notes           string     `json:"notes"`

	Exercises       []WorkoutExerciseRequest       `json:"exercises"`
	RunningSegments []WorkoutRunningSegmentRequest `json:"running_segments"`
	SwimmingSets    []WorkoutSwimmingSetRequest    `json:"swimming_sets"`
}

type WorkoutExerciseRequest struct {
	ExerciseID             string                      `json:"exercise_id" binding:"required"`
	Technique              string                      `json:"technique"`
	RestBetweenSetsSeconds int                         `json:"rest_between_sets_seconds"`
	Notes                  string                      `json:"notes"`
	Sets                   []WorkoutExerciseSetRequest `json:"sets" binding:"required,min=1"`
}

type WorkoutExerciseSetRequest struct {
	Reps        int     `json:"reps"`
	Weight      float64 `json:"weight"`
	RPE         float64 `json:"rpe"`
	RestSeconds int     `json:"rest_seconds"`
	Notes       string  `json:"notes"`
}

type WorkoutRunningSegmentRequest struct {
	SegmentType       string `json:"segment_type" binding:"required"`
	DistanceMeters    int    `json:"distance_meters"`
	DurationSeconds   int    `json:"duration_seconds"`
	TargetPaceSeconds int    `json:"target_pace_seconds"`
	Intensity         string `json:"intensity"`
	Notes             string `json:"notes"`
}

type WorkoutSwimmingSetRequest struct {
	Stroke            string `json:"stroke" binding:"required"`
	DistanceMeters    int    `json:"distance_meters" binding:"required"`
	Repetitions       int    `json:"repetitions"`
	TargetPaceSeconds int    `json:"target_pace_seconds"`
	RestSeconds       int    `json:"rest_seconds"`
	Equipment         string `json:"equipment"`
	Notes             string `json:"notes"`
}

type WorkoutSummaryResponse struct {
	ID              string     `json:"id"`
	TeamID          string     `json:"team_id"`
	Title           string     `json:"title"`
	Modality        string     `json:"modality"`
	ScheduledDate   *time.Time `json:"scheduled_date"`
	DurationMinutes int        `json:"duration_minutes"`
	Intensity       string     `json:"intensity"`
	CreatedBy       string     `json:"created_by"`
}

// WorkoutListResponse pages a team's workouts.
type WorkoutListResponse struct {
	Workouts []WorkoutSummaryResponse `json:"workouts"`
	Total    int64                    `json:"total"`
	Page     int                      `json:"page"`
	PageSize int                      `json:"page_size"`
}

func FromWorkoutSummary(w *models.Workout) WorkoutSummaryResponse {
	return WorkoutSummaryResponse{
		ID:              w.ID,
		TeamID:          w.TeamID,
		Title:           w.Title,
		Modality:        string(w.Modality),
		ScheduledDate:   w.ScheduledDate,
		DurationMinutes: w.DurationMinutes,
		Intensity:       string(w.Intensity),
		CreatedBy:       w.CreatedByID,
	}
}

func FromWorkoutSummaries(workouts []models.Workout) []WorkoutSummaryResponse {
	out := make([]WorkoutSummaryResponse, len(workouts))
	for i := range workouts {
		out[i] = FromWorkoutSummary(&workouts[i])
	}
	return out
}
