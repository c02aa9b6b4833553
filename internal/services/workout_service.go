package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/hydrafit/hydra-api/internal/apierrors"
	"github.com/hydrafit/hydra-api/internal/constants"
	"github.com/hydrafit/hydra-api/internal/dto"
	"github.com/hydrafit/hydra-api/internal/models"
	"github.com/hydrafit/hydra-api/internal/repository"
	"github.com/hydrafit/hydra-api/internal/token"
)

// WorkoutService manages team workouts across the three modalities. Creation
// and deletion are restricted to the team's coaches and owner.
type WorkoutService struct {
	workouts  repository.WorkoutRepository
	teams     repository.TeamRepository
	exercises repository.ExerciseRepository
}

func NewWorkoutService(
	workouts repository.WorkoutRepository,
	teams repository.TeamRepository,
	exercises repository.ExerciseRepository,
) *WorkoutService {
	return &WorkoutService{workouts: workouts, teams: teams, exercises: exercises}
}

// CreateWorkout creates a workout for a team. The nested parts must match
// the declared modality: weightlifting carries exercises with sets, running
// carries segments, swimming carries swim sets.
func (s *WorkoutService) CreateWorkout(caller *token.Identity, teamID string, req dto.CreateWorkoutRequest) (*models.Workout, error) {
	modality := models.WorkoutModality(req.Modality)
	switch modality {
	case models.ModalityWeightlifting, models.ModalityRunning, models.ModalitySwimming:
	default:
		return nil, apierrors.BadRequest("invalid modality")
	}

	if err := s.requireCoach(teamID, caller.UserID); err != nil {
		return nil, err
	}

	if err := validateWorkoutParts(modality, req); err != nil {
		return nil, err
	}

	workout := &models.Workout{
		TeamID:          teamID,
		CreatedByID:     caller.UserID,
		Title:           req.Title,
		Description:     req.Description,
		Modality:        modality,
		ScheduledDate:   req.ScheduledDate,
		DurationMinutes: req.DurationMinutes,
		Intensity:       models.WorkoutIntensity(req.Intensity),
		Notes:           req.Notes,
	}

	switch modality {
	case models.ModalityWeightlifting:
		for i, ex := range req.Exercises {
			if _, err := s.exercises.FindByID(ex.ExerciseID); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, apierrors.NotFound("exercise not found")
				}
				return nil, err
			}
			we := models.WorkoutExercise{
				ExerciseID:             ex.ExerciseID,
				OrderIndex:             i + 1,
				Technique:              ex.Technique,
				RestBetweenSetsSeconds: ex.RestBetweenSetsSeconds,
				Notes:                  ex.Notes,
			}
			for j, set := range ex.Sets {
				we.Sets = append(we.Sets, models.WorkoutExerciseSet{
					SetNumber:   j + 1,
					Reps:        set.Reps,
					Weight:      set.Weight,
					RPE:         set.RPE,
					RestSeconds: set.RestSeconds,
					Notes:       set.Notes,
				})
			}
			workout.Exercises = append(workout.Exercises, we)
		}
	case models.ModalityRunning:
		for i, seg := range req.RunningSegments {
			workout.RunningSegments = append(workout.RunningSegments, models.WorkoutRunningSegment{
				OrderIndex:        i + 1,
				SegmentType:       seg.SegmentType,
				DistanceMeters:    seg.DistanceMeters,
				DurationSeconds:   seg.DurationSeconds,
				TargetPaceSeconds: seg.TargetPaceSeconds,
				Intensity:         seg.Intensity,
				Notes:             seg.Notes,
			})
		}
	case models.ModalitySwimming:
		for i, set := range req.SwimmingSets {
			workout.SwimmingSets = append(workout.SwimmingSets, models.WorkoutSwimmingSet{
				OrderIndex:        i + 1,
				Stroke:            set.Stroke,
				DistanceMeters:    set.DistanceMeters,
				Repetitions:       set.Repetitions,
				TargetPaceSeconds: set.TargetPaceSeconds,
				RestSeconds:       set.RestSeconds,
				Equipment:         set.Equipment,
				Notes:             set.Notes,
			})
		}
	}

	if err := s.workouts.Create(workout); err != nil {
		return nil, err
	}
	return workout, nil
}

// GetWorkout returns one workout with its parts, to any member of its team.
func (s *WorkoutService) GetWorkout(caller *token.Identity, id string) (*models.Workout, error) {
	workout, err := s.workouts.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierrors.NotFound("workout not found")
		}
		return nil, err
	}

	if err := s.requireMember(workout.TeamID, caller.UserID); err != nil {
		return nil, err
	}
	return workout, nil
}

// ListWorkouts pages a team's workouts for any member.
func (s *WorkoutService) ListWorkouts(caller *token.Identity, teamID string, page, pageSize int) (*dto.WorkoutListResponse, error) {
	if err := s.requireMember(teamID, caller.UserID); err != nil {
		return nil, err
	}

	if page < 1 {
		page = 1
	}
	if pageSize < constants.MinPageSize || pageSize > constants.MaxPageSize {
		pageSize = constants.DefaultPageSize
	}

	workouts, total, err := s.workouts.ListByTeam(repository.WorkoutFilter{
		TeamID:   teamID,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return nil, err
	}

	return &dto.WorkoutListResponse{
		Workouts: dto.FromWorkoutSummaries(workouts),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// DeleteWorkout removes a workout. Coaches and the owner only.
func (s *WorkoutService) DeleteWorkout(caller *token.Identity, id string) error {
	workout, err := s.workouts.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierrors.NotFound("workout not found")
		}
		return err
	}

	if err := s.requireCoach(workout.TeamID, caller.UserID); err != nil {
		return err
	}
	return s.workouts.Delete(id)
}

func validateWorkoutParts(modality models.WorkoutModality, req dto.CreateWorkoutRequest) error {
	switch modality {
	case models.ModalityWeightlifting:
		if len(req.Exercises) == 0 {
			return apierrors.BadRequest("a weightlifting workout needs at least one exercise")
		}
		if len(req.RunningSegments) > 0 || len(req.SwimmingSets) > 0 {
			return apierrors.BadRequest("workout parts do not match the modality")
		}
	case models.ModalityRunning:
		if len(req.RunningSegments) == 0 {
			return apierrors.BadRequest("a running workout needs at least one segment")
		}
		if len(req.Exercises) > 0 || len(req.SwimmingSets) > 0 {
			return apierrors.BadRequest("workout parts do not match the modality")
		}
	case models.ModalitySwimming:
		if len(req.SwimmingSets) == 0 {
			return apierrors.BadRequest("a swimming workout needs at least one set")
		}
		if len(req.Exercises) > 0 || len(req.RunningSegments) > 0 {
			return apierrors.BadRequest("workout parts do not match the modality")
		}
	}
	return nil
}

func (s *WorkoutService) requireMember(teamID, userID string) error {
	if _, err := s.teams.FindMember(teamID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierrors.Forbidden("not a member of this team")
		}
		return err
	}
	return nil
}

func (s *WorkoutService) requireCoach(teamID, userID string) error {
	member, err := s.teams.FindMember(teamID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierrors.Forbidden("only a coach or owner of the team can manage workouts")
		}
		return err
	}
	if member.Role != models.RoleCoach && member.Role != models.RoleOwner {
		return apierrors.Forbidden("only a coach or owner of the team can manage workouts")
	}
	return nil
}
