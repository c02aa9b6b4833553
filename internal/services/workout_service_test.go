package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/hydrafit/hydra-api/internal/apierrors"
	"github.com/hydrafit/hydra-api/internal/dto"
	"github.com/hydrafit/hydra-api/internal/models"
	"github.com/hydrafit/hydra-api/internal/repository"
	"github.com/hydrafit/hydra-api/internal/token"
)

type workoutTestEnv struct {
	db      *gorm.DB
	service *WorkoutService
}

func setupWorkoutTestEnv(t *testing.T) workoutTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Team{},
		&models.TeamMember{},
		&models.Exercise{},
		&models.Workout{},
		&models.WorkoutExercise{},
		&models.WorkoutExerciseSet{},
		&models.WorkoutRunningSegment{},
		&models.WorkoutSwimmingSet{},
	)
	require.NoError(t, err)

	service := NewWorkoutService(
		repository.NewWorkoutRepository(db),
		repository.NewTeamRepository(db),
		repository.NewExerciseRepository(db),
	)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return workoutTestEnv{db: db, service: service}
}

func identityFor(user *models.User) *token.Identity {
	return &token.Identity{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		Name:     user.Name,
		Role:     string(user.Role),
	}
}

func TestCreateWorkout_Weightlifting(t *testing.T) {
	env := setupWorkoutTestEnv(t)

	coach := createInviteTestUser(t, env.db, "Carla Coach", "carla", "carla@example.com")
	team := createInviteTestTeam(t, env.db, "Hydra Strength", coach)

	exercise := &models.Exercise{Name: "Back Squat", MuscleGroup: models.MuscleLegs}
	require.NoError(t, env.db.Create(exercise).Error)

	workout, err := env.service.CreateWorkout(identityFor(coach), team.ID, dto.CreateWorkoutRequest{
		Title:    "Leg Day",
		Modality: "WEIGHTLIFTING",
		Exercises: []dto.WorkoutExerciseRequest{
			{
				ExerciseID: exercise.ID,
				Sets: []dto.WorkoutExerciseSetRequest{
					{Reps: 5, Weight: 100},
					{Reps: 5, Weight: 105},
				},
			},
		},
	})
	require.NoError(t, err)
	require.Equal(t, models.ModalityWeightlifting, workout.Modality)

	loaded, err := env.service.GetWorkout(identityFor(coach), workout.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Exercises, 1)
	require.Len(t, loaded.Exercises[0].Sets, 2)
	require.Equal(t, 1, loaded.Exercises[0].Sets[0].SetNumber)
}

func TestCreateWorkout_PartsMustMatchModality(t *testing.T) {
	env := setupWorkoutTestEnv(t)

	coach := createInviteTestUser(t, env.db, "Carla Coach", "carla", "carla@example.com")
	team := createInviteTestTeam(t, env.db, "Hydra Run", coach)

	// running workout with swimming sets
	_, err := env.service.CreateWorkout(identityFor(coach), team.ID, dto.CreateWorkoutRequest{
		Title:    "Track Night",
		Modality: "RUNNING",
		RunningSegments: []dto.WorkoutRunningSegmentRequest{
			{SegmentType: "INTERVAL", DistanceMeters: 400},
		},
		SwimmingSets: []dto.WorkoutSwimmingSetRequest{
			{Stroke: "FREESTYLE", DistanceMeters: 100},
		},
	})
	requireKind(t, err, apierrors.KindBadRequest)

	// weightlifting without exercises
	_, err = env.service.CreateWorkout(identityFor(coach), team.ID, dto.CreateWorkoutRequest{
		Title:    "Empty",
		Modality: "WEIGHTLIFTING",
	})
	requireKind(t, err, apierrors.KindBadRequest)

	_, err = env.service.CreateWorkout(identityFor(coach), team.ID, dto.CreateWorkoutRequest{
		Title:    "Unknown",
		Modality: "YOGA",
	})
	requireKind(t, err, apierrors.KindBadRequest)
}

func TestCreateWorkout_AthleteForbidden(t *testing.T) {
	env := setupWorkoutTestEnv(t)

	owner := createInviteTestUser(t, env.db, "Olivia Owner", "olivia", "olivia@example.com")
	athlete := createInviteTestUser(t, env.db, "Alan Athlete", "alan", "alan@example.com")
	team := createInviteTestTeam(t, env.db, "Hydra Run", owner)
	addInviteTestMember(t, env.db, team, athlete, models.RoleAthlete)

	_, err := env.service.CreateWorkout(identityFor(athlete), team.ID, dto.CreateWorkoutRequest{
		Title:    "Track Night",
		Modality: "RUNNING",
		RunningSegments: []dto.WorkoutRunningSegmentRequest{
			{SegmentType: "INTERVAL", DistanceMeters: 400},
		},
	})
	requireKind(t, err, apierrors.KindForbidden)
}

func TestListWorkouts_Paged(t *testing.T) {
	env := setupWorkoutTestEnv(t)

	coach := createInviteTestUser(t, env.db, "Carla Coach", "carla", "carla@example.com")
	team := createInviteTestTeam(t, env.db, "Hydra Swim", coach)

	for i := 0; i < 3; i++ {
		_, err := env.service.CreateWorkout(identityFor(coach), team.ID, dto.CreateWorkoutRequest{
			Title:    "Pool Session",
			Modality: "SWIMMING",
			SwimmingSets: []dto.WorkoutSwimmingSetRequest{
				{Stroke: "FREESTYLE", DistanceMeters: 100, Repetitions: 4},
			},
		})
		require.NoError(t, err)
	}

	resp, err := env.service.ListWorkouts(identityFor(coach), team.ID, 1, 2)
	require.NoError(t, err)
	require.Equal(t, int64(3), resp.Total)
	require.Len(t, resp.Workouts, 2)

	resp, err = env.service.ListWorkouts(identityFor(coach), team.ID, 2, 2)
	require.NoError(t, err)
	require.Len(t, resp.Workouts, 1)
}

func TestDeleteWorkout_CoachOnly(t *testing.T) {
	env := setupWorkoutTestEnv(t)

	owner := createInviteTestUser(t, env.db, "Olivia Owner", "olivia", "olivia@example.com")
	athlete := createInviteTestUser(t, env.db, "Alan Athlete", "alan", "alan@example.com")
	team := createInviteTestTeam(t, env.db, "Hydra Run", owner)
	addInviteTestMember(t, env.db, team, athlete, models.RoleAthlete)

	workout, err := env.service.CreateWorkout(identityFor(owner), team.ID, dto.CreateWorkoutRequest{
		Title:    "Track Night",
		Modality: "RUNNING",
		RunningSegments: []dto.WorkoutRunningSegmentRequest{
			{SegmentType: "TEMPO", DistanceMeters: 5000},
		},
	})
	require.NoError(t, err)

	err = env.service.DeleteWorkout(identityFor(athlete), workout.ID)
	requireKind(t, err, apierrors.KindForbidden)

	require.NoError(t, env.service.DeleteWorkout(identityFor(owner), workout.ID))

	_, err = env.service.GetWorkout(identityFor(owner), workout.ID)
	requireKind(t, err, apierrors.KindNotFound)
}
