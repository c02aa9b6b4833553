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
)

type exerciseTestEnv struct {
	db      *gorm.DB
	service *ExerciseService
}

func setupExerciseTestEnv(t *testing.T) exerciseTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.User{}, &models.Exercise{})
	require.NoError(t, err)

	service := NewExerciseService(repository.NewExerciseRepository(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return exerciseTestEnv{db: db, service: service}
}

func createGlobalExercise(t *testing.T, db *gorm.DB, name string, group models.MuscleGroup) *models.Exercise {
	t.Helper()
	exercise := &models.Exercise{Name: name, MuscleGroup: group}
	require.NoError(t, db.Create(exercise).Error)
	return exercise
}

func TestCreateExercise_CustomOwnedByCaller(t *testing.T) {
	env := setupExerciseTestEnv(t)
	coach := createInviteTestUser(t, env.db, "Carla Coach", "carla", "carla@example.com")

	resp, err := env.service.CreateExercise(identityFor(coach), dto.CreateExerciseRequest{
		Name:        "Bulgarian Split Squat",
		MuscleGroup: "legs",
		Equipment:   "dumbbell",
		Difficulty:  "intermediate",
	})
	require.NoError(t, err)
	require.True(t, resp.IsCustom)
	require.Equal(t, "LEGS", resp.MuscleGroup)
	require.Equal(t, "DUMBBELL", resp.Equipment)
	require.Equal(t, "INTERMEDIATE", resp.Difficulty)

	var stored models.Exercise
	require.NoError(t, env.db.First(&stored, "id = ?", resp.ID).Error)
	require.NotNil(t, stored.CreatedByID)
	require.Equal(t, coach.ID, *stored.CreatedByID)
}

func TestCreateExercise_InvalidEnums(t *testing.T) {
	env := setupExerciseTestEnv(t)
	coach := createInviteTestUser(t, env.db, "Carla Coach", "carla", "carla@example.com")

	_, err := env.service.CreateExercise(identityFor(coach), dto.CreateExerciseRequest{
		Name:        "Mystery Lift",
		MuscleGroup: "EARS",
	})
	requireKind(t, err, apierrors.KindBadRequest)

	_, err = env.service.CreateExercise(identityFor(coach), dto.CreateExerciseRequest{
		Name:        "Mystery Lift",
		MuscleGroup: "LEGS",
		Equipment:   "FORKLIFT",
	})
	requireKind(t, err, apierrors.KindBadRequest)

	_, err = env.service.CreateExercise(identityFor(coach), dto.CreateExerciseRequest{
		Name:        "Mystery Lift",
		MuscleGroup: "LEGS",
		Difficulty:  "IMPOSSIBLE",
	})
	requireKind(t, err, apierrors.KindBadRequest)

	// equipment and difficulty stay optional
	_, err = env.service.CreateExercise(identityFor(coach), dto.CreateExerciseRequest{
		Name:        "Air Squat",
		MuscleGroup: "LEGS",
	})
	require.NoError(t, err)
}

func TestSearchExercises_VisibilityScoping(t *testing.T) {
	env := setupExerciseTestEnv(t)
	coach := createInviteTestUser(t, env.db, "Carla Coach", "carla", "carla@example.com")
	other := createInviteTestUser(t, env.db, "Oscar Other", "oscar", "oscar@example.com")

	createGlobalExercise(t, env.db, "Back Squat", models.MuscleLegs)
	createGlobalExercise(t, env.db, "Bench Press", models.MuscleChest)

	_, err := env.service.CreateExercise(identityFor(coach), dto.CreateExerciseRequest{
		Name:        "Carla Special",
		MuscleGroup: "LEGS",
	})
	require.NoError(t, err)
	_, err = env.service.CreateExercise(identityFor(other), dto.CreateExerciseRequest{
		Name:        "Oscar Special",
		MuscleGroup: "LEGS",
	})
	require.NoError(t, err)

	// caller sees globals plus their own custom, never another user's
	results, err := env.service.SearchExercises(identityFor(coach), "", "")
	require.NoError(t, err)
	names := make([]string, len(results))
	for i, r := range results {
		names[i] = r.Name
	}
	require.ElementsMatch(t, []string{"Back Squat", "Bench Press", "Carla Special"}, names)

	// muscle group filter
	results, err = env.service.SearchExercises(identityFor(coach), "", "LEGS")
	require.NoError(t, err)
	require.Len(t, results, 2)

	// name query is case-insensitive and partial
	results, err = env.service.SearchExercises(identityFor(coach), "squat", "")
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, "Back Squat", results[0].Name)
}

func TestGetExercise_HidesForeignCustom(t *testing.T) {
	env := setupExerciseTestEnv(t)
	coach := createInviteTestUser(t, env.db, "Carla Coach", "carla", "carla@example.com")
	other := createInviteTestUser(t, env.db, "Oscar Other", "oscar", "oscar@example.com")

	global := createGlobalExercise(t, env.db, "Back Squat", models.MuscleLegs)
	custom, err := env.service.CreateExercise(identityFor(other), dto.CreateExerciseRequest{
		Name:        "Oscar Special",
		MuscleGroup: "LEGS",
	})
	require.NoError(t, err)

	// globals are visible to anyone
	resp, err := env.service.GetExercise(identityFor(coach), global.ID)
	require.NoError(t, err)
	require.Equal(t, "Back Squat", resp.Name)

	// another user's custom entry is indistinguishable from a missing one
	_, err = env.service.GetExercise(identityFor(coach), custom.ID)
	requireKind(t, err, apierrors.KindNotFound)

	// the creator still sees it
	resp, err = env.service.GetExercise(identityFor(other), custom.ID)
	require.NoError(t, err)
	require.Equal(t, "Oscar Special", resp.Name)

	_, err = env.service.GetExercise(identityFor(coach), "no-such-id")
	requireKind(t, err, apierrors.KindNotFound)
}
