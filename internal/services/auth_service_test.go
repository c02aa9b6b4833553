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

type authServiceTestEnv struct {
	db      *gorm.DB
	tokens  *token.Service
	service *AuthService
}

func setupAuthServiceTestEnv(t *testing.T) authServiceTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.User{})
	require.NoError(t, err)

	tokens, err := token.NewService("auth-test-secret", "http://localhost:8080")
	require.NoError(t, err)

	service := NewAuthService(repository.NewUserRepository(db), tokens)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return authServiceTestEnv{db: db, tokens: tokens, service: service}
}

func createAuthTestUser(t *testing.T, db *gorm.DB, username string, role models.GlobalRole) *models.User {
	t.Helper()
	user := &models.User{
		Name:         username,
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "hashed",
		Role:         role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestUpdateGlobalRole_AdminPromotesAthlete(t *testing.T) {
	env := setupAuthServiceTestEnv(t)

	admin := createAuthTestUser(t, env.db, "ada", models.GlobalRoleAdmin)
	athlete := createAuthTestUser(t, env.db, "alan", models.GlobalRoleAthlete)

	resp, err := env.service.UpdateGlobalRole(identityFor(admin), athlete.ID,
		dto.UpdateGlobalRoleRequest{Role: "COACH"})
	require.NoError(t, err)
	require.Equal(t, "COACH", resp.Role)

	var updated models.User
	require.NoError(t, env.db.First(&updated, "id = ?", athlete.ID).Error)
	require.Equal(t, models.GlobalRoleCoach, updated.Role)
}

func TestUpdateGlobalRole_NonAdminForbidden(t *testing.T) {
	env := setupAuthServiceTestEnv(t)

	coach := createAuthTestUser(t, env.db, "carla", models.GlobalRoleCoach)
	athlete := createAuthTestUser(t, env.db, "alan", models.GlobalRoleAthlete)

	_, err := env.service.UpdateGlobalRole(identityFor(coach), athlete.ID,
		dto.UpdateGlobalRoleRequest{Role: "COACH"})
	requireKind(t, err, apierrors.KindForbidden)

	var unchanged models.User
	require.NoError(t, env.db.First(&unchanged, "id = ?", athlete.ID).Error)
	require.Equal(t, models.GlobalRoleAthlete, unchanged.Role)
}

func TestUpdateGlobalRole_CannotModifyAnotherAdmin(t *testing.T) {
	env := setupAuthServiceTestEnv(t)

	admin := createAuthTestUser(t, env.db, "ada", models.GlobalRoleAdmin)
	other := createAuthTestUser(t, env.db, "bob", models.GlobalRoleAdmin)

	_, err := env.service.UpdateGlobalRole(identityFor(admin), other.ID,
		dto.UpdateGlobalRoleRequest{Role: "ATHLETE"})
	requireKind(t, err, apierrors.KindForbidden)

	var unchanged models.User
	require.NoError(t, env.db.First(&unchanged, "id = ?", other.ID).Error)
	require.Equal(t, models.GlobalRoleAdmin, unchanged.Role)
}

func TestUpdateGlobalRole_AdminMayDemoteSelf(t *testing.T) {
	env := setupAuthServiceTestEnv(t)

	admin := createAuthTestUser(t, env.db, "ada", models.GlobalRoleAdmin)

	resp, err := env.service.UpdateGlobalRole(identityFor(admin), admin.ID,
		dto.UpdateGlobalRoleRequest{Role: "coach"})
	require.NoError(t, err)
	require.Equal(t, "COACH", resp.Role)
}

func TestUpdateGlobalRole_InvalidRole(t *testing.T) {
	env := setupAuthServiceTestEnv(t)

	admin := createAuthTestUser(t, env.db, "ada", models.GlobalRoleAdmin)
	athlete := createAuthTestUser(t, env.db, "alan", models.GlobalRoleAthlete)

	_, err := env.service.UpdateGlobalRole(identityFor(admin), athlete.ID,
		dto.UpdateGlobalRoleRequest{Role: "SUPERUSER"})
	requireKind(t, err, apierrors.KindBadRequest)
}

func TestUpdateGlobalRole_UserNotFound(t *testing.T) {
	env := setupAuthServiceTestEnv(t)

	admin := createAuthTestUser(t, env.db, "ada", models.GlobalRoleAdmin)

	_, err := env.service.UpdateGlobalRole(identityFor(admin), "no-such-user",
		dto.UpdateGlobalRoleRequest{Role: "COACH"})
	requireKind(t, err, apierrors.KindNotFound)
}
