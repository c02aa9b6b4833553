package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/hydrafit/hydra-api/internal/apierrors"
	"github.com/hydrafit/hydra-api/internal/constants"
	"github.com/hydrafit/hydra-api/internal/dto"
	"github.com/hydrafit/hydra-api/internal/models"
	"github.com/hydrafit/hydra-api/internal/repository"
	"github.com/hydrafit/hydra-api/internal/token"
)

// AuthService handles registration, login and identity-token issuance.
type AuthService struct {
	users  repository.UserRepository
	tokens *token.Service
}

func NewAuthService(users repository.UserRepository, tokens *token.Service) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Register creates a user and returns a signed identity token for it.
func (s *AuthService) Register(req dto.RegisterRequest) (*dto.AuthResponse, error) {
	if len(req.Password) < constants.MinPasswordLength {
		return nil, apierrors.BadRequest("password must be at least 8 characters")
	}

	if _, err := s.users.FindByEmailOrUsername(req.Email, req.Username); err == nil {
		return nil, apierrors.Conflict("email or username already in use")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: string(hash),
		Role:         models.GlobalRoleAthlete,
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}

	return s.respondWithToken(user)
}

// Login authenticates by email or username. The same message is returned for
// an unknown identifier and a wrong password.
func (s *AuthService) Login(req dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.users.FindByEmailOrUsername(req.Identifier, req.Identifier)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierrors.Unauthorized("invalid credentials")
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, apierrors.Unauthorized("invalid credentials")
	}

	return s.respondWithToken(user)
}

// GetUser returns the profile for an authenticated caller.
func (s *AuthService) GetUser(userID string) (*dto.UserResponse, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierrors.NotFound("user not found")
		}
		return nil, err
	}
	resp := dto.FromUser(user)
	return &resp, nil
}

// UpdateGlobalRole changes a user's application-wide role. Admin only.
func (s *AuthService) UpdateGlobalRole(caller *token.Identity, userID string, req dto.UpdateGlobalRoleRequest) (*dto.UserResponse, error) {
	if caller.Role != string(models.GlobalRoleAdmin) {
		return nil, apierrors.Forbidden("admin role required")
	}

	role := models.ParseGlobalRole(req.Role)
	if role == "" {
		return nil, apierrors.BadRequest("invalid role")
	}

	user, err := s.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierrors.NotFound("user not found")
		}
		return nil, err
	}

	if user.Role == models.GlobalRoleAdmin && user.ID != caller.UserID {
		return nil, apierrors.Forbidden("cannot modify another admin")
	}

	user.Role = role
	if err := s.users.Update(user); err != nil {
		return nil, err
	}

	resp := dto.FromUser(user)
	return &resp, nil
}

func (s *AuthService) respondWithToken(user *models.User) (*dto.AuthResponse, error) {
	tok, err := s.tokens.IssueIdentityToken(user.ID, user.Username, user.Email, user.Name, string(user.Role))
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Token: tok, User: dto.FromUser(user)}, nil
}
