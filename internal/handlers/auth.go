package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/hydrafit/hydra-api/internal/apierrors"
	"github.com/hydrafit/hydra-api/internal/dto"
	"github.com/hydrafit/hydra-api/internal/middleware"
	"github.com/hydrafit/hydra-api/internal/services"
)

type AuthHandler struct {
	auth *services.AuthService
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register creates a new user account
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.Respond(c, apierrors.BadRequest("invalid request body"))
		return
	}

	resp, err := h.auth.Register(req)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}
	apierrors.Created(c, "user registered", resp)
}

// Login authenticates by email or username
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.Respond(c, apierrors.BadRequest("invalid request body"))
		return
	}

	resp, err := h.auth.Login(req)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}
	apierrors.OK(c, "login successful", resp)
}

// GetCurrentUser returns the authenticated caller's profile
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		apierrors.Respond(c, apierrors.Unauthorized("not authenticated"))
		return
	}

	resp, err := h.auth.GetUser(identity.UserID)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}
	apierrors.OK(c, "user found", resp)
}

// UpdateGlobalRole changes a user's application-wide role (admin only)
func (h *AuthHandler) UpdateGlobalRole(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		apierrors.Respond(c, apierrors.Unauthorized("not authenticated"))
		return
	}

	var req dto.UpdateGlobalRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.Respond(c, apierrors.BadRequest("invalid request body"))
		return
	}

	resp, err := h.auth.UpdateGlobalRole(identity, c.Param("id"), req)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}
	apierrors.OK(c, "role updated", resp)
}
