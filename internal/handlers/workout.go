package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/hydrafit/hydra-api/internal/apierrors"
	"github.com/hydrafit/hydra-api/internal/dto"
	"github.com/hydrafit/hydra-api/internal/middleware"
	"github.com/hydrafit/hydra-api/internal/services"
	"github.com/hydrafit/hydra-api/internal/utils"
)

type WorkoutHandler struct {
	workouts *services.WorkoutService
}

func NewWorkoutHandler(workouts *services.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workouts: workouts}
}

// CreateWorkout creates a workout for a team (coach/owner only)
func (h *WorkoutHandler) CreateWorkout(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		apierrors.Respond(c, apierrors.Unauthorized("not authenticated"))
		return
	}

	var req dto.CreateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.Respond(c, apierrors.BadRequest("invalid request body"))
		return
	}

	workout, err := h.workouts.CreateWorkout(identity, c.Param("id"), req)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}
	apierrors.Created(c, "workout created", workout)
}

// GetWorkout returns one workout with its parts
func (h *WorkoutHandler) GetWorkout(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		apierrors.Respond(c, apierrors.Unauthorized("not authenticated"))
		return
	}

	workout, err := h.workouts.GetWorkout(identity, c.Param("id"))
	if err != nil {
		apierrors.Respond(c, err)
		return
	}
	apierrors.OK(c, "workout found", workout)
}

// ListWorkouts pages a team's workouts
func (h *WorkoutHandler) ListWorkouts(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		apierrors.Respond(c, apierrors.Unauthorized("not authenticated"))
		return
	}

	page, pageSize := utils.ParsePagination(c)
	resp, err := h.workouts.ListWorkouts(identity, c.Param("id"), page, pageSize)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}
	apierrors.OK(c, "workouts listed", resp)
}

// DeleteWorkout removes a workout (coach/owner only)
func (h *WorkoutHandler) DeleteWorkout(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		apierrors.Respond(c, apierrors.Unauthorized("not authenticated"))
		return
	}

	if err := h.workouts.DeleteWorkout(identity, c.Param("id")); err != nil {
		apierrors.Respond(c, err)
		return
	}
	apierrors.OK(c, "workout deleted", nil)
}
