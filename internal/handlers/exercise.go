package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/hydrafit/hydra-api/internal/apierrors"
	"github.com/hydrafit/hydra-api/internal/dto"
	"github.com/hydrafit/hydra-api/internal/middleware"
	"github.com/hydrafit/hydra-api/internal/services"
)

type ExerciseHandler struct {
	exercises *services.ExerciseService
}

func NewExerciseHandler(exercises *services.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exercises: exercises}
}

// CreateExercise adds a custom exercise owned by the caller
func (h *ExerciseHandler) CreateExercise(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		apierrors.Respond(c, apierrors.Unauthorized("not authenticated"))
		return
	}

	var req dto.CreateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.Respond(c, apierrors.BadRequest("invalid request body"))
		return
	}

	resp, err := h.exercises.CreateExercise(identity, req)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}
	apierrors.Created(c, "exercise created", resp)
}

// GetExercise returns one catalog entry
func (h *ExerciseHandler) GetExercise(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		apierrors.Respond(c, apierrors.Unauthorized("not authenticated"))
		return
	}

	resp, err := h.exercises.GetExercise(identity, c.Param("id"))
	if err != nil {
		apierrors.Respond(c, err)
		return
	}
	apierrors.OK(c, "exercise found", resp)
}

// SearchExercises lists global exercises plus the caller's custom ones
func (h *ExerciseHandler) SearchExercises(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		apierrors.Respond(c, apierrors.Unauthorized("not authenticated"))
		return
	}

	resp, err := h.exercises.SearchExercises(identity, c.Query("q"), c.Query("muscle_group"))
	if err != nil {
		apierrors.Respond(c, err)
		return
	}
	apierrors.OK(c, "exercises listed", resp)
}
