package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/hydrafit/hydra-api/internal/apierrors"
	"github.com/hydrafit/hydra-api/internal/dto"
	"github.com/hydrafit/hydra-api/internal/middleware"
	"github.com/hydrafit/hydra-api/internal/services"
)

type TeamHandler struct {
	teams   *services.TeamService
	invites *services.InviteService
}

func NewTeamHandler(teams *services.TeamService, invites *services.InviteService) *TeamHandler {
	return &TeamHandler{teams: teams, invites: invites}
}

// CreateTeam creates a team owned by the caller
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		apierrors.Respond(c, apierrors.Unauthorized("not authenticated"))
		return
	}

	var req dto.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.Respond(c, apierrors.BadRequest("invalid request body"))
		return
	}

	resp, err := h.teams.CreateTeam(identity, req)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}
	apierrors.Created(c, "team created", resp)
}

// GetTeam returns team details
func (h *TeamHandler) GetTeam(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		apierrors.Respond(c, apierrors.Unauthorized("not authenticated"))
		return
	}

	resp, err := h.teams.GetTeam(identity, c.Param("id"))
	if err != nil {
		apierrors.Respond(c, err)
		return
	}
	apierrors.OK(c, "team found", resp)
}

// ListMembers lists a team's members, owners first
func (h *TeamHandler) ListMembers(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		apierrors.Respond(c, apierrors.Unauthorized("not authenticated"))
		return
	}

	resp, err := h.teams.ListMembers(identity, c.Param("id"))
	if err != nil {
		apierrors.Respond(c, err)
		return
	}
	apierrors.OK(c, "members listed", resp)
}

// GetMainTeam returns the caller's earliest-joined team
func (h *TeamHandler) GetMainTeam(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		apierrors.Respond(c, apierrors.Unauthorized("not authenticated"))
		return
	}

	resp, err := h.teams.GetMainTeam(identity)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}
	apierrors.OK(c, "main team found", resp)
}

// CreateInvite mints an invite token for a team. The raw Authorization
// header goes to the service: identity is resolved there so that field and
// role validation run first.
func (h *TeamHandler) CreateInvite(c *gin.Context) {
	var req dto.CreateInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.Respond(c, apierrors.BadRequest("invalid request body"))
		return
	}

	resp, err := h.invites.CreateInviteToken(c.GetHeader("Authorization"), c.Param("id"), req)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}
	apierrors.OK(c, "invite created", resp)
}

// AcceptInvite redeems an invite token. The token comes from the invite URL
// query string, or from the request body as a fallback.
func (h *TeamHandler) AcceptInvite(c *gin.Context) {
	inviteToken := c.Query("token")
	if inviteToken == "" {
		var req dto.AcceptInviteRequest
		if err := c.ShouldBindJSON(&req); err == nil {
			inviteToken = req.Token
		}
	}

	resp, message, err := h.invites.AcceptInviteToken(c.GetHeader("Authorization"), inviteToken)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}
	apierrors.OK(c, message, resp)
}

// SendInvite emails an invite link to the invitee
func (h *TeamHandler) SendInvite(c *gin.Context) {
	inviteToken := c.Query("token")
	if inviteToken == "" {
		var req dto.AcceptInviteRequest
		if err := c.ShouldBindJSON(&req); err == nil {
			inviteToken = req.Token
		}
	}

	if err := h.invites.SendInviteByEmail(c.GetHeader("Authorization"), inviteToken); err != nil {
		apierrors.Respond(c, err)
		return
	}
	apierrors.OK(c, "invite sent", nil)
}
