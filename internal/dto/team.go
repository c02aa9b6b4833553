package dto

import (
	"time"

	"github.com/hydrafit/hydra-api/internal/models"
)

type CreateTeamRequest struct {
	Name        string `json:"name" binding:"required,max=50"`
	Description string `json:"description"`
	City        string `json:"city" binding:"required"`
	UF          string `json:"uf" binding:"required,len=2"`
	Color       string `json:"color" binding:"required"`
	ImageURL    string `json:"image_url"`
}

type TeamResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	City        string    `json:"city"`
	UF          string    `json:"uf"`
	Color       string    `json:"color"`
	ImageURL    string    `json:"image_url"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

type TeamMemberResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	RoleLabel string    `json:"role_label"`
	JoinedAt  time.Time `json:"joined_at"`
}

// CreateInviteRequest is the body of the invite-creation endpoint. The
// identifier may be an email or a username; the coach id must match the
// authenticated caller.
type CreateInviteRequest struct {
	InviteeIdentifier string `json:"invitee_identifier"`
	CoachID           string `json:"coach_id"`
	Role              string `json:"role"`
}

// InviteTokenResponse wraps a freshly minted invite token in its shareable URL.
type InviteTokenResponse struct {
	Token     string `json:"token"`
	InviteURL string `json:"invite_url"`
}

type AcceptInviteRequest struct {
	Token string `json:"token"`
}

type AcceptInviteResponse struct {
	TeamID   string `json:"team_id"`
	TeamName string `json:"team_name"`
	Role     string `json:"role"`
}

func FromTeam(team *models.Team) TeamResponse {
	return TeamResponse{
		ID:          team.ID,
		Name:        team.Name,
		Description: team.Description,
		City:        team.City,
		UF:          team.UF,
		Color:       team.Color,
		ImageURL:    team.ImageURL,
		CreatedBy:   team.CreatedByID,
		CreatedAt:   team.CreatedAt,
	}
}

func FromTeamMember(member *models.TeamMember) TeamMemberResponse {
	return TeamMemberResponse{
		ID:        member.ID,
		UserID:    member.UserID,
		Name:      member.User.Name,
		Username:  member.User.Username,
		Email:     member.User.Email,
		Role:      string(member.Role),
		RoleLabel: member.Role.Label(),
		JoinedAt:  member.JoinedAt,
	}
}

func FromTeamMembers(members []models.TeamMember) []TeamMemberResponse {
	out := make([]TeamMemberResponse, len(members))
	for i := range members {
		out[i] = FromTeamMember(&members[i])
	}
	return out
}
