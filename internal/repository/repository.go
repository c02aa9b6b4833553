package repository

import (
	"github.com/hydrafit/hydra-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id string) (*models.User, error)

	// FindByEmailOrUsername finds a user matching either the email or the
	// username. Registration passes both fields; login and invite lookups
	// pass the same identifier for both.
	FindByEmailOrUsername(email, username string) (*models.User, error)

	// Update persists changes to a user
	Update(user *models.User) error
}

// TeamRepository defines the interface for team and membership data access.
// It is the membership store consulted by the invite workflow.
type TeamRepository interface {
	// CreateWithOwner creates a team and its owner membership atomically
	CreateWithOwner(team *models.Team, owner *models.TeamMember) error

	// FindByID finds a team by ID
	FindByID(id string) (*models.Team, error)

	// FindMember finds the membership for a (team, user) pair
	FindMember(teamID, userID string) (*models.TeamMember, error)

	// AddMember inserts a membership row; the membership insert is the
	// single durable effect of accepting an invite
	AddMember(member *models.TeamMember) error

	// ListMembersOrdered lists team members ordered owner, coach, athlete
	ListMembersOrdered(teamID string) ([]models.TeamMember, error)

	// FindFirstMembershipByUser returns the user's earliest membership
	FindFirstMembershipByUser(userID string) (*models.TeamMember, error)
}

// ExerciseRepository defines the interface for exercise catalog access
type ExerciseRepository interface {
	// Create creates a new exercise
	Create(exercise *models.Exercise) error

	// FindByID finds an exercise by ID
	FindByID(id string) (*models.Exercise, error)

	// Search returns global exercises plus the user's custom ones,
	// optionally filtered by a name query or a muscle group
	Search(query string, muscleGroup models.MuscleGroup, userID string) ([]models.Exercise, error)
}

// WorkoutFilter holds listing options for team workouts
type WorkoutFilter struct {
	TeamID   string
	Page     int
	PageSize int
}

// WorkoutRepository defines the interface for workout data access
type WorkoutRepository interface {
	// Create persists a workout together with its nested parts
	Create(workout *models.Workout) error

	// FindByID finds a workout with its parts preloaded
	FindByID(id string) (*models.Workout, error)

	// ListByTeam lists a team's workouts, newest scheduled first
	ListByTeam(filter WorkoutFilter) ([]models.Workout, int64, error)

	// Delete removes a workout and its parts
	Delete(id string) error
}
