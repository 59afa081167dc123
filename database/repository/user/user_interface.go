package userRepo

import (
	"context"

	"doctorsportal/models"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByEmail retrieves a user by email. It returns nil, nil when no user matches.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// GetAll retrieves all users.
	GetAll(ctx context.Context) ([]models.User, error)
	// Upsert merges fields onto the user with the given email, creating it if absent.
	Upsert(ctx context.Context, email string, fields map[string]interface{}) (*models.User, error)
	// SetRole sets the role of an existing user. A missing user is not an error.
	SetRole(ctx context.Context, email, role string) (models.UpdateResult, error)
}
