package user

import (
	"context"

	userRepo "doctorsportal/database/repository/user"
	"doctorsportal/models"
	"doctorsportal/services/auth"

	"go.uber.org/zap"
)

type UserService interface {
	Upsert(ctx context.Context, email string, fields map[string]interface{}) (*AuthResponse, error)
	SetAdminRole(ctx context.Context, admin auth.AdminContext, targetEmail string) (models.UpdateResult, error)
	IsAdmin(ctx context.Context, email string) (bool, error)
	ListUsers(ctx context.Context) ([]models.User, error)
}

// TokenIssuer mints a credential for an email.
type TokenIssuer interface {
	Issue(email string) (string, error)
}

// RoleInvalidator drops cached roles after a role change.
type RoleInvalidator interface {
	Forget(ctx context.Context, email string)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo   userRepo.UserRepository
	Tokens TokenIssuer
	Roles  RoleInvalidator
	Logger *zap.Logger
}

// AuthResponse contains the stored user and a freshly issued token.
type AuthResponse struct {
	Result models.User `json:"result"`
	Token  string      `json:"token"`
}
