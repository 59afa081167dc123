package auth

import (
	"context"
	"fmt"

	userRepo "doctorsportal/database/repository/user"
	"doctorsportal/models"

	"go.uber.org/zap"
)

// AdminContext proves that an identity was verified and then confirmed as admin.
// Its zero value is not usable; only RoleGate.RequireAdmin returns valid ones.
type AdminContext struct {
	identity Identity
	ok       bool
}

// Email returns the admin's email.
func (a AdminContext) Email() string { return a.identity.email }

// Valid reports whether the context came from RoleGate.RequireAdmin.
func (a AdminContext) Valid() bool { return a.ok }

// RoleCache caches the role of a user by email.
type RoleCache interface {
	GetRole(ctx context.Context, email string) (role string, found bool, err error)
	SetRole(ctx context.Context, email, role string) error
	Invalidate(ctx context.Context, email string) error
}

// RoleGate decides whether a verified identity holds the admin role.
type RoleGate struct {
	users  userRepo.UserRepository
	cache  RoleCache
	logger *zap.Logger
}

// NewRoleGate creates a RoleGate. cache may be nil.
func NewRoleGate(users userRepo.UserRepository, cache RoleCache, logger *zap.Logger) *RoleGate {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RoleGate{users: users, cache: cache, logger: logger}
}

// RequireAdmin returns an AdminContext when the identity's user has role "admin".
// An unknown user is treated as a non-admin.
func (g *RoleGate) RequireAdmin(ctx context.Context, id Identity) (AdminContext, error) {
	if id.email == "" {
		return AdminContext{}, ErrUnauthorized
	}
	role, err := g.role(ctx, id.email)
	if err != nil {
		return AdminContext{}, err
	}
	if role != models.RoleAdmin {
		return AdminContext{}, ErrForbidden
	}
	return AdminContext{identity: id, ok: true}, nil
}

func (g *RoleGate) role(ctx context.Context, email string) (string, error) {
	if g.cache != nil {
		role, found, err := g.cache.GetRole(ctx, email)
		if err != nil {
			g.logger.Warn("role cache read failed, falling back to storage", zap.String("email", email), zap.Error(err))
		} else if found {
			return role, nil
		}
	}

	user, err := g.users.GetByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("role lookup failed: %w", err)
	}
	role := ""
	if user != nil {
		role = user.Role
	}

	if g.cache != nil && user != nil {
		if err := g.cache.SetRole(ctx, email, role); err != nil {
			g.logger.Warn("role cache write failed", zap.String("email", email), zap.Error(err))
		}
	}
	return role, nil
}

// Forget drops any cached role for email.
func (g *RoleGate) Forget(ctx context.Context, email string) {
	if g.cache == nil {
		return
	}
	if err := g.cache.Invalidate(ctx, email); err != nil {
		g.logger.Warn("role cache invalidation failed", zap.String("email", email), zap.Error(err))
	}
}
