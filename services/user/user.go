package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"doctorsportal/models"
	"doctorsportal/services/auth"

	"go.uber.org/zap"
)

// ErrNotAdminContext is returned when an admin operation is called without a context from the role gate.
var ErrNotAdminContext = errors.New("admin context required")

func (s *DefaultUserService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

// Upsert creates or updates the user keyed by email and issues a fresh token.
// Reserved fields such as role are dropped, so this path can never grant admin.
func (s *DefaultUserService) Upsert(ctx context.Context, email string, fields map[string]interface{}) (*AuthResponse, error) {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, models.NewValidationError("email", "is not a valid address")
	}
	clean, err := sanitizeProfile(fields)
	if err != nil {
		return nil, err
	}

	stored, err := s.Repo.Upsert(ctx, email, clean)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}

	token, err := s.Tokens.Issue(email)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	s.logger().Debug("user upserted", zap.String("email", email), zap.Int("fields", len(clean)))
	return &AuthResponse{Result: *stored, Token: token}, nil
}

func sanitizeProfile(fields map[string]interface{}) (map[string]interface{}, error) {
	clean := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		if models.IsReservedUserField(k) {
			continue
		}
		// Only the exact key may set the name; "Name" or "NAME" would also decode into it.
		if k != "name" && strings.EqualFold(k, "name") {
			continue
		}
		clean[k] = v
	}
	for k := range clean {
		if k == "" || strings.HasPrefix(k, "$") || strings.Contains(k, ".") {
			return nil, models.NewValidationError(k, "is not a valid field name")
		}
	}
	if name, ok := clean["name"]; ok {
		if _, isString := name.(string); !isString {
			return nil, models.NewValidationError("name", "must be a string")
		}
	}
	return clean, nil
}

// SetAdminRole grants the admin role to an existing user. A missing target matches nothing
// and is reported through the result counters rather than as an error.
func (s *DefaultUserService) SetAdminRole(ctx context.Context, admin auth.AdminContext, targetEmail string) (models.UpdateResult, error) {
	if !admin.Valid() {
		return models.UpdateResult{}, ErrNotAdminContext
	}
	res, err := s.Repo.SetRole(ctx, targetEmail, models.RoleAdmin)
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("failed to set admin role: %w", err)
	}
	if s.Roles != nil {
		s.Roles.Forget(ctx, targetEmail)
	}
	s.logger().Info("admin role granted",
		zap.String("by", admin.Email()), zap.String("target", targetEmail), zap.Int64("matched", res.MatchedCount))
	return res, nil
}

// IsAdmin reports whether email belongs to an admin. Unknown users are not admins.
func (s *DefaultUserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return false, fmt.Errorf("failed to fetch user: %w", err)
	}
	return u != nil && u.IsAdmin(), nil
}

// ListUsers returns every user.
func (s *DefaultUserService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	return users, nil
}
