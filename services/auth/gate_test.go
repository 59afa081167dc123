package auth

import (
	"context"
	"errors"
	"testing"

	memoryRepo "doctorsportal/database/repository/memory"
	"doctorsportal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingUsers struct{ *memoryRepo.UserRepo }

func (failingUsers) GetByEmail(context.Context, string) (*models.User, error) {
	return nil, errors.New("connection refused")
}

type mapCache struct {
	roles       map[string]string
	invalidated []string
}

func (c *mapCache) GetRole(_ context.Context, email string) (string, bool, error) {
	r, ok := c.roles[email]
	return r, ok, nil
}

func (c *mapCache) SetRole(_ context.Context, email, role string) error {
	c.roles[email] = role
	return nil
}

func (c *mapCache) Invalidate(_ context.Context, email string) error {
	delete(c.roles, email)
	c.invalidated = append(c.invalidated, email)
	return nil
}

func identityFor(t *testing.T, email string) Identity {
	t.Helper()
	svc := newTestTokens(t)
	token, err := svc.Issue(email)
	require.NoError(t, err)
	id, err := svc.Verify("Bearer " + token)
	require.NoError(t, err)
	return id
}

func TestRoleGate_RequireAdmin(t *testing.T) {
	ctx := context.Background()
	store := memoryRepo.NewStore()
	users := store.Users()
	_, err := users.Upsert(ctx, "admin@x.com", nil)
	require.NoError(t, err)
	_, err = users.SetRole(ctx, "admin@x.com", models.RoleAdmin)
	require.NoError(t, err)
	_, err = users.Upsert(ctx, "patient@x.com", map[string]interface{}{"name": "Pat"})
	require.NoError(t, err)

	gate := NewRoleGate(users, nil, nil)

	admin, err := gate.RequireAdmin(ctx, identityFor(t, "admin@x.com"))
	require.NoError(t, err)
	assert.True(t, admin.Valid())
	assert.Equal(t, "admin@x.com", admin.Email())

	_, err = gate.RequireAdmin(ctx, identityFor(t, "patient@x.com"))
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = gate.RequireAdmin(ctx, identityFor(t, "ghost@x.com"))
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = gate.RequireAdmin(ctx, Identity{})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestRoleGate_StorageErrorIsNotForbidden(t *testing.T) {
	gate := NewRoleGate(failingUsers{}, nil, nil)

	_, err := gate.RequireAdmin(context.Background(), identityFor(t, "a@x.com"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrForbidden)
}

func TestRoleGate_UsesCache(t *testing.T) {
	ctx := context.Background()
	store := memoryRepo.NewStore()
	users := store.Users()
	_, err := users.Upsert(ctx, "a@x.com", nil)
	require.NoError(t, err)

	cache := &mapCache{roles: map[string]string{}}
	gate := NewRoleGate(users, cache, nil)

	_, err = gate.RequireAdmin(ctx, identityFor(t, "a@x.com"))
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Contains(t, cache.roles, "a@x.com")

	// A stale cache entry wins until it is invalidated.
	_, err = users.SetRole(ctx, "a@x.com", models.RoleAdmin)
	require.NoError(t, err)
	_, err = gate.RequireAdmin(ctx, identityFor(t, "a@x.com"))
	assert.ErrorIs(t, err, ErrForbidden)

	gate.Forget(ctx, "a@x.com")
	assert.Equal(t, []string{"a@x.com"}, cache.invalidated)

	_, err = gate.RequireAdmin(ctx, identityFor(t, "a@x.com"))
	assert.NoError(t, err)
}

func TestAdminContext_ZeroValueIsInvalid(t *testing.T) {
	assert.False(t, AdminContext{}.Valid())
}
