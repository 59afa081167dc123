package user

import (
	"context"
	"errors"
	"testing"
	"time"

	memoryRepo "doctorsportal/database/repository/memory"
	"doctorsportal/models"
	"doctorsportal/services/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	store  *memoryRepo.Store
	tokens *auth.TokenService
	gate   *auth.RoleGate
	svc    *DefaultUserService
}

type forgetter struct{ forgotten []string }

func (f *forgetter) Forget(_ context.Context, email string) { f.forgotten = append(f.forgotten, email) }

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memoryRepo.NewStore()
	tokens, err := auth.NewTokenService("secret", 24*time.Hour)
	require.NoError(t, err)
	return &fixture{
		store:  store,
		tokens: tokens,
		gate:   auth.NewRoleGate(store.Users(), nil, nil),
		svc:    &DefaultUserService{Repo: store.Users(), Tokens: tokens},
	}
}

func (f *fixture) adminContext(t *testing.T, email string) auth.AdminContext {
	t.Helper()
	ctx := context.Background()
	_, err := f.store.Users().Upsert(ctx, email, nil)
	require.NoError(t, err)
	_, err = f.store.Users().SetRole(ctx, email, models.RoleAdmin)
	require.NoError(t, err)

	raw, err := f.tokens.Issue(email)
	require.NoError(t, err)
	id, err := f.tokens.Verify("Bearer " + raw)
	require.NoError(t, err)
	admin, err := f.gate.RequireAdmin(ctx, id)
	require.NoError(t, err)
	return admin
}

func TestUpsert_IsIdempotentPerEmail(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.svc.Upsert(ctx, "a@x.com", map[string]interface{}{"x": 1})
	require.NoError(t, err)
	second, err := f.svc.Upsert(ctx, "a@x.com", map[string]interface{}{"x": 2, "name": "Alice"})
	require.NoError(t, err)

	users, err := f.svc.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, 2, users[0].Profile["x"])
	assert.Equal(t, "Alice", users[0].Name)
	assert.Equal(t, first.Result.ID, second.Result.ID)
}

func TestUpsert_IssuesVerifiableToken(t *testing.T) {
	f := newFixture(t)

	res, err := f.svc.Upsert(context.Background(), "a@x.com", nil)
	require.NoError(t, err)

	id, err := f.tokens.Verify("Bearer " + res.Token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", id.Email())
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), id.ExpiresAt(), time.Minute)
}

func TestUpsert_CannotGrantRole(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.svc.Upsert(ctx, "a@x.com", map[string]interface{}{"role": "admin", "email": "evil@x.com"})
	require.NoError(t, err)
	assert.Equal(t, "", res.Result.Role)
	assert.Equal(t, "a@x.com", res.Result.Email)

	isAdmin, err := f.svc.IsAdmin(ctx, "a@x.com")
	require.NoError(t, err)
	assert.False(t, isAdmin)
}

func TestUpsert_IgnoresReservedFieldsInAnyCase(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.svc.Upsert(ctx, "eve@x.com", map[string]interface{}{
		"Role":      "admin",
		"ROLE":      "admin",
		"CreatedAt": "x",
		"EMAIL":     "other@x.com",
		"Id":        "forged",
		"NAME":      42,
		"city":      "Dhaka",
	})
	require.NoError(t, err)
	assert.Equal(t, "", res.Result.Role)
	assert.Equal(t, "eve@x.com", res.Result.Email)
	assert.Equal(t, map[string]interface{}{"city": "Dhaka"}, res.Result.Profile)

	isAdmin, err := f.svc.IsAdmin(ctx, "eve@x.com")
	require.NoError(t, err)
	assert.False(t, isAdmin)
}

func TestSanitizeProfile_DropsCaseVariants(t *testing.T) {
	clean, err := sanitizeProfile(map[string]interface{}{
		"name": "Eve", "Role": "admin", "ROLE": "admin", "CreatedAt": "x", "updatedat": "y", "_ID": 1, "Name": "Mallory",
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"name": "Eve"}, clean)
}

func TestUpsert_ValidatesInput(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	var verr *models.ValidationError

	_, err := f.svc.Upsert(ctx, "not-an-email", nil)
	assert.True(t, errors.As(err, &verr))

	_, err = f.svc.Upsert(ctx, "a@x.com", map[string]interface{}{"$where": "1"})
	assert.True(t, errors.As(err, &verr))

	_, err = f.svc.Upsert(ctx, "a@x.com", map[string]interface{}{"name": 42})
	assert.True(t, errors.As(err, &verr))
}

func TestSetAdminRole(t *testing.T) {
	f := newFixture(t)
	roles := &forgetter{}
	f.svc.Roles = roles
	ctx := context.Background()
	admin := f.adminContext(t, "root@x.com")

	_, err := f.svc.Upsert(ctx, "b@x.com", nil)
	require.NoError(t, err)

	res, err := f.svc.SetAdminRole(ctx, admin, "b@x.com")
	require.NoError(t, err)
	assert.Equal(t, models.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, res)
	assert.Equal(t, []string{"b@x.com"}, roles.forgotten)

	isAdmin, err := f.svc.IsAdmin(ctx, "b@x.com")
	require.NoError(t, err)
	assert.True(t, isAdmin)
}

func TestSetAdminRole_MissingTargetIsNoop(t *testing.T) {
	f := newFixture(t)
	admin := f.adminContext(t, "root@x.com")

	res, err := f.svc.SetAdminRole(context.Background(), admin, "ghost@x.com")
	require.NoError(t, err)
	assert.Zero(t, res.MatchedCount)

	u, err := f.store.Users().GetByEmail(context.Background(), "ghost@x.com")
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestSetAdminRole_RequiresAdminContext(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.SetAdminRole(context.Background(), auth.AdminContext{}, "b@x.com")
	assert.ErrorIs(t, err, ErrNotAdminContext)
}
