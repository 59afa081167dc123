package doctor

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

func adminContext(t *testing.T, store *memoryRepo.Store) auth.AdminContext {
	t.Helper()
	ctx := context.Background()
	_, err := store.Users().Upsert(ctx, "root@x.com", nil)
	require.NoError(t, err)
	_, err = store.Users().SetRole(ctx, "root@x.com", models.RoleAdmin)
	require.NoError(t, err)

	tokens, err := auth.NewTokenService("secret", time.Hour)
	require.NoError(t, err)
	raw, err := tokens.Issue("root@x.com")
	require.NoError(t, err)
	id, err := tokens.Verify("Bearer " + raw)
	require.NoError(t, err)
	admin, err := auth.NewRoleGate(store.Users(), nil, nil).RequireAdmin(ctx, id)
	require.NoError(t, err)
	return admin
}

func TestDoctorLifecycle(t *testing.T) {
	ctx := context.Background()
	store := memoryRepo.NewStore()
	admin := adminContext(t, store)
	svc := &DefaultDoctorService{Repo: store.Doctors()}

	d, err := svc.Add(ctx, admin, models.Doctor{Name: " Dr. Who ", Email: "who@clinic.com", Specialty: "Oral Surgery"})
	require.NoError(t, err)
	assert.NotEmpty(t, d.ID)
	assert.Equal(t, "Dr. Who", d.Name)

	list, err := svc.List(ctx, admin)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	res, err := svc.Remove(ctx, admin, "who@clinic.com")
	require.NoError(t, err)
	assert.EqualValues(t, 1, res.DeletedCount)

	res, err = svc.Remove(ctx, admin, "who@clinic.com")
	require.NoError(t, err)
	assert.Zero(t, res.DeletedCount)
}

func TestDoctor_ValidationAndCapability(t *testing.T) {
	ctx := context.Background()
	store := memoryRepo.NewStore()
	svc := &DefaultDoctorService{Repo: store.Doctors()}

	_, err := svc.Add(ctx, auth.AdminContext{}, models.Doctor{Name: "x", Email: "x@y.z"})
	assert.ErrorIs(t, err, ErrNotAdminContext)
	_, err = svc.List(ctx, auth.AdminContext{})
	assert.ErrorIs(t, err, ErrNotAdminContext)

	_, err = svc.Add(ctx, adminContext(t, store), models.Doctor{Name: "", Email: "x@y.z"})
	var verr *models.ValidationError
	assert.True(t, errors.As(err, &verr))
}
