package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestUserBSON_ProfileRoundTrip(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Millisecond)
	raw, err := bson.Marshal(bson.M{
		"id": "u1", "email": "ann@x.com", "name": "Ann",
		"createdAt": now, "updatedAt": now, "city": "Dhaka",
	})
	require.NoError(t, err)

	var u User
	require.NoError(t, bson.Unmarshal(raw, &u))
	assert.Equal(t, "u1", u.ID)
	assert.Equal(t, "Ann", u.Name)
	assert.Equal(t, "", u.Role)
	assert.True(t, now.Equal(u.CreatedAt))
	assert.Equal(t, "Dhaka", u.Profile["city"])
}

// The decoder matches unknown keys case-insensitively against lower-case field names,
// which is why profile updates must drop every case variant of a reserved field.
func TestUserBSON_CaseVariantKeyReachesField(t *testing.T) {
	raw, err := bson.Marshal(bson.M{"email": "eve@x.com", "Role": "admin"})
	require.NoError(t, err)

	var u User
	require.NoError(t, bson.Unmarshal(raw, &u))
	assert.True(t, u.IsAdmin())
	assert.True(t, IsReservedUserField("Role"))
}

func TestIsReservedUserField(t *testing.T) {
	for _, k := range []string{"role", "ROLE", "Role", "createdat", "CreatedAt", "_ID", "Email", "id"} {
		assert.True(t, IsReservedUserField(k), k)
	}
	for _, k := range []string{"name", "phone", "roles", "city"} {
		assert.False(t, IsReservedUserField(k), k)
	}
}
