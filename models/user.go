// models/user.go
package models

import (
	"encoding/json"
	"strings"
	"time"
)

const RoleAdmin = "admin"

// User represents a portal user keyed by email. Profile holds any extra fields sent by the client.
type User struct {
	ID        string                 `bson:"id" json:"id"`
	Email     string                 `bson:"email" json:"email"`
	Name      string                 `bson:"name,omitempty" json:"name,omitempty"`
	Role      string                 `bson:"role,omitempty" json:"role,omitempty"`
	CreatedAt time.Time              `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time              `bson:"updatedAt" json:"updatedAt"`
	Profile   map[string]interface{} `bson:",inline" json:"-"`
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// ReservedUserFields may not be written through a profile update.
var ReservedUserFields = []string{"_id", "id", "email", "role", "createdAt", "updatedAt"}

// IsReservedUserField reports whether key names a reserved field in any letter case.
// The bson decoder retries unknown keys in lower case, so "Role" would land in User.Role.
func IsReservedUserField(key string) bool {
	for _, f := range ReservedUserFields {
		if strings.EqualFold(key, f) {
			return true
		}
	}
	return false
}

// Apply merges profile fields onto the user, overwriting existing values.
func (u *User) Apply(fields map[string]interface{}) {
	for k, v := range fields {
		if k == "name" {
			if s, ok := v.(string); ok {
				u.Name = s
				continue
			}
		}
		if u.Profile == nil {
			u.Profile = make(map[string]interface{})
		}
		u.Profile[k] = v
	}
}

// MarshalJSON flattens profile fields next to the fixed ones.
func (u User) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(u.Profile)+6)
	for k, v := range u.Profile {
		out[k] = v
	}
	out["id"] = u.ID
	out["email"] = u.Email
	if u.Name != "" {
		out["name"] = u.Name
	}
	if u.Role != "" {
		out["role"] = u.Role
	}
	out["createdAt"] = u.CreatedAt
	out["updatedAt"] = u.UpdatedAt
	return json.Marshal(out)
}
