package middleware

import (
	"context"

	"doctorsportal/services/auth"

	"github.com/gin-gonic/gin"
)

const adminKey = "admin"

// AdminGate confirms that a verified identity is an admin.
type AdminGate interface {
	RequireAdmin(ctx context.Context, id auth.Identity) (auth.AdminContext, error)
}

// AdminMiddleware must run after JWTAuthMiddleware. It aborts with 403 for non-admins.
func AdminMiddleware(gate AdminGate) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := IdentityFrom(c)
		if !ok {
			abortAuth(c, auth.ErrUnauthorized)
			return
		}
		admin, err := gate.RequireAdmin(c.Request.Context(), id)
		if err != nil {
			abortAuth(c, err)
			return
		}
		c.Set(adminKey, admin)
		c.Next()
	}
}

// AdminFrom returns the admin context stored by AdminMiddleware.
func AdminFrom(c *gin.Context) (auth.AdminContext, bool) {
	v, ok := c.Get(adminKey)
	if !ok {
		return auth.AdminContext{}, false
	}
	admin, ok := v.(auth.AdminContext)
	return admin, ok && admin.Valid()
}
