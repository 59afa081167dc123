package middleware

import (
	"errors"
	"net/http"

	"doctorsportal/services/auth"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const identityKey = "identity"

// Verifier turns an Authorization header into a verified identity.
type Verifier interface {
	Verify(authorizationHeader string) (auth.Identity, error)
}

// JWTAuthMiddleware rejects requests without a valid bearer token and stores the identity on the context.
func JWTAuthMiddleware(tokens Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := tokens.Verify(c.GetHeader("Authorization"))
		if err != nil {
			abortAuth(c, err)
			return
		}
		c.Set(identityKey, id)
		c.Next()
	}
}

// IdentityFrom returns the identity stored by JWTAuthMiddleware.
func IdentityFrom(c *gin.Context) (auth.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return auth.Identity{}, false
	}
	id, ok := v.(auth.Identity)
	return id, ok
}

func abortAuth(c *gin.Context, err error) {
	switch {
	case errors.Is(err, auth.ErrUnauthorized):
		utils.JSONError(c, http.StatusUnauthorized, auth.ErrUnauthorized.Error(), "")
	case errors.Is(err, auth.ErrForbidden):
		utils.JSONError(c, http.StatusForbidden, auth.ErrForbidden.Error(), "")
	default:
		utils.GetLogger().Error("auth check failed", zap.String("path", c.FullPath()), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
	}
}
