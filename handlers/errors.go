package handlers

import (
	"errors"
	"net/http"

	"doctorsportal/middleware"
	"doctorsportal/models"
	"doctorsportal/services/auth"
	"doctorsportal/services/booking"
	"doctorsportal/services/doctor"
	"doctorsportal/services/user"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps a service error to its HTTP status. Unknown errors are logged and
// reported with a generic message.
func respondError(c *gin.Context, err error) {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		utils.JSONError(c, http.StatusBadRequest, "invalid request", verr.Error())
	case errors.Is(err, auth.ErrUnauthorized):
		utils.JSONError(c, http.StatusUnauthorized, auth.ErrUnauthorized.Error(), "")
	case errors.Is(err, auth.ErrForbidden),
		errors.Is(err, user.ErrNotAdminContext),
		errors.Is(err, doctor.ErrNotAdminContext):
		utils.JSONError(c, http.StatusForbidden, auth.ErrForbidden.Error(), "")
	case errors.Is(err, booking.ErrBookingNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error(), "")
	default:
		getLogger(c).Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
	}
}

func bindError(c *gin.Context, err error) {
	utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
}

// identity returns the caller set by the auth middleware; a route wired without it is a 401.
func identity(c *gin.Context) (auth.Identity, bool) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		respondError(c, auth.ErrUnauthorized)
	}
	return id, ok
}

func adminContext(c *gin.Context) (auth.AdminContext, bool) {
	admin, ok := middleware.AdminFrom(c)
	if !ok {
		respondError(c, auth.ErrForbidden)
	}
	return admin, ok
}
