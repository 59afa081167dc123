package handlers

import (
	"net/http"

	"doctorsportal/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler encapsulates user endpoints.
type UserHandler struct {
	UserService user.UserService
}

func NewUserHandler(us user.UserService) *UserHandler {
	return &UserHandler{UserService: us}
}

// UpsertUserHandler handles PUT /user/:email. The body is merged onto the stored profile.
func (h *UserHandler) UpsertUserHandler(c *gin.Context) {
	fields := map[string]interface{}{}
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&fields); err != nil {
			bindError(c, err)
			return
		}
	}

	resp, err := h.UserService.Upsert(c.Request.Context(), c.Param("email"), fields)
	if err != nil {
		respondError(c, err)
		return
	}
	getLogger(c).Info("user signed in", zap.String("email", resp.Result.Email))
	c.JSON(http.StatusOK, resp)
}

// IsAdminHandler handles GET /admin/:email.
func (h *UserHandler) IsAdminHandler(c *gin.Context) {
	isAdmin, err := h.UserService.IsAdmin(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": isAdmin})
}

// GetAllUsersHandler handles GET /users.
func (h *UserHandler) GetAllUsersHandler(c *gin.Context) {
	users, err := h.UserService.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}
