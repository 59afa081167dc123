package handlers

import (
	"net/http"

	"doctorsportal/models"
	"doctorsportal/services/doctor"
	"doctorsportal/services/user"

	"github.com/gin-gonic/gin"
)

// AdminHandler encapsulates admin-only operations. Every route using it runs behind
// middleware.AdminMiddleware.
type AdminHandler struct {
	UserService   user.UserService
	DoctorService doctor.DoctorService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(us user.UserService, ds doctor.DoctorService) *AdminHandler {
	return &AdminHandler{UserService: us, DoctorService: ds}
}

// MakeAdminHandler handles PUT /user/admin/:email.
func (ah *AdminHandler) MakeAdminHandler(c *gin.Context) {
	admin, ok := adminContext(c)
	if !ok {
		return
	}
	res, err := ah.UserService.SetAdminRole(c.Request.Context(), admin, c.Param("email"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// AddDoctorHandler handles POST /add-doctor.
func (ah *AdminHandler) AddDoctorHandler(c *gin.Context) {
	admin, ok := adminContext(c)
	if !ok {
		return
	}
	var d models.Doctor
	if err := c.ShouldBindJSON(&d); err != nil {
		bindError(c, err)
		return
	}
	created, err := ah.DoctorService.Add(c.Request.Context(), admin, d)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, created)
}

// DeleteDoctorHandler handles DELETE /doctor/:email.
func (ah *AdminHandler) DeleteDoctorHandler(c *gin.Context) {
	admin, ok := adminContext(c)
	if !ok {
		return
	}
	res, err := ah.DoctorService.Remove(c.Request.Context(), admin, c.Param("email"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GetDoctorsHandler handles GET /doctors.
func (ah *AdminHandler) GetDoctorsHandler(c *gin.Context) {
	admin, ok := adminContext(c)
	if !ok {
		return
	}
	doctors, err := ah.DoctorService.List(c.Request.Context(), admin)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, doctors)
}
