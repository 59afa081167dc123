package handlers

import (
	"net/http"

	serviceRepo "doctorsportal/database/repository/service"
	"doctorsportal/services/availability"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the treatment catalog and its open slots.
type CatalogHandler struct {
	Services     serviceRepo.ServiceRepository
	Availability availability.AvailabilityService
}

func NewCatalogHandler(services serviceRepo.ServiceRepository, avail availability.AvailabilityService) *CatalogHandler {
	return &CatalogHandler{Services: services, Availability: avail}
}

// GetServices handles GET /services.
func (h *CatalogHandler) GetServices(c *gin.Context) {
	summaries, err := h.Services.GetSummaries(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summaries)
}

// GetAvailableServices handles GET /available-services?date=.
func (h *CatalogHandler) GetAvailableServices(c *gin.Context) {
	views, err := h.Availability.Availability(c.Request.Context(), c.Query("date"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}
