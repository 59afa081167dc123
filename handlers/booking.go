package handlers

import (
	"net/http"

	"doctorsportal/models"
	"doctorsportal/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BookingHandler struct {
	BookingSvc booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{BookingSvc: svc}
}

// CreateBooking handles POST /booking. A duplicate is reported with success=false and the
// existing booking, still with status 200.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	outcome, err := h.BookingSvc.CreateBooking(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	if !outcome.Accepted {
		getLogger(c).Info("CreateBooking: duplicate", zap.String("existingID", outcome.Booking.ID))
		c.JSON(http.StatusOK, gin.H{"success": false, "booking": outcome.Booking})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "result": outcome.Booking})
}

// GetBookings handles GET /bookings?email=.
func (h *BookingHandler) GetBookings(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	bookings, err := h.BookingSvc.ListForPatient(c.Request.Context(), id, c.Query("email"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBooking handles GET /booking/:id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	b, err := h.BookingSvc.GetForPatient(c.Request.Context(), id, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}
