package booking

import (
	"context"

	"doctorsportal/models"
	"doctorsportal/services/auth"
)

// Outcome is the result of a booking attempt. A rejected attempt carries the existing booking
// that holds the same (treatment, date, email) key; it is a normal result, not an error.
type Outcome struct {
	Accepted bool
	Booking  models.Booking
}

// BookingService defines the booking operations exposed over HTTP.
type BookingService interface {
	CreateBooking(ctx context.Context, req models.BookingRequest) (Outcome, error)
	ListForPatient(ctx context.Context, id auth.Identity, email string) ([]models.Booking, error)
	GetForPatient(ctx context.Context, id auth.Identity, bookingID string) (*models.Booking, error)
}
