package bookingRepo

import (
	"context"

	"doctorsportal/models"
)

// BookingRepository defines the data access methods used by the booking arbiter and the availability engine.
type BookingRepository interface {
	// FindByDate returns every booking whose date equals date.
	FindByDate(ctx context.Context, date string) ([]models.Booking, error)
	// FindByKey returns the booking matching the (treatment, date, email) key exactly, or nil, nil.
	FindByKey(ctx context.Context, key models.BookingKey) (*models.Booking, error)
	// FindByEmail returns all bookings made with the given email.
	FindByEmail(ctx context.Context, email string) ([]models.Booking, error)
	// GetByID returns the booking with the given id, or nil, nil.
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// Create persists a new booking.
	Create(ctx context.Context, booking *models.Booking) error
	// MarkPaid flags the booking as paid with the given transaction id.
	MarkPaid(ctx context.Context, id, transactionID string) (models.UpdateResult, error)
}
