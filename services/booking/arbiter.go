package booking

import (
	"context"
	"fmt"
	"time"

	bookingRepo "doctorsportal/database/repository/booking"
	"doctorsportal/models"
	"doctorsportal/services/auth"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Arbiter creates bookings after checking for an existing one with the same
// (treatment, date, email) key. The check and the insert are separate storage calls, so two
// concurrent requests for the same key can both succeed.
type Arbiter struct {
	Bookings bookingRepo.BookingRepository
	Events   EventPublisher
	Logger   *zap.Logger

	newID func() string
	now   func() time.Time
}

// NewArbiter creates an Arbiter. events may be nil when nobody listens for new bookings.
func NewArbiter(bookings bookingRepo.BookingRepository, events EventPublisher, logger *zap.Logger) *Arbiter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Arbiter{
		Bookings: bookings,
		Events:   events,
		Logger:   logger,
		newID:    func() string { return uuid.New().String() },
		now:      time.Now,
	}
}

// CreateBooking stores the requested booking unless one with the same key exists.
func (a *Arbiter) CreateBooking(ctx context.Context, req models.BookingRequest) (Outcome, error) {
	if err := req.Validate(); err != nil {
		return Outcome{}, err
	}
	candidate := req.ToBooking()

	existing, err := a.Bookings.FindByKey(ctx, candidate.Key())
	if err != nil {
		return Outcome{}, fmt.Errorf("duplicate check failed: %w", err)
	}
	if existing != nil {
		a.Logger.Info("booking rejected as duplicate",
			zap.String("treatment", candidate.Treatment),
			zap.String("date", candidate.Date),
			zap.String("existingID", existing.ID))
		return Outcome{Accepted: false, Booking: *existing}, nil
	}

	candidate.ID = a.newID()
	candidate.CreatedAt = a.now()
	if err := a.Bookings.Create(ctx, &candidate); err != nil {
		return Outcome{}, fmt.Errorf("failed to store booking: %w", err)
	}
	a.Logger.Info("booking created",
		zap.String("bookingID", candidate.ID),
		zap.String("treatment", candidate.Treatment),
		zap.String("date", candidate.Date),
		zap.String("slot", candidate.Slot))

	a.publish(ctx, candidate)
	return Outcome{Accepted: true, Booking: candidate}, nil
}

// publish runs after the booking is committed; failures are logged only.
func (a *Arbiter) publish(ctx context.Context, b models.Booking) {
	if a.Events == nil {
		return
	}
	evt := BookingCreated{Booking: b, OccurredAt: a.now()}
	if err := a.Events.Publish(ctx, evt); err != nil {
		a.Logger.Error("failed to publish booking event", zap.String("bookingID", b.ID), zap.Error(err))
	}
}

// ListForPatient returns the bookings of email, which must be the caller's own email.
func (a *Arbiter) ListForPatient(ctx context.Context, id auth.Identity, email string) ([]models.Booking, error) {
	if email != id.Email() {
		return nil, auth.ErrForbidden
	}
	bookings, err := a.Bookings.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

// GetForPatient returns one booking owned by the caller.
func (a *Arbiter) GetForPatient(ctx context.Context, id auth.Identity, bookingID string) (*models.Booking, error) {
	b, err := a.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	if b == nil {
		return nil, ErrBookingNotFound
	}
	if b.Email != id.Email() {
		return nil, auth.ErrForbidden
	}
	return b, nil
}
