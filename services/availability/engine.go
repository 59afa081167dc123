package availability

import (
	"context"
	"fmt"
	"strings"

	bookingRepo "doctorsportal/database/repository/booking"
	serviceRepo "doctorsportal/database/repository/service"
	"doctorsportal/models"
)

// AvailabilityService computes the open slots of every service for a date.
type AvailabilityService interface {
	Availability(ctx context.Context, date string) ([]models.AvailabilityView, error)
}

// Engine implements AvailabilityService by subtracting booked slots from each service's catalog.
type Engine struct {
	Services serviceRepo.ServiceRepository
	Bookings bookingRepo.BookingRepository
}

func NewEngine(services serviceRepo.ServiceRepository, bookings bookingRepo.BookingRepository) *Engine {
	return &Engine{Services: services, Bookings: bookings}
}

// Availability returns, in catalog order, each service with the slots not yet booked on date.
// It never writes; results reflect one read of each collection and may be stale under concurrent bookings.
func (e *Engine) Availability(ctx context.Context, date string) ([]models.AvailabilityView, error) {
	if strings.TrimSpace(date) == "" {
		return nil, models.NewValidationError("date", "is required")
	}

	services, err := e.Services.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load services: %w", err)
	}
	bookings, err := e.Bookings.FindByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings for %s: %w", date, err)
	}

	booked := bookedSlots(bookings)
	views := make([]models.AvailabilityView, 0, len(services))
	for _, svc := range services {
		views = append(views, models.AvailabilityView{
			ID:    svc.ID,
			Name:  svc.Name,
			Price: svc.Price,
			Slots: Remaining(svc.Slots, booked[svc.Name]),
		})
	}
	return views, nil
}

// bookedSlots groups the booked slot labels by treatment name.
func bookedSlots(bookings []models.Booking) map[string]map[string]struct{} {
	byTreatment := make(map[string]map[string]struct{})
	for _, b := range bookings {
		set, ok := byTreatment[b.Treatment]
		if !ok {
			set = make(map[string]struct{})
			byTreatment[b.Treatment] = set
		}
		set[b.Slot] = struct{}{}
	}
	return byTreatment
}

// Remaining returns the slots not present in booked, keeping their original order.
// A slot listed more than once is returned once.
func Remaining(slots []string, booked map[string]struct{}) []string {
	remaining := make([]string, 0, len(slots))
	seen := make(map[string]struct{}, len(slots))
	for _, s := range slots {
		if _, taken := booked[s]; taken {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		remaining = append(remaining, s)
	}
	return remaining
}
