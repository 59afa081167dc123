package memoryRepo

import (
	"context"
	"fmt"

	"doctorsportal/models"
)

// BookingRepo implements bookingRepo.BookingRepository.
type BookingRepo struct{ s *Store }

func (s *Store) Bookings() *BookingRepo { return &BookingRepo{s: s} }

func (r *BookingRepo) filter(match func(models.Booking) bool) []models.Booking {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []models.Booking{}
	for _, b := range r.s.bookings {
		if match(b) {
			out = append(out, b)
		}
	}
	return out
}

func (r *BookingRepo) first(match func(models.Booking) bool) *models.Booking {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, b := range r.s.bookings {
		if match(b) {
			found := b
			return &found
		}
	}
	return nil
}

func (r *BookingRepo) FindByDate(_ context.Context, date string) ([]models.Booking, error) {
	return r.filter(func(b models.Booking) bool { return b.Date == date }), nil
}

func (r *BookingRepo) FindByEmail(_ context.Context, email string) ([]models.Booking, error) {
	return r.filter(func(b models.Booking) bool { return b.Email == email }), nil
}

func (r *BookingRepo) FindByKey(_ context.Context, key models.BookingKey) (*models.Booking, error) {
	return r.first(func(b models.Booking) bool { return b.Key() == key }), nil
}

func (r *BookingRepo) GetByID(_ context.Context, id string) (*models.Booking, error) {
	return r.first(func(b models.Booking) bool { return b.ID == id }), nil
}

func (r *BookingRepo) Create(_ context.Context, booking *models.Booking) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, b := range r.s.bookings {
		if b.ID == booking.ID {
			return fmt.Errorf("error creating booking: duplicate id %s", booking.ID)
		}
	}
	r.s.bookings = append(r.s.bookings, *booking)
	return nil
}

func (r *BookingRepo) MarkPaid(_ context.Context, id, transactionID string) (models.UpdateResult, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.bookings {
		if r.s.bookings[i].ID != id {
			continue
		}
		res := models.UpdateResult{MatchedCount: 1}
		if !r.s.bookings[i].Paid || r.s.bookings[i].TransactionID != transactionID {
			res.ModifiedCount = 1
		}
		r.s.bookings[i].Paid = true
		r.s.bookings[i].TransactionID = transactionID
		return res, nil
	}
	return models.UpdateResult{}, nil
}
