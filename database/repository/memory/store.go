// Package memoryRepo holds in-process implementations of every repository. It backs
// STORAGE_DRIVER=memory and the test suites. Every operation copies documents in and out,
// so callers never share memory with the store.
package memoryRepo

import (
	"sync"

	"doctorsportal/models"
)

// Store is an in-memory document store with one slice per collection, kept in insertion order.
type Store struct {
	mu       sync.RWMutex
	services []models.Service
	bookings []models.Booking
	users    []models.User
	doctors  []models.Doctor
	payments []models.Payment
}

func NewStore() *Store {
	return &Store{}
}

// SeedServices appends services to the catalog.
func (s *Store) SeedServices(services ...models.Service) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, svc := range services {
		svc.Slots = append([]string(nil), svc.Slots...)
		s.services = append(s.services, svc)
	}
}

// DefaultCatalog is the treatment list the memory driver starts with.
func DefaultCatalog() []models.Service {
	morning := []string{"08.00 AM - 08.30 AM", "08.30 AM - 09.00 AM", "09.00 AM - 09.30 AM", "09.30 AM - 10.00 AM", "10.00 AM - 10.30 AM", "10.30 AM - 11.00 AM"}
	afternoon := []string{"01.00 PM - 01.30 PM", "01.30 PM - 02.00 PM", "02.00 PM - 02.30 PM", "02.30 PM - 03.00 PM"}
	return []models.Service{
		{ID: "1", Name: "Teeth Orthodontics", Slots: morning, Price: 120},
		{ID: "2", Name: "Cosmetic Dentistry", Slots: afternoon, Price: 150},
		{ID: "3", Name: "Teeth Cleaning", Slots: morning, Price: 60},
		{ID: "4", Name: "Cavity Protection", Slots: afternoon, Price: 80},
		{ID: "5", Name: "Pediatric Dental", Slots: morning, Price: 90},
		{ID: "6", Name: "Oral Surgery", Slots: afternoon, Price: 300},
	}
}

func copyUser(u models.User) models.User {
	if u.Profile != nil {
		p := make(map[string]interface{}, len(u.Profile))
		for k, v := range u.Profile {
			p[k] = v
		}
		u.Profile = p
	}
	return u
}
