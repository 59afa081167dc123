package memoryRepo

import (
	"context"

	"doctorsportal/models"
)

// ServiceRepo implements serviceRepo.ServiceRepository.
type ServiceRepo struct{ s *Store }

func (s *Store) Services() *ServiceRepo { return &ServiceRepo{s: s} }

func (r *ServiceRepo) GetAll(_ context.Context) ([]models.Service, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]models.Service, 0, len(r.s.services))
	for _, svc := range r.s.services {
		svc.Slots = append([]string(nil), svc.Slots...)
		out = append(out, svc)
	}
	return out, nil
}

func (r *ServiceRepo) GetSummaries(_ context.Context) ([]models.ServiceSummary, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]models.ServiceSummary, 0, len(r.s.services))
	for _, svc := range r.s.services {
		out = append(out, models.ServiceSummary{ID: svc.ID, Name: svc.Name})
	}
	return out, nil
}
