package memoryRepo

import (
	"context"

	"doctorsportal/models"
)

// DoctorRepo implements doctorRepo.DoctorRepository.
type DoctorRepo struct{ s *Store }

func (s *Store) Doctors() *DoctorRepo { return &DoctorRepo{s: s} }

func (r *DoctorRepo) Create(_ context.Context, doctor *models.Doctor) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.doctors = append(r.s.doctors, *doctor)
	return nil
}

func (r *DoctorRepo) DeleteByEmail(_ context.Context, email string) (models.DeleteResult, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, d := range r.s.doctors {
		if d.Email == email {
			r.s.doctors = append(r.s.doctors[:i], r.s.doctors[i+1:]...)
			return models.DeleteResult{DeletedCount: 1}, nil
		}
	}
	return models.DeleteResult{}, nil
}

func (r *DoctorRepo) GetAll(_ context.Context) ([]models.Doctor, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return append([]models.Doctor{}, r.s.doctors...), nil
}

// PaymentRepo implements paymentRepo.PaymentRepository.
type PaymentRepo struct{ s *Store }

func (s *Store) Payments() *PaymentRepo { return &PaymentRepo{s: s} }

func (r *PaymentRepo) Create(_ context.Context, payment *models.Payment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.payments = append(r.s.payments, *payment)
	return nil
}

// All returns every recorded payment.
func (r *PaymentRepo) All() []models.Payment {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return append([]models.Payment{}, r.s.payments...)
}
