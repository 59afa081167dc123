package doctor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	doctorRepo "doctorsportal/database/repository/doctor"
	"doctorsportal/models"
	"doctorsportal/services/auth"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrNotAdminContext is returned when a call does not carry a context from the role gate.
var ErrNotAdminContext = errors.New("admin context required")

// DoctorService manages the doctor roster. Every operation is admin-only.
type DoctorService interface {
	Add(ctx context.Context, admin auth.AdminContext, d models.Doctor) (*models.Doctor, error)
	Remove(ctx context.Context, admin auth.AdminContext, email string) (models.DeleteResult, error)
	List(ctx context.Context, admin auth.AdminContext) ([]models.Doctor, error)
}

type DefaultDoctorService struct {
	Repo   doctorRepo.DoctorRepository
	Logger *zap.Logger
}

func (s *DefaultDoctorService) log() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

func (s *DefaultDoctorService) Add(ctx context.Context, admin auth.AdminContext, d models.Doctor) (*models.Doctor, error) {
	if !admin.Valid() {
		return nil, ErrNotAdminContext
	}
	d.Name = strings.TrimSpace(d.Name)
	d.Email = strings.TrimSpace(d.Email)
	if err := d.Validate(); err != nil {
		return nil, err
	}
	d.ID = uuid.New().String()
	if err := s.Repo.Create(ctx, &d); err != nil {
		return nil, fmt.Errorf("failed to add doctor: %w", err)
	}
	s.log().Info("doctor added", zap.String("by", admin.Email()), zap.String("doctor", d.Email))
	return &d, nil
}

func (s *DefaultDoctorService) Remove(ctx context.Context, admin auth.AdminContext, email string) (models.DeleteResult, error) {
	if !admin.Valid() {
		return models.DeleteResult{}, ErrNotAdminContext
	}
	res, err := s.Repo.DeleteByEmail(ctx, email)
	if err != nil {
		return models.DeleteResult{}, fmt.Errorf("failed to remove doctor: %w", err)
	}
	s.log().Info("doctor removed", zap.String("by", admin.Email()), zap.String("doctor", email), zap.Int64("deleted", res.DeletedCount))
	return res, nil
}

func (s *DefaultDoctorService) List(ctx context.Context, admin auth.AdminContext) ([]models.Doctor, error) {
	if !admin.Valid() {
		return nil, ErrNotAdminContext
	}
	doctors, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch doctors: %w", err)
	}
	return doctors, nil
}
