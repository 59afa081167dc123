package memoryRepo

import (
	"context"
	"time"

	"doctorsportal/models"

	"github.com/google/uuid"
)

// UserRepo implements userRepo.UserRepository.
type UserRepo struct{ s *Store }

func (s *Store) Users() *UserRepo { return &UserRepo{s: s} }

func (r *UserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if u.Email == email {
			found := copyUser(u)
			return &found, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) GetAll(_ context.Context) ([]models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]models.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		out = append(out, copyUser(u))
	}
	return out, nil
}

func (r *UserRepo) Upsert(_ context.Context, email string, fields map[string]interface{}) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	now := time.Now()
	for i := range r.s.users {
		if r.s.users[i].Email != email {
			continue
		}
		r.s.users[i].Apply(fields)
		r.s.users[i].UpdatedAt = now
		stored := copyUser(r.s.users[i])
		return &stored, nil
	}
	u := models.User{ID: uuid.New().String(), Email: email, CreatedAt: now, UpdatedAt: now}
	u.Apply(fields)
	r.s.users = append(r.s.users, copyUser(u))
	return &u, nil
}

func (r *UserRepo) SetRole(_ context.Context, email, role string) (models.UpdateResult, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.users {
		if r.s.users[i].Email != email {
			continue
		}
		res := models.UpdateResult{MatchedCount: 1}
		if r.s.users[i].Role != role {
			res.ModifiedCount = 1
			r.s.users[i].Role = role
			r.s.users[i].UpdatedAt = time.Now()
		}
		return res, nil
	}
	return models.UpdateResult{}, nil
}
