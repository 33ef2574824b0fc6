package repository

import (
	"context"
	"sync"
	"time"

	"github.com/alertlink/internal/logger"
	"github.com/alertlink/internal/model"
)

// UserRepository is the in-memory user list. It is seeded at startup; added
// users live only until the process exits.
type UserRepository struct {
	mu    sync.RWMutex
	users []model.User
}

func NewUserRepository(seed []model.User) *UserRepository {
	users := make([]model.User, len(seed))
	copy(users, seed)
	return &UserRepository{users: users}
}

func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	defer logger.DeferLogDuration("user.List", time.Now())()
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.User, len(r.users))
	copy(out, r.users)
	return out, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	defer logger.DeferLogDuration("user.GetByID", time.Now())()
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.users {
		if r.users[i].ID == id {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

// Append adds a user to the end of the list (the user table shows newest
// additions last).
func (r *UserRepository) Append(ctx context.Context, u *model.User) error {
	defer logger.DeferLogDuration("user.Append", time.Now())()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users = append(r.users, *u)
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	defer logger.DeferLogDuration("user.Delete", time.Now())()
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.users {
		if r.users[i].ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
