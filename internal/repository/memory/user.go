package memory

import (
	"context"
	"sync"

	"github.com/schichtwerk/schichtplan-backend-go/internal/domain/user"
)

type UserRepository struct {
	mu    sync.RWMutex
	users map[string]user.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]user.User)}
}

// Seed stores a user, assigning an ID when missing.
func (r *UserRepository) Seed(u user.User) user.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u.ID == "" {
		u.ID = newID()
	}
	r.users[u.ID] = u
	return u
}

func (r *UserRepository) FindManagerIDs(_ context.Context, workspaceID string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var ids []string
	for _, u := range r.users {
		if u.WorkspaceID == workspaceID && u.Role.IsManager() {
			ids = append(ids, u.ID)
		}
	}
	return ids, nil
}

func (r *UserRepository) GetIDByEmail(_ context.Context, email string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Email == email {
			return u.ID, nil
		}
	}
	return "", user.ErrUserNotFound
}
