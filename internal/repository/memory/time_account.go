package memory

import (
	"context"
	"sync"
	"time"

	"github.com/schichtwerk/schichtplan-backend-go/internal/domain/timeaccount"
)

type TimeAccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]timeaccount.TimeAccount // keyed by employee ID
}

func NewTimeAccountRepository() *TimeAccountRepository {
	return &TimeAccountRepository{accounts: make(map[string]timeaccount.TimeAccount)}
}

// Seed stores a time account keyed by its employee.
func (r *TimeAccountRepository) Seed(a timeaccount.TimeAccount) timeaccount.TimeAccount {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a.ID == "" {
		a.ID = newID()
	}
	r.accounts[a.EmployeeID] = a
	return a
}

func (r *TimeAccountRepository) GetByEmployeeID(_ context.Context, employeeID string) (*timeaccount.TimeAccount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.accounts[employeeID]
	if !ok {
		return nil, timeaccount.ErrAccountNotFound
	}
	return &a, nil
}

func (r *TimeAccountRepository) FindByWorkspace(_ context.Context, workspaceID string) ([]timeaccount.TimeAccount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []timeaccount.TimeAccount
	for _, a := range r.accounts {
		if a.WorkspaceID == workspaceID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *TimeAccountRepository) UpdateBalance(_ context.Context, employeeID string, balance int, calculatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.accounts[employeeID]
	if !ok {
		return timeaccount.ErrAccountNotFound
	}
	a.CurrentBalance = balance
	a.LastCalculated = calculatedAt
	a.UpdatedAt = time.Now()
	r.accounts[employeeID] = a
	return nil
}
