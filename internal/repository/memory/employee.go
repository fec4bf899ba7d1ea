package memory

import (
	"context"
	"sync"

	"github.com/schichtwerk/schichtplan-backend-go/internal/domain/employee"
)

type EmployeeRepository struct {
	mu        sync.RWMutex
	employees map[string]employee.Employee
}

func NewEmployeeRepository() *EmployeeRepository {
	return &EmployeeRepository{employees: make(map[string]employee.Employee)}
}

// Seed stores an employee, assigning an ID when missing.
func (r *EmployeeRepository) Seed(e employee.Employee) employee.Employee {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e.ID == "" {
		e.ID = newID()
	}
	r.employees[e.ID] = e
	return e
}

func (r *EmployeeRepository) GetByID(_ context.Context, id string) (*employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.employees[id]
	if !ok {
		return nil, employee.ErrEmployeeNotFound
	}
	return &e, nil
}
