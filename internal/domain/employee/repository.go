package employee

import "context"

// EmployeeRepository defines the employee persistence interface
type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (*Employee, error)
}
