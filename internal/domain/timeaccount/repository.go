package timeaccount

import (
	"context"
	"time"
)

// TimeAccountRepository defines the time account persistence interface
type TimeAccountRepository interface {
	GetByEmployeeID(ctx context.Context, employeeID string) (*TimeAccount, error)
	FindByWorkspace(ctx context.Context, workspaceID string) ([]TimeAccount, error)
	UpdateBalance(ctx context.Context, employeeID string, balance int, calculatedAt time.Time) error
}
