package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/schichtwerk/schichtplan-backend-go/internal/domain/timeaccount"
	"github.com/schichtwerk/schichtplan-backend-go/internal/pkg/database"
)

type timeAccountRepository struct {
	db *database.DB
}

func NewTimeAccountRepository(db *database.DB) timeaccount.TimeAccountRepository {
	return &timeAccountRepository{db: db}
}

const timeAccountColumns = `id, employee_id, workspace_id, contract_hours, carryover_minutes,
	   current_balance, period_start, last_calculated, created_at, updated_at`

// GetByEmployeeID implements timeaccount.TimeAccountRepository.
func (r *timeAccountRepository) GetByEmployeeID(ctx context.Context, employeeID string) (*timeaccount.TimeAccount, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timeAccountColumns + `
		FROM time_accounts
		WHERE employee_id = $1
	`

	var a timeaccount.TimeAccount
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&a.ID, &a.EmployeeID, &a.WorkspaceID, &a.ContractHours, &a.CarryoverMinutes,
		&a.CurrentBalance, &a.PeriodStart, &a.LastCalculated, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, timeaccount.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get time account: %w", err)
	}

	return &a, nil
}

// FindByWorkspace implements timeaccount.TimeAccountRepository.
func (r *timeAccountRepository) FindByWorkspace(ctx context.Context, workspaceID string) ([]timeaccount.TimeAccount, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timeAccountColumns + `
		FROM time_accounts
		WHERE workspace_id = $1
		ORDER BY employee_id
	`

	rows, err := q.Query(ctx, query, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to find time accounts: %w", err)
	}
	defer rows.Close()

	var accounts []timeaccount.TimeAccount
	for rows.Next() {
		var a timeaccount.TimeAccount
		err := rows.Scan(
			&a.ID, &a.EmployeeID, &a.WorkspaceID, &a.ContractHours, &a.CarryoverMinutes,
			&a.CurrentBalance, &a.PeriodStart, &a.LastCalculated, &a.CreatedAt, &a.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan time account: %w", err)
		}
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read time accounts: %w", err)
	}

	return accounts, nil
}

// UpdateBalance implements timeaccount.TimeAccountRepository.
func (r *timeAccountRepository) UpdateBalance(ctx context.Context, employeeID string, balance int, calculatedAt time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE time_accounts
		SET current_balance = $2, last_calculated = $3, updated_at = NOW()
		WHERE employee_id = $1
	`

	tag, err := q.Exec(ctx, query, employeeID, balance, calculatedAt)
	if err != nil {
		return fmt.Errorf("failed to update time account balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return timeaccount.ErrAccountNotFound
	}

	return nil
}
