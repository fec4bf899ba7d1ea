package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/schichtwerk/schichtplan-backend-go/internal/domain/timeentry"
	"github.com/schichtwerk/schichtplan-backend-go/internal/pkg/database"
)

type timeEntryRepository struct {
	db *database.DB
}

func NewTimeEntryRepository(db *database.DB) timeentry.TimeEntryRepository {
	return &timeEntryRepository{db: db}
}

// Create implements timeentry.TimeEntryRepository.
func (r *timeEntryRepository) Create(ctx context.Context, e *timeentry.TimeEntry) (*timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO time_entries (
			employee_id, workspace_id, date, start_time, end_time,
			break_minutes, gross_minutes, net_minutes, status, shift_id
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		e.EmployeeID,
		e.WorkspaceID,
		e.Date,
		e.StartTime,
		e.EndTime,
		e.BreakMinutes,
		e.GrossMinutes,
		e.NetMinutes,
		e.Status,
		e.ShiftID,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("failed to create time entry: %w", err)
	}

	return e, nil
}

// ExistsForShift implements timeentry.TimeEntryRepository.
func (r *timeEntryRepository) ExistsForShift(ctx context.Context, shiftID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM time_entries WHERE shift_id = $1
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, shiftID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check time entry for shift: %w", err)
	}

	return exists, nil
}

// ExistsDuplicate implements timeentry.TimeEntryRepository.
func (r *timeEntryRepository) ExistsDuplicate(ctx context.Context, employeeID string, date time.Time, startTime, endTime string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM time_entries
			WHERE employee_id = $1
			  AND date = $2
			  AND start_time = $3
			  AND end_time = $4
			  AND status != 'ZURUECKGEWIESEN'
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, date, startTime, endTime).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check duplicate time entry: %w", err)
	}

	return exists, nil
}

// SumNetMinutes implements timeentry.TimeEntryRepository.
func (r *timeEntryRepository) SumNetMinutes(ctx context.Context, employeeID string, from, to time.Time, statuses []timeentry.Status) (int, error) {
	q := GetQuerier(ctx, r.db)

	statusStrs := make([]string, len(statuses))
	for i, s := range statuses {
		statusStrs[i] = string(s)
	}

	query := `
		SELECT COALESCE(SUM(net_minutes), 0)
		FROM time_entries
		WHERE employee_id = $1
		  AND date >= $2
		  AND date <= $3
		  AND status = ANY($4)
	`

	var total int
	if err := q.QueryRow(ctx, query, employeeID, from, to, statusStrs).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum net minutes: %w", err)
	}

	return total, nil
}

// SumConfirmedNetMinutesSince implements timeentry.TimeEntryRepository.
func (r *timeEntryRepository) SumConfirmedNetMinutesSince(ctx context.Context, employeeID string, from time.Time) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(net_minutes), 0)
		FROM time_entries
		WHERE employee_id = $1
		  AND date >= $2
		  AND status = 'BESTAETIGT'
	`

	var total int
	if err := q.QueryRow(ctx, query, employeeID, from).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum confirmed net minutes: %w", err)
	}

	return total, nil
}

// ConfirmReviewedInRange implements timeentry.TimeEntryRepository.
func (r *timeEntryRepository) ConfirmReviewedInRange(ctx context.Context, workspaceID string, from, to time.Time, confirmedBy string, confirmedAt time.Time) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE time_entries
		SET status = 'BESTAETIGT', confirmed_at = $4, confirmed_by = $5, updated_at = NOW()
		WHERE workspace_id = $1
		  AND date >= $2
		  AND date <= $3
		  AND status = 'GEPRUEFT'
	`

	tag, err := q.Exec(ctx, query, workspaceID, from, to, confirmedAt, confirmedBy)
	if err != nil {
		return 0, fmt.Errorf("failed to confirm reviewed time entries: %w", err)
	}

	return int(tag.RowsAffected()), nil
}
