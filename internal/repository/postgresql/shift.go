package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/schichtwerk/schichtplan-backend-go/internal/domain/shift"
	"github.com/schichtwerk/schichtplan-backend-go/internal/pkg/database"
)

type shiftRepository struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepository{db: db}
}

const shiftColumns = `id, employee_id, workspace_id, date, start_time, end_time,
	   status, location_id, notes, created_at, updated_at`

func scanShift(row pgx.Row) (shift.Shift, error) {
	var s shift.Shift
	err := row.Scan(
		&s.ID, &s.EmployeeID, &s.WorkspaceID, &s.Date, &s.StartTime, &s.EndTime,
		&s.Status, &s.LocationID, &s.Notes, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

// GetByID implements shift.ShiftRepository.
func (r *shiftRepository) GetByID(ctx context.Context, id string) (*shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shifts
		WHERE id = $1
	`

	s, err := scanShift(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shift.ErrShiftNotFound
		}
		return nil, fmt.Errorf("failed to get shift: %w", err)
	}

	return &s, nil
}

// FindActiveByDate implements shift.ShiftRepository.
func (r *shiftRepository) FindActiveByDate(ctx context.Context, employeeID, workspaceID string, date time.Time, excludeShiftID string) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shifts
		WHERE employee_id = $1
		  AND workspace_id = $2
		  AND date = $3
		  AND status != 'CANCELLED'
		  AND ($4::text = '' OR id::text != $4)
		ORDER BY start_time
	`

	rows, err := q.Query(ctx, query, employeeID, workspaceID, date, excludeShiftID)
	if err != nil {
		return nil, fmt.Errorf("failed to find shifts by date: %w", err)
	}
	defer rows.Close()

	return collectShifts(rows)
}

// FindActiveInRange implements shift.ShiftRepository.
func (r *shiftRepository) FindActiveInRange(ctx context.Context, employeeID, workspaceID string, from, to time.Time) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shifts
		WHERE employee_id = $1
		  AND workspace_id = $2
		  AND date >= $3
		  AND date <= $4
		  AND status != 'CANCELLED'
		ORDER BY date, start_time
	`

	rows, err := q.Query(ctx, query, employeeID, workspaceID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to find shifts in range: %w", err)
	}
	defer rows.Close()

	return collectShifts(rows)
}

// LatestEndingOnDate implements shift.ShiftRepository.
func (r *shiftRepository) LatestEndingOnDate(ctx context.Context, employeeID, workspaceID string, date time.Time) (*shift.Shift, error) {
	return r.findOneOnDate(ctx, employeeID, workspaceID, date, "end_time DESC")
}

// EarliestStartingOnDate implements shift.ShiftRepository.
func (r *shiftRepository) EarliestStartingOnDate(ctx context.Context, employeeID, workspaceID string, date time.Time) (*shift.Shift, error) {
	return r.findOneOnDate(ctx, employeeID, workspaceID, date, "start_time ASC")
}

func (r *shiftRepository) findOneOnDate(ctx context.Context, employeeID, workspaceID string, date time.Time, order string) (*shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shifts
		WHERE employee_id = $1
		  AND workspace_id = $2
		  AND date = $3
		  AND status != 'CANCELLED'
		ORDER BY ` + order + `
		LIMIT 1
	`

	s, err := scanShift(q.QueryRow(ctx, query, employeeID, workspaceID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find adjacent-day shift: %w", err)
	}

	return &s, nil
}

// FindUnprocessedBefore implements shift.ShiftRepository.
func (r *shiftRepository) FindUnprocessedBefore(ctx context.Context, workspaceID string, before time.Time) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shifts
		WHERE workspace_id = $1
		  AND date < $2
		  AND status IN ('SCHEDULED', 'CONFIRMED', 'COMPLETED')
		ORDER BY date, start_time
	`

	rows, err := q.Query(ctx, query, workspaceID, before)
	if err != nil {
		return nil, fmt.Errorf("failed to find unprocessed shifts: %w", err)
	}
	defer rows.Close()

	return collectShifts(rows)
}

// Create implements shift.ShiftRepository.
func (r *shiftRepository) Create(ctx context.Context, newShift *shift.Shift) (*shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shifts (
			employee_id, workspace_id, date, start_time, end_time,
			status, location_id, notes
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newShift.EmployeeID,
		newShift.WorkspaceID,
		newShift.Date,
		newShift.StartTime,
		newShift.EndTime,
		newShift.Status,
		newShift.LocationID,
		newShift.Notes,
	).Scan(&newShift.ID, &newShift.CreatedAt, &newShift.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("failed to create shift: %w", err)
	}

	return newShift, nil
}

// CancelByIDs implements shift.ShiftRepository.
func (r *shiftRepository) CancelByIDs(ctx context.Context, ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shifts
		SET status = 'CANCELLED', updated_at = NOW()
		WHERE id = ANY($1)
		  AND status != 'CANCELLED'
	`

	tag, err := q.Exec(ctx, query, ids)
	if err != nil {
		return 0, fmt.Errorf("failed to cancel shifts: %w", err)
	}

	return int(tag.RowsAffected()), nil
}

// ReassignEmployee implements shift.ShiftRepository.
func (r *shiftRepository) ReassignEmployee(ctx context.Context, shiftID, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shifts
		SET employee_id = $2, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, shiftID, employeeID)
	if err != nil {
		return fmt.Errorf("failed to reassign shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	return nil
}

// UpdateStatus implements shift.ShiftRepository.
func (r *shiftRepository) UpdateStatus(ctx context.Context, shiftID string, status shift.Status) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shifts
		SET status = $2, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, shiftID, status)
	if err != nil {
		return fmt.Errorf("failed to update shift status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	return nil
}

func collectShifts(rows pgx.Rows) ([]shift.Shift, error) {
	var shifts []shift.Shift
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read shifts: %w", err)
	}
	return shifts, nil
}
