package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/schichtwerk/schichtplan-backend-go/internal/domain/availability"
	"github.com/schichtwerk/schichtplan-backend-go/internal/pkg/database"
)

type availabilityRepository struct {
	db *database.DB
}

func NewAvailabilityRepository(db *database.DB) availability.AvailabilityRepository {
	return &availabilityRepository{db: db}
}

// FindUnavailable implements availability.AvailabilityRepository.
func (r *availabilityRepository) FindUnavailable(ctx context.Context, employeeID string, weekday int, date time.Time) ([]availability.Availability, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, workspace_id, weekday, start_time, end_time,
			   type, valid_from, valid_until, created_at, updated_at
		FROM availabilities
		WHERE employee_id = $1
		  AND weekday = $2
		  AND type = 'NICHT_VERFUEGBAR'
		  AND valid_from <= $3
		  AND (valid_until IS NULL OR valid_until >= $3)
	`

	rows, err := q.Query(ctx, query, employeeID, weekday, date)
	if err != nil {
		return nil, fmt.Errorf("failed to find unavailabilities: %w", err)
	}
	defer rows.Close()

	var entries []availability.Availability
	for rows.Next() {
		var a availability.Availability
		err := rows.Scan(
			&a.ID, &a.EmployeeID, &a.WorkspaceID, &a.Weekday, &a.StartTime, &a.EndTime,
			&a.Type, &a.ValidFrom, &a.ValidUntil, &a.CreatedAt, &a.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan availability: %w", err)
		}
		entries = append(entries, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read availabilities: %w", err)
	}

	return entries, nil
}
