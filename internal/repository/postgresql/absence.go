package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/schichtwerk/schichtplan-backend-go/internal/domain/absence"
	"github.com/schichtwerk/schichtplan-backend-go/internal/pkg/database"
)

type absenceRepository struct {
	db *database.DB
}

func NewAbsenceRepository(db *database.DB) absence.AbsenceRepository {
	return &absenceRepository{db: db}
}

const absenceColumns = `id, employee_id, workspace_id, category, start_date, end_date,
	   status, review_note, reviewed_at, created_at, updated_at`

func scanAbsence(row pgx.Row) (absence.AbsenceRequest, error) {
	var a absence.AbsenceRequest
	err := row.Scan(
		&a.ID, &a.EmployeeID, &a.WorkspaceID, &a.Category, &a.StartDate, &a.EndDate,
		&a.Status, &a.ReviewNote, &a.ReviewedAt, &a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}

// GetByID implements absence.AbsenceRepository.
func (r *absenceRepository) GetByID(ctx context.Context, id string) (*absence.AbsenceRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + absenceColumns + `
		FROM absence_requests
		WHERE id = $1
	`

	a, err := scanAbsence(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, absence.ErrAbsenceNotFound
		}
		return nil, fmt.Errorf("failed to get absence request: %w", err)
	}

	return &a, nil
}

// FindApprovedOnDate implements absence.AbsenceRepository.
func (r *absenceRepository) FindApprovedOnDate(ctx context.Context, employeeID string, date time.Time) ([]absence.AbsenceRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + absenceColumns + `
		FROM absence_requests
		WHERE employee_id = $1
		  AND status = 'GENEHMIGT'
		  AND start_date <= $2
		  AND end_date >= $2
		ORDER BY start_date
	`

	rows, err := q.Query(ctx, query, employeeID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to find approved absences: %w", err)
	}
	defer rows.Close()

	var absences []absence.AbsenceRequest
	for rows.Next() {
		a, err := scanAbsence(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan absence request: %w", err)
		}
		absences = append(absences, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read absence requests: %w", err)
	}

	return absences, nil
}

// Approve implements absence.AbsenceRepository.
func (r *absenceRepository) Approve(ctx context.Context, id, reviewNote string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE absence_requests
		SET status = 'GENEHMIGT', review_note = $2, reviewed_at = NOW(), updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id, reviewNote)
	if err != nil {
		return fmt.Errorf("failed to approve absence request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return absence.ErrAbsenceNotFound
	}

	return nil
}
