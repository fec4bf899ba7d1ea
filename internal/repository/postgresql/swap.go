package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/schichtwerk/schichtplan-backend-go/internal/domain/swap"
	"github.com/schichtwerk/schichtplan-backend-go/internal/pkg/database"
)

type swapRepository struct {
	db *database.DB
}

func NewSwapRepository(db *database.DB) swap.SwapRepository {
	return &swapRepository{db: db}
}

// GetByID implements swap.SwapRepository.
func (r *swapRepository) GetByID(ctx context.Context, id string) (*swap.ShiftSwapRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, workspace_id, shift_id, target_shift_id, requester_id, target_id,
			   status, review_note, reviewed_at, created_at, updated_at
		FROM shift_swap_requests
		WHERE id = $1
	`

	var s swap.ShiftSwapRequest
	err := q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.WorkspaceID, &s.ShiftID, &s.TargetShiftID, &s.RequesterID, &s.TargetID,
		&s.Status, &s.ReviewNote, &s.ReviewedAt, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, swap.ErrSwapNotFound
		}
		return nil, fmt.Errorf("failed to get swap request: %w", err)
	}

	return &s, nil
}

// Complete implements swap.SwapRepository.
func (r *swapRepository) Complete(ctx context.Context, id, reviewNote string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shift_swap_requests
		SET status = 'ABGESCHLOSSEN', review_note = $2, reviewed_at = NOW(), updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id, reviewNote)
	if err != nil {
		return fmt.Errorf("failed to complete swap request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return swap.ErrSwapNotFound
	}

	return nil
}
