package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/schichtwerk/schichtplan-backend-go/internal/domain/user"
	"github.com/schichtwerk/schichtplan-backend-go/internal/pkg/database"
)

type userRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepository{db: db}
}

// FindManagerIDs implements user.UserRepository.
func (r *userRepository) FindManagerIDs(ctx context.Context, workspaceID string) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id
		FROM users
		WHERE workspace_id = $1
		  AND role IN ('OWNER', 'ADMIN', 'MANAGER')
	`

	rows, err := q.Query(ctx, query, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to find managers: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan user id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read managers: %w", err)
	}

	return ids, nil
}

// GetIDByEmail implements user.UserRepository.
func (r *userRepository) GetIDByEmail(ctx context.Context, email string) (string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id
		FROM users
		WHERE email = $1
	`

	var id string
	if err := q.QueryRow(ctx, query, email).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", user.ErrUserNotFound
		}
		return "", fmt.Errorf("failed to get user by email: %w", err)
	}

	return id, nil
}
