package postgresql

import (
	"context"
	"fmt"

	"github.com/schichtwerk/schichtplan-backend-go/internal/domain/workspace"
	"github.com/schichtwerk/schichtplan-backend-go/internal/pkg/database"
)

type workspaceRepository struct {
	db *database.DB
}

func NewWorkspaceRepository(db *database.DB) workspace.WorkspaceRepository {
	return &workspaceRepository{db: db}
}

// FindAllIDs implements workspace.WorkspaceRepository.
func (r *workspaceRepository) FindAllIDs(ctx context.Context) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id FROM workspaces ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to list workspaces: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan workspace id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read workspaces: %w", err)
	}

	return ids, nil
}
