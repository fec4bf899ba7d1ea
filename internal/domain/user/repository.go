package user

import "context"

// UserRepository defines the user persistence interface
type UserRepository interface {
	// FindManagerIDs returns the IDs of all workspace users with an
	// OWNER, ADMIN or MANAGER role.
	FindManagerIDs(ctx context.Context, workspaceID string) ([]string, error)

	GetIDByEmail(ctx context.Context, email string) (string, error)
}
