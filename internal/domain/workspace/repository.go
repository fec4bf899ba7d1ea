package workspace

import "context"

// WorkspaceRepository lists the tenants the periodic sweeps iterate over.
type WorkspaceRepository interface {
	FindAllIDs(ctx context.Context) ([]string, error)
}
