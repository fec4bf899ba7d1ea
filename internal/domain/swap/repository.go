package swap

import "context"

// SwapRepository defines the shift swap persistence interface
type SwapRepository interface {
	GetByID(ctx context.Context, id string) (*ShiftSwapRequest, error)

	// Complete transitions the request to ABGESCHLOSSEN with the given
	// review note and stamps the review time.
	Complete(ctx context.Context, id, reviewNote string) error
}
