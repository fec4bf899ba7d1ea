package absence

import (
	"context"
	"time"
)

// AbsenceRepository defines the absence request persistence interface
type AbsenceRepository interface {
	GetByID(ctx context.Context, id string) (*AbsenceRequest, error)

	// FindApprovedOnDate returns approved absences whose inclusive date
	// range contains the given day.
	FindApprovedOnDate(ctx context.Context, employeeID string, date time.Time) ([]AbsenceRequest, error)

	// Approve transitions the request to GENEHMIGT with the given review
	// note and stamps the review time.
	Approve(ctx context.Context, id, reviewNote string) error
}
