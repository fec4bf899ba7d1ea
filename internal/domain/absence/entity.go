package absence

import "time"

// Category of an absence request
type Category string

const (
	CategoryKrank        Category = "KRANK"
	CategoryUrlaub       Category = "URLAUB"
	CategorySonderurlaub Category = "SONDERURLAUB"
	CategoryUnbezahlt    Category = "UNBEZAHLT"
)

// Status of an absence request
type Status string

const (
	StatusAusstehend Status = "AUSSTEHEND"
	StatusGenehmigt  Status = "GENEHMIGT"
	StatusAbgelehnt  Status = "ABGELEHNT"
	StatusStorniert  Status = "STORNIERT"
)

// AbsenceRequest covers the inclusive date range [StartDate, EndDate].
// Approval (human or automatic) triggers the shift-cancellation cascade
// exactly once.
type AbsenceRequest struct {
	ID          string
	EmployeeID  string
	WorkspaceID string
	Category    Category
	StartDate   time.Time // date only
	EndDate     time.Time // date only, inclusive
	Status      Status
	ReviewNote  *string
	ReviewedAt  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
