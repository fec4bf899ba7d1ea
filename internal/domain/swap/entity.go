package swap

import "time"

// Status of a shift swap request
type Status string

const (
	StatusAngefragt     Status = "ANGEFRAGT"
	StatusAngenommen    Status = "ANGENOMMEN"
	StatusGenehmigt     Status = "GENEHMIGT"
	StatusAbgelehnt     Status = "ABGELEHNT"
	StatusStorniert     Status = "STORNIERT"
	StatusAbgeschlossen Status = "ABGESCHLOSSEN"
)

// ShiftSwapRequest asks a target employee to take over the requester's
// shift. When TargetShiftID is set the trade is two-way and both shifts
// change owner atomically.
type ShiftSwapRequest struct {
	ID            string
	WorkspaceID   string
	ShiftID       string
	TargetShiftID *string
	RequesterID   string
	TargetID      *string
	Status        Status
	ReviewNote    *string
	ReviewedAt    *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsTwoWay reports whether both shifts change owner.
func (r *ShiftSwapRequest) IsTwoWay() bool {
	return r.TargetShiftID != nil
}
