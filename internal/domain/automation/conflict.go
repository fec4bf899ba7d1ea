package automation

// ConflictType tags the kind of scheduling conflict found for a proposed
// shift assignment.
type ConflictType string

const (
	ConflictOverlap     ConflictType = "OVERLAP"
	ConflictAbsence     ConflictType = "ABSENCE"
	ConflictUnavailable ConflictType = "UNAVAILABLE"
	ConflictRestPeriod  ConflictType = "REST_PERIOD"
)

// ShiftConflict is one reason a proposed assignment is blocked. Message is
// user-facing German, legally worded where a statute applies. ConflictID
// names the conflicting record (shift, absence, availability) when there is
// one.
type ShiftConflict struct {
	Type       ConflictType `json:"type"`
	Message    string       `json:"message"`
	ConflictID string       `json:"conflict_id,omitempty"`
}
