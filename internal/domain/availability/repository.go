package availability

import (
	"context"
	"time"
)

// AvailabilityRepository defines the availability persistence interface
type AvailabilityRepository interface {
	// FindUnavailable returns NICHT_VERFUEGBAR entries of the employee for
	// the given weekday whose validity range contains the given date.
	FindUnavailable(ctx context.Context, employeeID string, weekday int, date time.Time) ([]Availability, error)
}
