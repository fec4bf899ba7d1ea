package memory

import (
	"context"
	"sync"
	"time"

	"github.com/schichtwerk/schichtplan-backend-go/internal/domain/availability"
)

type AvailabilityRepository struct {
	mu      sync.RWMutex
	entries map[string]availability.Availability
}

func NewAvailabilityRepository() *AvailabilityRepository {
	return &AvailabilityRepository{entries: make(map[string]availability.Availability)}
}

// Seed stores an availability entry, assigning an ID when missing.
func (r *AvailabilityRepository) Seed(a availability.Availability) availability.Availability {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a.ID == "" {
		a.ID = newID()
	}
	r.entries[a.ID] = a
	return a
}

func (r *AvailabilityRepository) FindUnavailable(_ context.Context, employeeID string, weekday int, date time.Time) ([]availability.Availability, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	day := truncateDay(date)
	var out []availability.Availability
	for _, a := range r.entries {
		if a.EmployeeID != employeeID || a.Weekday != weekday || a.Type != availability.TypeNichtVerfuegbar {
			continue
		}
		if truncateDay(a.ValidFrom).After(day) {
			continue
		}
		if a.ValidUntil != nil && truncateDay(*a.ValidUntil).Before(day) {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}
