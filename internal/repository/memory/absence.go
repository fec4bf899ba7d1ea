package memory

import (
	"context"
	"sync"
	"time"

	"github.com/schichtwerk/schichtplan-backend-go/internal/domain/absence"
)

type AbsenceRepository struct {
	mu       sync.RWMutex
	absences map[string]absence.AbsenceRequest
}

func NewAbsenceRepository() *AbsenceRepository {
	return &AbsenceRepository{absences: make(map[string]absence.AbsenceRequest)}
}

// Seed stores an absence request, assigning an ID when missing.
func (r *AbsenceRepository) Seed(a absence.AbsenceRequest) absence.AbsenceRequest {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a.ID == "" {
		a.ID = newID()
	}
	if a.Status == "" {
		a.Status = absence.StatusAusstehend
	}
	r.absences[a.ID] = a
	return a
}

func (r *AbsenceRepository) GetByID(_ context.Context, id string) (*absence.AbsenceRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.absences[id]
	if !ok {
		return nil, absence.ErrAbsenceNotFound
	}
	return &a, nil
}

func (r *AbsenceRepository) FindApprovedOnDate(_ context.Context, employeeID string, date time.Time) ([]absence.AbsenceRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []absence.AbsenceRequest
	for _, a := range r.absences {
		if a.EmployeeID == employeeID && a.Status == absence.StatusGenehmigt &&
			dayInRange(date, a.StartDate, a.EndDate) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *AbsenceRepository) Approve(_ context.Context, id, reviewNote string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.absences[id]
	if !ok {
		return absence.ErrAbsenceNotFound
	}
	now := time.Now()
	a.Status = absence.StatusGenehmigt
	a.ReviewNote = &reviewNote
	a.ReviewedAt = &now
	a.UpdatedAt = now
	r.absences[id] = a
	return nil
}
