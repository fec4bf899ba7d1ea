// Package memory provides in-memory implementations of the domain
// repository interfaces. They back the service tests; the production wiring
// uses the postgresql package.
package memory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/schichtwerk/schichtplan-backend-go/internal/pkg/database"
)

// TxManager satisfies database.TxManager without transactional semantics;
// the fakes mutate state directly.
type TxManager struct{}

func NewTxManager() database.TxManager {
	return TxManager{}
}

func (TxManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newID() string {
	return uuid.NewString()
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

func dayInRange(d, from, to time.Time) bool {
	day := truncateDay(d)
	return !day.Before(truncateDay(from)) && !day.After(truncateDay(to))
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
