// Package slotlock serializes booking attempts for a single doctor slot.
// The database's unique index on active appointments remains the source of
// truth; the lock exists so concurrent requests for the same slot queue up
// instead of racing to a unique-violation rollback.
package slotlock

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrNotAcquired is returned when a slot lock is already held and the
// locker does not wait for it.
var ErrNotAcquired = errors.New("slot lock not acquired")

// Locker guards a critical section keyed by slot.
type Locker interface {
	WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error
}

// Key builds the lock key for one doctor slot.
func Key(doctorID uuid.UUID, date string, slot string) string {
	return fmt.Sprintf("lock:slot:%s:%s:%s", doctorID, date, slot)
}
