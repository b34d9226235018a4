// internal/store/store.go
//
// Persistence interface for live rounds.
// A round lives in the store between browser requests and expires after a TTL;
// nothing here outlives the round itself.
//
// Implementations:
//   - memory (this package): map + RWMutex, expiry checked on read.
//   - redis (redis.go): JSON snapshots under wdle:round:<id> with SET ... EX.

package store

import (
	"context"
	"errors"

	"github.com/nickofolas/wdle/internal/game"
)

// ErrNotFound is returned when a round id is unknown or expired.
var ErrNotFound = errors.New("store: round not found")

// Store defines the persistence interface for live rounds.
type Store interface {
	// Save persists or replaces a round snapshot and refreshes its TTL.
	Save(ctx context.Context, s game.Snapshot) error

	// Get retrieves a snapshot by round id.
	// Returns ErrNotFound if the round is missing or expired.
	Get(ctx context.Context, id string) (game.Snapshot, error)

	// Delete removes a round. Deleting a missing round is not an error.
	Delete(ctx context.Context, id string) error
}
