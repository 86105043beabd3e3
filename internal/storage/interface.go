package storage

import "github.com/ewanmak/junket/internal/models"

// Provider persists the whole plan state. Writes replace the stored
// state wholesale; there are no partial updates.
//
// Concurrency note:
//   - Providers are not safe for concurrent use by multiple goroutines
//     without external synchronization.
//   - Running multiple junket processes against the same data path is
//     last-writer-wins: concurrent sessions will clobber each other's
//     writes. There is no locking or conflict detection.
type Provider interface {
	// Init creates a fresh store seeded with the default dataset.
	Init() error
	// Load restores the persisted state. An absent or unreadable
	// store yields the seed dataset, never an error to the caller.
	Load() (*models.Plan, error)
	// Save replaces the persisted state with the given plan.
	Save(*models.Plan) error
	Close() error
	// DataPath returns the path of the backing store.
	DataPath() string
}
