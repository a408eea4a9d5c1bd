package ports

import "context"

// MatchRecord is the lightweight per-channel record that marks a simulation
// as running. Its only job is to let a stop request reach the round loop.
type MatchRecord struct {
	Active    bool   `json:"active"`
	StartedAt string `json:"started_at,omitempty"`
}

// MatchStorePort persists MatchRecords keyed by channel id. Last write wins;
// no transactional guarantees are required.
type MatchStorePort interface {
	// Get returns the record for a key, or nil when none exists.
	Get(ctx context.Context, key string) (*MatchRecord, error)

	// Set writes the record for a key, replacing any previous value.
	Set(ctx context.Context, key string, record MatchRecord) error

	// Clear removes the record for a key. Clearing a missing key is not
	// an error.
	Clear(ctx context.Context, key string) error
}
