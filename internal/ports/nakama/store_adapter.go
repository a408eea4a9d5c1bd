package nakama

import (
	"context"
	"encoding/json"
	"fmt"

	"hungergames/internal/ports"

	"github.com/heroiclabs/nakama-common/api"
	"github.com/heroiclabs/nakama-common/runtime"
)

// storageClient is the slice of runtime.NakamaModule the store adapter needs.
type storageClient interface {
	StorageRead(ctx context.Context, reads []*runtime.StorageRead) ([]*api.StorageObject, error)
	StorageWrite(ctx context.Context, writes []*runtime.StorageWrite) ([]*api.StorageObjectAck, error)
	StorageDelete(ctx context.Context, deletes []*runtime.StorageDelete) error
}

// NakamaMatchStore implements ports.MatchStorePort on Nakama keyed storage.
// Records live in a system-owned collection keyed by room name.
type NakamaMatchStore struct {
	nk storageClient
}

// NewNakamaMatchStore creates a new match store adapter.
func NewNakamaMatchStore(nk storageClient) *NakamaMatchStore {
	return &NakamaMatchStore{nk: nk}
}

// Get returns the match record for a room, or nil when none exists.
func (s *NakamaMatchStore) Get(ctx context.Context, key string) (*ports.MatchRecord, error) {
	objects, err := s.nk.StorageRead(ctx, []*runtime.StorageRead{
		{Collection: matchCollection, Key: key},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read match record: %w", err)
	}
	if len(objects) == 0 {
		return nil, nil
	}

	var record ports.MatchRecord
	if err := json.Unmarshal([]byte(objects[0].Value), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match record: %w", err)
	}
	return &record, nil
}

// Set writes the match record for a room, replacing any previous value.
func (s *NakamaMatchStore) Set(ctx context.Context, key string, record ports.MatchRecord) error {
	value, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal match record: %w", err)
	}

	writes := []*runtime.StorageWrite{
		{
			Collection:      matchCollection,
			Key:             key,
			Value:           string(value),
			PermissionRead:  runtime.STORAGE_PERMISSION_NO_READ,
			PermissionWrite: runtime.STORAGE_PERMISSION_NO_WRITE,
		},
	}
	if _, err := s.nk.StorageWrite(ctx, writes); err != nil {
		return fmt.Errorf("failed to write match record: %w", err)
	}
	return nil
}

// Clear removes the match record for a room.
func (s *NakamaMatchStore) Clear(ctx context.Context, key string) error {
	deletes := []*runtime.StorageDelete{
		{Collection: matchCollection, Key: key},
	}
	if err := s.nk.StorageDelete(ctx, deletes); err != nil {
		return fmt.Errorf("failed to delete match record: %w", err)
	}
	return nil
}

var _ ports.MatchStorePort = (*NakamaMatchStore)(nil)
