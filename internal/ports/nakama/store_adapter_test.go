package nakama

import (
	"context"
	"errors"
	"testing"

	"github.com/heroiclabs/nakama-common/api"
	"github.com/heroiclabs/nakama-common/runtime"

	"hungergames/internal/ports"
)

type mockStorage struct {
	objects []*api.StorageObject
	readErr error

	writes  []*runtime.StorageWrite
	deletes []*runtime.StorageDelete
}

func (m *mockStorage) StorageRead(ctx context.Context, reads []*runtime.StorageRead) ([]*api.StorageObject, error) {
	if m.readErr != nil {
		return nil, m.readErr
	}
	return m.objects, nil
}

func (m *mockStorage) StorageWrite(ctx context.Context, writes []*runtime.StorageWrite) ([]*api.StorageObjectAck, error) {
	m.writes = append(m.writes, writes...)
	return nil, nil
}

func (m *mockStorage) StorageDelete(ctx context.Context, deletes []*runtime.StorageDelete) error {
	m.deletes = append(m.deletes, deletes...)
	return nil
}

func TestMatchStoreGet(t *testing.T) {
	nk := &mockStorage{objects: []*api.StorageObject{
		{Value: `{"active":true,"started_at":"2024-01-01T00:00:00Z"}`},
	}}
	store := NewNakamaMatchStore(nk)

	rec, err := store.Get(context.Background(), "room-1")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if rec == nil || !rec.Active || rec.StartedAt != "2024-01-01T00:00:00Z" {
		t.Fatalf("record = %+v", rec)
	}
}

func TestMatchStoreGetMissing(t *testing.T) {
	store := NewNakamaMatchStore(&mockStorage{})

	rec, err := store.Get(context.Background(), "room-1")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if rec != nil {
		t.Fatalf("missing record should be nil, got %+v", rec)
	}
}

func TestMatchStoreGetReadError(t *testing.T) {
	store := NewNakamaMatchStore(&mockStorage{readErr: errors.New("storage down")})

	if _, err := store.Get(context.Background(), "room-1"); err == nil {
		t.Fatalf("expected read error to propagate")
	}
}

func TestMatchStoreSet(t *testing.T) {
	nk := &mockStorage{}
	store := NewNakamaMatchStore(nk)

	err := store.Set(context.Background(), "room-1", ports.MatchRecord{Active: true, StartedAt: "2024-01-01T00:00:00Z"})
	if err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if len(nk.writes) != 1 {
		t.Fatalf("writes = %d, want 1", len(nk.writes))
	}

	w := nk.writes[0]
	if w.Collection != matchCollection || w.Key != "room-1" {
		t.Fatalf("write target = %s/%s", w.Collection, w.Key)
	}
	if w.PermissionRead != runtime.STORAGE_PERMISSION_NO_READ || w.PermissionWrite != runtime.STORAGE_PERMISSION_NO_WRITE {
		t.Fatalf("records must be system-only, got read=%v write=%v", w.PermissionRead, w.PermissionWrite)
	}
	if w.Value != `{"active":true,"started_at":"2024-01-01T00:00:00Z"}` {
		t.Fatalf("value = %s", w.Value)
	}
}

func TestMatchStoreClear(t *testing.T) {
	nk := &mockStorage{}
	store := NewNakamaMatchStore(nk)

	if err := store.Clear(context.Background(), "room-1"); err != nil {
		t.Fatalf("Clear error: %v", err)
	}
	if len(nk.deletes) != 1 || nk.deletes[0].Collection != matchCollection || nk.deletes[0].Key != "room-1" {
		t.Fatalf("deletes = %+v", nk.deletes)
	}
}
