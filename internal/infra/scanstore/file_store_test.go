//go:build unit

package scanstore_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"venue-ops/internal/domain/checkin"
	"venue-ops/internal/infra/scanstore"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScanEvent(code string) checkin.ScanEvent {
	return checkin.ScanEvent{
		ID:         uuid.New(),
		Code:       code,
		VenueID:    "venue-1",
		EntranceID: "main",
		DeviceID:   "device-1",
		ScannedAt:  time.Date(2026, 9, 4, 23, 30, 0, 0, time.UTC),
		Result:     checkin.ResultOfflineQueued,
	}
}

func storePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "offline_scans.json")
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := storePath(t)

	guest := "Ayesha"
	party := 4
	first := newScanEvent("qr-001")
	first.GuestName = &guest
	first.PartySize = &party
	second := newScanEvent("qr-002")

	store := scanstore.NewFileStore(path)
	require.NoError(t, store.Record(first))
	require.NoError(t, store.Record(second))

	reloaded := scanstore.NewFileStore(path)

	if diff := cmp.Diff(store.Pending(), reloaded.Pending()); diff != "" {
		t.Errorf("reloaded queue mismatch (-want +got):\n%s", diff)
	}
	require.Len(t, reloaded.Pending(), 2)
	assert.Equal(t, first.ID, reloaded.Pending()[0].ID)
	assert.Equal(t, second.ID, reloaded.Pending()[1].ID)
}

func TestFileStoreStartsEmpty(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		store := scanstore.NewFileStore(storePath(t))
		assert.Empty(t, store.Pending())
	})

	t.Run("corrupt file", func(t *testing.T) {
		path := storePath(t)
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

		store := scanstore.NewFileStore(path)
		assert.Empty(t, store.Pending())

		// the store is still usable and re-establishes durability
		require.NoError(t, store.Record(newScanEvent("qr-001")))
		assert.Len(t, scanstore.NewFileStore(path).Pending(), 1)
	})
}

func TestFileStoreEvictsOldestFirst(t *testing.T) {
	store := scanstore.NewFileStore(storePath(t))

	events := make([]checkin.ScanEvent, scanstore.MaxEvents+1)
	for i := range events {
		events[i] = newScanEvent(fmt.Sprintf("qr-%04d", i))
		require.NoError(t, store.Record(events[i]))
	}

	pending := store.Pending()
	require.Len(t, pending, scanstore.MaxEvents)

	// the very first event is gone, the newest survives
	assert.NotEqual(t, events[0].ID, pending[0].ID)
	assert.Equal(t, events[1].ID, pending[0].ID)
	assert.Equal(t, events[len(events)-1].ID, pending[len(pending)-1].ID)

	// relative order of the retained events is preserved
	for i := 1; i < len(pending); i++ {
		assert.Equal(t, events[i+1].ID, pending[i].ID)
	}
}

func TestFileStoreRemove(t *testing.T) {
	store := scanstore.NewFileStore(storePath(t))

	first := newScanEvent("qr-001")
	second := newScanEvent("qr-002")
	third := newScanEvent("qr-003")
	require.NoError(t, store.Record(first))
	require.NoError(t, store.Record(second))
	require.NoError(t, store.Record(third))

	t.Run("removes exactly the given ids", func(t *testing.T) {
		require.NoError(t, store.Remove([]uuid.UUID{first.ID, third.ID}))

		pending := store.Pending()
		require.Len(t, pending, 1)
		assert.Equal(t, second.ID, pending[0].ID)
	})

	t.Run("unknown ids are ignored", func(t *testing.T) {
		require.NoError(t, store.Remove([]uuid.UUID{uuid.New()}))
		assert.Len(t, store.Pending(), 1)
	})

	t.Run("events recorded after the snapshot survive", func(t *testing.T) {
		snapshot := store.Pending()
		late := newScanEvent("qr-004")
		require.NoError(t, store.Record(late))

		ids := make([]uuid.UUID, 0, len(snapshot))
		for _, ev := range snapshot {
			ids = append(ids, ev.ID)
		}
		require.NoError(t, store.Remove(ids))

		pending := store.Pending()
		require.Len(t, pending, 1)
		assert.Equal(t, late.ID, pending[0].ID)
	})
}

func TestFileStoreClearAll(t *testing.T) {
	path := storePath(t)
	store := scanstore.NewFileStore(path)

	require.NoError(t, store.Record(newScanEvent("qr-001")))
	require.NoError(t, store.ClearAll())

	assert.Empty(t, store.Pending())
	assert.Empty(t, scanstore.NewFileStore(path).Pending())
}
