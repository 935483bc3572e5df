//go:build unit

package commands_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"venue-ops/internal/domain/checkin"
	"venue-ops/internal/pkg/clock"
	"venue-ops/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeScanStore struct {
	mu        sync.Mutex
	events    []checkin.ScanEvent
	recordErr error
}

func (s *fakeScanStore) Record(event checkin.ScanEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.recordErr != nil {
		return s.recordErr
	}
	s.events = append(s.events, event)
	return nil
}

func (s *fakeScanStore) Pending() []checkin.ScanEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := make([]checkin.ScanEvent, len(s.events))
	copy(snapshot, s.events)
	return snapshot
}

func (s *fakeScanStore) Remove(ids []uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	drop := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}
	kept := s.events[:0]
	for _, ev := range s.events {
		if _, ok := drop[ev.ID]; !ok {
			kept = append(kept, ev)
		}
	}
	s.events = kept
	return nil
}

func (s *fakeScanStore) ClearAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = nil
	return nil
}

type fakeSyncer struct {
	verifyResult checkin.Result
	verifyErr    error
	syncErr      error

	// accept decides which ids the backend acknowledges; nil accepts all.
	accept func(checkin.ScanEvent) bool

	// onSync runs during SyncScans, before returning, to simulate
	// concurrent activity while the network call is outstanding.
	onSync func()
}

func (f *fakeSyncer) SyncScans(_ context.Context, events []checkin.ScanEvent) ([]uuid.UUID, error) {
	if f.onSync != nil {
		f.onSync()
	}
	if f.syncErr != nil {
		return nil, f.syncErr
	}
	var accepted []uuid.UUID
	for _, ev := range events {
		if f.accept == nil || f.accept(ev) {
			accepted = append(accepted, ev.ID)
		}
	}
	return accepted, nil
}

func (f *fakeSyncer) VerifyScan(context.Context, string, string, string) (checkin.Result, error) {
	if f.verifyErr != nil {
		return "", f.verifyErr
	}
	return f.verifyResult, nil
}

type fakeReachability struct{ online bool }

func (r *fakeReachability) Online() bool { return r.online }

type fakeIdentity struct{ id string }

func (i *fakeIdentity) DeviceID() string { return i.id }

type checkInFixture struct {
	store    *fakeScanStore
	syncer   *fakeSyncer
	reach    *fakeReachability
	clock    *clock.MockClock
	commands commands.CheckInCommands
}

func newCheckInFixture(online bool) *checkInFixture {
	f := &checkInFixture{
		store:  &fakeScanStore{},
		syncer: &fakeSyncer{verifyResult: checkin.ResultSuccess},
		reach:  &fakeReachability{online: online},
		clock:  clock.NewMockClock(time.Date(2026, 9, 4, 23, 0, 0, 0, time.UTC)),
	}
	f.commands = commands.NewCheckInCommands(
		f.store, f.syncer, f.reach, &fakeIdentity{id: "door-7"}, f.clock,
	)
	return f
}

func scanParams(code string) commands.RecordScanParams {
	return commands.RecordScanParams{
		Code:       code,
		VenueID:    "venue-1",
		EntranceID: "main",
	}
}

func TestRecordScan(t *testing.T) {
	t.Run("online scans verify against the backend and skip the queue", func(t *testing.T) {
		f := newCheckInFixture(true)

		event, err := f.commands.RecordScan(context.Background(), scanParams("qr-001"))
		require.NoError(t, err)

		assert.Equal(t, checkin.ResultSuccess, event.Result)
		assert.Equal(t, "door-7", event.DeviceID)
		assert.Empty(t, f.store.Pending())
		assert.Len(t, f.commands.RecentScans(), 1)
	})

	t.Run("duplicate verdict is passed through", func(t *testing.T) {
		f := newCheckInFixture(true)
		f.syncer.verifyResult = checkin.ResultDuplicate

		event, err := f.commands.RecordScan(context.Background(), scanParams("qr-001"))
		require.NoError(t, err)

		assert.Equal(t, checkin.ResultDuplicate, event.Result)
		assert.Empty(t, f.store.Pending())
	})

	t.Run("offline scans are queued durably", func(t *testing.T) {
		f := newCheckInFixture(false)

		event, err := f.commands.RecordScan(context.Background(), scanParams("qr-001"))
		require.NoError(t, err)

		assert.Equal(t, checkin.ResultOfflineQueued, event.Result)
		require.Len(t, f.store.Pending(), 1)
		assert.Equal(t, event.ID, f.store.Pending()[0].ID)
	})

	t.Run("verify failure falls back to queueing", func(t *testing.T) {
		f := newCheckInFixture(true)
		f.syncer.verifyErr = errors.New("connection reset")

		event, err := f.commands.RecordScan(context.Background(), scanParams("qr-001"))
		require.NoError(t, err)

		assert.Equal(t, checkin.ResultOfflineQueued, event.Result)
		assert.Len(t, f.store.Pending(), 1)
	})

	t.Run("persist failure surfaces but keeps the scan in memory", func(t *testing.T) {
		f := newCheckInFixture(false)
		f.store.recordErr = errors.New("disk full")

		event, err := f.commands.RecordScan(context.Background(), scanParams("qr-001"))

		assert.ErrorIs(t, err, commands.ErrScanPersistFailed)
		assert.Equal(t, checkin.ResultOfflineQueued, event.Result)
		require.Len(t, f.commands.RecentScans(), 1)
		assert.Equal(t, event.ID, f.commands.RecentScans()[0].ID)
	})

	t.Run("recent history is newest first and trimmed", func(t *testing.T) {
		f := newCheckInFixture(true)

		var last checkin.ScanEvent
		for i := 0; i < commands.MaxRecentScans+10; i++ {
			var err error
			last, err = f.commands.RecordScan(context.Background(), scanParams("qr"))
			require.NoError(t, err)
		}

		recent := f.commands.RecentScans()
		require.Len(t, recent, commands.MaxRecentScans)
		assert.Equal(t, last.ID, recent[0].ID)
	})
}

func TestFlushOffline(t *testing.T) {
	t.Run("empty queue is a no-op", func(t *testing.T) {
		f := newCheckInFixture(false)

		result, err := f.commands.FlushOffline(context.Background())
		require.NoError(t, err)

		assert.Equal(t, &commands.FlushResult{}, result)
	})

	t.Run("accepted events are removed", func(t *testing.T) {
		f := newCheckInFixture(false)
		for i := 0; i < 3; i++ {
			_, err := f.commands.RecordScan(context.Background(), scanParams("qr"))
			require.NoError(t, err)
		}

		result, err := f.commands.FlushOffline(context.Background())
		require.NoError(t, err)

		assert.Equal(t, 3, result.Attempted)
		assert.Equal(t, 3, result.Flushed)
		assert.Equal(t, 0, result.Remaining)
		assert.Empty(t, f.store.Pending())
	})

	t.Run("partially accepted batch keeps the rejected events", func(t *testing.T) {
		f := newCheckInFixture(false)
		first, err := f.commands.RecordScan(context.Background(), scanParams("qr-1"))
		require.NoError(t, err)
		second, err := f.commands.RecordScan(context.Background(), scanParams("qr-2"))
		require.NoError(t, err)

		f.syncer.accept = func(ev checkin.ScanEvent) bool { return ev.ID == first.ID }

		result, err := f.commands.FlushOffline(context.Background())
		require.NoError(t, err)

		assert.Equal(t, 2, result.Attempted)
		assert.Equal(t, 1, result.Flushed)
		assert.Equal(t, 1, result.Remaining)
		require.Len(t, f.store.Pending(), 1)
		assert.Equal(t, second.ID, f.store.Pending()[0].ID)
	})

	t.Run("sync failure leaves the queue untouched for retry", func(t *testing.T) {
		f := newCheckInFixture(false)
		_, err := f.commands.RecordScan(context.Background(), scanParams("qr"))
		require.NoError(t, err)

		f.syncer.syncErr = errors.New("gateway timeout")

		_, err = f.commands.FlushOffline(context.Background())
		assert.ErrorIs(t, err, commands.ErrFlushFailed)
		assert.Len(t, f.store.Pending(), 1)
	})

	t.Run("scans recorded mid-flush are never lost", func(t *testing.T) {
		f := newCheckInFixture(false)
		for i := 0; i < 5; i++ {
			_, err := f.commands.RecordScan(context.Background(), scanParams("qr"))
			require.NoError(t, err)
		}

		var midFlight checkin.ScanEvent
		f.syncer.onSync = func() {
			var err error
			midFlight, err = f.commands.RecordScan(context.Background(), scanParams("qr-late"))
			require.NoError(t, err)
		}

		result, err := f.commands.FlushOffline(context.Background())
		require.NoError(t, err)

		assert.Equal(t, 5, result.Attempted)
		assert.Equal(t, 5, result.Flushed)
		assert.Equal(t, 1, result.Remaining)
		require.Len(t, f.store.Pending(), 1)
		assert.Equal(t, midFlight.ID, f.store.Pending()[0].ID)
	})
}

func TestBindDevice(t *testing.T) {
	f := newCheckInFixture(true)

	assert.Nil(t, f.commands.Binding())

	binding := f.commands.BindDevice("staff-42", "venue-1")

	assert.Equal(t, "door-7", binding.DeviceID)
	assert.Equal(t, "staff-42", binding.StaffUserID)
	assert.Equal(t, "venue-1", binding.VenueID)
	assert.Equal(t, f.clock.Now(), binding.BoundAt)

	stored := f.commands.Binding()
	require.NotNil(t, stored)
	assert.Equal(t, binding, *stored)
}
