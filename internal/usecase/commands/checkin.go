package commands

import (
	"context"
	"log/slog"
	"sync"

	"venue-ops/internal/domain/checkin"
	"venue-ops/internal/pkg/clock"
	"venue-ops/internal/pkg/errs"

	"github.com/google/uuid"
)

// MaxRecentScans bounds the in-memory door history shown to staff.
const MaxRecentScans = 50

var (
	ErrScanPersistFailed = errs.New("failed to persist offline scan")
	ErrFlushFailed       = errs.New("failed to flush offline scans")
)

// ScanStore is the durable offline queue. Implementations serialize
// all operations internally; see scanstore.FileStore.
type ScanStore interface {
	Record(event checkin.ScanEvent) error
	Pending() []checkin.ScanEvent
	Remove(ids []uuid.UUID) error
	ClearAll() error
}

// ScanSyncer is the backend contract for door scans. SyncScans must be
// idempotent: a batch may be redelivered after an unknown-outcome
// failure, and only the returned ids are treated as accepted.
type ScanSyncer interface {
	SyncScans(ctx context.Context, events []checkin.ScanEvent) ([]uuid.UUID, error)
	VerifyScan(ctx context.Context, code, venueID, entranceID string) (checkin.Result, error)
}

// Reachability is the externally supplied connectivity signal.
type Reachability interface {
	Online() bool
}

// DeviceIdentity names this physical scanner to the backend.
type DeviceIdentity interface {
	DeviceID() string
}

type RecordScanParams struct {
	Code       string
	VenueID    string
	EntranceID string
	GuestName  *string
	PartySize  *int
}

type FlushResult struct {
	Attempted int
	Flushed   int
	Remaining int
}

type CheckInCommands interface {
	RecordScan(ctx context.Context, params RecordScanParams) (checkin.ScanEvent, error)
	FlushOffline(ctx context.Context) (*FlushResult, error)
	BindDevice(staffUserID, venueID string) checkin.DeviceBinding
	Binding() *checkin.DeviceBinding
	RecentScans() []checkin.ScanEvent
}

type checkInCommandsImpl struct {
	store        ScanStore
	syncer       ScanSyncer
	reachability Reachability
	identity     DeviceIdentity
	clock        clock.Clock

	// mu guards the recent history and the device binding only; the
	// durable store has its own serialization.
	mu      sync.Mutex
	recent  []checkin.ScanEvent
	binding *checkin.DeviceBinding
}

func NewCheckInCommands(
	store ScanStore,
	syncer ScanSyncer,
	reachability Reachability,
	identity DeviceIdentity,
	clk clock.Clock,
) CheckInCommands {
	return &checkInCommandsImpl{
		store:        store,
		syncer:       syncer,
		reachability: reachability,
		identity:     identity,
		clock:        clk,
	}
}

// RecordScan resolves the scan result (live verify when online,
// offline_queued otherwise) and records it. Offline-queued events go
// to the durable store; every event lands in the recent history. When
// the durable write fails the event is still recorded in memory and
// the error is returned for the caller to surface.
func (c *checkInCommandsImpl) RecordScan(ctx context.Context, params RecordScanParams) (checkin.ScanEvent, error) {
	result := c.resolveResult(ctx, params)

	event := checkin.ScanEvent{
		ID:         uuid.New(),
		Code:       params.Code,
		VenueID:    params.VenueID,
		EntranceID: params.EntranceID,
		DeviceID:   c.identity.DeviceID(),
		ScannedAt:  c.clock.Now(),
		Result:     result,
		GuestName:  params.GuestName,
		PartySize:  params.PartySize,
	}

	var persistErr error
	if result == checkin.ResultOfflineQueued {
		if err := c.store.Record(event); err != nil {
			persistErr = errs.Mark(err, ErrScanPersistFailed)
		}
	}

	c.mu.Lock()
	c.recent = append([]checkin.ScanEvent{event}, c.recent...)
	if len(c.recent) > MaxRecentScans {
		c.recent = c.recent[:MaxRecentScans]
	}
	c.mu.Unlock()

	return event, persistErr
}

func (c *checkInCommandsImpl) resolveResult(ctx context.Context, params RecordScanParams) checkin.Result {
	if !c.reachability.Online() {
		return checkin.ResultOfflineQueued
	}
	result, err := c.syncer.VerifyScan(ctx, params.Code, params.VenueID, params.EntranceID)
	if err != nil {
		// Backend unreachable despite the signal saying otherwise:
		// queue the scan instead of turning the guest away.
		slog.Warn("scan verify failed, queueing offline", "error", err)
		return checkin.ResultOfflineQueued
	}
	return result
}

// FlushOffline delivers the pending snapshot to the backend and
// removes exactly the accepted ids. The sync call runs outside the
// store lock, so scans recorded mid-flight are safe: they are not in
// the snapshot and id-keyed removal cannot touch them. On failure the
// store is untouched and the whole batch is retried next flush.
func (c *checkInCommandsImpl) FlushOffline(ctx context.Context) (*FlushResult, error) {
	pending := c.store.Pending()
	if len(pending) == 0 {
		return &FlushResult{}, nil
	}

	acceptedIDs, err := c.syncer.SyncScans(ctx, pending)
	if err != nil {
		return nil, errs.Mark(err, ErrFlushFailed)
	}

	if err := c.store.Remove(acceptedIDs); err != nil {
		return nil, errs.Mark(err, ErrFlushFailed)
	}

	return &FlushResult{
		Attempted: len(pending),
		Flushed:   len(acceptedIDs),
		Remaining: len(c.store.Pending()),
	}, nil
}

func (c *checkInCommandsImpl) BindDevice(staffUserID, venueID string) checkin.DeviceBinding {
	binding := checkin.DeviceBinding{
		DeviceID:    c.identity.DeviceID(),
		StaffUserID: staffUserID,
		VenueID:     venueID,
		BoundAt:     c.clock.Now(),
	}

	c.mu.Lock()
	c.binding = &binding
	c.mu.Unlock()

	return binding
}

func (c *checkInCommandsImpl) Binding() *checkin.DeviceBinding {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.binding == nil {
		return nil
	}
	b := *c.binding
	return &b
}

func (c *checkInCommandsImpl) RecentScans() []checkin.ScanEvent {
	c.mu.Lock()
	defer c.mu.Unlock()
	snapshot := make([]checkin.ScanEvent, len(c.recent))
	copy(snapshot, c.recent)
	return snapshot
}
