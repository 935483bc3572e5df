package scanstore

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"venue-ops/internal/domain/checkin"
	"venue-ops/internal/infra"

	"github.com/google/uuid"
)

// MaxEvents bounds the durable queue. On overflow the oldest events
// are dropped first.
const MaxEvents = 500

// FileStore is the durable cache for offline-queued door scans: a
// single JSON file rewritten atomically (temp file + rename) on every
// mutation. All access is serialized by one mutex; the in-memory slice
// stays authoritative even when a write fails, so a later mutation can
// re-establish durability.
type FileStore struct {
	mu     sync.Mutex
	path   string
	events []checkin.ScanEvent
}

// NewFileStore loads any previously persisted queue. A missing or
// corrupt file is not fatal: the store starts empty and logs why.
func NewFileStore(path string) *FileStore {
	s := &FileStore{path: path}
	s.loadFromDisk()
	return s
}

func (s *FileStore) Record(event checkin.ScanEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = append(s.events, event)
	if len(s.events) > MaxEvents {
		s.events = s.events[len(s.events)-MaxEvents:]
	}
	return s.persist()
}

// Pending returns a snapshot of the queued events, oldest first.
func (s *FileStore) Pending() []checkin.ScanEvent {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make([]checkin.ScanEvent, len(s.events))
	copy(snapshot, s.events)
	return snapshot
}

// Remove drops exactly the given ids. Events recorded after the
// caller's snapshot was taken are untouched, which is what makes a
// flush safe to run concurrently with new scans.
func (s *FileStore) Remove(ids []uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idSet := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		idSet[id] = struct{}{}
	}

	kept := s.events[:0]
	for _, ev := range s.events {
		if _, drop := idSet[ev.ID]; !drop {
			kept = append(kept, ev)
		}
	}
	s.events = kept
	return s.persist()
}

func (s *FileStore) ClearAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = nil
	return s.persist()
}

// persist rewrites the whole queue. Callers must hold s.mu.
func (s *FileStore) persist() error {
	data, err := json.Marshal(s.events)
	if err != nil {
		return infra.WrapRepoErr("failed to encode offline scans", err, infra.KindStorageFailure)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return infra.WrapRepoErr("failed to create scan storage directory", err, infra.KindStorageFailure)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return infra.WrapRepoErr("failed to create temp scan file", err, infra.KindStorageFailure)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return infra.WrapRepoErr("failed to write offline scans", err, infra.KindStorageFailure)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return infra.WrapRepoErr("failed to close temp scan file", err, infra.KindStorageFailure)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return infra.WrapRepoErr("failed to replace scan file", err, infra.KindStorageFailure)
	}
	return nil
}

func (s *FileStore) loadFromDisk() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("failed to read offline scan store, starting empty", "path", s.path, "error", err)
		}
		return
	}

	var decoded []checkin.ScanEvent
	if err := json.Unmarshal(data, &decoded); err != nil {
		slog.Warn("offline scan store is corrupt, starting empty", "path", s.path, "error", err)
		return
	}
	s.events = decoded
}
