package checkin

import (
	"time"

	"github.com/google/uuid"
)

type Result string

const (
	ResultSuccess       Result = "success"
	ResultDuplicate     Result = "duplicate"
	ResultInvalid       Result = "invalid"
	ResultOfflineQueued Result = "offline_queued"
)

func (r Result) IsValid() bool {
	switch r {
	case ResultSuccess, ResultDuplicate, ResultInvalid, ResultOfflineQueued:
		return true
	default:
		return false
	}
}

// ScanEvent records one door scan. Offline-queued events are persisted
// until a flush hands them to the backend; everything else only lives
// in the recent-scans history.
type ScanEvent struct {
	ID         uuid.UUID `json:"id"`
	Code       string    `json:"code"`
	VenueID    string    `json:"venue_id"`
	EntranceID string    `json:"entrance_id"`
	DeviceID   string    `json:"device_id"`
	ScannedAt  time.Time `json:"scanned_at"`
	Result     Result    `json:"result"`
	GuestName  *string   `json:"guest_name,omitempty"`
	PartySize  *int      `json:"party_size,omitempty"`
}

// DeviceBinding ties a physical scanner to a staff member and venue
// for the duration of a shift.
type DeviceBinding struct {
	DeviceID    string    `json:"device_id"`
	StaffUserID string    `json:"staff_user_id"`
	VenueID     string    `json:"venue_id"`
	BoundAt     time.Time `json:"bound_at"`
}
