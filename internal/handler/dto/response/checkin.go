package response

import (
	"time"

	"venue-ops/internal/domain/checkin"
	"venue-ops/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ScanResponse struct {
	ID         uuid.UUID `json:"id"`
	Code       string    `json:"code"`
	VenueID    string    `json:"venueId"`
	EntranceID string    `json:"entranceId"`
	DeviceID   string    `json:"deviceId"`
	ScannedAt  time.Time `json:"scannedAt"`
	Result     string    `json:"result"`
	GuestName  *string   `json:"guestName,omitempty"`
	PartySize  *int      `json:"partySize,omitempty"`
	// Durable is false when the offline store write failed and the
	// scan only survives in memory.
	Durable bool `json:"durable"`
}

type FlushResponse struct {
	Attempted int `json:"attempted"`
	Flushed   int `json:"flushed"`
	Remaining int `json:"remaining"`
}

type BindingResponse struct {
	DeviceID    string    `json:"deviceId"`
	StaffUserID string    `json:"staffUserId"`
	VenueID     string    `json:"venueId"`
	BoundAt     time.Time `json:"boundAt"`
}

type RecentScansResponse struct {
	Scans []*ScanResponse `json:"scans"`
}

func FromScanEvent(event checkin.ScanEvent, durable bool) *ScanResponse {
	return &ScanResponse{
		ID:         event.ID,
		Code:       event.Code,
		VenueID:    event.VenueID,
		EntranceID: event.EntranceID,
		DeviceID:   event.DeviceID,
		ScannedAt:  event.ScannedAt,
		Result:     string(event.Result),
		GuestName:  event.GuestName,
		PartySize:  event.PartySize,
		Durable:    durable,
	}
}

func FromFlushResult(result *commands.FlushResult) *FlushResponse {
	return &FlushResponse{
		Attempted: result.Attempted,
		Flushed:   result.Flushed,
		Remaining: result.Remaining,
	}
}

func FromDeviceBinding(binding checkin.DeviceBinding) *BindingResponse {
	resp := &BindingResponse{}
	_ = copier.Copy(resp, &binding)
	return resp
}

func FromRecentScans(events []checkin.ScanEvent) *RecentScansResponse {
	scans := make([]*ScanResponse, 0, len(events))
	for _, ev := range events {
		scans = append(scans, FromScanEvent(ev, true))
	}
	return &RecentScansResponse{Scans: scans}
}
