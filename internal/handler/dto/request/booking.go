package request

import (
	"time"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	VenueID uuid.UUID `json:"venue_id" binding:"required"`
	TableID uuid.UUID `json:"table_id" binding:"required"`
	Date    time.Time `json:"date" binding:"required"`
}

type CancelBookingRequest struct {
	// Optional reason, recorded in logs only.
	Reason *string `json:"reason,omitempty"`
}
