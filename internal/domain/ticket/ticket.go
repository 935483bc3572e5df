package ticket

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusValid    Status = "valid"
	StatusUsed     Status = "used"
	StatusExpired  Status = "expired"
	StatusRevoked  Status = "revoked"
	StatusRelisted Status = "relisted"
)

// Ticket is a read-side snapshot of an issued event ticket. Ticket
// issuance and storage live with an external store; the operations
// engine only consumes these values (resale capping, door scans).
type Ticket struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	EventID   uuid.UUID `json:"event_id"`
	VenueID   uuid.UUID `json:"venue_id"`
	EventDate time.Time `json:"event_date"`
	FaceValue float64   `json:"face_value"`
	Status    Status    `json:"status"`
	QRCode    string    `json:"qr_code"`
}
