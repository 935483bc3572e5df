package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNegativeDeposit = errors.New("deposit cannot be negative")
	ErrInvalidStatus   = errors.New("invalid booking status")
	ErrZeroEventDate   = errors.New("booking date is required")
)

// Booking is a table reservation at a venue. Status changes only
// through Apply, which routes every event through the lifecycle
// transition table.
type Booking struct {
	id            uuid.UUID
	userID        uuid.UUID
	venueID       uuid.UUID
	venueName     string
	tableID       uuid.UUID
	tableName     string
	date          time.Time
	depositAmount float64
	status        Status
	hold          *Hold
	createdAt     time.Time
	updatedAt     time.Time
}

func NewBooking(
	userID, venueID, tableID uuid.UUID,
	venueName, tableName string,
	date time.Time,
	depositAmount float64,
	status Status,
	hold *Hold,
	now time.Time,
) (*Booking, error) {
	if date.IsZero() {
		return nil, ErrZeroEventDate
	}
	if depositAmount < 0 {
		return nil, ErrNegativeDeposit
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	return &Booking{
		id:            uuid.New(),
		userID:        userID,
		venueID:       venueID,
		venueName:     venueName,
		tableID:       tableID,
		tableName:     tableName,
		date:          date,
		depositAmount: depositAmount,
		status:        status,
		hold:          hold,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructBooking(
	id, userID, venueID, tableID uuid.UUID,
	venueName, tableName string,
	date time.Time,
	depositAmount float64,
	status Status,
	hold *Hold,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:            id,
		userID:        userID,
		venueID:       venueID,
		venueName:     venueName,
		tableID:       tableID,
		tableName:     tableName,
		date:          date,
		depositAmount: depositAmount,
		status:        status,
		hold:          hold,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// Apply feeds an event into the lifecycle. Events the current status
// does not accept leave the booking untouched and return false.
func (b *Booking) Apply(event Event, now time.Time) bool {
	next, accepted := Transition(b.status, event)
	if !accepted {
		return false
	}
	b.status = next
	b.updatedAt = now
	return true
}

func (b *Booking) IsActive() bool {
	return !b.status.IsTerminal()
}

func (b *Booking) ID() uuid.UUID          { return b.id }
func (b *Booking) UserID() uuid.UUID      { return b.userID }
func (b *Booking) VenueID() uuid.UUID     { return b.venueID }
func (b *Booking) VenueName() string      { return b.venueName }
func (b *Booking) TableID() uuid.UUID     { return b.tableID }
func (b *Booking) TableName() string      { return b.tableName }
func (b *Booking) Date() time.Time        { return b.date }
func (b *Booking) DepositAmount() float64 { return b.depositAmount }
func (b *Booking) Status() Status         { return b.status }
func (b *Booking) Hold() *Hold            { return b.hold }
func (b *Booking) CreatedAt() time.Time   { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time   { return b.updatedAt }
