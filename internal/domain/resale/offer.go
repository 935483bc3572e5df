package resale

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type OfferStatus string

const (
	OfferPending   OfferStatus = "pending"
	OfferActive    OfferStatus = "active"
	OfferMatched   OfferStatus = "matched"
	OfferCompleted OfferStatus = "completed"
	OfferCancelled OfferStatus = "cancelled"
)

func (s OfferStatus) IsValid() bool {
	switch s {
	case OfferPending, OfferActive, OfferMatched, OfferCompleted, OfferCancelled:
		return true
	default:
		return false
	}
}

var ErrNonPositivePrice = errors.New("offer price must be positive")

// Offer is a secondary-market listing for a previously issued ticket.
// Offers are only constructed through CapPolicy.CreateOffer, so an
// Offer that exists has already passed cap validation.
type Offer struct {
	id        uuid.UUID
	ticketID  uuid.UUID
	sellerID  uuid.UUID
	eventID   uuid.UUID
	price     float64
	status    OfferStatus
	createdAt time.Time
}

func newOffer(ticketID, sellerID, eventID uuid.UUID, price float64, createdAt time.Time) (*Offer, error) {
	if price <= 0 {
		return nil, ErrNonPositivePrice
	}
	return &Offer{
		id:        uuid.New(),
		ticketID:  ticketID,
		sellerID:  sellerID,
		eventID:   eventID,
		price:     price,
		status:    OfferPending,
		createdAt: createdAt,
	}, nil
}

func ReconstructOffer(
	id, ticketID, sellerID, eventID uuid.UUID,
	price float64,
	status OfferStatus,
	createdAt time.Time,
) *Offer {
	return &Offer{
		id:        id,
		ticketID:  ticketID,
		sellerID:  sellerID,
		eventID:   eventID,
		price:     price,
		status:    status,
		createdAt: createdAt,
	}
}

func (o *Offer) ID() uuid.UUID        { return o.id }
func (o *Offer) TicketID() uuid.UUID  { return o.ticketID }
func (o *Offer) SellerID() uuid.UUID  { return o.sellerID }
func (o *Offer) EventID() uuid.UUID   { return o.eventID }
func (o *Offer) Price() float64       { return o.price }
func (o *Offer) Status() OfferStatus  { return o.status }
func (o *Offer) CreatedAt() time.Time { return o.createdAt }
