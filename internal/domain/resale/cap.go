package resale

import (
	"fmt"

	"venue-ops/internal/domain/pricing"
	"venue-ops/internal/domain/ticket"
	"venue-ops/internal/pkg/clock"
)

const (
	// DefaultCapMultiplier bounds resale at 12% over face value.
	DefaultCapMultiplier = 1.12

	// Fallback occupancy used when no live figures are supplied.
	// Carried over from the app's fixed reference crowd.
	DefaultReferenceCapacity = 400
	DefaultReferenceBooked   = 320
)

// PriceAboveCapError is returned synchronously and surfaced to the
// seller as-is; it is never retried.
type PriceAboveCapError struct {
	Current float64
	Cap     float64
}

func (e *PriceAboveCapError) Error() string {
	return fmt.Sprintf("price %.2f exceeds the resale cap of %.2f", e.Current, e.Cap)
}

// Occupancy is the crowd snapshot the cap evaluation prices against.
type Occupancy struct {
	Capacity    int
	BookedCount int
}

// OccupancySource supplies the occupancy figures for a ticket's event.
// Production wires a live source; the zero-value policy falls back to
// the fixed reference crowd.
type OccupancySource interface {
	OccupancyFor(t ticket.Ticket) Occupancy
}

type fixedOccupancy Occupancy

func (f fixedOccupancy) OccupancyFor(ticket.Ticket) Occupancy { return Occupancy(f) }

// CapPolicy bounds secondary-market prices by the lower of the
// rule-derived range ceiling and a fixed multiplier over face value.
// It shares the pricing engine with deposit quoting but evaluates its
// own context, so occupancy assumptions here never leak into booking
// prices.
type CapPolicy struct {
	CapMultiplier float64
	Occupancy     OccupancySource
	Clock         clock.Clock
}

func NewCapPolicy(clk clock.Clock, occupancy OccupancySource) *CapPolicy {
	if occupancy == nil {
		occupancy = fixedOccupancy{
			Capacity:    DefaultReferenceCapacity,
			BookedCount: DefaultReferenceBooked,
		}
	}
	return &CapPolicy{
		CapMultiplier: DefaultCapMultiplier,
		Occupancy:     occupancy,
		Clock:         clk,
	}
}

func (p *CapPolicy) PriceCap(t ticket.Ticket, rules []pricing.Rule) float64 {
	occ := p.Occupancy.OccupancyFor(t)
	ctx := pricing.Context{
		Date:        t.EventDate,
		Capacity:    occ.Capacity,
		BookedCount: occ.BookedCount,
		BasePrice:   t.FaceValue,
	}

	_, upper := pricing.PriceRange(ctx, rules)
	multiplierCap := t.FaceValue * p.CapMultiplier
	if upper < multiplierCap {
		return upper
	}
	return multiplierCap
}

// ValidatePrice accepts prices up to and including the cap.
func (p *CapPolicy) ValidatePrice(price float64, t ticket.Ticket, rules []pricing.Rule) error {
	limit := p.PriceCap(t, rules)
	if price > limit {
		return &PriceAboveCapError{Current: price, Cap: limit}
	}
	return nil
}

// CreateOffer validates the asking price and returns a pending offer.
// Publishing the offer is the caller's job.
func (p *CapPolicy) CreateOffer(t ticket.Ticket, price float64, rules []pricing.Rule) (*Offer, error) {
	if err := p.ValidatePrice(price, t, rules); err != nil {
		return nil, err
	}
	return newOffer(t.ID, t.OwnerID, t.EventID, price, p.Clock.Now())
}
