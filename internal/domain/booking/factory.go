package booking

import (
	"time"

	"venue-ops/internal/domain/pricing"
	"venue-ops/internal/pkg/clock"

	"github.com/google/uuid"
)

const (
	// DefaultDepositRate secures a table with 20% of the (dynamically
	// priced) minimum spend.
	DefaultDepositRate = 0.20

	// DefaultHoldTTL bounds how long inventory stays reserved while
	// payment capture is outstanding.
	DefaultHoldTTL = 15 * time.Minute
)

type VenueSpec struct {
	ID          uuid.UUID
	Name        string
	Capacity    int
	BookedCount int
}

type TableSpec struct {
	ID           uuid.UUID
	Name         string
	MinimumSpend float64
}

type Factory struct {
	Clock       clock.Clock
	DepositRate float64
	HoldTTL     time.Duration
}

func NewFactory(clk clock.Clock) *Factory {
	return &Factory{
		Clock:       clk,
		DepositRate: DefaultDepositRate,
		HoldTTL:     DefaultHoldTTL,
	}
}

// CreateBooking quotes the deposit through the pricing rule engine
// (surge nights raise the effective minimum spend, and with it the
// deposit) and opens a capture hold on that amount.
func (f *Factory) CreateBooking(
	userID uuid.UUID,
	venue VenueSpec,
	table TableSpec,
	date time.Time,
	rules []pricing.Rule,
) (*Booking, error) {
	ctx := pricing.Context{
		Date:        date,
		Capacity:    venue.Capacity,
		BookedCount: venue.BookedCount,
		BasePrice:   table.MinimumSpend,
	}
	effectiveSpend := pricing.Price(ctx, rules)
	deposit := effectiveSpend * f.DepositRate

	now := f.Clock.Now()
	hold := &Hold{
		Amount:          deposit,
		CreatedAt:       now,
		ExpiresAt:       now.Add(f.HoldTTL),
		RequiresCapture: true,
	}

	return NewBooking(
		userID,
		venue.ID,
		table.ID,
		venue.Name,
		table.Name,
		date,
		deposit,
		StatusHoldPending,
		hold,
		now,
	)
}
