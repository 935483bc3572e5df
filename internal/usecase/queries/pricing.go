package queries

import (
	"context"
	"time"

	"venue-ops/internal/domain/booking"
	"venue-ops/internal/domain/pricing"
	"venue-ops/internal/infra"
	"venue-ops/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrVenueNotFound = errs.New("venue not found")
	ErrTableNotFound = errs.New("table not found")
)

// QuoteView is the price preview shown before a guest commits to a
// booking: what the rules do to the minimum spend and what deposit
// that implies.
type QuoteView struct {
	VenueID        uuid.UUID `json:"venue_id"`
	TableID        uuid.UUID `json:"table_id"`
	Date           time.Time `json:"date"`
	BasePrice      float64   `json:"base_price"`
	EffectivePrice float64   `json:"effective_price"`
	DepositAmount  float64   `json:"deposit_amount"`
	MinPrice       float64   `json:"min_price"`
	MaxPrice       float64   `json:"max_price"`
	Utilization    float64   `json:"utilization"`
}

type VenueReader interface {
	FindByID(ctx context.Context, id uuid.UUID, date time.Time) (*booking.VenueSpec, error)
	FindTable(ctx context.Context, tableID, venueID uuid.UUID) (*booking.TableSpec, error)
}

type RuleReader interface {
	FindByVenue(ctx context.Context, venueID uuid.UUID) ([]pricing.Rule, error)
}

type PricingQueries interface {
	Quote(ctx context.Context, venueID, tableID uuid.UUID, date time.Time) (*QuoteView, error)
}

type pricingQueriesImpl struct {
	venues VenueReader
	rules  RuleReader
}

func NewPricingQueries(venues VenueReader, rules RuleReader) PricingQueries {
	return &pricingQueriesImpl{venues: venues, rules: rules}
}

func (q *pricingQueriesImpl) Quote(ctx context.Context, venueID, tableID uuid.UUID, date time.Time) (*QuoteView, error) {
	venue, err := q.venues.FindByID(ctx, venueID, date)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	table, err := q.venues.FindTable(ctx, tableID, venueID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTableNotFound
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	rules, err := q.rules.FindByVenue(ctx, venueID)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	pctx := pricing.Context{
		Date:        date,
		Capacity:    venue.Capacity,
		BookedCount: venue.BookedCount,
		BasePrice:   table.MinimumSpend,
	}
	effective := pricing.Price(pctx, rules)
	minPrice, maxPrice := pricing.PriceRange(pctx, rules)

	return &QuoteView{
		VenueID:        venueID,
		TableID:        tableID,
		Date:           date,
		BasePrice:      table.MinimumSpend,
		EffectivePrice: effective,
		DepositAmount:  effective * booking.DefaultDepositRate,
		MinPrice:       minPrice,
		MaxPrice:       maxPrice,
		Utilization:    pctx.Utilization(),
	}, nil
}
