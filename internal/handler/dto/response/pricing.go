package response

import (
	"time"

	"venue-ops/internal/usecase/queries"

	"github.com/google/uuid"
)

type QuoteResponse struct {
	VenueID        uuid.UUID `json:"venueId"`
	TableID        uuid.UUID `json:"tableId"`
	Date           time.Time `json:"date"`
	BasePrice      float64   `json:"basePrice"`
	EffectivePrice float64   `json:"effectivePrice"`
	DepositAmount  float64   `json:"depositAmount"`
	MinPrice       float64   `json:"minPrice"`
	MaxPrice       float64   `json:"maxPrice"`
	Utilization    float64   `json:"utilization"`
}

func FromQuoteView(view *queries.QuoteView) *QuoteResponse {
	return &QuoteResponse{
		VenueID:        view.VenueID,
		TableID:        view.TableID,
		Date:           view.Date,
		BasePrice:      view.BasePrice,
		EffectivePrice: view.EffectivePrice,
		DepositAmount:  view.DepositAmount,
		MinPrice:       view.MinPrice,
		MaxPrice:       view.MaxPrice,
		Utilization:    view.Utilization,
	}
}
