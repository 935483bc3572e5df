package response

import (
	"time"

	"venue-ops/internal/usecase/commands"

	"github.com/google/uuid"
)

type OfferResponse struct {
	OfferID   uuid.UUID `json:"offerId"`
	TicketID  uuid.UUID `json:"ticketId"`
	Price     float64   `json:"price"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type PriceCapResponse struct {
	TicketID  uuid.UUID `json:"ticketId"`
	FaceValue float64   `json:"faceValue"`
	Cap       float64   `json:"cap"`
}

func FromPublishOffer(result *commands.PublishOfferResult) *OfferResponse {
	return &OfferResponse{
		OfferID:   result.OfferID,
		TicketID:  result.TicketID,
		Price:     result.Price,
		Status:    string(result.Status),
		CreatedAt: result.CreatedAt,
	}
}

func FromPriceCap(result *commands.PriceCapResult) *PriceCapResponse {
	return &PriceCapResponse{
		TicketID:  result.TicketID,
		FaceValue: result.FaceValue,
		Cap:       result.Cap,
	}
}
