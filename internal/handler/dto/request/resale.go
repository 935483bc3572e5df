package request

import "github.com/google/uuid"

type PublishOfferRequest struct {
	TicketID uuid.UUID `json:"ticket_id" binding:"required"`
	Price    float64   `json:"price" binding:"required,gt=0"`
}
