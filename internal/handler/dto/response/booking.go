package response

import (
	"time"

	"venue-ops/internal/usecase/commands"
	"venue-ops/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingCreatedResponse struct {
	BookingID     uuid.UUID `json:"bookingId"`
	Status        string    `json:"status"`
	DepositAmount float64   `json:"depositAmount"`
	HoldExpiresAt time.Time `json:"holdExpiresAt"`
}

type BookingEventResponse struct {
	BookingID uuid.UUID `json:"bookingId"`
	Status    string    `json:"status"`
	Accepted  bool      `json:"accepted"`
}

type BookingResponse struct {
	ID            uuid.UUID  `json:"id"`
	UserID        uuid.UUID  `json:"userId"`
	VenueID       uuid.UUID  `json:"venueId"`
	VenueName     string     `json:"venueName"`
	TableID       uuid.UUID  `json:"tableId"`
	TableName     string     `json:"tableName"`
	Date          time.Time  `json:"date"`
	DepositAmount float64    `json:"depositAmount"`
	Status        string     `json:"status"`
	HoldExpiresAt *time.Time `json:"holdExpiresAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

type BookingListResponse struct {
	ID            uuid.UUID `json:"id"`
	VenueName     string    `json:"venueName"`
	TableName     string    `json:"tableName"`
	Date          time.Time `json:"date"`
	DepositAmount float64   `json:"depositAmount"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

func FromBookingCreated(result *commands.CreateBookingResult) *BookingCreatedResponse {
	return &BookingCreatedResponse{
		BookingID:     result.BookingID,
		Status:        result.Status.String(),
		DepositAmount: result.DepositAmount,
		HoldExpiresAt: result.HoldExpiresAt,
	}
}

func FromBookingEvent(result *commands.ApplyEventResult) *BookingEventResponse {
	return &BookingEventResponse{
		BookingID: result.BookingID,
		Status:    result.Status.String(),
		Accepted:  result.Accepted,
	}
}

func FromBookingView(view *queries.BookingView) *BookingResponse {
	resp := &BookingResponse{}
	_ = copier.Copy(resp, view)
	return resp
}

func FromBookingList(items []*queries.BookingListItem) []*BookingListResponse {
	responses := make([]*BookingListResponse, 0, len(items))
	_ = copier.Copy(&responses, &items)
	return responses
}
