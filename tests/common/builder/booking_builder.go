//go:build unit

package builder

import (
	"time"

	reqdto "venue-ops/internal/handler/dto/request"
	"venue-ops/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	VenueID       uuid.UUID
	VenueName     string
	TableID       uuid.UUID
	TableName     string
	Date          time.Time
	DepositAmount float64
	Status        string
	HoldExpiresAt *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now().UTC()
	return &BookingBuilder{
		ID:            uuid.New(),
		UserID:        uuid.New(),
		VenueID:       uuid.New(),
		VenueName:     "Vault 21",
		TableID:       uuid.New(),
		TableName:     "Mezzanine 4",
		Date:          time.Date(2026, 9, 4, 22, 0, 0, 0, time.UTC),
		DepositAmount: 300,
		Status:        "confirmed",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		VenueID: b.VenueID,
		TableID: b.TableID,
		Date:    b.Date,
	}
}

func (b *BookingBuilder) BuildViewQuery() *queries.BookingView {
	return &queries.BookingView{
		ID:            b.ID,
		UserID:        b.UserID,
		VenueID:       b.VenueID,
		VenueName:     b.VenueName,
		TableID:       b.TableID,
		TableName:     b.TableName,
		Date:          b.Date,
		DepositAmount: b.DepositAmount,
		Status:        b.Status,
		HoldExpiresAt: b.HoldExpiresAt,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildListItem() *queries.BookingListItem {
	return &queries.BookingListItem{
		ID:            b.ID,
		VenueName:     b.VenueName,
		TableName:     b.TableName,
		Date:          b.Date,
		DepositAmount: b.DepositAmount,
		Status:        b.Status,
		CreatedAt:     b.CreatedAt,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithID(id uuid.UUID) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) WithUserID(userID uuid.UUID) *BookingBuilder {
	b.UserID = userID
	return b
}

func (b *BookingBuilder) WithStatus(status string) *BookingBuilder {
	b.Status = status
	return b
}
