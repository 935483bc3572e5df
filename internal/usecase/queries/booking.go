package queries

import (
	"context"
	"time"

	"venue-ops/internal/infra"
	"venue-ops/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrQueryFailed     = errs.New("query failed")
)

// Read models (DTO for read side)
type BookingView struct {
	ID            uuid.UUID  `json:"id"`
	UserID        uuid.UUID  `json:"user_id"`
	VenueID       uuid.UUID  `json:"venue_id"`
	VenueName     string     `json:"venue_name"`
	TableID       uuid.UUID  `json:"table_id"`
	TableName     string     `json:"table_name"`
	Date          time.Time  `json:"date"`
	DepositAmount float64    `json:"deposit_amount"`
	Status        string     `json:"status"`
	HoldExpiresAt *time.Time `json:"hold_expires_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type BookingListItem struct {
	ID            uuid.UUID `json:"id"`
	VenueName     string    `json:"venue_name"`
	TableName     string    `json:"table_name"`
	Date          time.Time `json:"date"`
	DepositAmount float64   `json:"deposit_amount"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit int32) ([]*BookingListItem, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit int32) ([]*BookingListItem, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, limit int32) ([]*BookingListItem, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	items, err := q.store.FindByUserID(ctx, userID, limit)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return items, nil
}
