package readstore

import (
	"context"
	"errors"

	"venue-ops/internal/infra"
	"venue-ops/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingReadStore struct {
	db *pgxpool.Pool
}

func NewBookingReadStore(db *pgxpool.Pool) *BookingReadStore {
	return &BookingReadStore{db: db}
}

const selectBookingViewSQL = `
SELECT id, user_id, venue_id, venue_name, table_id, table_name,
	booking_date, deposit_amount, status, hold_expires_at,
	created_at, updated_at
FROM bookings
WHERE id = $1`

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row := r.db.QueryRow(ctx, selectBookingViewSQL, id)

	var view queries.BookingView
	err := row.Scan(
		&view.ID, &view.UserID, &view.VenueID, &view.VenueName,
		&view.TableID, &view.TableName,
		&view.Date, &view.DepositAmount, &view.Status, &view.HoldExpiresAt,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking view", err)
	}
	return &view, nil
}

const selectBookingsByUserSQL = `
SELECT id, venue_name, table_name, booking_date, deposit_amount, status, created_at
FROM bookings
WHERE user_id = $1
ORDER BY created_at DESC, id DESC
LIMIT $2`

func (r *BookingReadStore) FindByUserID(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	rows, err := r.db.Query(ctx, selectBookingsByUserSQL, userID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var items []*queries.BookingListItem
	for rows.Next() {
		var item queries.BookingListItem
		err := rows.Scan(
			&item.ID, &item.VenueName, &item.TableName,
			&item.Date, &item.DepositAmount, &item.Status, &item.CreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}
	return items, nil
}
