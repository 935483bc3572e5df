package repository

import (
	"context"
	"errors"
	"time"

	"venue-ops/internal/domain/booking"
	"venue-ops/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type VenueRepository struct {
	db *pgxpool.Pool
}

func NewVenueRepository(db *pgxpool.Pool) *VenueRepository {
	return &VenueRepository{db: db}
}

const selectVenueSQL = `
SELECT v.id, v.name, v.capacity,
	(SELECT COUNT(*) FROM bookings b
	 WHERE b.venue_id = v.id
	   AND b.booking_date::date = $2::date
	   AND b.status IN ('hold_pending', 'confirmed', 'paid')) AS booked_count
FROM venues v
WHERE v.id = $1`

// FindByID returns the venue with its booked count for the given date,
// so utilization-gated pricing rules see live occupancy.
func (r *VenueRepository) FindByID(ctx context.Context, id uuid.UUID, date time.Time) (*booking.VenueSpec, error) {
	row := r.db.QueryRow(ctx, selectVenueSQL, id, date)

	var snap booking.VenueSpec
	if err := row.Scan(&snap.ID, &snap.Name, &snap.Capacity, &snap.BookedCount); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("venue not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find venue", err)
	}
	return &snap, nil
}

const selectTableSQL = `
SELECT id, name, minimum_spend
FROM venue_tables
WHERE id = $1 AND venue_id = $2`

func (r *VenueRepository) FindTable(ctx context.Context, tableID, venueID uuid.UUID) (*booking.TableSpec, error) {
	row := r.db.QueryRow(ctx, selectTableSQL, tableID, venueID)

	var snap booking.TableSpec
	if err := row.Scan(&snap.ID, &snap.Name, &snap.MinimumSpend); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("table not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find venue table", err)
	}
	return &snap, nil
}
