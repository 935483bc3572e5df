package repository

import (
	"context"
	"errors"
	"time"

	"venue-ops/internal/domain/booking"
	"venue-ops/internal/infra"
	"venue-ops/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{db: db}
}

const insertBookingSQL = `
INSERT INTO bookings (
	id, user_id, venue_id, venue_name, table_id, table_name,
	booking_date, deposit_amount, status,
	hold_amount, hold_created_at, hold_expires_at, hold_requires_capture,
	created_at, updated_at
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)`

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	var holdAmount *float64
	var holdCreatedAt, holdExpiresAt *time.Time
	var holdRequiresCapture *bool
	if h := b.Hold(); h != nil {
		holdAmount = &h.Amount
		holdCreatedAt = &h.CreatedAt
		holdExpiresAt = &h.ExpiresAt
		holdRequiresCapture = &h.RequiresCapture
	}

	_, err := r.db.Exec(ctx, insertBookingSQL,
		b.ID(), b.UserID(), b.VenueID(), b.VenueName(), b.TableID(), b.TableName(),
		b.Date(), b.DepositAmount(), b.Status().String(),
		holdAmount, holdCreatedAt, holdExpiresAt, holdRequiresCapture,
		b.CreatedAt(), b.UpdatedAt(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("booking already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

const selectBookingSQL = `
SELECT id, user_id, venue_id, venue_name, table_id, table_name,
	booking_date, deposit_amount, status,
	hold_amount, hold_created_at, hold_expires_at, hold_requires_capture,
	created_at, updated_at
FROM bookings
WHERE id = $1`

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row := r.db.QueryRow(ctx, selectBookingSQL, id)

	var bID, userID, venueID, tableID uuid.UUID
	var venueName, tableName, status string
	var date, createdAt, updatedAt time.Time
	var depositAmount float64
	var holdAmount *float64
	var holdCreatedAt, holdExpiresAt *time.Time
	var holdRequiresCapture *bool
	err := row.Scan(
		&bID, &userID, &venueID, &venueName, &tableID, &tableName,
		&date, &depositAmount, &status,
		&holdAmount, &holdCreatedAt, &holdExpiresAt, &holdRequiresCapture,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}

	var hold *booking.Hold
	if holdAmount != nil && holdCreatedAt != nil && holdExpiresAt != nil {
		requiresCapture := holdRequiresCapture != nil && *holdRequiresCapture
		hold = &booking.Hold{
			Amount:          *holdAmount,
			CreatedAt:       *holdCreatedAt,
			ExpiresAt:       *holdExpiresAt,
			RequiresCapture: requiresCapture,
		}
	}

	st := booking.Status(status)
	if !st.IsValid() {
		return nil, infra.WrapRepoErr("stored booking status is invalid", errs.New(status))
	}

	return booking.ReconstructBooking(
		bID, userID, venueID, tableID,
		venueName, tableName,
		date, depositAmount, st, hold,
		createdAt, updatedAt,
	), nil
}

const updateBookingStatusSQL = `
UPDATE bookings SET status = $2, updated_at = $3 WHERE id = $1`

func (r *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status, updatedAt time.Time) error {
	tag, err := r.db.Exec(ctx, updateBookingStatusSQL, id, status.String(), updatedAt)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

const selectExpiredHoldsSQL = `
SELECT id FROM bookings
WHERE status = 'hold_pending' AND hold_expires_at <= $1`

// ListExpiredHoldIDs returns bookings whose capture hold has lapsed,
// candidates for the hold-expiry sweep.
func (r *BookingRepository) ListExpiredHoldIDs(ctx context.Context, now time.Time) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, selectExpiredHoldsSQL, now)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list expired holds", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan expired hold id", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read expired holds", err)
	}
	return ids, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
