package repository

import (
	"context"
	"errors"

	"venue-ops/internal/domain/ticket"
	"venue-ops/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TicketRepository struct {
	db *pgxpool.Pool
}

func NewTicketRepository(db *pgxpool.Pool) *TicketRepository {
	return &TicketRepository{db: db}
}

const selectTicketSQL = `
SELECT id, owner_id, event_id, venue_id, event_date, face_value, status, qr_code
FROM tickets
WHERE id = $1`

func (r *TicketRepository) FindByID(ctx context.Context, id uuid.UUID) (*ticket.Ticket, error) {
	row := r.db.QueryRow(ctx, selectTicketSQL, id)

	var t ticket.Ticket
	var status string
	err := row.Scan(&t.ID, &t.OwnerID, &t.EventID, &t.VenueID, &t.EventDate, &t.FaceValue, &status, &t.QRCode)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("ticket not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find ticket", err)
	}
	t.Status = ticket.Status(status)
	return &t, nil
}
