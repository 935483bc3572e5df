package repository

import (
	"context"

	"venue-ops/internal/domain/resale"
	"venue-ops/internal/infra"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ResaleOfferRepository struct {
	db *pgxpool.Pool
}

func NewResaleOfferRepository(db *pgxpool.Pool) *ResaleOfferRepository {
	return &ResaleOfferRepository{db: db}
}

const insertOfferSQL = `
INSERT INTO resale_offers (id, ticket_id, seller_id, event_id, price, status, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7)`

// Create publishes a validated offer. The domain guarantees the price
// already cleared the cap.
func (r *ResaleOfferRepository) Create(ctx context.Context, o *resale.Offer) error {
	_, err := r.db.Exec(ctx, insertOfferSQL,
		o.ID(), o.TicketID(), o.SellerID(), o.EventID(),
		o.Price(), string(o.Status()), o.CreatedAt(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("offer already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create resale offer", err)
	}
	return nil
}
