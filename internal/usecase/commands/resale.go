package commands

import (
	"context"
	"errors"
	"time"

	"venue-ops/internal/domain/pricing"
	"venue-ops/internal/domain/resale"
	"venue-ops/internal/domain/ticket"
	"venue-ops/internal/infra"
	"venue-ops/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrTicketNotFound = errs.New("ticket not found")
	ErrPriceAboveCap  = errs.New("price above resale cap")
)

type TicketRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ticket.Ticket, error)
}

type ResaleOfferRepository interface {
	Create(ctx context.Context, o *resale.Offer) error
}

type PublishOfferParams struct {
	TicketID uuid.UUID
	Price    float64
}

type PublishOfferResult struct {
	OfferID   uuid.UUID
	TicketID  uuid.UUID
	Price     float64
	Status    resale.OfferStatus
	CreatedAt time.Time
}

type PriceCapResult struct {
	TicketID  uuid.UUID
	FaceValue float64
	Cap       float64
}

type ResaleCommands interface {
	PublishOffer(ctx context.Context, params PublishOfferParams) (*PublishOfferResult, error)
	PriceCap(ctx context.Context, ticketID uuid.UUID) (*PriceCapResult, error)
}

type resaleCommandsImpl struct {
	tickets TicketRepository
	offers  ResaleOfferRepository
	rules   RuleRepository
	policy  *resale.CapPolicy
}

func NewResaleCommands(
	tickets TicketRepository,
	offers ResaleOfferRepository,
	rules RuleRepository,
	policy *resale.CapPolicy,
) ResaleCommands {
	return &resaleCommandsImpl{
		tickets: tickets,
		offers:  offers,
		rules:   rules,
		policy:  policy,
	}
}

// PublishOffer validates the asking price against the cap and, when it
// clears, persists a pending offer. A PriceAboveCapError is returned
// to the caller unchanged so the exact cap can be shown to the seller.
func (c *resaleCommandsImpl) PublishOffer(ctx context.Context, params PublishOfferParams) (*PublishOfferResult, error) {
	t, rules, err := c.loadTicketAndRules(ctx, params.TicketID)
	if err != nil {
		return nil, err
	}

	offer, err := c.policy.CreateOffer(*t, params.Price, rules)
	if err != nil {
		var capErr *resale.PriceAboveCapError
		if errors.As(err, &capErr) {
			return nil, errs.Mark(err, ErrPriceAboveCap)
		}
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := c.offers.Create(ctx, offer); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &PublishOfferResult{
		OfferID:   offer.ID(),
		TicketID:  offer.TicketID(),
		Price:     offer.Price(),
		Status:    offer.Status(),
		CreatedAt: offer.CreatedAt(),
	}, nil
}

func (c *resaleCommandsImpl) PriceCap(ctx context.Context, ticketID uuid.UUID) (*PriceCapResult, error) {
	t, rules, err := c.loadTicketAndRules(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	return &PriceCapResult{
		TicketID:  t.ID,
		FaceValue: t.FaceValue,
		Cap:       c.policy.PriceCap(*t, rules),
	}, nil
}

func (c *resaleCommandsImpl) loadTicketAndRules(ctx context.Context, ticketID uuid.UUID) (*ticket.Ticket, []pricing.Rule, error) {
	t, err := c.tickets.FindByID(ctx, ticketID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, ErrTicketNotFound
		}
		return nil, nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	rules, err := c.rules.FindByVenue(ctx, t.VenueID)
	if err != nil {
		return nil, nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return t, rules, nil
}
