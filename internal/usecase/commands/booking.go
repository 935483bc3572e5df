package commands

import (
	"context"
	"log/slog"
	"time"

	"venue-ops/internal/domain/booking"
	"venue-ops/internal/domain/pricing"
	"venue-ops/internal/infra"
	"venue-ops/internal/pkg/clock"
	"venue-ops/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrVenueNotFound           = errs.New("venue not found")
	ErrTableNotFound           = errs.New("table not found")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrBookingConflict         = errs.New("booking conflict")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status, updatedAt time.Time) error
	ListExpiredHoldIDs(ctx context.Context, now time.Time) ([]uuid.UUID, error)
}

type VenueRepository interface {
	FindByID(ctx context.Context, id uuid.UUID, date time.Time) (*booking.VenueSpec, error)
	FindTable(ctx context.Context, tableID, venueID uuid.UUID) (*booking.TableSpec, error)
}

type RuleRepository interface {
	FindByVenue(ctx context.Context, venueID uuid.UUID) ([]pricing.Rule, error)
}

type CreateBookingParams struct {
	UserID  uuid.UUID
	VenueID uuid.UUID
	TableID uuid.UUID
	Date    time.Time
}

type CreateBookingResult struct {
	BookingID     uuid.UUID
	Status        booking.Status
	DepositAmount float64
	HoldExpiresAt time.Time
}

// ApplyEventResult reports where the lifecycle landed. Accepted=false
// means the event was a no-op for the current status; the booking is
// unchanged and no error is raised.
type ApplyEventResult struct {
	BookingID uuid.UUID
	Status    booking.Status
	Accepted  bool
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, params CreateBookingParams) (*CreateBookingResult, error)
	ApplyEvent(ctx context.Context, bookingID uuid.UUID, event booking.Event) (*ApplyEventResult, error)
	ExpireDueHolds(ctx context.Context) (int, error)
}

type bookingCommandsImpl struct {
	bookings BookingRepository
	venues   VenueRepository
	rules    RuleRepository
	factory  *booking.Factory
	clock    clock.Clock
}

func NewBookingCommands(
	bookings BookingRepository,
	venues VenueRepository,
	rules RuleRepository,
	factory *booking.Factory,
	clk clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		bookings: bookings,
		venues:   venues,
		rules:    rules,
		factory:  factory,
		clock:    clk,
	}
}

func (c *bookingCommandsImpl) CreateBooking(ctx context.Context, params CreateBookingParams) (*CreateBookingResult, error) {
	venue, err := c.venues.FindByID(ctx, params.VenueID, params.Date)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	table, err := c.venues.FindTable(ctx, params.TableID, params.VenueID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTableNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	rules, err := c.rules.FindByVenue(ctx, params.VenueID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	entity, err := c.factory.CreateBooking(params.UserID, *venue, *table, params.Date, rules)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := c.bookings.Create(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrBookingConflict
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &CreateBookingResult{
		BookingID:     entity.ID(),
		Status:        entity.Status(),
		DepositAmount: entity.DepositAmount(),
		HoldExpiresAt: entity.Hold().ExpiresAt,
	}, nil
}

func (c *bookingCommandsImpl) ApplyEvent(ctx context.Context, bookingID uuid.UUID, event booking.Event) (*ApplyEventResult, error) {
	entity, err := c.bookings.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	accepted := entity.Apply(event, c.clock.Now())
	if !accepted {
		return &ApplyEventResult{
			BookingID: bookingID,
			Status:    entity.Status(),
			Accepted:  false,
		}, nil
	}

	if err := c.bookings.UpdateStatus(ctx, bookingID, entity.Status(), entity.UpdatedAt()); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &ApplyEventResult{
		BookingID: bookingID,
		Status:    entity.Status(),
		Accepted:  true,
	}, nil
}

// ExpireDueHolds sweeps hold_pending bookings whose hold has lapsed
// and drives them through the hold_expired transition. Returns how
// many bookings expired; per-booking failures are logged and skipped
// so one bad row never stalls the sweep.
func (c *bookingCommandsImpl) ExpireDueHolds(ctx context.Context) (int, error) {
	ids, err := c.bookings.ListExpiredHoldIDs(ctx, c.clock.Now())
	if err != nil {
		return 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	expired := 0
	for _, id := range ids {
		result, err := c.ApplyEvent(ctx, id, booking.EventHoldExpired)
		if err != nil {
			slog.Warn("failed to expire hold", "booking_id", id, "error", err)
			continue
		}
		if result.Accepted {
			expired++
		}
	}
	return expired, nil
}
