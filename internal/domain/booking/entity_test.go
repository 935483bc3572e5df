//go:build unit

package booking_test

import (
	"testing"
	"time"

	"venue-ops/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBooking(t *testing.T, status booking.Status) *booking.Booking {
	t.Helper()
	now := time.Date(2026, 9, 4, 18, 0, 0, 0, time.UTC)
	b, err := booking.NewBooking(
		uuid.New(), uuid.New(), uuid.New(),
		"Vault 21", "Mezzanine 4",
		now.Add(6*time.Hour),
		200,
		status,
		nil,
		now,
	)
	require.NoError(t, err)
	return b
}

func TestNewBooking(t *testing.T) {
	t.Run("valid booking", func(t *testing.T) {
		b := newTestBooking(t, booking.StatusHoldPending)

		assert.NotEqual(t, uuid.Nil, b.ID())
		assert.Equal(t, booking.StatusHoldPending, b.Status())
		assert.Equal(t, 200.0, b.DepositAmount())
		assert.True(t, b.IsActive())
	})

	t.Run("zero date rejected", func(t *testing.T) {
		_, err := booking.NewBooking(
			uuid.New(), uuid.New(), uuid.New(),
			"Vault 21", "Mezzanine 4",
			time.Time{}, 200, booking.StatusPending, nil, time.Now(),
		)
		assert.ErrorIs(t, err, booking.ErrZeroEventDate)
	})

	t.Run("negative deposit rejected", func(t *testing.T) {
		_, err := booking.NewBooking(
			uuid.New(), uuid.New(), uuid.New(),
			"Vault 21", "Mezzanine 4",
			time.Now(), -1, booking.StatusPending, nil, time.Now(),
		)
		assert.ErrorIs(t, err, booking.ErrNegativeDeposit)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		_, err := booking.NewBooking(
			uuid.New(), uuid.New(), uuid.New(),
			"Vault 21", "Mezzanine 4",
			time.Now(), 200, booking.Status("bogus"), nil, time.Now(),
		)
		assert.ErrorIs(t, err, booking.ErrInvalidStatus)
	})
}

func TestBookingApply(t *testing.T) {
	t.Run("accepted event advances status and updatedAt", func(t *testing.T) {
		b := newTestBooking(t, booking.StatusHoldPending)
		before := b.UpdatedAt()
		later := before.Add(5 * time.Minute)

		accepted := b.Apply(booking.EventPaymentCaptured, later)

		assert.True(t, accepted)
		assert.Equal(t, booking.StatusConfirmed, b.Status())
		assert.Equal(t, later, b.UpdatedAt())
	})

	t.Run("rejected event leaves the booking untouched", func(t *testing.T) {
		b := newTestBooking(t, booking.StatusConfirmed)
		before := b.UpdatedAt()

		accepted := b.Apply(booking.EventHoldExpired, before.Add(time.Hour))

		assert.False(t, accepted)
		assert.Equal(t, booking.StatusConfirmed, b.Status())
		assert.Equal(t, before, b.UpdatedAt())
	})

	t.Run("expired booking absorbs payment capture", func(t *testing.T) {
		b := newTestBooking(t, booking.StatusHoldPending)
		now := b.CreatedAt()

		assert.True(t, b.Apply(booking.EventHoldExpired, now.Add(20*time.Minute)))
		assert.Equal(t, booking.StatusExpired, b.Status())
		assert.False(t, b.IsActive())

		assert.False(t, b.Apply(booking.EventPaymentCaptured, now.Add(21*time.Minute)))
		assert.Equal(t, booking.StatusExpired, b.Status())
	})
}

func TestHoldIsExpired(t *testing.T) {
	expiry := time.Date(2026, 9, 4, 18, 15, 0, 0, time.UTC)
	hold := booking.Hold{ExpiresAt: expiry}

	assert.False(t, hold.IsExpired(expiry.Add(-time.Second)))
	assert.True(t, hold.IsExpired(expiry))
	assert.True(t, hold.IsExpired(expiry.Add(time.Second)))
}

func TestCancellationFee(t *testing.T) {
	policy := booking.CancellationPolicy{
		FreeCancellationWindowHours: 24,
		LateCancellationFee:         50,
		AllowsSelfCancellation:      true,
	}
	eventTime := time.Date(2026, 9, 5, 22, 0, 0, 0, time.UTC)

	assert.Equal(t, 0.0, policy.CancellationFee(eventTime, eventTime.Add(-25*time.Hour)))
	assert.Equal(t, 50.0, policy.CancellationFee(eventTime, eventTime.Add(-24*time.Hour)))
	assert.Equal(t, 50.0, policy.CancellationFee(eventTime, eventTime.Add(-time.Hour)))
}
