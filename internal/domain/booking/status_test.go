//go:build unit

package booking_test

import (
	"testing"

	"venue-ops/internal/domain/booking"

	"github.com/stretchr/testify/assert"
)

func TestTransition(t *testing.T) {
	t.Run("accepted transitions", func(t *testing.T) {
		cases := []struct {
			name  string
			from  booking.Status
			event booking.Event
			want  booking.Status
		}{
			{"pending pays", booking.StatusPending, booking.EventPaymentCaptured, booking.StatusConfirmed},
			{"hold pays", booking.StatusHoldPending, booking.EventPaymentCaptured, booking.StatusConfirmed},
			{"waitlist promoted", booking.StatusWaitlisted, booking.EventWaitlistPromoted, booking.StatusAutoPromoted},
			{"waitlist confirmed", booking.StatusWaitlisted, booking.EventWaitlistConfirmed, booking.StatusConfirmed},
			{"promoted pays", booking.StatusAutoPromoted, booking.EventPaymentCaptured, booking.StatusConfirmed},
			{"pending user cancel", booking.StatusPending, booking.EventUserCancelled, booking.StatusCancelled},
			{"pending host cancel", booking.StatusPending, booking.EventHostCancelled, booking.StatusCancelled},
			{"confirmed user cancel", booking.StatusConfirmed, booking.EventUserCancelled, booking.StatusCancelled},
			{"confirmed host cancel", booking.StatusConfirmed, booking.EventHostCancelled, booking.StatusCancelled},
			{"hold expires", booking.StatusHoldPending, booking.EventHoldExpired, booking.StatusExpired},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				got, accepted := booking.Transition(tc.from, tc.event)
				assert.True(t, accepted)
				assert.Equal(t, tc.want, got)
			})
		}
	})

	t.Run("unlisted pairs are silent no-ops", func(t *testing.T) {
		cases := []struct {
			name  string
			from  booking.Status
			event booking.Event
		}{
			{"pending cannot expire", booking.StatusPending, booking.EventHoldExpired},
			{"hold cannot self cancel", booking.StatusHoldPending, booking.EventUserCancelled},
			{"confirmed cannot pay again", booking.StatusConfirmed, booking.EventPaymentCaptured},
			{"waitlisted cannot pay", booking.StatusWaitlisted, booking.EventPaymentCaptured},
			{"promoted cannot cancel", booking.StatusAutoPromoted, booking.EventUserCancelled},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				got, accepted := booking.Transition(tc.from, tc.event)
				assert.False(t, accepted)
				assert.Equal(t, tc.from, got)
			})
		}
	})

	t.Run("terminal states absorb every event", func(t *testing.T) {
		terminals := []booking.Status{booking.StatusCancelled, booking.StatusExpired, booking.StatusPaid}
		events := []booking.Event{
			booking.EventPaymentCaptured,
			booking.EventHoldExpired,
			booking.EventUserCancelled,
			booking.EventHostCancelled,
			booking.EventWaitlistPromoted,
			booking.EventWaitlistConfirmed,
		}

		for _, from := range terminals {
			for _, ev := range events {
				got, accepted := booking.Transition(from, ev)
				assert.False(t, accepted, "%s should ignore %s", from, ev)
				assert.Equal(t, from, got)
			}
		}
	})

	t.Run("expired hold stays expired after a late payment", func(t *testing.T) {
		status, accepted := booking.Transition(booking.StatusHoldPending, booking.EventHoldExpired)
		assert.True(t, accepted)
		assert.Equal(t, booking.StatusExpired, status)

		status, accepted = booking.Transition(status, booking.EventPaymentCaptured)
		assert.False(t, accepted)
		assert.Equal(t, booking.StatusExpired, status)
	})
}

func TestStatusIsTerminal(t *testing.T) {
	assert.True(t, booking.StatusCancelled.IsTerminal())
	assert.True(t, booking.StatusExpired.IsTerminal())
	assert.True(t, booking.StatusPaid.IsTerminal())

	assert.False(t, booking.StatusPending.IsTerminal())
	assert.False(t, booking.StatusHoldPending.IsTerminal())
	assert.False(t, booking.StatusConfirmed.IsTerminal())
	assert.False(t, booking.StatusWaitlisted.IsTerminal())
	assert.False(t, booking.StatusAutoPromoted.IsTerminal())
}

func TestStatusIsValid(t *testing.T) {
	assert.True(t, booking.StatusConfirmed.IsValid())
	assert.False(t, booking.Status("unknown").IsValid())
}

func TestEventIsValid(t *testing.T) {
	assert.True(t, booking.EventPaymentCaptured.IsValid())
	assert.False(t, booking.Event("unknown").IsValid())
}
