package booking

type Status string

const (
	StatusPending      Status = "pending"
	StatusHoldPending  Status = "hold_pending"
	StatusConfirmed    Status = "confirmed"
	StatusWaitlisted   Status = "waitlisted"
	StatusAutoPromoted Status = "auto_promoted"
	StatusExpired      Status = "expired"
	StatusPaid         Status = "paid"
	StatusCancelled    Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusHoldPending, StatusConfirmed, StatusWaitlisted,
		StatusAutoPromoted, StatusExpired, StatusPaid, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the status is absorbing: no event moves a
// booking out of it.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusCancelled, StatusExpired, StatusPaid:
		return true
	default:
		return false
	}
}

type Event string

const (
	EventPaymentCaptured   Event = "payment_captured"
	EventHoldExpired       Event = "hold_expired"
	EventUserCancelled     Event = "user_cancelled"
	EventHostCancelled     Event = "host_cancelled"
	EventWaitlistPromoted  Event = "waitlist_promoted"
	EventWaitlistConfirmed Event = "waitlist_confirmed"
)

func (e Event) String() string {
	return string(e)
}

func (e Event) IsValid() bool {
	switch e {
	case EventPaymentCaptured, EventHoldExpired, EventUserCancelled,
		EventHostCancelled, EventWaitlistPromoted, EventWaitlistConfirmed:
		return true
	default:
		return false
	}
}

// Transition drives the booking lifecycle. Any (state, event) pair not
// in the table is a silent no-op: the input state comes back unchanged
// with accepted=false. Rejection is observable through the boolean but
// is never an error.
func Transition(from Status, event Event) (Status, bool) {
	switch {
	case (from == StatusPending || from == StatusHoldPending) && event == EventPaymentCaptured:
		return StatusConfirmed, true
	case from == StatusWaitlisted && event == EventWaitlistPromoted:
		return StatusAutoPromoted, true
	case from == StatusWaitlisted && event == EventWaitlistConfirmed:
		return StatusConfirmed, true
	case from == StatusAutoPromoted && event == EventPaymentCaptured:
		return StatusConfirmed, true
	case (from == StatusPending || from == StatusConfirmed) &&
		(event == EventUserCancelled || event == EventHostCancelled):
		return StatusCancelled, true
	case from == StatusHoldPending && event == EventHoldExpired:
		return StatusExpired, true
	default:
		return from, false
	}
}
