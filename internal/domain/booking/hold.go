package booking

import "time"

// Hold reserves inventory while payment capture is outstanding.
type Hold struct {
	Amount          float64   `json:"amount"`
	CreatedAt       time.Time `json:"created_at"`
	ExpiresAt       time.Time `json:"expires_at"`
	RequiresCapture bool      `json:"requires_capture"`
}

func (h Hold) IsExpired(now time.Time) bool {
	return !now.Before(h.ExpiresAt)
}

// CancellationPolicy is descriptive venue configuration. The state
// machine never charges the late fee itself; fee computation is the
// caller's responsibility (see CancellationFee).
type CancellationPolicy struct {
	FreeCancellationWindowHours int     `json:"free_cancellation_window_hours"`
	LateCancellationFee         float64 `json:"late_cancellation_fee"`
	AllowsSelfCancellation      bool    `json:"allows_self_cancellation"`
}

// CancellationFee returns the fee a cancellation at `now` incurs for a
// booking happening at `eventTime`. Zero inside the free window.
// Offered as a helper for callers; nothing in the lifecycle invokes it.
func (p CancellationPolicy) CancellationFee(eventTime, now time.Time) float64 {
	cutoff := eventTime.Add(-time.Duration(p.FreeCancellationWindowHours) * time.Hour)
	if now.Before(cutoff) {
		return 0
	}
	return p.LateCancellationFee
}
