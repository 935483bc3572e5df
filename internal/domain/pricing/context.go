package pricing

import "time"

// Context is the snapshot a rule set is evaluated against: when the
// party happens, how full the venue already is, and the price being
// adjusted. It is a plain value; callers build one per evaluation.
type Context struct {
	Date        time.Time
	Capacity    int
	BookedCount int
	BasePrice   float64
}

// Utilization is booked/capacity, clamped to 0 for venues that report
// no capacity (pop-ups, unverified listings).
func (c Context) Utilization() float64 {
	if c.Capacity <= 0 {
		return 0
	}
	return float64(c.BookedCount) / float64(c.Capacity)
}

func (c Context) Hour() int {
	return c.Date.Hour()
}

func (c Context) Weekday() time.Weekday {
	return c.Date.Weekday()
}
