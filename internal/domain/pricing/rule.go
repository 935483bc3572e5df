package pricing

import (
	"time"

	"github.com/google/uuid"
)

// Rule is one entry of a venue's dynamic pricing configuration.
// Optional constraints are pointers; a nil constraint never excludes a
// context. Rules are immutable once constructed and are supplied by an
// external source (venue config, ops dashboard).
type Rule struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Priority int       `json:"priority"`

	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`

	// Weekdays the rule is active on. Empty means every day.
	Weekdays []time.Weekday `json:"weekdays,omitempty"`

	StartHour *int `json:"start_hour,omitempty"`
	EndHour   *int `json:"end_hour,omitempty"`

	MinUtilization *float64 `json:"min_utilization,omitempty"`
	MaxUtilization *float64 `json:"max_utilization,omitempty"`

	Multiplier    *float64 `json:"multiplier,omitempty"`
	OverridePrice *float64 `json:"override_price,omitempty"`
	FloorPrice    *float64 `json:"floor_price,omitempty"`
	CeilingPrice  *float64 `json:"ceiling_price,omitempty"`
}

// Applies reports whether every constraint of the rule admits the
// context. Hour windows are half-open: [StartHour, EndHour).
// Utilization bounds are inclusive.
func (r Rule) Applies(ctx Context) bool {
	if r.StartDate != nil && ctx.Date.Before(*r.StartDate) {
		return false
	}
	if r.EndDate != nil && ctx.Date.After(*r.EndDate) {
		return false
	}
	if !r.appliesOnWeekday(ctx.Weekday()) {
		return false
	}
	if r.StartHour != nil && ctx.Hour() < *r.StartHour {
		return false
	}
	if r.EndHour != nil && ctx.Hour() >= *r.EndHour {
		return false
	}
	if r.MinUtilization != nil && ctx.Utilization() < *r.MinUtilization {
		return false
	}
	if r.MaxUtilization != nil && ctx.Utilization() > *r.MaxUtilization {
		return false
	}
	return true
}

func (r Rule) appliesOnWeekday(day time.Weekday) bool {
	if len(r.Weekdays) == 0 {
		return true
	}
	for _, d := range r.Weekdays {
		if d == day {
			return true
		}
	}
	return false
}

// Apply computes the rule's price for the context: the override price
// when set, otherwise base price times the multiplier (1.0 when
// absent), then clamped to [floor, ceiling] where present.
func (r Rule) Apply(ctx Context) float64 {
	var price float64
	switch {
	case r.OverridePrice != nil:
		price = *r.OverridePrice
	case r.Multiplier != nil:
		price = ctx.BasePrice * *r.Multiplier
	default:
		price = ctx.BasePrice
	}

	if r.FloorPrice != nil && price < *r.FloorPrice {
		price = *r.FloorPrice
	}
	if r.CeilingPrice != nil && price > *r.CeilingPrice {
		price = *r.CeilingPrice
	}
	return price
}
