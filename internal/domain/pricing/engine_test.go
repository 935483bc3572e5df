//go:build unit

package pricing_test

import (
	"testing"
	"time"

	"venue-ops/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func fridayNight() time.Time {
	// Friday 22:00
	return time.Date(2026, 9, 4, 22, 0, 0, 0, time.UTC)
}

func baseContext() pricing.Context {
	return pricing.Context{
		Date:        fridayNight(),
		Capacity:    400,
		BookedCount: 360,
		BasePrice:   100,
	}
}

func TestRuleApplies(t *testing.T) {
	ctx := baseContext()

	cases := []struct {
		name string
		rule pricing.Rule
		want bool
	}{
		{
			name: "no constraints always applies",
			rule: pricing.Rule{},
			want: true,
		},
		{
			name: "date before window",
			rule: pricing.Rule{StartDate: ptr(ctx.Date.Add(24 * time.Hour))},
			want: false,
		},
		{
			name: "date after window",
			rule: pricing.Rule{EndDate: ptr(ctx.Date.Add(-24 * time.Hour))},
			want: false,
		},
		{
			name: "inside date window",
			rule: pricing.Rule{
				StartDate: ptr(ctx.Date.Add(-24 * time.Hour)),
				EndDate:   ptr(ctx.Date.Add(24 * time.Hour)),
			},
			want: true,
		},
		{
			name: "matching weekday",
			rule: pricing.Rule{Weekdays: []time.Weekday{time.Friday, time.Saturday}},
			want: true,
		},
		{
			name: "non-matching weekday",
			rule: pricing.Rule{Weekdays: []time.Weekday{time.Monday}},
			want: false,
		},
		{
			name: "hour window is half-open at the end",
			rule: pricing.Rule{StartHour: ptr(20), EndHour: ptr(22)},
			want: false,
		},
		{
			name: "hour window includes the start",
			rule: pricing.Rule{StartHour: ptr(22), EndHour: ptr(23)},
			want: true,
		},
		{
			name: "utilization bounds are inclusive",
			rule: pricing.Rule{MinUtilization: ptr(0.9), MaxUtilization: ptr(0.9)},
			want: true,
		},
		{
			name: "utilization below minimum",
			rule: pricing.Rule{MinUtilization: ptr(0.95)},
			want: false,
		},
		{
			name: "utilization above maximum",
			rule: pricing.Rule{MaxUtilization: ptr(0.5)},
			want: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.rule.Applies(ctx))
		})
	}
}

func TestRuleApply(t *testing.T) {
	ctx := baseContext()

	cases := []struct {
		name string
		rule pricing.Rule
		want float64
	}{
		{
			name: "multiplier scales base price",
			rule: pricing.Rule{Multiplier: ptr(1.5)},
			want: 150,
		},
		{
			name: "override wins over multiplier",
			rule: pricing.Rule{Multiplier: ptr(1.5), OverridePrice: ptr(130.0)},
			want: 130,
		},
		{
			name: "no adjustment returns base price",
			rule: pricing.Rule{},
			want: 100,
		},
		{
			name: "floor raises a low result",
			rule: pricing.Rule{Multiplier: ptr(0.5), FloorPrice: ptr(80.0)},
			want: 80,
		},
		{
			name: "ceiling caps a high result",
			rule: pricing.Rule{Multiplier: ptr(3.0), CeilingPrice: ptr(200.0)},
			want: 200,
		},
		{
			name: "ceiling clamps the override too",
			rule: pricing.Rule{OverridePrice: ptr(500.0), CeilingPrice: ptr(250.0)},
			want: 250,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, tc.rule.Apply(ctx), 1e-9)
		})
	}
}

func TestPrice(t *testing.T) {
	t.Run("highest priority applying rule wins", func(t *testing.T) {
		ctx := baseContext()
		rules := []pricing.Rule{
			{ID: uuid.New(), Priority: 1, Multiplier: ptr(1.2)},
			{ID: uuid.New(), Priority: 10, Multiplier: ptr(1.5), MinUtilization: ptr(0.8)},
			{ID: uuid.New(), Priority: 5, Multiplier: ptr(1.3)},
		}

		assert.InDelta(t, 150, pricing.Price(ctx, rules), 1e-9)
	})

	t.Run("base price when no rule applies", func(t *testing.T) {
		ctx := baseContext()
		rules := []pricing.Rule{
			{Priority: 10, Multiplier: ptr(2.0), Weekdays: []time.Weekday{time.Monday}},
		}

		assert.InDelta(t, 100, pricing.Price(ctx, rules), 1e-9)
	})

	t.Run("base price on empty rule set", func(t *testing.T) {
		assert.InDelta(t, 100, pricing.Price(baseContext(), nil), 1e-9)
	})

	t.Run("equal priority ties break on rule set order", func(t *testing.T) {
		ctx := baseContext()
		first := pricing.Rule{ID: uuid.New(), Priority: 5, Multiplier: ptr(1.1)}
		second := pricing.Rule{ID: uuid.New(), Priority: 5, Multiplier: ptr(1.9)}

		assert.InDelta(t, 110, pricing.Price(ctx, []pricing.Rule{first, second}), 1e-9)
		assert.InDelta(t, 190, pricing.Price(ctx, []pricing.Rule{second, first}), 1e-9)
	})

	t.Run("tie-break is deterministic across repeated evaluations", func(t *testing.T) {
		ctx := baseContext()
		rules := []pricing.Rule{
			{ID: uuid.New(), Priority: 5, Multiplier: ptr(1.1)},
			{ID: uuid.New(), Priority: 5, Multiplier: ptr(1.9)},
			{ID: uuid.New(), Priority: 5, OverridePrice: ptr(175.0)},
		}

		want := pricing.Price(ctx, rules)
		for i := 0; i < 50; i++ {
			assert.InDelta(t, want, pricing.Price(ctx, rules), 1e-9)
		}
	})
}

func TestPriceRange(t *testing.T) {
	t.Run("brackets the winning price", func(t *testing.T) {
		ctx := baseContext()
		rules := []pricing.Rule{
			{Priority: 1, Multiplier: ptr(0.9)},
			{Priority: 10, Multiplier: ptr(1.5)},
			{Priority: 5, Multiplier: ptr(1.2)},
		}

		minPrice, maxPrice := pricing.PriceRange(ctx, rules)
		price := pricing.Price(ctx, rules)

		assert.InDelta(t, 90, minPrice, 1e-9)
		assert.InDelta(t, 150, maxPrice, 1e-9)
		assert.GreaterOrEqual(t, price, minPrice)
		assert.LessOrEqual(t, price, maxPrice)
	})

	t.Run("non-applying rules are excluded from the spread", func(t *testing.T) {
		ctx := baseContext()
		rules := []pricing.Rule{
			{Priority: 1, Multiplier: ptr(1.2)},
			{Priority: 9, Multiplier: ptr(5.0), Weekdays: []time.Weekday{time.Monday}},
		}

		minPrice, maxPrice := pricing.PriceRange(ctx, rules)
		assert.InDelta(t, 120, minPrice, 1e-9)
		assert.InDelta(t, 120, maxPrice, 1e-9)
	})

	t.Run("collapses to base price when nothing applies", func(t *testing.T) {
		minPrice, maxPrice := pricing.PriceRange(baseContext(), nil)
		assert.InDelta(t, 100, minPrice, 1e-9)
		assert.InDelta(t, 100, maxPrice, 1e-9)
	})
}

func TestContextUtilization(t *testing.T) {
	cases := []struct {
		name     string
		capacity int
		booked   int
		want     float64
	}{
		{name: "normal ratio", capacity: 400, booked: 320, want: 0.8},
		{name: "zero capacity", capacity: 0, booked: 100, want: 0},
		{name: "negative capacity", capacity: -1, booked: 100, want: 0},
		{name: "overbooked exceeds one", capacity: 100, booked: 120, want: 1.2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := pricing.Context{Capacity: tc.capacity, BookedCount: tc.booked}
			assert.InDelta(t, tc.want, ctx.Utilization(), 1e-9)
		})
	}
}
