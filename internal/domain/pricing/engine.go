package pricing

import "slices"

// Price evaluates the rule set against the context and returns the
// price of the highest-priority applying rule, or the base price when
// no rule applies. Rules with equal priority tie-break on rule-set
// order: the earlier-listed rule wins (stable sort).
func Price(ctx Context, rules []Rule) float64 {
	applicable := make([]Rule, 0, len(rules))
	for _, r := range rules {
		if r.Applies(ctx) {
			applicable = append(applicable, r)
		}
	}
	if len(applicable) == 0 {
		return ctx.BasePrice
	}

	slices.SortStableFunc(applicable, func(a, b Rule) int {
		return b.Priority - a.Priority
	})
	return applicable[0].Apply(ctx)
}

// PriceRange applies every matching rule (not just the winner) and
// returns the spread of the results. With no matching rule both bounds
// equal the base price.
func PriceRange(ctx Context, rules []Rule) (minPrice, maxPrice float64) {
	matched := false
	for _, r := range rules {
		if !r.Applies(ctx) {
			continue
		}
		p := r.Apply(ctx)
		if !matched {
			minPrice, maxPrice = p, p
			matched = true
			continue
		}
		if p < minPrice {
			minPrice = p
		}
		if p > maxPrice {
			maxPrice = p
		}
	}
	if !matched {
		return ctx.BasePrice, ctx.BasePrice
	}
	return minPrice, maxPrice
}
