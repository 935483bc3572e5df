package repository

import (
	"context"

	"venue-ops/internal/domain/pricing"
	"venue-ops/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RuleRepository struct {
	db *pgxpool.Pool
}

func NewRuleRepository(db *pgxpool.Pool) *RuleRepository {
	return &RuleRepository{db: db}
}

const selectRulesSQL = `
SELECT rules
FROM venue_pricing_rules
WHERE venue_id = $1`

// FindByVenue returns the venue's pricing rule set in stored order.
// Order matters: equal-priority rules tie-break on list position.
// A venue with no configured rules gets an empty set (base price
// passes through unchanged).
func (r *RuleRepository) FindByVenue(ctx context.Context, venueID uuid.UUID) ([]pricing.Rule, error) {
	rows, err := r.db.Query(ctx, selectRulesSQL, venueID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load pricing rules", err)
	}
	defer rows.Close()

	var rules []pricing.Rule
	for rows.Next() {
		// One JSONB document per venue; pgx decodes it straight into
		// the rule slice.
		var doc []pricing.Rule
		if err := rows.Scan(&doc); err != nil {
			return nil, infra.WrapRepoErr("failed to decode pricing rules", err)
		}
		rules = append(rules, doc...)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read pricing rules", err)
	}
	return rules, nil
}
