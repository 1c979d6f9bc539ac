package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hisakata/kakeibo/internal/apperrors"
	"github.com/hisakata/kakeibo/internal/core/domain"
	portsrepo "github.com/hisakata/kakeibo/internal/core/ports/repositories"
)

type PgxRuleRepository struct {
	BaseRepository
}

func newPgxRuleRepository(pool *pgxpool.Pool) portsrepo.RuleRepository {
	return &PgxRuleRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.RuleRepository = (*PgxRuleRepository)(nil)

// UpsertRule inserts or replaces the (owner, keyword) mapping; a rewrite
// keeps the original rule_id and bumps last_updated_at.
func (r *PgxRuleRepository) UpsertRule(ctx context.Context, rule domain.CategoryRule) error {
	query := `
		INSERT INTO category_rules (rule_id, owner_id, keyword, account_id, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (owner_id, keyword) DO UPDATE SET
			account_id = EXCLUDED.account_id,
			last_updated_at = EXCLUDED.last_updated_at;
	`
	_, err := r.Pool.Exec(ctx, query,
		rule.RuleID,
		rule.OwnerID,
		rule.Keyword,
		rule.AccountID,
		rule.CreatedAt,
		rule.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert rule for keyword %q: %w", rule.Keyword, err)
	}
	return nil
}

// ListRulesByOwner retrieves the owner's rules, most recently updated first.
func (r *PgxRuleRepository) ListRulesByOwner(ctx context.Context, ownerID string) ([]domain.CategoryRule, error) {
	query := `
		SELECT rule_id, owner_id, keyword, account_id, created_at, last_updated_at
		FROM category_rules
		WHERE owner_id = $1
		ORDER BY last_updated_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query rules: %w", err)
	}
	defer rows.Close()

	rules, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CategoryRule, error) {
		var rule domain.CategoryRule
		err := row.Scan(
			&rule.RuleID,
			&rule.OwnerID,
			&rule.Keyword,
			&rule.AccountID,
			&rule.CreatedAt,
			&rule.LastUpdatedAt,
		)
		return rule, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan rules: %w", err)
	}
	if rules == nil {
		rules = []domain.CategoryRule{}
	}
	return rules, nil
}

// DeleteRule removes one rule.
func (r *PgxRuleRepository) DeleteRule(ctx context.Context, ownerID, ruleID string) error {
	query := `DELETE FROM category_rules WHERE owner_id = $1 AND rule_id = $2;`

	tag, err := r.Pool.Exec(ctx, query, ownerID, ruleID)
	if err != nil {
		return fmt.Errorf("failed to delete rule %s: %w", ruleID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
