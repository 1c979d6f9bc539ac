package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hisakata/kakeibo/internal/apperrors"
	"github.com/hisakata/kakeibo/internal/core/domain"
	portsrepo "github.com/hisakata/kakeibo/internal/core/ports/repositories"
	portssvc "github.com/hisakata/kakeibo/internal/core/ports/services"
	"github.com/hisakata/kakeibo/internal/middleware"
)

// ruleService learns keyword -> account mappings from confirmed transactions.
type ruleService struct {
	ruleRepo         portsrepo.RuleRepository
	keywordSeparator string
}

// NewRuleService creates a new RuleService. keywordSeparator controls how
// keywords are derived from confirmed descriptions.
func NewRuleService(ruleRepo portsrepo.RuleRepository, keywordSeparator string) portssvc.RuleSvcFacade {
	return &ruleService{ruleRepo: ruleRepo, keywordSeparator: keywordSeparator}
}

var _ portssvc.RuleSvcFacade = (*ruleService)(nil)

// LearnRule upserts the (owner, keyword) mapping; the most recent confirmation wins.
func (s *ruleService) LearnRule(ctx context.Context, ownerID, keyword, accountID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if keyword == "" || accountID == "" {
		return fmt.Errorf("%w: keyword and account id are required", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	rule := domain.CategoryRule{
		RuleID:    uuid.NewString(),
		OwnerID:   ownerID,
		Keyword:   keyword,
		AccountID: accountID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if err := s.ruleRepo.UpsertRule(ctx, rule); err != nil {
		return fmt.Errorf("failed to upsert rule for keyword %q: %w", keyword, err)
	}

	logger.Info("Category rule learned", slog.String("keyword", keyword), slog.String("account_id", accountID))
	return nil
}

// DeriveKeyword extracts the learnable keyword from a confirmed description:
// the segment before the configured separator, trimmed. The heuristic is
// deliberately simple and the separator configurable.
func (s *ruleService) DeriveKeyword(description string) string {
	keyword := description
	if s.keywordSeparator != "" {
		keyword, _, _ = strings.Cut(description, s.keywordSeparator)
	}
	return strings.TrimSpace(keyword)
}

// ListRules returns the owner's rules, most recently updated first, so newer
// confirmations take precedence during substring matching.
func (s *ruleService) ListRules(ctx context.Context, ownerID string) ([]domain.CategoryRule, error) {
	rules, err := s.ruleRepo.ListRulesByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list rules: %w", err)
	}
	return rules, nil
}
