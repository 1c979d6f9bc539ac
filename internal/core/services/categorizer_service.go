package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/hisakata/kakeibo/internal/core/domain"
	portssvc "github.com/hisakata/kakeibo/internal/core/ports/services"
	"github.com/hisakata/kakeibo/internal/middleware"
)

// categorizerService resolves a description to a debit account through a
// three-tier cascade: exact local rule, remote suggestion, fixed default.
type categorizerService struct {
	extractor portssvc.VisionExtractor
}

// NewCategorizerService creates a new CategorizerService.
func NewCategorizerService(extractor portssvc.VisionExtractor) portssvc.CategorizerSvcFacade {
	return &categorizerService{extractor: extractor}
}

var _ portssvc.CategorizerSvcFacade = (*categorizerService)(nil)

// Categorize returns the debit account id for description, or "" when no tier
// can produce one. Tier 2 failures are absorbed here and never reach the
// caller; a slow or broken collaborator degrades to the fixed default.
func (s *categorizerService) Categorize(ctx context.Context, description string, rules []domain.CategoryRule, accounts []domain.Account) string {
	logger := middleware.GetLoggerFromCtx(ctx)

	// Tier 1: first rule whose keyword is a case-folded substring wins.
	// Rules are matched in the order supplied; callers own precedence.
	lowerDesc := strings.ToLower(description)
	for _, rule := range rules {
		if rule.Keyword == "" {
			continue
		}
		if strings.Contains(lowerDesc, strings.ToLower(rule.Keyword)) {
			return rule.AccountID
		}
	}

	expenseAccounts := make([]domain.Account, 0, len(accounts))
	for _, account := range accounts {
		if account.Type == domain.Expense {
			expenseAccounts = append(expenseAccounts, account)
		}
	}

	// Tier 2: ask the collaborator to pick among the expense account names.
	names := make([]string, len(expenseAccounts))
	for i, account := range expenseAccounts {
		names[i] = account.Name
	}
	suggested, err := s.extractor.SuggestCategory(ctx, description, names)
	if err != nil {
		// Tier 3: collaborator failure degrades to the catch-all expense account.
		logger.Warn("Category suggestion failed, using default account",
			slog.String("description", description),
			slog.String("error", err.Error()))
		for _, account := range accounts {
			if account.Code == domain.CodeOtherExpense {
				return account.AccountID
			}
		}
		return ""
	}

	for _, account := range expenseAccounts {
		if account.Name == suggested {
			return account.AccountID
		}
	}
	// Unrecognized suggestion: fall back to the first expense account, which
	// is arbitrary but deterministic.
	if len(expenseAccounts) > 0 {
		logger.Debug("Suggestion did not match any expense account",
			slog.String("suggested", suggested))
		return expenseAccounts[0].AccountID
	}
	return ""
}
