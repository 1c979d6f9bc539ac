package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/hisakata/kakeibo/internal/core/domain"
	portsrepo "github.com/hisakata/kakeibo/internal/core/ports/repositories"
	portssvc "github.com/hisakata/kakeibo/internal/core/ports/services"
	"github.com/hisakata/kakeibo/internal/middleware"
	"github.com/hisakata/kakeibo/internal/utils/accounting"
)

// reportingService computes read-only aggregates over the owner's entries.
type reportingService struct {
	journalRepo portsrepo.JournalRepository
	accountRepo portsrepo.AccountRepository
}

// NewReportingService creates a new ReportingService.
func NewReportingService(journalRepo portsrepo.JournalRepository, accountRepo portsrepo.AccountRepository) portssvc.ReportingSvcFacade {
	return &reportingService{
		journalRepo: journalRepo,
		accountRepo: accountRepo,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// TrialBalance folds every entry of the owner into per-account debit and
// credit totals. Entries referencing an account missing from the chart are
// skipped rather than failing the whole report. Because each stored journal
// passed the balance check, the grand totals come out equal whenever no
// entries were skipped.
func (s *reportingService) TrialBalance(ctx context.Context, ownerID string) (*domain.TrialBalance, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	accounts, err := s.accountRepo.ListAccountsByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts for trial balance: %w", err)
	}
	entries, err := s.journalRepo.ListEntriesByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries for trial balance: %w", err)
	}

	byID := make(map[string]domain.Account, len(accounts))
	for _, account := range accounts {
		byID[account.AccountID] = account
	}

	type totals struct {
		debit  decimal.Decimal
		credit decimal.Decimal
	}
	folded := make(map[string]*totals)
	skipped := 0
	for _, entry := range entries {
		if _, ok := byID[entry.AccountID]; !ok {
			skipped++
			continue
		}
		t, ok := folded[entry.AccountID]
		if !ok {
			t = &totals{}
			folded[entry.AccountID] = t
		}
		t.debit = t.debit.Add(entry.DebitAmount)
		t.credit = t.credit.Add(entry.CreditAmount)
	}
	if skipped > 0 {
		logger.Warn("Trial balance skipped entries with unknown accounts", slog.Int("count", skipped))
	}

	tb := &domain.TrialBalance{
		Rows:             make([]domain.TrialBalanceRow, 0, len(folded)),
		GrandDebitTotal:  decimal.Zero,
		GrandCreditTotal: decimal.Zero,
	}
	for accountID, t := range folded {
		account := byID[accountID]
		tb.Rows = append(tb.Rows, domain.TrialBalanceRow{
			Account:     account,
			DebitTotal:  t.debit,
			CreditTotal: t.credit,
			Balance:     accounting.SignedBalance(account.Type, t.debit, t.credit),
		})
		tb.GrandDebitTotal = tb.GrandDebitTotal.Add(t.debit)
		tb.GrandCreditTotal = tb.GrandCreditTotal.Add(t.credit)
	}
	sort.Slice(tb.Rows, func(i, j int) bool {
		if tb.Rows[i].Account.SortOrder != tb.Rows[j].Account.SortOrder {
			return tb.Rows[i].Account.SortOrder < tb.Rows[j].Account.SortOrder
		}
		return tb.Rows[i].Account.Code < tb.Rows[j].Account.Code
	})
	tb.IsBalanced = tb.GrandDebitTotal.Equal(tb.GrandCreditTotal)

	return tb, nil
}
