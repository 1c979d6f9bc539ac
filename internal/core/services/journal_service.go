package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hisakata/kakeibo/internal/apperrors"
	"github.com/hisakata/kakeibo/internal/core/domain"
	portsrepo "github.com/hisakata/kakeibo/internal/core/ports/repositories"
	portssvc "github.com/hisakata/kakeibo/internal/core/ports/services"
	"github.com/hisakata/kakeibo/internal/dto"
	"github.com/hisakata/kakeibo/internal/middleware"
	"github.com/hisakata/kakeibo/internal/utils/accounting"
)

// journalService provides core journal operations. Every write path runs the
// Balance Law check before the repository is touched.
type journalService struct {
	journalRepo portsrepo.JournalRepository
	accountSvc  portssvc.AccountSvcFacade
}

// NewJournalService creates a new JournalService.
func NewJournalService(journalRepo portsrepo.JournalRepository, accountSvc portssvc.AccountSvcFacade) portssvc.JournalSvcFacade {
	return &journalService{
		journalRepo: journalRepo,
		accountSvc:  accountSvc,
	}
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// validateEntries enforces the Balance Law and checks that every referenced
// account belongs to the owner. Rejection happens before any write.
func (s *journalService) validateEntries(ctx context.Context, ownerID string, entries []domain.JournalEntry) error {
	if len(entries) < 2 {
		return fmt.Errorf("%w: journal must have at least two entries", apperrors.ErrValidation)
	}
	for _, entry := range entries {
		if entry.DebitAmount.IsNegative() || entry.CreditAmount.IsNegative() {
			return fmt.Errorf("%w: entry amounts must not be negative for account %s", apperrors.ErrValidation, entry.AccountID)
		}
	}

	check := accounting.ValidateBalanced(entries)
	if !check.IsBalanced {
		return fmt.Errorf("%w: journal is not balanced (debit %s, credit %s, difference %s)",
			apperrors.ErrValidation, check.DebitTotal, check.CreditTotal, check.Difference)
	}

	accounts, err := s.accountSvc.ListAccounts(ctx, ownerID)
	if err != nil {
		return fmt.Errorf("failed to fetch accounts for validation: %w", err)
	}
	owned := make(map[string]struct{}, len(accounts))
	for _, account := range accounts {
		owned[account.AccountID] = struct{}{}
	}
	for _, entry := range entries {
		if _, ok := owned[entry.AccountID]; !ok {
			return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, entry.AccountID)
		}
	}
	return nil
}

// CreateJournal creates a manual journal with its entries after validation.
func (s *journalService) CreateJournal(ctx context.Context, ownerID string, req dto.CreateJournalRequest) (*domain.Journal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	journalDate, err := time.Parse(dto.DateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", apperrors.ErrValidation, req.Date)
	}
	if req.Description == "" {
		return nil, fmt.Errorf("%w: description is required", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	journalID := uuid.NewString()

	entries := make([]domain.JournalEntry, len(req.Entries))
	for i, entryReq := range req.Entries {
		entries[i] = domain.JournalEntry{
			EntryID:      uuid.NewString(),
			JournalID:    journalID,
			AccountID:    entryReq.AccountID,
			DebitAmount:  entryReq.DebitAmount,
			CreditAmount: entryReq.CreditAmount,
		}
	}

	if err := s.validateEntries(ctx, ownerID, entries); err != nil {
		return nil, err
	}

	journal := domain.Journal{
		JournalID:   journalID,
		OwnerID:     ownerID,
		JournalDate: journalDate,
		Description: req.Description,
		SourceType:  domain.SourceManual,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.journalRepo.SaveJournal(ctx, journal, entries); err != nil {
		logger.Error("Failed to save journal", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save journal: %w", err)
	}

	logger.Info("Journal created", slog.String("journal_id", journalID))
	journal.Entries = entries
	return &journal, nil
}

// CommitCandidate persists one confirmed scanned candidate as a two-entry
// journal: the amount debited to the categorized account and credited to the
// funding account. A two-entry single-amount journal satisfies the Balance
// Law by construction, but the check still runs before the write.
func (s *journalService) CommitCandidate(ctx context.Context, ownerID string, sourceType domain.SourceType, candidate domain.ScannedCandidate) (*domain.Journal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if candidate.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: candidate amount must be positive", apperrors.ErrValidation)
	}
	journalDate, err := time.Parse(dto.DateLayout, candidate.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid candidate date %q", apperrors.ErrValidation, candidate.Date)
	}

	now := time.Now().UTC()
	journalID := uuid.NewString()

	entries := []domain.JournalEntry{
		{
			EntryID:     uuid.NewString(),
			JournalID:   journalID,
			AccountID:   candidate.DebitAccountID,
			DebitAmount: candidate.Amount,
		},
		{
			EntryID:      uuid.NewString(),
			JournalID:    journalID,
			AccountID:    candidate.CreditAccountID,
			CreditAmount: candidate.Amount,
		},
	}

	if err := s.validateEntries(ctx, ownerID, entries); err != nil {
		return nil, err
	}

	journal := domain.Journal{
		JournalID:   journalID,
		OwnerID:     ownerID,
		JournalDate: journalDate,
		Description: candidate.Description,
		SourceType:  sourceType,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.journalRepo.SaveJournal(ctx, journal, entries); err != nil {
		logger.Error("Failed to save scanned journal", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save journal: %w", err)
	}

	journal.Entries = entries
	return &journal, nil
}

// GetJournalByID retrieves one journal with its entries.
func (s *journalService) GetJournalByID(ctx context.Context, ownerID, journalID string) (*domain.Journal, error) {
	journal, err := s.journalRepo.FindJournalByID(ctx, ownerID, journalID)
	if err != nil {
		return nil, fmt.Errorf("failed to find journal %s: %w", journalID, err)
	}

	entries, err := s.journalRepo.FindEntriesByJournalID(ctx, journalID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch entries for journal %s: %w", journalID, err)
	}
	journal.Entries = entries
	return journal, nil
}

// ListJournals retrieves the owner's journals, newest first, with entries.
func (s *journalService) ListJournals(ctx context.Context, ownerID string, params dto.ListJournalsParams) ([]domain.Journal, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 50
	}

	journals, err := s.journalRepo.ListJournalsByOwner(ctx, ownerID, limit, params.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list journals: %w", err)
	}

	for i := range journals {
		entries, err := s.journalRepo.FindEntriesByJournalID(ctx, journals[i].JournalID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch entries for journal %s: %w", journals[i].JournalID, err)
		}
		journals[i].Entries = entries
	}
	return journals, nil
}

// DeleteJournal removes a journal; its entries cascade with it.
func (s *journalService) DeleteJournal(ctx context.Context, ownerID, journalID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := s.journalRepo.DeleteJournal(ctx, ownerID, journalID); err != nil {
		return fmt.Errorf("failed to delete journal %s: %w", journalID, err)
	}
	logger.Info("Journal deleted", slog.String("journal_id", journalID))
	return nil
}
