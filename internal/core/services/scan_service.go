package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/hisakata/kakeibo/internal/core/domain"
	portssvc "github.com/hisakata/kakeibo/internal/core/ports/services"
	"github.com/hisakata/kakeibo/internal/middleware"
)

// scanService orchestrates the two document ingestion flows: extract
// candidates from an image, categorize each one, stage them for review, and
// commit confirmed candidates as journals.
type scanService struct {
	extractor   portssvc.VisionExtractor
	categorizer portssvc.CategorizerSvcFacade
	journalSvc  portssvc.JournalSvcFacade
	accountSvc  portssvc.AccountSvcFacade
	ruleSvc     portssvc.RuleSvcFacade
}

// NewScanService creates a new ScanService.
func NewScanService(
	extractor portssvc.VisionExtractor,
	categorizer portssvc.CategorizerSvcFacade,
	journalSvc portssvc.JournalSvcFacade,
	accountSvc portssvc.AccountSvcFacade,
	ruleSvc portssvc.RuleSvcFacade,
) portssvc.ScanSvcFacade {
	return &scanService{
		extractor:   extractor,
		categorizer: categorizer,
		journalSvc:  journalSvc,
		accountSvc:  accountSvc,
		ruleSvc:     ruleSvc,
	}
}

var _ portssvc.ScanSvcFacade = (*scanService)(nil)

// Funding account codes for the two flows: receipts are paid from cash,
// statement lines charge the card liability account.
const (
	codeCash = "1001"
	codeCard = "2001"
)

// findByCode returns the account with the given code, or the first account of
// fallbackType when the owner renamed or removed the conventional one.
func findByCode(accounts []domain.Account, code string, fallbackType domain.AccountType) string {
	for _, account := range accounts {
		if account.Code == code {
			return account.AccountID
		}
	}
	for _, account := range accounts {
		if account.Type == fallbackType {
			return account.AccountID
		}
	}
	return ""
}

// loadContext fetches the owner's accounts and rules once per scan session.
func (s *scanService) loadContext(ctx context.Context, ownerID string) ([]domain.Account, []domain.CategoryRule, error) {
	accounts, err := s.accountSvc.ListAccounts(ctx, ownerID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load accounts for scan: %w", err)
	}
	rules, err := s.ruleSvc.ListRules(ctx, ownerID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load rules for scan: %w", err)
	}
	return accounts, rules, nil
}

// ScanReceipt extracts a single transaction from one receipt image: the store
// name becomes the description, the receipt total the amount, the categorized
// account the debit side and cash the credit side.
func (s *scanService) ScanReceipt(ctx context.Context, ownerID string, image []byte, mimeType string) (*domain.ScanResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	accounts, rules, err := s.loadContext(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	extraction, err := s.extractor.ExtractReceipt(ctx, image, mimeType)
	if err != nil {
		// Extraction failure of the image itself is fatal to the session;
		// the handler surfaces a retry-prompting message.
		logger.Warn("Receipt extraction failed", slog.String("error", err.Error()))
		return nil, err
	}

	candidate := domain.ScannedCandidate{
		Date:            extraction.Date,
		Description:     extraction.StoreName,
		Amount:          decimal.NewFromInt(extraction.Total),
		DebitAccountID:  s.categorizer.Categorize(ctx, extraction.StoreName, rules, accounts),
		CreditAccountID: findByCode(accounts, codeCash, domain.Asset),
		Included:        true,
	}

	logger.Info("Receipt scanned",
		slog.String("store", extraction.StoreName),
		slog.Int64("total", extraction.Total),
		slog.Int("items", len(extraction.Items)))

	return &domain.ScanResult{
		SourceType: domain.SourceReceiptOCR,
		State:      domain.ScanReviewPending,
		StoreName:  extraction.StoreName,
		Candidates: []domain.ScannedCandidate{candidate},
	}, nil
}

// ScanStatement extracts one candidate per statement line. Candidates are
// categorized sequentially so a failing collaborator call on item k cannot
// disturb the suggestions already resolved for items before it; the credit
// side is fixed to the card liability account for every line.
func (s *scanService) ScanStatement(ctx context.Context, ownerID string, image []byte, mimeType string) (*domain.ScanResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	accounts, rules, err := s.loadContext(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	extraction, err := s.extractor.ExtractStatement(ctx, image, mimeType)
	if err != nil {
		logger.Warn("Statement extraction failed", slog.String("error", err.Error()))
		return nil, err
	}

	creditAccountID := findByCode(accounts, codeCard, domain.Liability)
	candidates := make([]domain.ScannedCandidate, len(extraction.Items))
	for i, item := range extraction.Items {
		candidates[i] = domain.ScannedCandidate{
			Date:            item.Date,
			Description:     item.Description,
			Amount:          decimal.NewFromInt(item.Amount),
			DebitAccountID:  s.categorizer.Categorize(ctx, item.Description, rules, accounts),
			CreditAccountID: creditAccountID,
			Included:        true,
		}
	}

	logger.Info("Statement scanned", slog.Int("items", len(candidates)))

	return &domain.ScanResult{
		SourceType: domain.SourceCardScreenshot,
		State:      domain.ScanReviewPending,
		Candidates: candidates,
	}, nil
}

// CommitScan persists every included candidate as one two-entry journal,
// sequentially. A failure on item k stops the loop: journals 1..k-1 stay
// committed and the remaining included indices are reported as pending so the
// caller can retry only those. Rule learning runs after all commits succeed
// and is best-effort; its failures never mask the commit outcome.
func (s *scanService) CommitScan(ctx context.Context, ownerID string, sourceType domain.SourceType, candidates []domain.ScannedCandidate) (*domain.CommitResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	result := &domain.CommitResult{}
	committed := make([]domain.ScannedCandidate, 0, len(candidates))

	for i, candidate := range candidates {
		if !candidate.Included {
			continue
		}

		journal, err := s.journalSvc.CommitCandidate(ctx, ownerID, sourceType, candidate)
		if err != nil {
			logger.Error("Commit stopped at candidate",
				slog.Int("index", i),
				slog.String("error", err.Error()))
			result.Failed = &domain.FailedItem{Index: i, Reason: err.Error()}
			for j := i + 1; j < len(candidates); j++ {
				if candidates[j].Included {
					result.Pending = append(result.Pending, j)
				}
			}
			return result, nil
		}

		result.Committed = append(result.Committed, domain.CommittedItem{Index: i, JournalID: journal.JournalID})
		committed = append(committed, candidate)
	}

	for _, candidate := range committed {
		keyword := s.ruleSvc.DeriveKeyword(candidate.Description)
		if keyword == "" {
			continue
		}
		if err := s.ruleSvc.LearnRule(ctx, ownerID, keyword, candidate.DebitAccountID); err != nil {
			logger.Warn("Rule learning failed after commit",
				slog.String("keyword", keyword),
				slog.String("error", err.Error()))
		}
	}

	logger.Info("Scan committed", slog.Int("journals", len(result.Committed)))
	return result, nil
}
