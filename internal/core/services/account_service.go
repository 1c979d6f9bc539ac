package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hisakata/kakeibo/internal/apperrors"
	"github.com/hisakata/kakeibo/internal/core/domain"
	portsrepo "github.com/hisakata/kakeibo/internal/core/ports/repositories"
	portssvc "github.com/hisakata/kakeibo/internal/core/ports/services"
	"github.com/hisakata/kakeibo/internal/dto"
	"github.com/hisakata/kakeibo/internal/middleware"
)

// accountService manages the owner's chart of accounts.
type accountService struct {
	accountRepo portsrepo.AccountRepository
}

// NewAccountService creates a new AccountService.
func NewAccountService(accountRepo portsrepo.AccountRepository) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: accountRepo}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func validAccountType(t string) bool {
	for _, accountType := range domain.AccountTypes {
		if string(accountType) == t {
			return true
		}
	}
	return false
}

// CreateAccount adds one account to the owner's chart. Code uniqueness per
// owner is enforced by the repository and surfaced as ErrDuplicate.
func (s *accountService) CreateAccount(ctx context.Context, ownerID string, req dto.CreateAccountRequest) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !validAccountType(req.Type) {
		return nil, fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, req.Type)
	}

	now := time.Now().UTC()
	account := domain.Account{
		AccountID: uuid.NewString(),
		OwnerID:   ownerID,
		Code:      req.Code,
		Name:      req.Name,
		Type:      domain.AccountType(req.Type),
		SortOrder: req.SortOrder,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	logger.Info("Account created", slog.String("account_id", account.AccountID), slog.String("code", account.Code))
	return &account, nil
}

// GetAccountByID retrieves one account scoped to its owner.
func (s *accountService) GetAccountByID(ctx context.Context, ownerID, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, ownerID, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to find account %s: %w", accountID, err)
	}
	return account, nil
}

// ListAccounts returns the owner's accounts in sort order.
func (s *accountService) ListAccounts(ctx context.Context, ownerID string) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccountsByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

// DeleteAccount removes an account. The repository rejects the delete with
// ErrReferenced while journal entries still reference it; handlers turn that
// into a user-facing "cannot delete, in use" message.
func (s *accountService) DeleteAccount(ctx context.Context, ownerID, accountID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := s.accountRepo.DeleteAccount(ctx, ownerID, accountID); err != nil {
		return fmt.Errorf("failed to delete account %s: %w", accountID, err)
	}
	logger.Info("Account deleted", slog.String("account_id", accountID))
	return nil
}

// SeedDefaults creates the default chart of accounts for a new owner.
func (s *accountService) SeedDefaults(ctx context.Context, ownerID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	accounts := make([]domain.Account, len(domain.DefaultAccounts))
	for i, def := range domain.DefaultAccounts {
		accounts[i] = domain.Account{
			AccountID: uuid.NewString(),
			OwnerID:   ownerID,
			Code:      def.Code,
			Name:      def.Name,
			Type:      def.Type,
			SortOrder: def.SortOrder,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				LastUpdatedAt: now,
			},
		}
	}

	if err := s.accountRepo.SaveAccounts(ctx, accounts); err != nil {
		return fmt.Errorf("failed to seed default accounts: %w", err)
	}

	logger.Info("Default accounts seeded", slog.String("owner_id", ownerID), slog.Int("count", len(accounts)))
	return nil
}
