// Package repositories defines the persistence collaborator consumed by the
// core services. All reads are scoped by owning user.
package repositories

import (
	"context"

	"github.com/hisakata/kakeibo/internal/core/domain"
)

// AccountRepository defines persistence operations for accounts.
type AccountRepository interface {
	SaveAccount(ctx context.Context, account domain.Account) error
	SaveAccounts(ctx context.Context, accounts []domain.Account) error
	FindAccountByID(ctx context.Context, ownerID, accountID string) (*domain.Account, error)
	ListAccountsByOwner(ctx context.Context, ownerID string) ([]domain.Account, error)
	// DeleteAccount returns apperrors.ErrReferenced when journal entries still
	// reference the account.
	DeleteAccount(ctx context.Context, ownerID, accountID string) error
}

// JournalRepository defines persistence operations for journals and their
// entries. Saving a journal persists its entries atomically; deleting a
// journal cascades to them.
type JournalRepository interface {
	SaveJournal(ctx context.Context, journal domain.Journal, entries []domain.JournalEntry) error
	FindJournalByID(ctx context.Context, ownerID, journalID string) (*domain.Journal, error)
	FindEntriesByJournalID(ctx context.Context, journalID string) ([]domain.JournalEntry, error)
	ListJournalsByOwner(ctx context.Context, ownerID string, limit int, offset int) ([]domain.Journal, error)
	ListEntriesByOwner(ctx context.Context, ownerID string) ([]domain.JournalEntry, error)
	DeleteJournal(ctx context.Context, ownerID, journalID string) error
}

// RuleRepository defines persistence operations for category rules.
// Upsert is keyed on (owner, keyword); the most recent write wins.
type RuleRepository interface {
	UpsertRule(ctx context.Context, rule domain.CategoryRule) error
	ListRulesByOwner(ctx context.Context, ownerID string) ([]domain.CategoryRule, error)
	DeleteRule(ctx context.Context, ownerID, ruleID string) error
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	SaveUser(ctx context.Context, user domain.User) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// RepositoryProvider bundles all repositories for wiring.
type RepositoryProvider struct {
	AccountRepo AccountRepository
	JournalRepo JournalRepository
	RuleRepo    RuleRepository
	UserRepo    UserRepository
}
