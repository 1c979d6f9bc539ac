// Package services defines the facades exposed by the core services and the
// external collaborators they consume.
package services

import (
	"context"

	"github.com/hisakata/kakeibo/internal/core/domain"
	"github.com/hisakata/kakeibo/internal/dto"
)

// AccountSvcFacade manages the owner's chart of accounts.
type AccountSvcFacade interface {
	CreateAccount(ctx context.Context, ownerID string, req dto.CreateAccountRequest) (*domain.Account, error)
	GetAccountByID(ctx context.Context, ownerID, accountID string) (*domain.Account, error)
	ListAccounts(ctx context.Context, ownerID string) ([]domain.Account, error)
	// DeleteAccount returns apperrors.ErrReferenced while journal entries
	// still reference the account.
	DeleteAccount(ctx context.Context, ownerID, accountID string) error
	// SeedDefaults creates the default chart of accounts for a new owner.
	SeedDefaults(ctx context.Context, ownerID string) error
}

// JournalSvcFacade creates and reads balanced journals. Every write enforces
// the Balance Law before touching persistence.
type JournalSvcFacade interface {
	CreateJournal(ctx context.Context, ownerID string, req dto.CreateJournalRequest) (*domain.Journal, error)
	CommitCandidate(ctx context.Context, ownerID string, sourceType domain.SourceType, candidate domain.ScannedCandidate) (*domain.Journal, error)
	GetJournalByID(ctx context.Context, ownerID, journalID string) (*domain.Journal, error)
	ListJournals(ctx context.Context, ownerID string, params dto.ListJournalsParams) ([]domain.Journal, error)
	DeleteJournal(ctx context.Context, ownerID, journalID string) error
}

// RuleSvcFacade learns and lists categorization rules.
type RuleSvcFacade interface {
	LearnRule(ctx context.Context, ownerID, keyword, accountID string) error
	DeriveKeyword(description string) string
	ListRules(ctx context.Context, ownerID string) ([]domain.CategoryRule, error)
}

// CategorizerSvcFacade resolves a free-text description to a debit account id
// through the rule -> suggestion -> default cascade. It never fails: the
// result is an account id or "" when no tier can produce one.
type CategorizerSvcFacade interface {
	Categorize(ctx context.Context, description string, rules []domain.CategoryRule, accounts []domain.Account) string
}

// ScanSvcFacade drives the two document ingestion flows end to end.
type ScanSvcFacade interface {
	ScanReceipt(ctx context.Context, ownerID string, image []byte, mimeType string) (*domain.ScanResult, error)
	ScanStatement(ctx context.Context, ownerID string, image []byte, mimeType string) (*domain.ScanResult, error)
	CommitScan(ctx context.Context, ownerID string, sourceType domain.SourceType, candidates []domain.ScannedCandidate) (*domain.CommitResult, error)
}

// ReportingSvcFacade aggregates the ledger.
type ReportingSvcFacade interface {
	TrialBalance(ctx context.Context, ownerID string) (*domain.TrialBalance, error)
}

// UserSvcFacade is the identity collaborator: registration and credential checks.
type UserSvcFacade interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
}

// ServiceContainer bundles all service facades for route wiring.
type ServiceContainer struct {
	Account     AccountSvcFacade
	Journal     JournalSvcFacade
	Rule        RuleSvcFacade
	Categorizer CategorizerSvcFacade
	Scan        ScanSvcFacade
	Reporting   ReportingSvcFacade
	User        UserSvcFacade
}
