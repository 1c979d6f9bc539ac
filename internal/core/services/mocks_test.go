package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/hisakata/kakeibo/internal/core/domain"
	portssvc "github.com/hisakata/kakeibo/internal/core/ports/services"
	"github.com/hisakata/kakeibo/internal/dto"
)

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) SaveAccounts(ctx context.Context, accounts []domain.Account) error {
	args := m.Called(ctx, accounts)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, ownerID, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, ownerID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccountsByOwner(ctx context.Context, ownerID string) ([]domain.Account, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) DeleteAccount(ctx context.Context, ownerID, accountID string) error {
	args := m.Called(ctx, ownerID, accountID)
	return args.Error(0)
}

// --- Mock JournalRepository ---
type MockJournalRepository struct {
	mock.Mock
}

func (m *MockJournalRepository) SaveJournal(ctx context.Context, journal domain.Journal, entries []domain.JournalEntry) error {
	args := m.Called(ctx, journal, entries)
	return args.Error(0)
}

func (m *MockJournalRepository) FindJournalByID(ctx context.Context, ownerID, journalID string) (*domain.Journal, error) {
	args := m.Called(ctx, ownerID, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}

func (m *MockJournalRepository) FindEntriesByJournalID(ctx context.Context, journalID string) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) ListJournalsByOwner(ctx context.Context, ownerID string, limit int, offset int) ([]domain.Journal, error) {
	args := m.Called(ctx, ownerID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Journal), args.Error(1)
}

func (m *MockJournalRepository) ListEntriesByOwner(ctx context.Context, ownerID string) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) DeleteJournal(ctx context.Context, ownerID, journalID string) error {
	args := m.Called(ctx, ownerID, journalID)
	return args.Error(0)
}

// --- Mock RuleRepository ---
type MockRuleRepository struct {
	mock.Mock
}

func (m *MockRuleRepository) UpsertRule(ctx context.Context, rule domain.CategoryRule) error {
	args := m.Called(ctx, rule)
	return args.Error(0)
}

func (m *MockRuleRepository) ListRulesByOwner(ctx context.Context, ownerID string) ([]domain.CategoryRule, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategoryRule), args.Error(1)
}

func (m *MockRuleRepository) DeleteRule(ctx context.Context, ownerID, ruleID string) error {
	args := m.Called(ctx, ownerID, ruleID)
	return args.Error(0)
}

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// --- Mock VisionExtractor ---
type MockVisionExtractor struct {
	mock.Mock
}

func (m *MockVisionExtractor) ExtractReceipt(ctx context.Context, image []byte, mimeType string) (*portssvc.ReceiptExtraction, error) {
	args := m.Called(ctx, image, mimeType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portssvc.ReceiptExtraction), args.Error(1)
}

func (m *MockVisionExtractor) ExtractStatement(ctx context.Context, image []byte, mimeType string) (*portssvc.StatementExtraction, error) {
	args := m.Called(ctx, image, mimeType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portssvc.StatementExtraction), args.Error(1)
}

func (m *MockVisionExtractor) SuggestCategory(ctx context.Context, description string, candidateNames []string) (string, error) {
	args := m.Called(ctx, description, candidateNames)
	return args.String(0), args.Error(1)
}

// --- Mock AccountSvcFacade ---
type MockAccountSvc struct {
	mock.Mock
}

func (m *MockAccountSvc) CreateAccount(ctx context.Context, ownerID string, req dto.CreateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountSvc) GetAccountByID(ctx context.Context, ownerID, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, ownerID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountSvc) ListAccounts(ctx context.Context, ownerID string) ([]domain.Account, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountSvc) DeleteAccount(ctx context.Context, ownerID, accountID string) error {
	args := m.Called(ctx, ownerID, accountID)
	return args.Error(0)
}

func (m *MockAccountSvc) SeedDefaults(ctx context.Context, ownerID string) error {
	args := m.Called(ctx, ownerID)
	return args.Error(0)
}

// --- Mock JournalSvcFacade ---
type MockJournalSvc struct {
	mock.Mock
}

func (m *MockJournalSvc) CreateJournal(ctx context.Context, ownerID string, req dto.CreateJournalRequest) (*domain.Journal, error) {
	args := m.Called(ctx, ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}

func (m *MockJournalSvc) CommitCandidate(ctx context.Context, ownerID string, sourceType domain.SourceType, candidate domain.ScannedCandidate) (*domain.Journal, error) {
	args := m.Called(ctx, ownerID, sourceType, candidate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}

func (m *MockJournalSvc) GetJournalByID(ctx context.Context, ownerID, journalID string) (*domain.Journal, error) {
	args := m.Called(ctx, ownerID, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}

func (m *MockJournalSvc) ListJournals(ctx context.Context, ownerID string, params dto.ListJournalsParams) ([]domain.Journal, error) {
	args := m.Called(ctx, ownerID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Journal), args.Error(1)
}

func (m *MockJournalSvc) DeleteJournal(ctx context.Context, ownerID, journalID string) error {
	args := m.Called(ctx, ownerID, journalID)
	return args.Error(0)
}

// --- Mock RuleSvcFacade ---
type MockRuleSvc struct {
	mock.Mock
}

func (m *MockRuleSvc) LearnRule(ctx context.Context, ownerID, keyword, accountID string) error {
	args := m.Called(ctx, ownerID, keyword, accountID)
	return args.Error(0)
}

func (m *MockRuleSvc) DeriveKeyword(description string) string {
	args := m.Called(description)
	return args.String(0)
}

func (m *MockRuleSvc) ListRules(ctx context.Context, ownerID string) ([]domain.CategoryRule, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategoryRule), args.Error(1)
}

// --- Mock CategorizerSvcFacade ---
type MockCategorizerSvc struct {
	mock.Mock
}

func (m *MockCategorizerSvc) Categorize(ctx context.Context, description string, rules []domain.CategoryRule, accounts []domain.Account) string {
	args := m.Called(ctx, description, rules, accounts)
	return args.String(0)
}
