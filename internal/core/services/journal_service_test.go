package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/hisakata/kakeibo/internal/apperrors"
	"github.com/hisakata/kakeibo/internal/core/domain"
	portssvc "github.com/hisakata/kakeibo/internal/core/ports/services"
	"github.com/hisakata/kakeibo/internal/core/services"
	"github.com/hisakata/kakeibo/internal/dto"
)

type JournalServiceTestSuite struct {
	suite.Suite
	mockRepo       *MockJournalRepository
	mockAccountSvc *MockAccountSvc
	service        portssvc.JournalSvcFacade

	ownerID  string
	accounts []domain.Account
}

func (suite *JournalServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockJournalRepository)
	suite.mockAccountSvc = new(MockAccountSvc)
	suite.service = services.NewJournalService(suite.mockRepo, suite.mockAccountSvc)

	suite.ownerID = "owner-1"
	suite.accounts = []domain.Account{
		{AccountID: "acc-cash", OwnerID: suite.ownerID, Code: "1001", Name: "現金", Type: domain.Asset},
		{AccountID: "acc-food", OwnerID: suite.ownerID, Code: "5001", Name: "食費", Type: domain.Expense},
	}
}

func (suite *JournalServiceTestSuite) expectAccounts() {
	suite.mockAccountSvc.On("ListAccounts", mock.Anything, suite.ownerID).Return(suite.accounts, nil)
}

func (suite *JournalServiceTestSuite) TestCreateJournal_Success() {
	ctx := context.Background()
	suite.expectAccounts()

	req := dto.CreateJournalRequest{
		Date:        "2026-08-15",
		Description: "スーパーで買い物",
		Entries: []dto.CreateEntryRequest{
			{AccountID: "acc-food", DebitAmount: decimal.NewFromInt(1200)},
			{AccountID: "acc-cash", CreditAmount: decimal.NewFromInt(1200)},
		},
	}

	suite.mockRepo.On("SaveJournal", ctx, mock.MatchedBy(func(j domain.Journal) bool {
		return j.OwnerID == suite.ownerID && j.Description == req.Description && j.SourceType == domain.SourceManual
	}), mock.MatchedBy(func(entries []domain.JournalEntry) bool {
		return len(entries) == 2
	})).Return(nil).Once()

	journal, err := suite.service.CreateJournal(ctx, suite.ownerID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(journal)
	suite.Len(journal.Entries, 2)
	suite.Equal("2026-08-15", journal.JournalDate.Format(dto.DateLayout))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestCreateJournal_Unbalanced() {
	ctx := context.Background()

	req := dto.CreateJournalRequest{
		Date:        "2026-08-15",
		Description: "ずれた仕訳",
		Entries: []dto.CreateEntryRequest{
			{AccountID: "acc-food", DebitAmount: decimal.NewFromInt(1200)},
			{AccountID: "acc-cash", CreditAmount: decimal.NewFromInt(1100)},
		},
	}

	journal, err := suite.service.CreateJournal(ctx, suite.ownerID, req)

	suite.Require().Error(err)
	suite.Nil(journal)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveJournal")
}

func (suite *JournalServiceTestSuite) TestCreateJournal_ZeroTotals() {
	ctx := context.Background()

	req := dto.CreateJournalRequest{
		Date:        "2026-08-15",
		Description: "空の仕訳",
		Entries: []dto.CreateEntryRequest{
			{AccountID: "acc-food"},
			{AccountID: "acc-cash"},
		},
	}

	journal, err := suite.service.CreateJournal(ctx, suite.ownerID, req)

	suite.Require().Error(err)
	suite.Nil(journal)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *JournalServiceTestSuite) TestCreateJournal_NegativeAmount() {
	ctx := context.Background()

	req := dto.CreateJournalRequest{
		Date:        "2026-08-15",
		Description: "マイナス金額",
		Entries: []dto.CreateEntryRequest{
			{AccountID: "acc-food", DebitAmount: decimal.NewFromInt(-100)},
			{AccountID: "acc-cash", CreditAmount: decimal.NewFromInt(-100)},
		},
	}

	journal, err := suite.service.CreateJournal(ctx, suite.ownerID, req)

	suite.Require().Error(err)
	suite.Nil(journal)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *JournalServiceTestSuite) TestCreateJournal_UnknownAccount() {
	ctx := context.Background()
	suite.expectAccounts()

	req := dto.CreateJournalRequest{
		Date:        "2026-08-15",
		Description: "他人の勘定",
		Entries: []dto.CreateEntryRequest{
			{AccountID: "acc-someone-else", DebitAmount: decimal.NewFromInt(500)},
			{AccountID: "acc-cash", CreditAmount: decimal.NewFromInt(500)},
		},
	}

	journal, err := suite.service.CreateJournal(ctx, suite.ownerID, req)

	suite.Require().Error(err)
	suite.Nil(journal)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveJournal")
}

func (suite *JournalServiceTestSuite) TestCreateJournal_InvalidDate() {
	ctx := context.Background()

	req := dto.CreateJournalRequest{
		Date:        "15/08/2026",
		Description: "日付形式違い",
		Entries: []dto.CreateEntryRequest{
			{AccountID: "acc-food", DebitAmount: decimal.NewFromInt(100)},
			{AccountID: "acc-cash", CreditAmount: decimal.NewFromInt(100)},
		},
	}

	journal, err := suite.service.CreateJournal(ctx, suite.ownerID, req)

	suite.Require().Error(err)
	suite.Nil(journal)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *JournalServiceTestSuite) TestCommitCandidate_Success() {
	ctx := context.Background()
	suite.expectAccounts()

	candidate := domain.ScannedCandidate{
		Date:            "2026-08-20",
		Description:     "マルエツ",
		Amount:          decimal.NewFromInt(1200),
		DebitAccountID:  "acc-food",
		CreditAccountID: "acc-cash",
		Included:        true,
	}

	suite.mockRepo.On("SaveJournal", ctx, mock.MatchedBy(func(j domain.Journal) bool {
		return j.SourceType == domain.SourceReceiptOCR && j.Description == "マルエツ"
	}), mock.MatchedBy(func(entries []domain.JournalEntry) bool {
		if len(entries) != 2 {
			return false
		}
		debit, credit := entries[0], entries[1]
		return debit.AccountID == "acc-food" && debit.DebitAmount.Equal(decimal.NewFromInt(1200)) && debit.CreditAmount.IsZero() &&
			credit.AccountID == "acc-cash" && credit.CreditAmount.Equal(decimal.NewFromInt(1200)) && credit.DebitAmount.IsZero()
	})).Return(nil).Once()

	journal, err := suite.service.CommitCandidate(ctx, suite.ownerID, domain.SourceReceiptOCR, candidate)

	suite.Require().NoError(err)
	suite.Require().NotNil(journal)
	suite.Len(journal.Entries, 2)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestCommitCandidate_TwiceCreatesTwoJournals() {
	ctx := context.Background()
	suite.expectAccounts()

	candidate := domain.ScannedCandidate{
		Date:            "2026-08-20",
		Description:     "マルエツ",
		Amount:          decimal.NewFromInt(1200),
		DebitAccountID:  "acc-food",
		CreditAccountID: "acc-cash",
	}

	// Commits are not idempotent: the same reviewed candidate submitted twice
	// is two real purchases (or a caller bug), either way two journals.
	suite.mockRepo.On("SaveJournal", ctx, mock.Anything, mock.Anything).Return(nil).Twice()

	first, err := suite.service.CommitCandidate(ctx, suite.ownerID, domain.SourceReceiptOCR, candidate)
	suite.Require().NoError(err)
	second, err := suite.service.CommitCandidate(ctx, suite.ownerID, domain.SourceReceiptOCR, candidate)
	suite.Require().NoError(err)

	suite.NotEqual(first.JournalID, second.JournalID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestCommitCandidate_NonPositiveAmount() {
	ctx := context.Background()

	candidate := domain.ScannedCandidate{
		Date:            "2026-08-20",
		Description:     "ゼロ円",
		Amount:          decimal.Zero,
		DebitAccountID:  "acc-food",
		CreditAccountID: "acc-cash",
	}

	journal, err := suite.service.CommitCandidate(ctx, suite.ownerID, domain.SourceReceiptOCR, candidate)

	suite.Require().Error(err)
	suite.Nil(journal)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveJournal")
}

func (suite *JournalServiceTestSuite) TestCommitCandidate_SaveError() {
	ctx := context.Background()
	suite.expectAccounts()

	candidate := domain.ScannedCandidate{
		Date:            "2026-08-20",
		Description:     "マルエツ",
		Amount:          decimal.NewFromInt(300),
		DebitAccountID:  "acc-food",
		CreditAccountID: "acc-cash",
	}

	suite.mockRepo.On("SaveJournal", ctx, mock.Anything, mock.Anything).Return(assert.AnError).Once()

	journal, err := suite.service.CommitCandidate(ctx, suite.ownerID, domain.SourceCardScreenshot, candidate)

	suite.Require().Error(err)
	suite.Nil(journal)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *JournalServiceTestSuite) TestGetJournalByID_Success() {
	ctx := context.Background()
	journalID := "jr-1"
	expected := &domain.Journal{JournalID: journalID, OwnerID: suite.ownerID}
	entries := []domain.JournalEntry{{EntryID: "e-1", JournalID: journalID}}

	suite.mockRepo.On("FindJournalByID", ctx, suite.ownerID, journalID).Return(expected, nil).Once()
	suite.mockRepo.On("FindEntriesByJournalID", ctx, journalID).Return(entries, nil).Once()

	journal, err := suite.service.GetJournalByID(ctx, suite.ownerID, journalID)

	suite.Require().NoError(err)
	suite.Equal(journalID, journal.JournalID)
	suite.Len(journal.Entries, 1)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestGetJournalByID_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("FindJournalByID", ctx, suite.ownerID, "missing").Return(nil, apperrors.ErrNotFound).Once()

	journal, err := suite.service.GetJournalByID(ctx, suite.ownerID, "missing")

	suite.Require().Error(err)
	suite.Nil(journal)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *JournalServiceTestSuite) TestListJournals_DefaultLimit() {
	ctx := context.Background()
	journals := []domain.Journal{{JournalID: "jr-1", OwnerID: suite.ownerID}}

	suite.mockRepo.On("ListJournalsByOwner", ctx, suite.ownerID, 50, 0).Return(journals, nil).Once()
	suite.mockRepo.On("FindEntriesByJournalID", ctx, "jr-1").Return([]domain.JournalEntry{}, nil).Once()

	got, err := suite.service.ListJournals(ctx, suite.ownerID, dto.ListJournalsParams{})

	suite.Require().NoError(err)
	suite.Len(got, 1)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestDeleteJournal_Success() {
	ctx := context.Background()

	suite.mockRepo.On("DeleteJournal", ctx, suite.ownerID, "jr-1").Return(nil).Once()

	err := suite.service.DeleteJournal(ctx, suite.ownerID, "jr-1")

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestJournalService(t *testing.T) {
	suite.Run(t, new(JournalServiceTestSuite))
}
