package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/hisakata/kakeibo/internal/core/domain"
	portssvc "github.com/hisakata/kakeibo/internal/core/ports/services"
	"github.com/hisakata/kakeibo/internal/core/services"
)

type CategorizerServiceTestSuite struct {
	suite.Suite
	mockExtractor *MockVisionExtractor
	service       portssvc.CategorizerSvcFacade

	accounts []domain.Account
}

func (suite *CategorizerServiceTestSuite) SetupTest() {
	suite.mockExtractor = new(MockVisionExtractor)
	suite.service = services.NewCategorizerService(suite.mockExtractor)

	suite.accounts = []domain.Account{
		{AccountID: "acc-cash", Code: "1001", Name: "現金", Type: domain.Asset},
		{AccountID: "acc-food", Code: "5001", Name: "食費", Type: domain.Expense},
		{AccountID: "acc-daily", Code: "5002", Name: "日用品費", Type: domain.Expense},
		{AccountID: "acc-other", Code: "5099", Name: "その他費用", Type: domain.Expense},
	}
}

func (suite *CategorizerServiceTestSuite) TestRuleMatchWinsOverSuggestion() {
	ctx := context.Background()
	rules := []domain.CategoryRule{
		{Keyword: "スーパー", AccountID: "acc-food"},
	}

	got := suite.service.Categorize(ctx, "スーパーマルエツ 新宿店", rules, suite.accounts)

	suite.Equal("acc-food", got)
	suite.mockExtractor.AssertNotCalled(suite.T(), "SuggestCategory")
}

func (suite *CategorizerServiceTestSuite) TestRuleMatchIsCaseInsensitive() {
	ctx := context.Background()
	rules := []domain.CategoryRule{
		{Keyword: "STARBUCKS", AccountID: "acc-food"},
	}

	got := suite.service.Categorize(ctx, "Starbucks Coffee Shibuya", rules, suite.accounts)

	suite.Equal("acc-food", got)
	suite.mockExtractor.AssertNotCalled(suite.T(), "SuggestCategory")
}

func (suite *CategorizerServiceTestSuite) TestFirstMatchingRuleWins() {
	ctx := context.Background()
	rules := []domain.CategoryRule{
		{Keyword: "マルエツ", AccountID: "acc-daily"},
		{Keyword: "スーパー", AccountID: "acc-food"},
	}

	got := suite.service.Categorize(ctx, "スーパーマルエツ", rules, suite.accounts)

	suite.Equal("acc-daily", got)
}

func (suite *CategorizerServiceTestSuite) TestSuggestionMatchedByName() {
	ctx := context.Background()

	suite.mockExtractor.On("SuggestCategory", ctx, "ドラッグストア", []string{"食費", "日用品費", "その他費用"}).
		Return("日用品費", nil).Once()

	got := suite.service.Categorize(ctx, "ドラッグストア", nil, suite.accounts)

	suite.Equal("acc-daily", got)
	suite.mockExtractor.AssertExpectations(suite.T())
}

func (suite *CategorizerServiceTestSuite) TestUnrecognizedSuggestionFallsBackToFirstExpense() {
	ctx := context.Background()

	suite.mockExtractor.On("SuggestCategory", ctx, mock.Anything, mock.Anything).
		Return("交際費っぽい何か", nil).Once()

	got := suite.service.Categorize(ctx, "謎の店", nil, suite.accounts)

	suite.Equal("acc-food", got)
	suite.mockExtractor.AssertExpectations(suite.T())
}

func (suite *CategorizerServiceTestSuite) TestSuggestionErrorFallsBackToOtherExpense() {
	ctx := context.Background()

	suite.mockExtractor.On("SuggestCategory", ctx, mock.Anything, mock.Anything).
		Return("", assert.AnError).Once()

	got := suite.service.Categorize(ctx, "謎の店", nil, suite.accounts)

	suite.Equal("acc-other", got)
	suite.mockExtractor.AssertExpectations(suite.T())
}

func (suite *CategorizerServiceTestSuite) TestSuggestionErrorWithoutCatchAllReturnsEmpty() {
	ctx := context.Background()
	accounts := []domain.Account{
		{AccountID: "acc-cash", Code: "1001", Name: "現金", Type: domain.Asset},
	}

	suite.mockExtractor.On("SuggestCategory", ctx, mock.Anything, mock.Anything).
		Return("", assert.AnError).Once()

	got := suite.service.Categorize(ctx, "謎の店", nil, accounts)

	suite.Empty(got)
}

func (suite *CategorizerServiceTestSuite) TestNoExpenseAccountsReturnsEmpty() {
	ctx := context.Background()
	accounts := []domain.Account{
		{AccountID: "acc-cash", Code: "1001", Name: "現金", Type: domain.Asset},
	}

	suite.mockExtractor.On("SuggestCategory", ctx, mock.Anything, mock.Anything).
		Return("食費", nil).Once()

	got := suite.service.Categorize(ctx, "謎の店", nil, accounts)

	suite.Empty(got)
}

func TestCategorizerService(t *testing.T) {
	suite.Run(t, new(CategorizerServiceTestSuite))
}
