package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"github.com/hisakata/kakeibo/internal/apperrors"
	"github.com/hisakata/kakeibo/internal/core/domain"
	portssvc "github.com/hisakata/kakeibo/internal/core/ports/services"
	"github.com/hisakata/kakeibo/internal/core/services"
	"github.com/hisakata/kakeibo/internal/dto"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockRepo       *MockUserRepository
	mockAccountSvc *MockAccountSvc
	service        portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.mockAccountSvc = new(MockAccountSvc)
	suite.service = services.NewUserService(suite.mockRepo, suite.mockAccountSvc)
}

func (suite *UserServiceTestSuite) TestRegister_Success() {
	ctx := context.Background()
	req := dto.RegisterRequest{Email: "Hana@Example.com", Password: "correct-horse"}

	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == "hana@example.com" && u.PasswordHash != "" && u.PasswordHash != req.Password
	})).Return(nil).Once()
	suite.mockAccountSvc.On("SeedDefaults", ctx, mock.AnythingOfType("string")).Return(nil).Once()

	user, err := suite.service.Register(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.Equal("hana@example.com", user.Email)
	suite.NoError(bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)))
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockAccountSvc.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegister_DuplicateEmail() {
	ctx := context.Background()
	req := dto.RegisterRequest{Email: "hana@example.com", Password: "correct-horse"}

	suite.mockRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(apperrors.ErrDuplicate).Once()

	user, err := suite.service.Register(ctx, req)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockAccountSvc.AssertNotCalled(suite.T(), "SeedDefaults")
}

func (suite *UserServiceTestSuite) TestRegister_SeedError() {
	ctx := context.Background()
	req := dto.RegisterRequest{Email: "hana@example.com", Password: "correct-horse"}

	suite.mockRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(nil).Once()
	suite.mockAccountSvc.On("SeedDefaults", ctx, mock.AnythingOfType("string")).Return(assert.AnError).Once()

	user, err := suite.service.Register(ctx, req)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *UserServiceTestSuite) TestAuthenticate_Success() {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	suite.Require().NoError(err)
	stored := &domain.User{UserID: "u-1", Email: "hana@example.com", PasswordHash: string(hash)}

	suite.mockRepo.On("FindUserByEmail", ctx, "hana@example.com").Return(stored, nil).Once()

	user, err := suite.service.Authenticate(ctx, "Hana@Example.com ", "correct-horse")

	suite.Require().NoError(err)
	suite.Equal("u-1", user.UserID)
}

func (suite *UserServiceTestSuite) TestAuthenticate_WrongPassword() {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	suite.Require().NoError(err)
	stored := &domain.User{UserID: "u-1", Email: "hana@example.com", PasswordHash: string(hash)}

	suite.mockRepo.On("FindUserByEmail", ctx, "hana@example.com").Return(stored, nil).Once()

	user, err := suite.service.Authenticate(ctx, "hana@example.com", "wrong-password")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticate_UnknownEmail() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByEmail", ctx, "nobody@example.com").Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.Authenticate(ctx, "nobody@example.com", "whatever")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func TestUserService(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
