package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fundledger/fundledger-backend/internal/apperrors"
	"github.com/fundledger/fundledger-backend/internal/core/domain"
	"github.com/fundledger/fundledger-backend/internal/dto"
	"github.com/fundledger/fundledger-backend/internal/handlers"
	"github.com/fundledger/fundledger-backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/ulule/limiter/v3"
	memorystore "github.com/ulule/limiter/v3/drivers/store/memory"
)

// MockLedgerService is a mock type for the LedgerSvcFacade interface
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) CreateAccount(ctx context.Context, userID int64) (*domain.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockLedgerService) GetAccountBalance(ctx context.Context, accountID int64) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockLedgerService) IncomingFund(ctx context.Context, accountID int64, amount decimal.Decimal) (*domain.FundReceipt, error) {
	args := m.Called(ctx, accountID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FundReceipt), args.Error(1)
}

func (m *MockLedgerService) GetFund(ctx context.Context, fundID int64) (*domain.FundRecord, error) {
	args := m.Called(ctx, fundID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FundRecord), args.Error(1)
}

// MockUserService is a mock type for the UserSvcFacade interface
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) ListUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserService) UpdateUser(ctx context.Context, userID int64, req dto.UpdateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) DeleteUser(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type AccountHandlerTestSuite struct {
	suite.Suite
	router     *gin.Engine
	mockLedger *MockLedgerService
	mockUsers  *MockUserService
}

func (suite *AccountHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockLedger = new(MockLedgerService)
	suite.mockUsers = new(MockUserService)

	rate, err := limiter.NewRateFromFormatted("1000-S")
	suite.Require().NoError(err)
	limiterInstance := limiter.New(memorystore.NewStore(), rate)

	suite.router = gin.New()
	cfg := &config.Config{IsProduction: true}
	handlers.RegisterRoutes(suite.router, cfg, limiterInstance, suite.mockLedger, suite.mockUsers)
}

func (suite *AccountHandlerTestSuite) postJSON(path string, body interface{}) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	suite.Require().NoError(err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_Success() {
	suite.mockLedger.On("CreateAccount", mock.Anything, int64(1)).
		Return(&domain.Account{AccountID: 10, UserID: 1, Balance: decimal.Zero}, nil).Once()

	w := suite.postJSON("/api/v1/accounts/create-account", gin.H{"user_id": 1})

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(10), resp.AccountID)
	suite.Equal(int64(1), resp.UserID)
	suite.True(resp.Balance.IsZero())
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_UserNotFound() {
	suite.mockLedger.On("CreateAccount", mock.Anything, int64(99)).
		Return(nil, apperrors.NewNotFound("user", 99)).Once()

	w := suite.postJSON("/api/v1/accounts/create-account", gin.H{"user_id": 99})

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_InvalidBody() {
	w := suite.postJSON("/api/v1/accounts/create-account", gin.H{"user_id": 0})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedger.AssertNotCalled(suite.T(), "CreateAccount", mock.Anything, mock.Anything)
}

func (suite *AccountHandlerTestSuite) TestGetAccountBalance_Success() {
	suite.mockLedger.On("GetAccountBalance", mock.Anything, int64(10)).
		Return(&domain.Account{AccountID: 10, UserID: 1, Balance: decimal.NewFromInt(1750)}, nil).Once()

	w := suite.postJSON("/api/v1/accounts/account-balance", gin.H{"account_id": 10})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.AccountBalanceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(10), resp.AccountID)
	suite.True(resp.Balance.Equal(decimal.NewFromInt(1750)))
}

func (suite *AccountHandlerTestSuite) TestGetAccountBalance_NotFound() {
	suite.mockLedger.On("GetAccountBalance", mock.Anything, int64(404)).
		Return(nil, apperrors.NewNotFound("account", 404)).Once()

	w := suite.postJSON("/api/v1/accounts/account-balance", gin.H{"account_id": 404})

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *AccountHandlerTestSuite) TestIncomingFund_Success() {
	amount := decimal.NewFromInt(500)
	suite.mockLedger.On("IncomingFund", mock.Anything, int64(10), mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(amount)
	})).Return(&domain.FundReceipt{FundID: 3, AccountID: 10, Amount: amount, Balance: decimal.NewFromInt(1750)}, nil).Once()

	w := suite.postJSON("/api/v1/accounts/incoming-fund", gin.H{"account_id": 10, "amount": "500"})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.IncomingFundResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(3), resp.FundID)
	suite.Equal(int64(10), resp.AccountID)
	suite.True(resp.Amount.Equal(amount))
	suite.True(resp.Balance.Equal(decimal.NewFromInt(1750)))
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestIncomingFund_ZeroAmountAccepted() {
	suite.mockLedger.On("IncomingFund", mock.Anything, int64(10), mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.IsZero()
	})).Return(&domain.FundReceipt{FundID: 1, AccountID: 10, Amount: decimal.Zero, Balance: decimal.Zero}, nil).Once()

	w := suite.postJSON("/api/v1/accounts/incoming-fund", gin.H{"account_id": 10, "amount": "0"})

	suite.Equal(http.StatusOK, w.Code)
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestIncomingFund_AccountNotFound() {
	suite.mockLedger.On("IncomingFund", mock.Anything, int64(404), mock.Anything).
		Return(nil, apperrors.NewNotFound("account", 404)).Once()

	w := suite.postJSON("/api/v1/accounts/incoming-fund", gin.H{"account_id": 404, "amount": "100"})

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *AccountHandlerTestSuite) TestIncomingFund_PersistenceError() {
	suite.mockLedger.On("IncomingFund", mock.Anything, int64(10), mock.Anything).
		Return(nil, apperrors.NewPersistence("insert fund", context.DeadlineExceeded)).Once()

	w := suite.postJSON("/api/v1/accounts/incoming-fund", gin.H{"account_id": 10, "amount": "100"})

	suite.Equal(http.StatusInternalServerError, w.Code)
}

func (suite *AccountHandlerTestSuite) TestGetFund_Success() {
	suite.mockLedger.On("GetFund", mock.Anything, int64(2)).
		Return(&domain.FundRecord{FundID: 2, AccountID: 10, Amount: decimal.NewFromInt(500)}, nil).Once()

	w := suite.postJSON("/api/v1/accounts/get-fund", gin.H{"fund_id": 2})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.FundResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(2), resp.FundID)
	suite.True(resp.Amount.Equal(decimal.NewFromInt(500)))
}

func (suite *AccountHandlerTestSuite) TestGetFund_NotFound() {
	suite.mockLedger.On("GetFund", mock.Anything, int64(77)).
		Return(nil, apperrors.NewNotFound("fund", 77)).Once()

	w := suite.postJSON("/api/v1/accounts/get-fund", gin.H{"fund_id": 77})

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *AccountHandlerTestSuite) TestHealthCheck() {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func TestAccountHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AccountHandlerTestSuite))
}
