package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/movdin/movdin-backend/internal/apperrors"
	"github.com/movdin/movdin-backend/internal/core/domain"
	portssvc "github.com/movdin/movdin-backend/internal/core/ports/services"
	"github.com/movdin/movdin-backend/internal/dto"
	"github.com/movdin/movdin-backend/internal/handlers"
	"github.com/movdin/movdin-backend/pkg/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TransactionSvc ---

type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) ListTransactions(ctx context.Context, filter domain.TransactionFilter, limit, offset int) ([]domain.Transaction, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

// --- Mock BalanceSvc ---

type MockBalanceService struct {
	mock.Mock
}

func (m *MockBalanceService) AccountBalance(ctx context.Context, accountID int64, asOf *time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, accountID, asOf)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockBalanceService) AllBalances(ctx context.Context, asOf *time.Time) ([]domain.AccountBalance, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountBalance), args.Error(1)
}

func (m *MockBalanceService) AccountStatement(ctx context.Context, accountID int64, dateFrom, dateTo *time.Time) ([]domain.TransactionWithBalance, error) {
	args := m.Called(ctx, accountID, dateFrom, dateTo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TransactionWithBalance), args.Error(1)
}

// --- Test Suite Setup ---

type BalanceHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockBalance *MockBalanceService
}

func (suite *BalanceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	dto.RegisterCustomValidators()

	suite.mockBalance = new(MockBalanceService)

	suite.router = gin.New()
	cfg := &config.Config{IsProduction: true}
	handlers.RegisterRoutes(suite.router, cfg, &portssvc.ServiceContainer{
		Account:     new(MockAccountService),
		Transaction: new(MockTransactionService),
		Balance:     suite.mockBalance,
	})
}

func (suite *BalanceHandlerTestSuite) get(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *BalanceHandlerTestSuite) TestGetAccountBalance_Success() {
	suite.mockBalance.On("AccountBalance", mock.Anything, int64(1), (*time.Time)(nil)).
		Return(decimal.RequireFromString("130.00"), nil).Once()

	w := suite.get("/api/v1/accounts/1/balance")

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.BalanceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Balance.Equal(decimal.RequireFromString("130.00")))
	suite.mockBalance.AssertExpectations(suite.T())
}

func (suite *BalanceHandlerTestSuite) TestGetAccountBalance_AsOfPassedThrough() {
	asOf := time.Date(2024, time.January, 7, 0, 0, 0, 0, time.UTC)
	suite.mockBalance.On("AccountBalance", mock.Anything, int64(1), &asOf).
		Return(decimal.RequireFromString("80.00"), nil).Once()

	w := suite.get("/api/v1/accounts/1/balance?as_of=2024-01-07")

	suite.Equal(http.StatusOK, w.Code)
	suite.mockBalance.AssertExpectations(suite.T())
}

func (suite *BalanceHandlerTestSuite) TestGetAccountBalance_MalformedAsOf() {
	w := suite.get("/api/v1/accounts/1/balance?as_of=07-01-2024")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockBalance.AssertNotCalled(suite.T(), "AccountBalance", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BalanceHandlerTestSuite) TestGetAccountBalance_NotFound() {
	suite.mockBalance.On("AccountBalance", mock.Anything, int64(99), (*time.Time)(nil)).
		Return(decimal.Zero, apperrors.ErrNotFound).Once()

	w := suite.get("/api/v1/accounts/99/balance")

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *BalanceHandlerTestSuite) TestListBalances_Success() {
	rows := []domain.AccountBalance{
		{AccountID: 2, Name: "Cash", Currency: domain.ARS, Balance: decimal.RequireFromString("10.00")},
		{AccountID: 1, Name: "Savings", Currency: domain.USD, Balance: decimal.RequireFromString("130.00")},
	}
	suite.mockBalance.On("AllBalances", mock.Anything, (*time.Time)(nil)).Return(rows, nil).Once()

	w := suite.get("/api/v1/accounts/balances")

	suite.Equal(http.StatusOK, w.Code)

	var resp []dto.AccountBalanceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 2)
	suite.Equal("Cash", resp[0].Name)
	suite.Equal("Savings", resp[1].Name)
}

func (suite *BalanceHandlerTestSuite) TestGetAccountStatement_Success() {
	rows := []domain.TransactionWithBalance{
		{
			Transaction: domain.Transaction{
				ID: 1, AccountID: 1,
				Date:   time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC),
				Amount: decimal.RequireFromString("-20.00"),
			},
			RunningBalance: decimal.RequireFromString("-20.00"),
		},
		{
			Transaction: domain.Transaction{
				ID: 2, AccountID: 1,
				Date:   time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC),
				Amount: decimal.RequireFromString("50.00"),
			},
			RunningBalance: decimal.RequireFromString("30.00"),
		},
	}
	suite.mockBalance.On("AccountStatement", mock.Anything, int64(1), (*time.Time)(nil), (*time.Time)(nil)).
		Return(rows, nil).Once()

	w := suite.get("/api/v1/accounts/1/transactions")

	suite.Equal(http.StatusOK, w.Code)

	var resp []dto.TransactionWithBalanceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 2)
	suite.Equal("2024-01-05", resp[0].Date)
	suite.True(resp[0].RunningBalance.Equal(decimal.RequireFromString("-20.00")))
	suite.True(resp[1].RunningBalance.Equal(decimal.RequireFromString("30.00")))
}

func (suite *BalanceHandlerTestSuite) TestGetAccountStatement_InvalidRange() {
	from := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	suite.mockBalance.On("AccountStatement", mock.Anything, int64(1), &from, &to).
		Return(nil, apperrors.ErrInvalidDate).Once()

	w := suite.get("/api/v1/accounts/1/transactions?date_from=2024-02-01&date_to=2024-01-01")

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *BalanceHandlerTestSuite) TestGetAccountStatement_NotFound() {
	suite.mockBalance.On("AccountStatement", mock.Anything, int64(99), (*time.Time)(nil), (*time.Time)(nil)).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.get("/api/v1/accounts/99/transactions")

	suite.Equal(http.StatusNotFound, w.Code)
}

func TestBalanceHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(BalanceHandlerTestSuite))
}
