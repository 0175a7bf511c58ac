package handlers_test

import (
	"bytes"
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

type TransactionHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockTransactionService
}

func (suite *TransactionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	dto.RegisterCustomValidators()

	suite.mockService = new(MockTransactionService)

	suite.router = gin.New()
	cfg := &config.Config{IsProduction: true}
	handlers.RegisterRoutes(suite.router, cfg, &portssvc.ServiceContainer{
		Account:     new(MockAccountService),
		Transaction: suite.mockService,
		Balance:     new(MockBalanceService),
	})
}

func (suite *TransactionHandlerTestSuite) performRequest(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_Success() {
	txn := &domain.Transaction{
		ID:          10,
		AccountID:   1,
		Date:        time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC),
		Description: "Groceries",
		Amount:      decimal.RequireFromString("-20.00"),
	}
	suite.mockService.On("CreateTransaction", mock.Anything, mock.MatchedBy(func(req dto.CreateTransactionRequest) bool {
		return req.AccountID == 1 && req.Date == "2024-01-05"
	})).Return(txn, nil).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/transactions", gin.H{
		"accountID":   1,
		"date":        "2024-01-05",
		"description": "Groceries",
		"amount":      "-20.00",
	})

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(10), resp.ID)
	suite.Equal("2024-01-05", resp.Date)
	suite.True(resp.Amount.Equal(decimal.RequireFromString("-20.00")))
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_KindPassedThrough() {
	suite.mockService.On("CreateTransaction", mock.Anything, mock.MatchedBy(func(req dto.CreateTransactionRequest) bool {
		return req.Kind == dto.KindExpense
	})).Return(&domain.Transaction{ID: 11, AccountID: 1, Amount: decimal.RequireFromString("-20.00")}, nil).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/transactions", gin.H{
		"accountID": 1,
		"date":      "2024-01-05",
		"amount":    "20.00",
		"kind":      "expense",
	})

	suite.Equal(http.StatusCreated, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_UnknownKindFailsBinding() {
	w := suite.performRequest(http.MethodPost, "/api/v1/transactions", gin.H{
		"accountID": 1,
		"date":      "2024-01-05",
		"amount":    "20.00",
		"kind":      "transfer",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_MalformedDateFailsBinding() {
	w := suite.performRequest(http.MethodPost, "/api/v1/transactions", gin.H{
		"accountID": 1,
		"date":      "05/01/2024",
		"amount":    "20.00",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_FutureDate() {
	suite.mockService.On("CreateTransaction", mock.Anything, mock.AnythingOfType("dto.CreateTransactionRequest")).
		Return(nil, apperrors.ErrInvalidDate).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/transactions", gin.H{
		"accountID": 1,
		"date":      "2030-01-01",
		"amount":    "20.00",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_UnknownAccount() {
	suite.mockService.On("CreateTransaction", mock.Anything, mock.AnythingOfType("dto.CreateTransactionRequest")).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/transactions", gin.H{
		"accountID": 42,
		"date":      "2024-01-05",
		"amount":    "20.00",
	})

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_DefaultPagination() {
	txns := []domain.Transaction{
		{ID: 2, AccountID: 1, Date: time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC), Amount: decimal.RequireFromString("50.00")},
		{ID: 1, AccountID: 1, Date: time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC), Amount: decimal.RequireFromString("-20.00")},
	}
	suite.mockService.On("ListTransactions", mock.Anything, domain.TransactionFilter{}, 50, 0).
		Return(txns, nil).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/transactions", nil)

	suite.Equal(http.StatusOK, w.Code)

	var resp []dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 2)
	suite.Equal(int64(2), resp[0].ID)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_FiltersForwarded() {
	accountID := int64(1)
	from := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)
	filter := domain.TransactionFilter{AccountID: &accountID, DateFrom: &from, DateTo: &to}

	suite.mockService.On("ListTransactions", mock.Anything, filter, 10, 20).
		Return([]domain.Transaction{}, nil).Once()

	w := suite.performRequest(http.MethodGet,
		"/api/v1/transactions?account_id=1&date_from=2024-01-01&date_to=2024-01-31&limit=10&offset=20", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_LimitAboveMax() {
	w := suite.performRequest(http.MethodGet, "/api/v1/transactions?limit=1000", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "ListTransactions", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_InvalidRange() {
	suite.mockService.On("ListTransactions", mock.Anything, mock.AnythingOfType("domain.TransactionFilter"), 50, 0).
		Return(nil, apperrors.ErrInvalidDate).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/transactions?date_from=2024-02-01&date_to=2024-01-01", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func TestTransactionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}
