package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fintrack/fintrack_backend/internal/apperrors"
	"github.com/fintrack/fintrack_backend/internal/core/domain"
	"github.com/fintrack/fintrack_backend/internal/dto"
	"github.com/fintrack/fintrack_backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockTransactionSvc struct {
	mock.Mock
}

func (m *MockTransactionSvc) CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionSvc) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionSvc) ListTransactions(ctx context.Context, userID string, filter dto.TransactionFilterParams) (*dto.ListTransactionsResponse, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListTransactionsResponse), args.Error(1)
}

func (m *MockTransactionSvc) UpdateTransaction(ctx context.Context, transactionID string, userID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionSvc) CancelTransaction(ctx context.Context, transactionID string, userID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

type MockStatisticsSvc struct {
	mock.Mock
}

func (m *MockStatisticsSvc) GetStatistics(ctx context.Context, userID string, startDate, endDate *time.Time) (*domain.Statistics, error) {
	args := m.Called(ctx, userID, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Statistics), args.Error(1)
}

func (m *MockStatisticsSvc) GetCategories(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type TransactionHandlerTestSuite struct {
	suite.Suite
	mockTxnSvc   *MockTransactionSvc
	mockStatsSvc *MockStatisticsSvc
	router       *gin.Engine
}

// injectUser stands in for the auth middleware on test routes.
func injectUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(middleware.ContextWithUserID(c.Request.Context(), userID))
		c.Next()
	}
}

func (s *TransactionHandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(dto.RegisterValidations())
}

func (s *TransactionHandlerTestSuite) SetupTest() {
	s.mockTxnSvc = new(MockTransactionSvc)
	s.mockStatsSvc = new(MockStatisticsSvc)
	handler := NewTransactionHandler(s.mockTxnSvc, s.mockStatsSvc)

	s.router = gin.New()
	authed := s.router.Group("/", injectUser("user-1"))
	authed.POST("/transactions", handler.CreateTransaction)
	authed.GET("/transactions", handler.ListTransactions)
	authed.GET("/transactions/statistics", handler.GetStatistics)
	authed.GET("/transactions/:id", handler.GetTransaction)
	authed.PATCH("/transactions/:id/cancel", handler.CancelTransaction)
}

func TestTransactionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}

func (s *TransactionHandlerTestSuite) postJSON(path string, body any) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	s.Require().NoError(err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *TransactionHandlerTestSuite) TestCreateTransactionCreated() {
	s.mockTxnSvc.On("CreateTransaction", mock.Anything, "user-1", mock.Anything).
		Return(&domain.Transaction{
			TransactionID: "txn-1",
			UserID:        "user-1",
			Amount:        decimal.NewFromInt(100),
			Type:          domain.Income,
			Status:        domain.StatusActive,
		}, nil)

	w := s.postJSON("/transactions", gin.H{
		"amount":          100,
		"type":            "income",
		"category":        "salary",
		"description":     "Monthly salary",
		"transactionDate": "2026-08-01",
	})

	s.Equal(http.StatusCreated, w.Code)
	var resp dto.TransactionResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("txn-1", resp.TransactionID)
}

func (s *TransactionHandlerTestSuite) TestCreateTransactionRejectsNonPositiveAmount() {
	w := s.postJSON("/transactions", gin.H{
		"amount":          -5,
		"type":            "expense",
		"category":        "food",
		"description":     "Groceries",
		"transactionDate": "2026-08-01",
	})

	s.Equal(http.StatusBadRequest, w.Code)
	s.mockTxnSvc.AssertNotCalled(s.T(), "CreateTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (s *TransactionHandlerTestSuite) TestCreateTransactionInsufficientBalance() {
	s.mockTxnSvc.On("CreateTransaction", mock.Anything, "user-1", mock.Anything).
		Return(nil, apperrors.ErrInsufficientBalance)

	w := s.postJSON("/transactions", gin.H{
		"amount":          500,
		"type":            "expense",
		"category":        "food",
		"description":     "Groceries",
		"transactionDate": "2026-08-01",
	})

	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(w.Body.String(), "insufficient balance")
}

func (s *TransactionHandlerTestSuite) TestGetTransactionMasksOtherUsers() {
	s.mockTxnSvc.On("GetTransactionByID", mock.Anything, "txn-2").
		Return(&domain.Transaction{TransactionID: "txn-2", UserID: "user-2"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/transactions/txn-2", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusNotFound, w.Code)
}

func (s *TransactionHandlerTestSuite) TestGetTransactionNotFound() {
	s.mockTxnSvc.On("GetTransactionByID", mock.Anything, "txn-3").
		Return(nil, apperrors.ErrNotFound)

	req := httptest.NewRequest(http.MethodGet, "/transactions/txn-3", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusNotFound, w.Code)
}

func (s *TransactionHandlerTestSuite) TestCancelTransactionForbidden() {
	s.mockTxnSvc.On("CancelTransaction", mock.Anything, "txn-4", "user-1").
		Return(nil, apperrors.ErrForbidden)

	req := httptest.NewRequest(http.MethodPatch, "/transactions/txn-4/cancel", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusForbidden, w.Code)
}

func (s *TransactionHandlerTestSuite) TestListTransactionsPassesFilters() {
	s.mockTxnSvc.On("ListTransactions", mock.Anything, "user-1", mock.MatchedBy(func(p dto.TransactionFilterParams) bool {
		return p.Type != nil && *p.Type == "expense" && p.Page == 2 && p.Limit == 10
	})).Return(&dto.ListTransactionsResponse{
		Items: []dto.TransactionResponse{},
		Total: 0,
		Page:  2,
		Limit: 10,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/transactions?type=expense&page=2&limit=10", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)
	s.mockTxnSvc.AssertExpectations(s.T())
}

func (s *TransactionHandlerTestSuite) TestGetStatistics() {
	s.mockStatsSvc.On("GetStatistics", mock.Anything, "user-1", (*time.Time)(nil), (*time.Time)(nil)).
		Return(&domain.Statistics{
			Income:           decimal.NewFromInt(100),
			Expenses:         decimal.NewFromInt(30),
			Transfers:        decimal.NewFromInt(20),
			Balance:          decimal.NewFromInt(70),
			TransactionCount: 3,
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/transactions/statistics", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "70")
}

func (s *TransactionHandlerTestSuite) TestGetStatisticsInvalidDate() {
	req := httptest.NewRequest(http.MethodGet, "/transactions/statistics?startDate=notadate", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusBadRequest, w.Code)
	s.mockStatsSvc.AssertNotCalled(s.T(), "GetStatistics", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
