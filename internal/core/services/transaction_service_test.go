package services

import (
	"context"
	"testing"
	"time"

	"github.com/fintrack/fintrack_backend/internal/apperrors"
	"github.com/fintrack/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrack/fintrack_backend/internal/core/ports/repositories"
	"github.com/fintrack/fintrack_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	mockTxnRepo     *MockTransactionRepository
	mockAccountRepo *MockAccountRepository
	mockUserRepo    *MockUserRepository
	service         *transactionService
	ctx             context.Context
}

func (s *TransactionServiceTestSuite) SetupTest() {
	s.mockTxnRepo = new(MockTransactionRepository)
	s.mockAccountRepo = new(MockAccountRepository)
	s.mockUserRepo = new(MockUserRepository)
	s.service = NewTransactionService(s.mockTxnRepo, s.mockAccountRepo, s.mockUserRepo).(*transactionService)
	s.ctx = context.Background()
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}

func (s *TransactionServiceTestSuite) activeAccount(userID string, balance string) *domain.Account {
	bal, err := decimal.NewFromString(balance)
	s.Require().NoError(err)
	return &domain.Account{
		AccountID:      "acc-" + userID,
		UserID:         userID,
		CurrentBalance: bal,
		IsActive:       true,
	}
}

func (s *TransactionServiceTestSuite) TestCreateIncome() {
	userID := "user-1"
	s.mockAccountRepo.On("FindAccountByUserID", s.ctx, userID).Return(s.activeAccount(userID, "50"), nil)
	s.mockTxnRepo.On("SaveTransaction", s.ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Type == domain.Income &&
			txn.Amount.Equal(decimal.NewFromInt(100)) &&
			txn.Status == domain.StatusActive &&
			txn.AccountID == "acc-user-1"
	}), (*domain.Transaction)(nil)).Return(&domain.Transaction{TransactionID: "txn-1"}, nil)

	txn, err := s.service.CreateTransaction(s.ctx, userID, dto.CreateTransactionRequest{
		Amount:          decimal.NewFromInt(100),
		Type:            "income",
		Category:        "salary",
		Description:     "Monthly salary",
		TransactionDate: "2026-08-01",
	})

	s.Require().NoError(err)
	s.Equal("txn-1", txn.TransactionID)
	s.mockTxnRepo.AssertExpectations(s.T())
}

func (s *TransactionServiceTestSuite) TestCreateExpenseInsufficientBalance() {
	userID := "user-1"
	s.mockAccountRepo.On("FindAccountByUserID", s.ctx, userID).Return(s.activeAccount(userID, "10"), nil)

	_, err := s.service.CreateTransaction(s.ctx, userID, dto.CreateTransactionRequest{
		Amount:          decimal.NewFromInt(30),
		Type:            "expense",
		Category:        "food",
		Description:     "Groceries",
		TransactionDate: "2026-08-01",
	})

	s.Require().ErrorIs(err, apperrors.ErrInsufficientBalance)
	s.mockTxnRepo.AssertNotCalled(s.T(), "SaveTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (s *TransactionServiceTestSuite) TestCreateExpenseExactBalance() {
	userID := "user-1"
	s.mockAccountRepo.On("FindAccountByUserID", s.ctx, userID).Return(s.activeAccount(userID, "30"), nil)
	s.mockTxnRepo.On("SaveTransaction", s.ctx, mock.Anything, (*domain.Transaction)(nil)).
		Return(&domain.Transaction{TransactionID: "txn-2"}, nil)

	_, err := s.service.CreateTransaction(s.ctx, userID, dto.CreateTransactionRequest{
		Amount:          decimal.NewFromInt(30),
		Type:            "expense",
		Category:        "food",
		Description:     "Groceries",
		TransactionDate: "2026-08-01",
	})

	s.Require().NoError(err)
}

func (s *TransactionServiceTestSuite) TestCreateOnInactiveAccount() {
	userID := "user-1"
	account := s.activeAccount(userID, "100")
	account.IsActive = false
	s.mockAccountRepo.On("FindAccountByUserID", s.ctx, userID).Return(account, nil)

	_, err := s.service.CreateTransaction(s.ctx, userID, dto.CreateTransactionRequest{
		Amount:          decimal.NewFromInt(10),
		Type:            "income",
		Category:        "salary",
		Description:     "Pay",
		TransactionDate: "2026-08-01",
	})

	s.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (s *TransactionServiceTestSuite) TestCreateRejectsUnknownType() {
	_, err := s.service.CreateTransaction(s.ctx, "user-1", dto.CreateTransactionRequest{
		Amount:          decimal.NewFromInt(10),
		Type:            "refund",
		Category:        "misc",
		Description:     "x",
		TransactionDate: "2026-08-01",
	})

	s.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (s *TransactionServiceTestSuite) TestCreateTransferBuildsMirrorLeg() {
	userID := "user-1"
	destAccountID := "acc-user-2"
	s.mockAccountRepo.On("FindAccountByUserID", s.ctx, userID).Return(s.activeAccount(userID, "100"), nil)
	s.mockAccountRepo.On("FindAccountByID", s.ctx, destAccountID).Return(&domain.Account{
		AccountID: destAccountID,
		UserID:    "user-2",
		IsActive:  true,
	}, nil)
	s.mockUserRepo.On("FindUserByID", s.ctx, userID).Return(&domain.User{UserID: userID, Name: "Alice"}, nil)

	var capturedSource domain.Transaction
	s.mockTxnRepo.On("SaveTransaction", s.ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		capturedSource = txn
		return txn.Type == domain.Transfer
	}), mock.MatchedBy(func(mirror *domain.Transaction) bool {
		return mirror != nil &&
			mirror.Type == domain.Income &&
			mirror.Category == TransferCategory &&
			mirror.UserID == "user-2" &&
			mirror.AccountID == destAccountID &&
			mirror.Amount.Equal(decimal.NewFromInt(20)) &&
			mirror.Reference != nil &&
			mirror.Description == "Transfer received from Alice"
	})).Return(&domain.Transaction{TransactionID: "txn-3"}, nil)

	_, err := s.service.CreateTransaction(s.ctx, userID, dto.CreateTransactionRequest{
		Amount:            decimal.NewFromInt(20),
		Type:              "transfer",
		Category:          "transfer",
		Description:       "Rent split",
		TransactionDate:   "2026-08-01",
		TransferAccountID: &destAccountID,
	})

	s.Require().NoError(err)
	s.NotEmpty(capturedSource.TransactionID)
	s.mockTxnRepo.AssertExpectations(s.T())
}

func (s *TransactionServiceTestSuite) TestCreateTransferMissingDestinationIsOneSided() {
	userID := "user-1"
	destAccountID := "acc-ghost"
	s.mockAccountRepo.On("FindAccountByUserID", s.ctx, userID).Return(s.activeAccount(userID, "100"), nil)
	s.mockAccountRepo.On("FindAccountByID", s.ctx, destAccountID).Return(nil, apperrors.ErrNotFound)
	s.mockTxnRepo.On("SaveTransaction", s.ctx, mock.Anything, (*domain.Transaction)(nil)).
		Return(&domain.Transaction{TransactionID: "txn-4"}, nil)

	txn, err := s.service.CreateTransaction(s.ctx, userID, dto.CreateTransactionRequest{
		Amount:            decimal.NewFromInt(20),
		Type:              "transfer",
		Category:          "transfer",
		Description:       "To nowhere",
		TransactionDate:   "2026-08-01",
		TransferAccountID: &destAccountID,
	})

	s.Require().NoError(err)
	s.Equal("txn-4", txn.TransactionID)
	s.mockTxnRepo.AssertExpectations(s.T())
}

func (s *TransactionServiceTestSuite) TestCreateTransferRequiresDestination() {
	_, err := s.service.CreateTransaction(s.ctx, "user-1", dto.CreateTransactionRequest{
		Amount:          decimal.NewFromInt(20),
		Type:            "transfer",
		Category:        "transfer",
		Description:     "No destination",
		TransactionDate: "2026-08-01",
	})

	s.Require().ErrorIs(err, apperrors.ErrValidation)
	s.mockAccountRepo.AssertNotCalled(s.T(), "FindAccountByUserID", mock.Anything, mock.Anything)
}

func (s *TransactionServiceTestSuite) TestCreateTransferToOwnAccountRejected() {
	userID := "user-1"
	account := s.activeAccount(userID, "100")
	s.mockAccountRepo.On("FindAccountByUserID", s.ctx, userID).Return(account, nil)
	s.mockAccountRepo.On("FindAccountByID", s.ctx, account.AccountID).Return(account, nil)

	_, err := s.service.CreateTransaction(s.ctx, userID, dto.CreateTransactionRequest{
		Amount:            decimal.NewFromInt(20),
		Type:              "transfer",
		Category:          "transfer",
		Description:       "Round trip",
		TransactionDate:   "2026-08-01",
		TransferAccountID: &account.AccountID,
	})

	s.Require().ErrorIs(err, apperrors.ErrValidation)
	s.mockTxnRepo.AssertNotCalled(s.T(), "SaveTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (s *TransactionServiceTestSuite) TestUpdateDropsFinancialFields() {
	userID := "user-1"
	original := &domain.Transaction{
		TransactionID: "txn-5",
		UserID:        userID,
		Amount:        decimal.NewFromInt(50),
		Type:          domain.Expense,
		Category:      "food",
		Status:        domain.StatusActive,
	}
	s.mockTxnRepo.On("FindTransactionByID", s.ctx, "txn-5").Return(original, nil)
	s.mockTxnRepo.On("UpdateTransaction", s.ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Amount.Equal(decimal.NewFromInt(50)) &&
			txn.Type == domain.Expense &&
			txn.Category == "dining"
	})).Return(nil)

	newAmount := decimal.NewFromInt(999)
	newType := "income"
	newCategory := "dining"
	updated, err := s.service.UpdateTransaction(s.ctx, "txn-5", userID, dto.UpdateTransactionRequest{
		Amount:   &newAmount,
		Type:     &newType,
		Category: &newCategory,
	})

	s.Require().NoError(err)
	s.True(updated.Amount.Equal(decimal.NewFromInt(50)))
	s.Equal(domain.Expense, updated.Type)
	s.Equal("dining", updated.Category)
}

func (s *TransactionServiceTestSuite) TestUpdateForbiddenForOtherUser() {
	s.mockTxnRepo.On("FindTransactionByID", s.ctx, "txn-6").Return(&domain.Transaction{
		TransactionID: "txn-6",
		UserID:        "user-2",
		Status:        domain.StatusActive,
	}, nil)

	_, err := s.service.UpdateTransaction(s.ctx, "txn-6", "user-1", dto.UpdateTransactionRequest{})

	s.Require().ErrorIs(err, apperrors.ErrForbidden)
}

func (s *TransactionServiceTestSuite) TestUpdateRejectsCancelledTransaction() {
	s.mockTxnRepo.On("FindTransactionByID", s.ctx, "txn-7").Return(&domain.Transaction{
		TransactionID: "txn-7",
		UserID:        "user-1",
		Status:        domain.StatusCancelled,
	}, nil)

	_, err := s.service.UpdateTransaction(s.ctx, "txn-7", "user-1", dto.UpdateTransactionRequest{})

	s.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (s *TransactionServiceTestSuite) TestUpdateRejectsStatusCancelled() {
	s.mockTxnRepo.On("FindTransactionByID", s.ctx, "txn-8").Return(&domain.Transaction{
		TransactionID: "txn-8",
		UserID:        "user-1",
		Status:        domain.StatusActive,
	}, nil)

	cancelled := "cancelled"
	_, err := s.service.UpdateTransaction(s.ctx, "txn-8", "user-1", dto.UpdateTransactionRequest{
		Status: &cancelled,
	})

	s.Require().ErrorIs(err, apperrors.ErrValidation)
	s.mockTxnRepo.AssertNotCalled(s.T(), "UpdateTransaction", mock.Anything, mock.Anything)
}

func (s *TransactionServiceTestSuite) TestCancelTransaction() {
	userID := "user-1"
	txn := &domain.Transaction{
		TransactionID: "txn-9",
		UserID:        userID,
		Amount:        decimal.NewFromInt(40),
		Type:          domain.Expense,
		Status:        domain.StatusActive,
	}
	s.mockTxnRepo.On("FindTransactionByID", s.ctx, "txn-9").Return(txn, nil)
	s.mockTxnRepo.On("CancelTransaction", s.ctx, *txn, userID, mock.AnythingOfType("time.Time")).
		Return(&domain.Transaction{TransactionID: "txn-9", Status: domain.StatusCancelled}, nil)

	cancelled, err := s.service.CancelTransaction(s.ctx, "txn-9", userID)

	s.Require().NoError(err)
	s.True(cancelled.IsCancelled())
}

func (s *TransactionServiceTestSuite) TestCancelAlreadyCancelled() {
	s.mockTxnRepo.On("FindTransactionByID", s.ctx, "txn-10").Return(&domain.Transaction{
		TransactionID: "txn-10",
		UserID:        "user-1",
		Status:        domain.StatusCancelled,
	}, nil)

	_, err := s.service.CancelTransaction(s.ctx, "txn-10", "user-1")

	s.Require().ErrorIs(err, apperrors.ErrValidation)
	s.mockTxnRepo.AssertNotCalled(s.T(), "CancelTransaction", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *TransactionServiceTestSuite) TestCancelForbiddenForOtherUser() {
	s.mockTxnRepo.On("FindTransactionByID", s.ctx, "txn-11").Return(&domain.Transaction{
		TransactionID: "txn-11",
		UserID:        "user-2",
		Status:        domain.StatusActive,
	}, nil)

	_, err := s.service.CancelTransaction(s.ctx, "txn-11", "user-1")

	s.Require().ErrorIs(err, apperrors.ErrForbidden)
}

func (s *TransactionServiceTestSuite) TestListTransactionsNormalizesPagination() {
	userID := "user-1"
	s.mockTxnRepo.On("ListTransactions", s.ctx, userID, mock.MatchedBy(func(f portsrepo.TransactionFilter) bool {
		return f.Page == dto.DefaultPage && f.Limit == dto.MaxLimit
	})).Return([]domain.Transaction{}, int64(0), nil)

	resp, err := s.service.ListTransactions(s.ctx, userID, dto.TransactionFilterParams{Page: -3, Limit: 500})

	s.Require().NoError(err)
	s.Equal(dto.DefaultPage, resp.Page)
	s.Equal(dto.MaxLimit, resp.Limit)
}

func (s *TransactionServiceTestSuite) TestListTransactionsDateFilterParsing() {
	userID := "user-1"
	start := "2026-01-01"
	wantStart := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s.mockTxnRepo.On("ListTransactions", s.ctx, userID, mock.MatchedBy(func(f portsrepo.TransactionFilter) bool {
		return f.StartDate != nil && f.StartDate.Equal(wantStart)
	})).Return([]domain.Transaction{}, int64(0), nil)

	_, err := s.service.ListTransactions(s.ctx, userID, dto.TransactionFilterParams{StartDate: &start})

	s.Require().NoError(err)
	s.mockTxnRepo.AssertExpectations(s.T())
}
