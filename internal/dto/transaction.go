package dto

import (
	"time"

	"github.com/fintrack/fintrack_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Pagination bounds for transaction listings.
const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// CreateTransactionRequest defines the data needed to record a transaction.
// Amount is strictly positive; the balance direction comes from Type alone.
type CreateTransactionRequest struct {
	Amount            decimal.Decimal `json:"amount" binding:"required,decimalgt0"`
	Type              string          `json:"type" binding:"required,oneof=income expense transfer"`
	Category          string          `json:"category" binding:"required,max=50"`
	Description       string          `json:"description" binding:"required,max=200"`
	TransactionDate   string          `json:"transactionDate" binding:"required,datetime=2006-01-02"`
	PaymentMethod     *string         `json:"paymentMethod" binding:"omitempty,oneof=cash card pix transfer bank_slip"`
	Reference         *string         `json:"reference" binding:"omitempty,max=100"`
	TransferAccountID *string         `json:"transferAccountID"`
	Tags              []string        `json:"tags"`
	RecurringType     *string         `json:"recurringType" binding:"omitempty,oneof=daily weekly monthly yearly"`
}

// UpdateTransactionRequest defines the patchable fields of a transaction.
// Amount and Type are accepted for wire compatibility but silently dropped:
// financial fields are immutable after creation.
type UpdateTransactionRequest struct {
	Amount          *decimal.Decimal `json:"amount"`
	Type            *string          `json:"type"`
	Category        *string          `json:"category" binding:"omitempty,max=50"`
	Description     *string          `json:"description" binding:"omitempty,max=200"`
	TransactionDate *string          `json:"transactionDate" binding:"omitempty,datetime=2006-01-02"`
	PaymentMethod   *string          `json:"paymentMethod" binding:"omitempty,oneof=cash card pix transfer bank_slip"`
	Reference       *string          `json:"reference" binding:"omitempty,max=100"`
	Tags            []string         `json:"tags"`
	RecurringType   *string          `json:"recurringType" binding:"omitempty,oneof=daily weekly monthly yearly"`
	Status          *string          `json:"status" binding:"omitempty,oneof=active cancelled pending"`
}

// TransactionFilterParams defines the query parameters for listing
// transactions. All filters are conjunctive.
type TransactionFilterParams struct {
	Type          *string          `form:"type" binding:"omitempty,oneof=income expense transfer"`
	Category      *string          `form:"category"`
	StartDate     *string          `form:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate       *string          `form:"endDate" binding:"omitempty,datetime=2006-01-02"`
	MinAmount     *decimal.Decimal `form:"minAmount"`
	MaxAmount     *decimal.Decimal `form:"maxAmount"`
	PaymentMethod *string          `form:"paymentMethod" binding:"omitempty,oneof=cash card pix transfer bank_slip"`
	Tags          []string         `form:"tags"`
	Status        *string          `form:"status" binding:"omitempty,oneof=active cancelled pending"`
	Page          int              `form:"page"`
	Limit         int              `form:"limit"`
}

// Normalize clamps pagination to sane bounds.
func (p *TransactionFilterParams) Normalize() {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
}

// StatisticsParams defines the optional date range for statistics queries.
type StatisticsParams struct {
	StartDate *string `form:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate   *string `form:"endDate" binding:"omitempty,datetime=2006-01-02"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID     string          `json:"transactionID"`
	UserID            string          `json:"userID"`
	AccountID         string          `json:"accountID"`
	Amount            decimal.Decimal `json:"amount"`
	Type              string          `json:"type"`
	Category          string          `json:"category"`
	Description       string          `json:"description"`
	TransactionDate   time.Time       `json:"transactionDate"`
	PaymentMethod     *string         `json:"paymentMethod,omitempty"`
	Reference         *string         `json:"reference,omitempty"`
	TransferAccountID *string         `json:"transferAccountID,omitempty"`
	BalanceAfter      decimal.Decimal `json:"balanceAfter"`
	IsRecurring       bool            `json:"isRecurring"`
	RecurringType     *string         `json:"recurringType,omitempty"`
	Tags              []string        `json:"tags,omitempty"`
	Status            string          `json:"status"`
	CreatedAt         time.Time       `json:"createdAt"`
	LastUpdatedAt     time.Time       `json:"lastUpdatedAt"`
}

// ListTransactionsResponse wraps a filtered page of transactions.
type ListTransactionsResponse struct {
	Items []TransactionResponse `json:"items"`
	Total int64                 `json:"total"`
	Page  int                   `json:"page"`
	Limit int                   `json:"limit"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	resp := TransactionResponse{
		TransactionID:     txn.TransactionID,
		UserID:            txn.UserID,
		AccountID:         txn.AccountID,
		Amount:            txn.Amount,
		Type:              string(txn.Type),
		Category:          txn.Category,
		Description:       txn.Description,
		TransactionDate:   txn.TransactionDate,
		Reference:         txn.Reference,
		TransferAccountID: txn.TransferAccountID,
		BalanceAfter:      txn.BalanceAfter,
		IsRecurring:       txn.IsRecurring,
		Tags:              txn.Tags,
		Status:            string(txn.Status),
		CreatedAt:         txn.CreatedAt,
		LastUpdatedAt:     txn.LastUpdatedAt,
	}
	if txn.PaymentMethod != nil {
		pm := string(*txn.PaymentMethod)
		resp.PaymentMethod = &pm
	}
	if txn.RecurringType != nil {
		rt := string(*txn.RecurringType)
		resp.RecurringType = &rt
	}
	return resp
}

// ToTransactionResponses converts a slice of domain transactions.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i])
	}
	return responses
}
