package handlers

import (
	"net/http"
	"time"

	"github.com/fintrack/fintrack_backend/internal/apperrors"
	portssvc "github.com/fintrack/fintrack_backend/internal/core/ports/services"
	"github.com/fintrack/fintrack_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// TransactionHandler handles transaction and statistics requests.
type TransactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
	statisticsService  portssvc.StatisticsSvcFacade
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(
	transactionService portssvc.TransactionSvcFacade,
	statisticsService portssvc.StatisticsSvcFacade,
) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
		statisticsService:  statisticsService,
	}
}

// CreateTransaction handles POST /transactions.
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	txn, err := h.transactionService.CreateTransaction(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// ListTransactions handles GET /transactions with filter query parameters.
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var params dto.TransactionFilterParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.transactionService.ListTransactions(c.Request.Context(), userID, params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetTransaction handles GET /transactions/:id. Reading another user's
// transaction is indistinguishable from it not existing.
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	txn, err := h.transactionService.GetTransactionByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if txn.UserID != userID {
		respondError(c, apperrors.ErrNotFound)
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// UpdateTransaction handles PATCH /transactions/:id.
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	txn, err := h.transactionService.UpdateTransaction(c.Request.Context(), c.Param("id"), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// CancelTransaction handles PATCH /transactions/:id/cancel.
func (h *TransactionHandler) CancelTransaction(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	txn, err := h.transactionService.CancelTransaction(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// GetStatistics handles GET /transactions/statistics.
func (h *TransactionHandler) GetStatistics(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var params dto.StatisticsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var startDate, endDate *time.Time
	if params.StartDate != nil {
		parsed, err := time.Parse("2006-01-02", *params.StartDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start date"})
			return
		}
		startDate = &parsed
	}
	if params.EndDate != nil {
		parsed, err := time.Parse("2006-01-02", *params.EndDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end date"})
			return
		}
		endDate = &parsed
	}

	stats, err := h.statisticsService.GetStatistics(c.Request.Context(), userID, startDate, endDate)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetCategories handles GET /transactions/categories.
func (h *TransactionHandler) GetCategories(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	categories, err := h.statisticsService.GetCategories(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}
