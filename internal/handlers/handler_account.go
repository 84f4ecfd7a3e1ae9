package handlers

import (
	"net/http"
	"strconv"

	portssvc "github.com/fintrack/fintrack_backend/internal/core/ports/services"
	"github.com/fintrack/fintrack_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// AccountHandler handles account lifecycle and preference requests. All
// routes operate on the authenticated user's own account.
type AccountHandler struct {
	accountService portssvc.AccountSvcFacade
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountService portssvc.AccountSvcFacade) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// CreateAccount handles POST /account.
func (h *AccountHandler) CreateAccount(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	account, err := h.accountService.CreateAccount(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

// GetAccount handles GET /account.
func (h *AccountHandler) GetAccount(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	account, err := h.accountService.GetAccountByUserID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// UpdateAccount handles PATCH /account.
func (h *AccountHandler) UpdateAccount(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	account, err := h.accountService.UpdateAccount(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// SetBalance handles PUT /account/balance, the administrative overwrite that
// leaves no transaction record.
func (h *AccountHandler) SetBalance(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req dto.SetBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	account, err := h.accountService.SetBalance(c.Request.Context(), userID, req.Balance)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// UpdateAvatar handles PATCH /account/avatar.
func (h *AccountHandler) UpdateAvatar(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateAvatarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	account, err := h.accountService.UpdateAvatar(c.Request.Context(), userID, req.Avatar)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// ToggleTwoFactor handles POST /account/two-factor.
func (h *AccountHandler) ToggleTwoFactor(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	account, err := h.accountService.ToggleTwoFactor(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// Activate handles POST /account/activate.
func (h *AccountHandler) Activate(c *gin.Context) {
	h.setActive(c, true)
}

// Deactivate handles POST /account/deactivate.
func (h *AccountHandler) Deactivate(c *gin.Context) {
	h.setActive(c, false)
}

func (h *AccountHandler) setActive(c *gin.Context, active bool) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	account, err := h.accountService.SetActive(c.Request.Context(), userID, active)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// ListAccounts handles GET /accounts with limit/offset pagination.
func (h *AccountHandler) ListAccounts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	accounts, err := h.accountService.ListAccounts(c.Request.Context(), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]dto.AccountResponse, len(accounts))
	for i := range accounts {
		responses[i] = dto.ToAccountResponse(&accounts[i])
	}
	c.JSON(http.StatusOK, gin.H{"accounts": responses})
}

// GetStats handles GET /account/stats.
func (h *AccountHandler) GetStats(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	stats, err := h.accountService.GetAccountStats(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
