package handlers

import (
	"net/http"
	"strconv"

	portssvc "github.com/fintrack/fintrack_backend/internal/core/ports/services"
	"github.com/fintrack/fintrack_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// UserHandler handles user identity requests.
type UserHandler struct {
	userService portssvc.UserSvcFacade
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService portssvc.UserSvcFacade) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetMe handles GET /users/me, returning the authenticated user.
func (h *UserHandler) GetMe(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// ListMyAccesses handles GET /users/me/accesses, returning the caller's
// recent authentication audit records.
func (h *UserHandler) ListMyAccesses(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	accesses, err := h.userService.ListUserAccesses(c.Request.Context(), userID, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"accesses": dto.ToUserAccessResponses(accesses)})
}

// ListUsers handles GET /users with limit/offset pagination.
func (h *UserHandler) ListUsers(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	users, err := h.userService.ListUsers(c.Request.Context(), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": dto.ToUserResponses(users)})
}
