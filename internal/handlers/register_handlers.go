package handlers

import (
	"net/http"

	"github.com/fintrack/fintrack_backend/internal/core/services"
	"github.com/fintrack/fintrack_backend/internal/middleware"
	"github.com/fintrack/fintrack_backend/pkg/config"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

// RegisterHandlers mounts every route onto the engine. Auth routes are
// public (rate limited); everything under /api/v1 requires a bearer token.
func RegisterHandlers(r *gin.Engine, svcs *services.ServiceProvider, cfg *config.Config, limiterInstance *limiter.Limiter) {
	authHandler := NewAuthHandler(svcs.AuthSvc)
	userHandler := NewUserHandler(svcs.UserSvc)
	accountHandler := NewAccountHandler(svcs.AccountSvc)
	transactionHandler := NewTransactionHandler(svcs.TransactionSvc, svcs.StatisticsSvc)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := r.Group("/auth")
	auth.Use(middleware.RateLimit(limiterInstance))
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	api := r.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		users := api.Group("/users")
		{
			users.GET("", userHandler.ListUsers)
			users.GET("/me", userHandler.GetMe)
			users.GET("/me/accesses", userHandler.ListMyAccesses)
		}

		api.GET("/accounts", accountHandler.ListAccounts)

		account := api.Group("/account")
		{
			account.POST("", accountHandler.CreateAccount)
			account.GET("", accountHandler.GetAccount)
			account.PATCH("", accountHandler.UpdateAccount)
			account.PUT("/balance", accountHandler.SetBalance)
			account.PATCH("/avatar", accountHandler.UpdateAvatar)
			account.POST("/two-factor", accountHandler.ToggleTwoFactor)
			account.POST("/activate", accountHandler.Activate)
			account.POST("/deactivate", accountHandler.Deactivate)
			account.GET("/stats", accountHandler.GetStats)
		}

		transactions := api.Group("/transactions")
		{
			transactions.POST("", transactionHandler.CreateTransaction)
			transactions.GET("", transactionHandler.ListTransactions)
			transactions.GET("/statistics", transactionHandler.GetStatistics)
			transactions.GET("/categories", transactionHandler.GetCategories)
			transactions.GET("/:id", transactionHandler.GetTransaction)
			transactions.PATCH("/:id", transactionHandler.UpdateTransaction)
			transactions.PATCH("/:id/cancel", transactionHandler.CancelTransaction)
		}
	}
}
