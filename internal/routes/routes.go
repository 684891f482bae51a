package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/raiyan37/finance-tracker/internal/auth"
	"github.com/raiyan37/finance-tracker/internal/handlers"
	"github.com/raiyan37/finance-tracker/internal/middleware/ratelimit"
)

// RegisterRoutes подключает все маршруты API. Для /auth действует
// более жесткий лимит запросов, чем для остального API
func RegisterRoutes(r *gin.Engine, pool *pgxpool.Pool, apiLimiter, authLimiter *ratelimit.Limiter) {
	api := r.Group("/api")
	api.Use(apiLimiter.Middleware())

	authGroup := api.Group("/auth")
	authGroup.Use(authLimiter.Middleware())
	authGroup.POST("/register", handlers.RegisterHandler(pool))
	authGroup.POST("/login", handlers.LoginHandler(pool))
	authGroup.POST("/google", handlers.GoogleLoginHandler(pool))

	protected := api.Group("")
	protected.Use(auth.Middleware())

	protected.GET("/auth/session", handlers.SessionHandler(pool))
	protected.POST("/auth/logout", handlers.LogoutHandler())

	protected.POST("/transactions", handlers.CreateTransactionHandler(pool))
	protected.GET("/transactions", handlers.GetTransactionsHandler(pool))
	protected.GET("/transactions/:id", handlers.GetTransactionHandler(pool))
	protected.PUT("/transactions/:id", handlers.UpdateTransactionHandler(pool))
	protected.DELETE("/transactions/:id", handlers.DeleteTransactionHandler(pool))

	protected.POST("/budgets", handlers.CreateBudgetHandler(pool))
	protected.GET("/budgets", handlers.GetBudgetsHandler(pool))
	protected.GET("/budgets/:id", handlers.GetBudgetHandler(pool))
	protected.PUT("/budgets/:id", handlers.UpdateBudgetHandler(pool))
	protected.DELETE("/budgets/:id", handlers.DeleteBudgetHandler(pool))

	protected.POST("/pots", handlers.CreatePotHandler(pool))
	protected.GET("/pots", handlers.GetPotsHandler(pool))
	protected.PUT("/pots/:id", handlers.UpdatePotHandler(pool))
	protected.DELETE("/pots/:id", handlers.DeletePotHandler(pool))
	protected.POST("/pots/:id/deposit", handlers.DepositPotHandler(pool))
	protected.POST("/pots/:id/withdraw", handlers.WithdrawPotHandler(pool))

	protected.POST("/recurring-bills", handlers.CreateRecurringBillHandler(pool))
	protected.GET("/recurring-bills", handlers.GetRecurringBillsHandler(pool))
	protected.PUT("/recurring-bills/:id", handlers.UpdateRecurringBillHandler(pool))
	protected.DELETE("/recurring-bills/:id", handlers.DeleteRecurringBillHandler(pool))
	protected.POST("/recurring-bills/:id/pay", handlers.PayRecurringBillHandler(pool))

	protected.GET("/overview", handlers.GetOverviewHandler(pool))
	protected.GET("/overview/balance", handlers.GetBalanceHandler(pool))
}
