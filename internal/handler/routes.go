package handler

import (
	"github.com/centavo/centavo-backend/internal/middleware"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(
	e *echo.Echo,
	authMiddleware *middleware.AuthMiddleware,
	rateLimiter *middleware.RateLimiter,
	authHandler *AuthHandler,
	settingsHandler *SettingsHandler,
	categoryHandler *CategoryHandler,
	expenseHandler *ExpenseHandler,
	budgetHandler *BudgetHandler,
	overallBudgetHandler *OverallBudgetHandler,
	incomeHandler *IncomeHandler,
	dashboardHandler *DashboardHandler,
	analyticsHandler *AnalyticsHandler,
	wsHandler *WebSocketHandler,
) {
	// API version 1
	api := e.Group("/api/v1")
	api.Use(authMiddleware.Authenticate())
	api.Use(middleware.RateLimitMiddleware(rateLimiter))

	// Auth routes
	auth := api.Group("/auth")
	auth.POST("/callback", authHandler.Callback)
	auth.GET("/me", authHandler.Me)
	auth.PUT("/profile", authHandler.UpdateProfile)

	// Settings routes
	settings := api.Group("/settings")
	settings.GET("", settingsHandler.GetSettings)
	settings.PUT("", settingsHandler.UpdateSettings)

	// Category routes
	categories := api.Group("/categories")
	categories.POST("", categoryHandler.CreateCategory)
	categories.GET("", categoryHandler.GetCategories)
	categories.PUT("/:id", categoryHandler.UpdateCategory)
	categories.DELETE("/:id", categoryHandler.DeleteCategory)

	// Expense routes
	expenses := api.Group("/expenses")
	expenses.POST("", expenseHandler.CreateExpense)
	expenses.GET("", expenseHandler.GetExpenses)
	expenses.DELETE("/:id", expenseHandler.DeleteExpense)
	expenses.POST("/:id/receipt", expenseHandler.UploadReceipt)
	expenses.GET("/:id/receipt", expenseHandler.GetReceipt)
	expenses.DELETE("/:id/receipt", expenseHandler.DeleteReceipt)

	// Per-category budget routes
	budgets := api.Group("/budgets")
	budgets.POST("", budgetHandler.CreateBudget)
	budgets.GET("", budgetHandler.GetBudgets)
	budgets.DELETE("/:id", budgetHandler.DeleteBudget)

	// Overall budget routes
	overallBudgets := api.Group("/overall-budgets")
	overallBudgets.POST("", overallBudgetHandler.CreateOverallBudget)
	overallBudgets.GET("", overallBudgetHandler.GetOverallBudgets)
	overallBudgets.PUT("/:id", overallBudgetHandler.UpdateOverallBudget)
	overallBudgets.DELETE("/:id", overallBudgetHandler.DeleteOverallBudget)

	// Income source routes
	income := api.Group("/income-sources")
	income.POST("", incomeHandler.CreateIncomeSource)
	income.GET("", incomeHandler.GetIncomeSources)
	income.PATCH("/:id/toggle", incomeHandler.ToggleIncomeSource)
	income.DELETE("/:id", incomeHandler.DeleteIncomeSource)

	// Dashboard routes
	dashboard := api.Group("/dashboard")
	dashboard.GET("/stats", dashboardHandler.GetStats)

	// Analytics routes
	analytics := api.Group("/analytics")
	analytics.GET("", analyticsHandler.GetReport)

	// WebSocket endpoint authenticates via query token, outside the
	// bearer-token middleware chain
	if wsHandler != nil {
		e.GET("/ws", wsHandler.HandleWS)
	}
}
