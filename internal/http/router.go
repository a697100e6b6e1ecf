package http

import (
	"net/http"

	"github.com/AnkitPandit120/DukaanMate1/internal/http/handlers"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()

	r.Get("/swagger/*", httpSwagger.Handler())

	// Credential endpoints are rate limited per IP against brute forcing.
	r.Group(func(ar chi.Router) {
		ar.Use(RateLimitMiddleware)
		ar.Post("/register", handlers.RegisterHandler)
		ar.Post("/login", handlers.LoginHandler)
		ar.Post("/refresh", handlers.RefreshTokenHandler)
	})

	r.Get("/sales", handlers.GetSalesHandler)
	r.Get("/sales/{id}", handlers.GetSaleByIDHandler)
	r.Get("/stock", handlers.GetStockHandler)
	r.Get("/stock/{id}", handlers.GetStockItemByIDHandler)
	r.Get("/expenses", handlers.GetExpensesHandler)
	r.Get("/payments", handlers.GetPaymentsHandler)
	r.Get("/notifications", handlers.GetNotificationsHandler)
	r.Get("/dashboard/stats", handlers.GetDashboardStatsHandler)
	r.Get("/dashboard/insights", handlers.GetDashboardInsightsHandler)
	r.Get("/dashboard/trend", handlers.GetSalesTrendHandler)
	r.Get("/reports/daily", handlers.GetDailyReportHandler)
	r.Get("/reports/expenses-by-category", handlers.GetExpensesByCategoryHandler)

	r.Group(func(pr chi.Router) {
		pr.Use(AuthMiddleware)
		pr.Post("/sales", handlers.CreateSaleHandler)
		pr.Delete("/sales/{id}", handlers.DeleteSaleHandler)
		pr.Post("/stock", handlers.CreateStockItemHandler)
		pr.Put("/stock/{id}", handlers.UpdateStockItemHandler)
		pr.Delete("/stock/{id}", handlers.DeleteStockItemHandler)
		pr.Post("/stock/{id}/adjust", handlers.AdjustStockQuantityHandler)
		pr.Post("/stock/import", handlers.ImportStockHandler)
		pr.Post("/expenses", handlers.CreateExpenseHandler)
		pr.Post("/payments", handlers.CreatePaymentHandler)
		pr.Put("/payments/{id}/status", handlers.UpdatePaymentStatusHandler)
	})

	return r
}
