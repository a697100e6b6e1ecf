package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/AnkitPandit120/DukaanMate1/internal/insight"
)

const defaultReportDays = 30

// GetDashboardStatsHandler godoc
// @Summary Dashboard headline numbers
// @Description Today's and overall revenue, expenses, profit, stock value and pending payments.
// @Tags dashboard
// @Produce json
// @Success 200 {object} insight.DashboardStats
// @Failure 500 {string} string "Internal error"
// @Router /dashboard/stats [get]
func GetDashboardStatsHandler(w http.ResponseWriter, r *http.Request) {
	sales, err := saleRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch sales", http.StatusInternalServerError)
		return
	}
	expenses, err := expenseRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch expenses", http.StatusInternalServerError)
		return
	}
	stock, err := stockRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch stock", http.StatusInternalServerError)
		return
	}
	payments, err := paymentRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch payments", http.StatusInternalServerError)
		return
	}

	stats := insight.ComputeDashboardStats(sales, expenses, stock, payments, time.Now())
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}

// GetDashboardInsightsHandler godoc
// @Summary Business insights
// @Description Best sellers, restock list, slow movers, falling demand, reorder
// suggestions and peak selling hours, cached in redis for a short TTL.
// @Tags dashboard
// @Produce json
// @Success 200 {object} insight.Insights
// @Failure 500 {string} string "Internal error"
// @Router /dashboard/insights [get]
func GetDashboardInsightsHandler(w http.ResponseWriter, r *http.Request) {
	if payload, ok := cachedInsights(); ok {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(payload))
		return
	}

	sales, err := saleRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch sales", http.StatusInternalServerError)
		return
	}
	stock, err := stockRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch stock", http.StatusInternalServerError)
		return
	}

	insights := insight.Compute(sales, stock, time.Now())
	payload, err := json.Marshal(insights)
	if err != nil {
		http.Error(w, "could not encode insights", http.StatusInternalServerError)
		return
	}
	storeInsights(string(payload))

	w.Header().Set("Content-Type", "application/json")
	w.Write(payload)
}

// GetSalesTrendHandler godoc
// @Summary Seven-day sales trend
// @Tags dashboard
// @Produce json
// @Success 200 {array} insight.TrendPoint
// @Failure 500 {string} string "Internal error"
// @Router /dashboard/trend [get]
func GetSalesTrendHandler(w http.ResponseWriter, r *http.Request) {
	sales, err := saleRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch sales", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(insight.SalesTrend(sales, time.Now()))
}

// GetDailyReportHandler godoc
// @Summary Daily sales/expense/profit report
// @Tags reports
// @Produce json
// @Param days query int false "Number of trailing days (default 30)"
// @Success 200 {array} insight.DailyReportPoint
// @Failure 400 {string} string "Invalid days"
// @Router /reports/daily [get]
func GetDailyReportHandler(w http.ResponseWriter, r *http.Request) {
	days := defaultReportDays
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			http.Error(w, "days must be a positive integer", http.StatusBadRequest)
			return
		}
		days = parsed
	}

	sales, err := saleRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch sales", http.StatusInternalServerError)
		return
	}
	expenses, err := expenseRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch expenses", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(insight.DailyReport(sales, expenses, days, time.Now()))
}

// GetExpensesByCategoryHandler godoc
// @Summary Expense totals by category
// @Tags reports
// @Produce json
// @Success 200 {array} insight.CategoryTotal
// @Failure 500 {string} string "Internal error"
// @Router /reports/expenses-by-category [get]
func GetExpensesByCategoryHandler(w http.ResponseWriter, r *http.Request) {
	expenses, err := expenseRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch expenses", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(insight.ExpensesByCategory(expenses))
}
