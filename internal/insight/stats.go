package insight

import (
	"time"

	"github.com/AnkitPandit120/DukaanMate1/internal/models"
)

// DashboardStats summarizes the headline numbers shown on the dashboard.
type DashboardStats struct {
	DailySales      float64 `json:"daily_sales"`
	TotalSales      float64 `json:"total_sales"`
	TotalExpenses   float64 `json:"total_expenses"`
	TotalProfit     float64 `json:"total_profit"`
	StockValue      float64 `json:"stock_value"`
	PendingPayments float64 `json:"pending_payments"`
}

// TrendPoint is one day of the sales trend chart.
type TrendPoint struct {
	Day   string  `json:"day"`
	Date  string  `json:"date"`
	Sales float64 `json:"sales"`
}

// DailyReportPoint is one day of the sales/expense/profit report series.
type DailyReportPoint struct {
	Date     string  `json:"date"`
	Sales    float64 `json:"sales"`
	Expenses float64 `json:"expenses"`
	Profit   float64 `json:"profit"`
}

// CategoryTotal is an expense category with its summed amount.
type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

// ComputeDashboardStats derives the dashboard headline numbers from a
// snapshot of all four collections. "Today" is now's calendar day.
func ComputeDashboardStats(sales []models.Sale, expenses []models.Expense, stock []models.StockItem, payments []models.Payment, now time.Time) DashboardStats {
	var stats DashboardStats
	today := dayOf(now)

	for _, s := range sales {
		revenue := s.Price * float64(s.Quantity)
		stats.TotalSales += revenue
		if t, ok := saleTime(s); ok && dayOf(t) == today {
			stats.DailySales += revenue
		}
	}
	for _, e := range expenses {
		stats.TotalExpenses += e.Amount
	}
	stats.TotalProfit = stats.TotalSales - stats.TotalExpenses

	for _, item := range stock {
		stats.StockValue += item.Price * float64(item.Quantity)
	}
	for _, p := range payments {
		if p.Status == models.PaymentPending {
			stats.PendingPayments += p.Amount
		}
	}
	return stats
}

// SalesTrend returns revenue per day over the trailing seven calendar days,
// oldest day first.
func SalesTrend(sales []models.Sale, now time.Time) []TrendPoint {
	revenueByDay := make(map[string]float64)
	for _, s := range sales {
		if t, ok := saleTime(s); ok {
			revenueByDay[dayOf(t)] += s.Price * float64(s.Quantity)
		}
	}

	points := make([]TrendPoint, 0, demandWindowDays)
	for i := demandWindowDays - 1; i >= 0; i-- {
		d := now.AddDate(0, 0, -i)
		day := dayOf(d)
		points = append(points, TrendPoint{
			Day:   d.Format("Mon"),
			Date:  day,
			Sales: revenueByDay[day],
		})
	}
	return points
}

// DailyReport returns per-day sales, expenses and profit over the trailing
// days calendar days ending today, oldest day first. Expense dates are
// already calendar days and join directly; sale timestamps are bucketed by
// their calendar day.
func DailyReport(sales []models.Sale, expenses []models.Expense, days int, now time.Time) []DailyReportPoint {
	salesByDay := make(map[string]float64)
	for _, s := range sales {
		if t, ok := saleTime(s); ok {
			salesByDay[dayOf(t)] += s.Price * float64(s.Quantity)
		}
	}
	expensesByDay := make(map[string]float64)
	for _, e := range expenses {
		expensesByDay[e.Date] += e.Amount
	}

	points := make([]DailyReportPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := dayOf(now.AddDate(0, 0, -i))
		p := DailyReportPoint{
			Date:     day,
			Sales:    salesByDay[day],
			Expenses: expensesByDay[day],
		}
		p.Profit = p.Sales - p.Expenses
		points = append(points, p)
	}
	return points
}

// ExpensesByCategory sums expenses per category, categories in
// first-encounter order.
func ExpensesByCategory(expenses []models.Expense) []CategoryTotal {
	index := make(map[string]int)
	var totals []CategoryTotal
	for _, e := range expenses {
		if i, ok := index[e.Category]; ok {
			totals[i].Total += e.Amount
			continue
		}
		index[e.Category] = len(totals)
		totals = append(totals, CategoryTotal{Category: e.Category, Total: e.Amount})
	}
	return totals
}

func dayOf(t time.Time) string {
	return t.Format("2006-01-02")
}
