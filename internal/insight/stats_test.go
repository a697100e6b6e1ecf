package insight

import (
	"testing"

	"github.com/AnkitPandit120/DukaanMate1/internal/models"
)

func TestComputeDashboardStats(t *testing.T) {
	sales := []models.Sale{
		{ItemName: "Rice", Quantity: 2, Price: 50, Date: testNow.Format("2006-01-02T15:04:05Z")},
		{ItemName: "Sugar", Quantity: 1, Price: 30, Date: daysAgo(3).Format("2006-01-02T15:04:05Z")},
	}
	expenses := []models.Expense{
		{Category: "Rent", Amount: 40, Date: dayOf(testNow)},
	}
	stock := []models.StockItem{
		{ItemName: "Rice", Quantity: 10, Price: 45},
	}
	payments := []models.Payment{
		{Name: "Ravi", Amount: 500, Status: models.PaymentPending},
		{Name: "Mohan", Amount: 200, Status: models.PaymentPaid},
	}

	got := ComputeDashboardStats(sales, expenses, stock, payments, testNow)

	if got.DailySales != 100 {
		t.Errorf("daily sales: expected 100, got %v", got.DailySales)
	}
	if got.TotalSales != 130 {
		t.Errorf("total sales: expected 130, got %v", got.TotalSales)
	}
	if got.TotalExpenses != 40 {
		t.Errorf("total expenses: expected 40, got %v", got.TotalExpenses)
	}
	if got.TotalProfit != 90 {
		t.Errorf("total profit: expected 90, got %v", got.TotalProfit)
	}
	if got.StockValue != 450 {
		t.Errorf("stock value: expected 450, got %v", got.StockValue)
	}
	if got.PendingPayments != 500 {
		t.Errorf("pending payments: expected 500, got %v", got.PendingPayments)
	}
}

func TestSalesTrend(t *testing.T) {
	sales := []models.Sale{
		{ItemName: "Rice", Quantity: 1, Price: 100, Date: testNow.Format("2006-01-02T15:04:05Z")},
		{ItemName: "Sugar", Quantity: 2, Price: 25, Date: daysAgo(6).Format("2006-01-02T15:04:05Z")},
		{ItemName: "Salt", Quantity: 1, Price: 10, Date: daysAgo(7).Format("2006-01-02T15:04:05Z")}, // outside the window
	}

	got := SalesTrend(sales, testNow)

	if len(got) != 7 {
		t.Fatalf("expected 7 points, got %d", len(got))
	}
	if got[0].Sales != 50 {
		t.Errorf("oldest day: expected 50, got %v", got[0].Sales)
	}
	if got[6].Sales != 100 {
		t.Errorf("today: expected 100, got %v", got[6].Sales)
	}
	for i := 1; i < 6; i++ {
		if got[i].Sales != 0 {
			t.Errorf("day %d: expected 0, got %v", i, got[i].Sales)
		}
	}
}

func TestDailyReport(t *testing.T) {
	sales := []models.Sale{
		{ItemName: "Rice", Quantity: 2, Price: 50, Date: daysAgo(1).Format("2006-01-02T15:04:05Z")},
	}
	expenses := []models.Expense{
		{Category: "Rent", Amount: 30, Date: dayOf(daysAgo(1))},
	}

	got := DailyReport(sales, expenses, 3, testNow)

	if len(got) != 3 {
		t.Fatalf("expected 3 points, got %d", len(got))
	}
	yesterday := got[1]
	if yesterday.Sales != 100 || yesterday.Expenses != 30 || yesterday.Profit != 70 {
		t.Errorf("unexpected yesterday point: %+v", yesterday)
	}
}

func TestExpensesByCategory(t *testing.T) {
	expenses := []models.Expense{
		{Category: "Rent", Amount: 100},
		{Category: "Electricity", Amount: 40},
		{Category: "Rent", Amount: 50},
	}

	got := ExpensesByCategory(expenses)

	if len(got) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(got))
	}
	if got[0].Category != "Rent" || got[0].Total != 150 {
		t.Errorf("expected Rent total 150 first, got %+v", got[0])
	}
	if got[1].Category != "Electricity" || got[1].Total != 40 {
		t.Errorf("expected Electricity total 40, got %+v", got[1])
	}
}
