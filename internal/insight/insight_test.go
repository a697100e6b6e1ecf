package insight

import (
	"reflect"
	"testing"
	"time"

	"github.com/AnkitPandit120/DukaanMate1/internal/models"
)

var testNow = time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

func sale(name string, qty int, at time.Time) models.Sale {
	return models.Sale{ItemName: name, Quantity: qty, Price: 10, Date: at.Format(time.RFC3339)}
}

func daysAgo(n int) time.Time {
	return testNow.AddDate(0, 0, -n)
}

func TestBestSelling_TopFiveSortedDescending(t *testing.T) {
	var sales []models.Sale
	names := []string{"Rice", "Sugar", "Salt", "Tea", "Oil", "Soap", "Milk"}
	for i, name := range names {
		sales = append(sales, sale(name, i+1, daysAgo(1)))
	}

	got := BestSelling(sales)

	if len(got) != 5 {
		t.Fatalf("expected 5 entries, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].Quantity > got[i-1].Quantity {
			t.Errorf("entries not sorted: %v before %v", got[i-1], got[i])
		}
	}
	if got[0].Name != "Milk" || got[0].Quantity != 7 {
		t.Errorf("expected Milk with quantity 7 first, got %+v", got[0])
	}
}

func TestBestSelling_NormalizesNames(t *testing.T) {
	sales := []models.Sale{
		sale("Rice", 3, daysAgo(2)),
		sale("  rice ", 4, daysAgo(1)),
	}

	got := BestSelling(sales)

	if len(got) != 1 {
		t.Fatalf("expected one aggregated entry, got %d", len(got))
	}
	if got[0].Quantity != 7 {
		t.Errorf("expected aggregated quantity 7, got %d", got[0].Quantity)
	}
}

func TestBestSelling_Empty(t *testing.T) {
	if got := BestSelling(nil); len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
}

func TestRestockNeeded(t *testing.T) {
	stock := []models.StockItem{
		{ID: 1, ItemName: "Rice", Quantity: 0},
		{ID: 2, ItemName: "Sugar", Quantity: 9},
		{ID: 3, ItemName: "Salt", Quantity: 10},
		{ID: 4, ItemName: "Tea", Quantity: 25},
	}

	got := RestockNeeded(stock)

	if len(got) != 2 {
		t.Fatalf("expected 2 items, got %d", len(got))
	}
	for _, item := range got {
		if item.Quantity >= RestockThreshold {
			t.Errorf("item %s has quantity %d, should be below %d", item.ItemName, item.Quantity, RestockThreshold)
		}
	}
	// Out-of-stock items count as needing restock too.
	if got[0].ID != 1 || got[1].ID != 2 {
		t.Errorf("expected items 1 and 2, got %+v", got)
	}
}

func TestSlowMoving_WindowStartInclusive(t *testing.T) {
	stock := []models.StockItem{
		{ID: 1, ItemName: "Rice", Quantity: 20},
		{ID: 2, ItemName: "Sugar", Quantity: 20},
		{ID: 3, ItemName: "Salt", Quantity: 20},
	}
	sales := []models.Sale{
		sale("Rice", 1, daysAgo(30)),            // exactly on the boundary: recent
		sale("Sugar", 1, daysAgo(30).Add(-time.Second)), // just outside: stale
	}

	got := SlowMoving(stock, sales, testNow)

	if len(got) != 2 {
		t.Fatalf("expected 2 slow movers, got %d: %+v", len(got), got)
	}
	if got[0].ItemName != "Sugar" || got[1].ItemName != "Salt" {
		t.Errorf("expected Sugar and Salt flagged, got %+v", got)
	}
}

func TestSlowMoving_NeverSoldItemFlagged(t *testing.T) {
	stock := []models.StockItem{{ID: 1, ItemName: "New Thing", Quantity: 5}}

	got := SlowMoving(stock, nil, testNow)

	if len(got) != 1 {
		t.Fatalf("expected newly added item to be flagged, got %+v", got)
	}
}

func TestFallingDemand(t *testing.T) {
	sales := []models.Sale{
		// Rice: 20 in the prior week, 5 in the last week -> 75% drop.
		sale("Rice", 20, daysAgo(10)),
		sale("Rice", 5, daysAgo(2)),
		// Sugar: 10 prior, nothing recent -> 100% drop.
		sale("Sugar", 10, daysAgo(9)),
		// Salt: 10 prior, 6 recent -> above half, not flagged.
		sale("Salt", 10, daysAgo(8)),
		sale("Salt", 6, daysAgo(3)),
		// Tea: only recent sales, no prior-week baseline -> not flagged.
		sale("Tea", 1, daysAgo(1)),
	}

	got := FallingDemand(sales, testNow)

	want := []DemandDrop{
		{Name: "Rice", DropPercent: 75},
		{Name: "Sugar", DropPercent: 100},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestFallingDemand_Empty(t *testing.T) {
	if got := FallingDemand(nil, testNow); len(got) != 0 {
		t.Errorf("expected no drops, got %v", got)
	}
}

func TestSuggestedReorders(t *testing.T) {
	stock := []models.StockItem{
		// 28 units sold over 14 days (avg 2/day): ceil(2*14)+5-3 = 30.
		{ID: 1, ItemName: "Rice", Quantity: 3},
		// Never sold, quantity 8: 0+5-8 < 0 -> excluded despite low stock.
		{ID: 2, ItemName: "Sugar", Quantity: 8},
		// Never sold, quantity 3: 0+5-3 = 2.
		{ID: 3, ItemName: "Salt", Quantity: 3},
		// Not low stock, ignored entirely.
		{ID: 4, ItemName: "Tea", Quantity: 50},
	}
	sales := []models.Sale{
		sale("Rice", 14, daysAgo(10)),
		sale("rice", 14, daysAgo(4)),
		sale("Tea", 100, daysAgo(1)),
	}

	got := SuggestedReorders(stock, sales, testNow)

	if len(got) != 2 {
		t.Fatalf("expected 2 suggestions, got %d: %+v", len(got), got)
	}
	if got[0].Item.ID != 1 || got[0].Suggested != 30 {
		t.Errorf("expected Rice suggestion 30, got %+v", got[0])
	}
	if got[1].Item.ID != 3 || got[1].Suggested != 2 {
		t.Errorf("expected Salt suggestion 2, got %+v", got[1])
	}
}

func TestPeakSellingHours(t *testing.T) {
	at := func(hour int) time.Time {
		return time.Date(2026, 8, 20, hour, 30, 0, 0, time.UTC)
	}
	sales := []models.Sale{
		sale("Rice", 1, at(14)),
		sale("Sugar", 2, at(14)),
		sale("Salt", 1, at(14)),
		sale("Tea", 1, at(9)),
		sale("Oil", 1, at(9)),
		sale("Soap", 1, at(20)),
	}

	got := PeakSellingHours(sales)

	want := []HourCount{
		{Hour: "2:00 - 2:59 PM", Count: 3},
		{Hour: "9:00 - 9:59 AM", Count: 2},
		{Hour: "8:00 - 8:59 PM", Count: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestPeakSellingHours_FewerThanThreeHours(t *testing.T) {
	sales := []models.Sale{
		sale("Rice", 1, time.Date(2026, 8, 20, 0, 5, 0, 0, time.UTC)),
	}

	got := PeakSellingHours(sales)

	if len(got) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(got))
	}
	if got[0].Hour != "12:00 - 12:59 AM" {
		t.Errorf("expected midnight hour label, got %q", got[0].Hour)
	}
}

func TestPeakSellingHours_TieBreaksByEarlierHour(t *testing.T) {
	sales := []models.Sale{
		sale("Rice", 1, time.Date(2026, 8, 20, 17, 0, 0, 0, time.UTC)),
		sale("Sugar", 1, time.Date(2026, 8, 20, 8, 0, 0, 0, time.UTC)),
	}

	got := PeakSellingHours(sales)

	if got[0].Hour != "8:00 - 8:59 AM" {
		t.Errorf("expected 8 AM ranked first on tie, got %q", got[0].Hour)
	}
}

func TestCompute_Idempotent(t *testing.T) {
	stock := []models.StockItem{
		{ID: 1, ItemName: "Rice", Quantity: 3},
		{ID: 2, ItemName: "Sugar", Quantity: 0},
	}
	sales := []models.Sale{
		sale("Rice", 20, daysAgo(10)),
		sale("Rice", 5, daysAgo(2)),
		sale("Sugar", 7, daysAgo(40)),
	}

	first := Compute(sales, stock, testNow)
	second := Compute(sales, stock, testNow)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("same inputs and instant produced different results:\n%+v\n%+v", first, second)
	}
}

func TestSalesBetween_SkipsUnparseableDates(t *testing.T) {
	sales := []models.Sale{
		{ItemName: "Rice", Quantity: 1, Date: "not-a-date"},
		sale("Sugar", 1, daysAgo(1)),
	}

	got := salesBetween(sales, daysAgo(7), testNow)

	if len(got) != 1 || got[0].ItemName != "Sugar" {
		t.Errorf("expected only the parseable sale, got %+v", got)
	}
}
