// Package insight derives actionable retail signals from raw sales and stock
// records: best sellers, restock candidates, slow movers, falling demand,
// reorder suggestions and peak selling hours.
//
// Every function is a pure transform over the collections passed in; nothing
// is cached or mutated. Windowed analyses take an explicit now so results are
// reproducible, callers pass time.Now(). Day boundaries and hours of day
// follow the timestamp's own offset.
package insight

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/AnkitPandit120/DukaanMate1/internal/models"
)

const (
	// RestockThreshold is the on-hand quantity below which an item counts
	// as needing restock.
	RestockThreshold = 10

	// ReorderBuffer is the fixed safety stock added on top of the
	// projected demand when suggesting a reorder quantity.
	ReorderBuffer = 5

	bestSellerLimit     = 5
	peakHourLimit       = 3
	slowMoverWindowDays = 30
	demandWindowDays    = 7
	demandDropFactor    = 0.5
	reorderHorizonDays  = 14
)

// ItemQuantity is an item name paired with a total quantity sold.
type ItemQuantity struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// DemandDrop flags an item whose sales volume fell sharply week over week.
type DemandDrop struct {
	Name        string `json:"name"`
	DropPercent int    `json:"drop_percent"`
}

// ReorderSuggestion pairs a low-stock item with a suggested order quantity.
type ReorderSuggestion struct {
	Item      models.StockItem `json:"item"`
	Suggested int              `json:"suggested"`
}

// HourCount is a formatted hour-of-day range with its transaction count.
type HourCount struct {
	Hour  string `json:"hour"`
	Count int    `json:"count"`
}

// Insights bundles every dashboard analysis over one snapshot of the data.
type Insights struct {
	BestSelling       []ItemQuantity      `json:"best_selling"`
	RestockNeeded     []models.StockItem  `json:"restock_needed"`
	SlowMoving        []models.StockItem  `json:"slow_moving"`
	FallingDemand     []DemandDrop        `json:"falling_demand"`
	SuggestedReorders []ReorderSuggestion `json:"suggested_reorders"`
	PeakHours         []HourCount         `json:"peak_hours"`
}

// Compute runs every analysis against the same snapshot and instant.
func Compute(sales []models.Sale, stock []models.StockItem, now time.Time) Insights {
	return Insights{
		BestSelling:       BestSelling(sales),
		RestockNeeded:     RestockNeeded(stock),
		SlowMoving:        SlowMoving(stock, sales, now),
		FallingDemand:     FallingDemand(sales, now),
		SuggestedReorders: SuggestedReorders(stock, sales, now),
		PeakHours:         PeakSellingHours(sales),
	}
}

// BestSelling ranks items by all-time quantity sold and returns the top five.
// Ties keep the order items first appeared in the sales log.
func BestSelling(sales []models.Sale) []ItemQuantity {
	totals := sumQuantityByName(sales)
	ranked := make([]ItemQuantity, 0, len(totals))
	for _, t := range totals {
		ranked = append(ranked, ItemQuantity{Name: t.Name, Quantity: t.Quantity})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Quantity > ranked[j].Quantity
	})
	if len(ranked) > bestSellerLimit {
		ranked = ranked[:bestSellerLimit]
	}
	return ranked
}

// RestockNeeded returns the stock items below the restock threshold.
// Out-of-stock items qualify too.
func RestockNeeded(stock []models.StockItem) []models.StockItem {
	var low []models.StockItem
	for _, item := range stock {
		if item.Quantity < RestockThreshold {
			low = append(low, item)
		}
	}
	return low
}

// SlowMoving returns the stock items with no sale in the trailing 30 days.
// An item added to stock but never sold is always flagged.
func SlowMoving(stock []models.StockItem, sales []models.Sale, now time.Time) []models.StockItem {
	start := now.AddDate(0, 0, -slowMoverWindowDays)
	recentlySold := make(map[string]struct{})
	for _, s := range salesBetween(sales, start, now) {
		recentlySold[models.NormalizeItemName(s.ItemName)] = struct{}{}
	}

	var slow []models.StockItem
	for _, item := range stock {
		if _, ok := recentlySold[models.NormalizeItemName(item.ItemName)]; !ok {
			slow = append(slow, item)
		}
	}
	return slow
}

// FallingDemand compares each item's sales over the last seven days against
// the seven days before that, and flags items whose recent volume dropped
// below half the prior week's. An item that sold in the prior week but not at
// all in the last week comes back with a 100% drop.
func FallingDemand(sales []models.Sale, now time.Time) []DemandDrop {
	weekAgo := now.AddDate(0, 0, -demandWindowDays)
	twoWeeksAgo := now.AddDate(0, 0, -2*demandWindowDays)

	recent := make(map[string]int)
	for _, t := range sumQuantityByName(salesBetween(sales, weekAgo, now)) {
		recent[t.Key] = t.Quantity
	}

	var drops []DemandDrop
	for _, prior := range sumQuantityByName(salesBetween(sales, twoWeeksAgo, weekAgo)) {
		if prior.Quantity <= 0 {
			continue
		}
		current := recent[prior.Key]
		if float64(current) < float64(prior.Quantity)*demandDropFactor {
			pct := math.Round(float64(prior.Quantity-current) / float64(prior.Quantity) * 100)
			drops = append(drops, DemandDrop{Name: prior.Name, DropPercent: int(pct)})
		}
	}
	return drops
}

// SuggestedReorders projects the next fortnight's demand for each low-stock
// item from its trailing 14-day sales and suggests an order quantity covering
// that demand plus a safety buffer. Items whose suggestion works out to zero
// are dropped.
func SuggestedReorders(stock []models.StockItem, sales []models.Sale, now time.Time) []ReorderSuggestion {
	lowStock := RestockNeeded(stock)
	start := now.AddDate(0, 0, -reorderHorizonDays)
	recent := salesBetween(sales, start, now)

	var suggestions []ReorderSuggestion
	for _, item := range lowStock {
		key := models.NormalizeItemName(item.ItemName)
		totalSold := 0
		for _, s := range recent {
			if models.NormalizeItemName(s.ItemName) == key {
				totalSold += s.Quantity
			}
		}

		dailyAvg := float64(totalSold) / reorderHorizonDays
		suggested := int(math.Ceil(dailyAvg*reorderHorizonDays)) + ReorderBuffer - item.Quantity
		if suggested <= 0 {
			continue
		}
		suggestions = append(suggestions, ReorderSuggestion{Item: item, Suggested: suggested})
	}
	return suggestions
}

// PeakSellingHours counts sale transactions per hour of day across the whole
// log and returns the top three busiest hours. Ties rank the earlier hour
// first.
func PeakSellingHours(sales []models.Sale) []HourCount {
	counts := make(map[int]int)
	for _, s := range sales {
		t, ok := saleTime(s)
		if !ok {
			continue
		}
		counts[t.Hour()]++
	}

	hours := make([]int, 0, len(counts))
	for h := range counts {
		hours = append(hours, h)
	}
	sort.Slice(hours, func(i, j int) bool {
		if counts[hours[i]] != counts[hours[j]] {
			return counts[hours[i]] > counts[hours[j]]
		}
		return hours[i] < hours[j]
	})
	if len(hours) > peakHourLimit {
		hours = hours[:peakHourLimit]
	}

	peaks := make([]HourCount, len(hours))
	for i, h := range hours {
		peaks[i] = HourCount{Hour: formatHourRange(h), Count: counts[h]}
	}
	return peaks
}

// formatHourRange renders an hour of day as a 12-hour clock range,
// e.g. 14 -> "2:00 - 2:59 PM".
func formatHourRange(hour int) string {
	meridiem := "AM"
	if hour >= 12 {
		meridiem = "PM"
	}
	display := hour % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:00 - %d:59 %s", display, display, meridiem)
}
