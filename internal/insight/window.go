package insight

import (
	"time"

	"github.com/AnkitPandit120/DukaanMate1/internal/models"
)

// saleTime parses a sale's timestamp. Sales with an unparseable date do not
// qualify for any time-based predicate.
func saleTime(s models.Sale) (time.Time, bool) {
	t, err := time.Parse(time.RFC3339, s.Date)
	return t, err == nil
}

// salesBetween returns the sales whose timestamp falls in [start, end).
// Both bounds are fixed once per analysis call so every comparison in that
// call sees the same window.
func salesBetween(sales []models.Sale, start, end time.Time) []models.Sale {
	var in []models.Sale
	for _, s := range sales {
		t, ok := saleTime(s)
		if !ok {
			continue
		}
		if !t.Before(start) && t.Before(end) {
			in = append(in, s)
		}
	}
	return in
}

// nameTotal is one row of a per-item quantity aggregation. Key is the
// normalized item name, Name the first spelling encountered in the input.
type nameTotal struct {
	Key      string
	Name     string
	Quantity int
}

// sumQuantityByName groups sales by normalized item name and sums their
// quantities. Rows come back in first-encounter order, which keeps every
// downstream ranking deterministic for a fixed input.
func sumQuantityByName(sales []models.Sale) []nameTotal {
	index := make(map[string]int)
	var totals []nameTotal
	for _, s := range sales {
		key := models.NormalizeItemName(s.ItemName)
		if i, ok := index[key]; ok {
			totals[i].Quantity += s.Quantity
			continue
		}
		index[key] = len(totals)
		totals = append(totals, nameTotal{Key: key, Name: s.ItemName, Quantity: s.Quantity})
	}
	return totals
}
