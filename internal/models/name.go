package models

import "strings"

// NormalizeItemName returns the canonical form of an item name, used as the
// join and grouping key wherever sales and stock records are correlated.
func NormalizeItemName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
