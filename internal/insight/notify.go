package insight

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/AnkitPandit120/DukaanMate1/internal/models"
)

// Notification kinds. The combined alert list sorts lexicographically on
// these labels, which the notification UI relies on.
const (
	NotificationLowStock   = "lowStock"
	NotificationNearExpiry = "nearExpiry"
	NotificationOutOfStock = "outOfStock"
)

const nearExpiryDays = 7

// GenerateNotifications scans the stock snapshot for low-stock, near-expiry
// and out-of-stock conditions and returns the alerts sorted by kind label.
// Low stock requires a positive quantity, so an item is never both low and
// out of stock.
func GenerateNotifications(stock []models.StockItem, now time.Time) []models.Notification {
	var notifications []models.Notification

	for _, item := range stock {
		if item.Quantity > 0 && item.Quantity < RestockThreshold {
			notifications = append(notifications, models.Notification{
				ID:       fmt.Sprintf("low-%d", item.ID),
				Type:     NotificationLowStock,
				Message:  fmt.Sprintf("%s is low on stock. Only %d left.", item.ItemName, item.Quantity),
				ItemID:   item.ID,
				ItemName: item.ItemName,
			})
		}
	}

	for _, item := range stock {
		expiry, ok := expiryDate(item)
		if !ok {
			continue
		}
		if days := daysUntil(expiry, now); days >= 0 && days <= nearExpiryDays {
			notifications = append(notifications, models.Notification{
				ID:       fmt.Sprintf("expiry-%d", item.ID),
				Type:     NotificationNearExpiry,
				Message:  fmt.Sprintf("%s is expiring soon on %s.", item.ItemName, expiry.Format("Jan 2, 2006")),
				ItemID:   item.ID,
				ItemName: item.ItemName,
			})
		}
	}

	for _, item := range stock {
		if item.Quantity == 0 {
			notifications = append(notifications, models.Notification{
				ID:       fmt.Sprintf("out-of-stock-%d", item.ID),
				Type:     NotificationOutOfStock,
				Message:  fmt.Sprintf("%s is now out of stock.", item.ItemName),
				ItemID:   item.ID,
				ItemName: item.ItemName,
			})
		}
	}

	sort.SliceStable(notifications, func(i, j int) bool {
		return notifications[i].Type < notifications[j].Type
	})
	return notifications
}

// expiryDate parses an item's optional expiry date. Items without one, or
// with an unparseable one, never qualify for expiry alerts.
func expiryDate(item models.StockItem) (time.Time, bool) {
	if item.ExpiryDate == "" {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", item.ExpiryDate)
	return t, err == nil
}

// daysUntil counts calendar days from now's midnight to the given date,
// rounding partial days up.
func daysUntil(date, now time.Time) int {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return int(math.Ceil(date.Sub(today).Hours() / 24))
}
