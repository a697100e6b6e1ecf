package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/AnkitPandit120/DukaanMate1/internal/insight"
)

// GetNotificationsHandler godoc
// @Summary Stock notifications
// @Description Low-stock, near-expiry and out-of-stock alerts derived from the current stock.
// @Tags notifications
// @Produce json
// @Success 200 {array} models.Notification
// @Failure 500 {string} string "Internal error"
// @Router /notifications [get]
func GetNotificationsHandler(w http.ResponseWriter, r *http.Request) {
	stock, err := stockRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch stock", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(insight.GenerateNotifications(stock, time.Now()))
}
