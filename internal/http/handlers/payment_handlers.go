package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/AnkitPandit120/DukaanMate1/internal/models"
	"github.com/AnkitPandit120/DukaanMate1/internal/repo"
	"github.com/go-chi/chi/v5"
)

// GetPaymentsHandler godoc
// @Summary List all payments
// @Tags payments
// @Produce json
// @Success 200 {array} models.Payment
// @Failure 500 {string} string "Internal error"
// @Router /payments [get]
func GetPaymentsHandler(w http.ResponseWriter, r *http.Request) {
	payments, err := paymentRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch payments", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payments)
}

// CreatePaymentHandler godoc
// @Summary Record a pending or settled payment
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payment body PaymentRequest true "Payment to record"
// @Success 201 {object} models.Payment
// @Failure 400 {object} []ValidationError
// @Router /payments [post]
func CreatePaymentHandler(w http.ResponseWriter, r *http.Request) {
	var req PaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validatePayment(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	payment, err := paymentRepo.Create(models.Payment{
		Name:   req.Name,
		Amount: req.Amount,
		Status: req.Status,
		Date:   req.Date,
		Type:   req.Type,
	})
	if err != nil {
		http.Error(w, "could not record payment", http.StatusInternalServerError)
		return
	}
	invalidateInsights()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(payment)
}

// UpdatePaymentStatusHandler godoc
// @Summary Update a payment's status
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Payment ID"
// @Param status body PaymentStatusRequest true "New status"
// @Success 200 {object} models.Payment
// @Failure 400 {string} string "Invalid input"
// @Failure 404 {string} string "Not found"
// @Router /payments/{id}/status [put]
func UpdatePaymentStatusHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid payment ID", http.StatusBadRequest)
		return
	}

	var req PaymentStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if !validPaymentStatus(req.Status) {
		http.Error(w, "status must be Pending, Received or Paid", http.StatusBadRequest)
		return
	}

	payment, err := paymentRepo.UpdateStatus(id, req.Status)
	if err != nil {
		if errors.Is(err, repo.ErrPaymentNotFound) {
			http.Error(w, "payment not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not update payment", http.StatusInternalServerError)
		return
	}
	invalidateInsights()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payment)
}
