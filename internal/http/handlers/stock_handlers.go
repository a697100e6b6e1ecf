package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/AnkitPandit120/DukaanMate1/internal/insight"
	"github.com/AnkitPandit120/DukaanMate1/internal/models"
	"github.com/AnkitPandit120/DukaanMate1/internal/repo"
	"github.com/go-chi/chi/v5"
)

// GetStockHandler godoc
// @Summary List all stock items
// @Description Returns every stock item, flagging those below the restock threshold.
// @Tags stock
// @Produce json
// @Success 200 {array} StockItemResponse
// @Failure 500 {string} string "Internal error"
// @Router /stock [get]
func GetStockHandler(w http.ResponseWriter, r *http.Request) {
	items, err := stockRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch stock", http.StatusInternalServerError)
		return
	}
	response := make([]StockItemResponse, len(items))
	for i, item := range items {
		response[i] = stockItemResponse(item, insight.RestockThreshold)
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// GetStockItemByIDHandler godoc
// @Summary Get stock item by ID
// @Tags stock
// @Produce json
// @Param id path int true "Stock item ID"
// @Success 200 {object} StockItemResponse
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Router /stock/{id} [get]
func GetStockItemByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid stock item ID", http.StatusBadRequest)
		return
	}

	item, err := stockRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrStockItemNotFound) {
			http.Error(w, "stock item not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch stock item", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stockItemResponse(item, insight.RestockThreshold))
}

// CreateStockItemHandler godoc
// @Summary Add a stock item
// @Description Adds a stock item. If an item with the same name (case-insensitive)
// already exists, its quantity is increased and price updated instead.
// @Tags stock
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param item body StockItemRequest true "Stock item to add"
// @Success 201 {object} StockItemResponse
// @Failure 400 {object} []ValidationError
// @Router /stock [post]
func CreateStockItemHandler(w http.ResponseWriter, r *http.Request) {
	var req StockItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateStockItem(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	// Merge with an existing item of the same name rather than duplicating it.
	existing, err := stockRepo.GetByName(req.ItemName)
	if err == nil {
		existing.Quantity += req.Quantity
		existing.Price = req.Price
		if req.ExpiryDate != "" {
			existing.ExpiryDate = req.ExpiryDate
		}
		existing.UpdatedAt = nowRFC3339()
		updated, err := stockRepo.Update(existing)
		if err != nil {
			http.Error(w, "could not update stock item", http.StatusInternalServerError)
			return
		}
		invalidateInsights()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(stockItemResponse(updated, insight.RestockThreshold))
		return
	}
	if !errors.Is(err, repo.ErrStockItemNotFound) {
		http.Error(w, "could not check stock", http.StatusInternalServerError)
		return
	}

	now := nowRFC3339()
	item := models.StockItem{
		ItemName:   req.ItemName,
		Category:   req.Category,
		Quantity:   req.Quantity,
		Price:      req.Price,
		ExpiryDate: req.ExpiryDate,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	created, err := stockRepo.Create(item)
	if err != nil {
		http.Error(w, "could not create stock item", http.StatusInternalServerError)
		return
	}
	invalidateInsights()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(stockItemResponse(created, insight.RestockThreshold))
}

// UpdateStockItemHandler godoc
// @Summary Update a stock item
// @Tags stock
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Stock item ID"
// @Param item body StockItemRequest true "New values"
// @Success 200 {object} StockItemResponse
// @Failure 400 {object} []ValidationError
// @Failure 404 {string} string "Not found"
// @Router /stock/{id} [put]
func UpdateStockItemHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid stock item ID", http.StatusBadRequest)
		return
	}

	var req StockItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateStockItem(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	item, err := stockRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrStockItemNotFound) {
			http.Error(w, "stock item not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch stock item", http.StatusInternalServerError)
		return
	}

	item.ItemName = req.ItemName
	item.Category = req.Category
	item.Quantity = req.Quantity
	item.Price = req.Price
	item.ExpiryDate = req.ExpiryDate
	item.UpdatedAt = nowRFC3339()

	updated, err := stockRepo.Update(item)
	if err != nil {
		http.Error(w, "could not update stock item", http.StatusInternalServerError)
		return
	}
	invalidateInsights()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stockItemResponse(updated, insight.RestockThreshold))
}

// AdjustStockQuantityHandler godoc
// @Summary Adjust stock quantity
// @Description Applies a signed delta to the item's quantity. Quantity never goes below zero.
// @Tags stock
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Stock item ID"
// @Param adjustment body QuantityAdjustmentRequest true "Signed quantity delta"
// @Success 200 {object} StockItemResponse
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Router /stock/{id}/adjust [post]
func AdjustStockQuantityHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid stock item ID", http.StatusBadRequest)
		return
	}

	var req QuantityAdjustmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	item, err := stockRepo.AdjustQuantity(id, req.Delta)
	if err != nil {
		if errors.Is(err, repo.ErrStockItemNotFound) {
			http.Error(w, "stock item not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not adjust quantity", http.StatusInternalServerError)
		return
	}
	invalidateInsights()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stockItemResponse(item, insight.RestockThreshold))
}

// DeleteStockItemHandler godoc
// @Summary Delete a stock item
// @Tags stock
// @Param id path int true "Stock item ID"
// @Success 204 "Deleted successfully"
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Failure 403 {string} string "Forbidden"
// @Router /stock/{id} [delete]
// @Security BearerAuth
func DeleteStockItemHandler(w http.ResponseWriter, r *http.Request) {
	role, err := GetRoleFromContext(r)
	if err != nil || role != "owner" {
		http.Error(w, "only the owner can delete stock items", http.StatusForbidden)
		return
	}

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid stock item ID", http.StatusBadRequest)
		return
	}
	if err := stockRepo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrStockItemNotFound) {
			http.Error(w, "stock item not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not delete stock item", http.StatusInternalServerError)
		return
	}
	invalidateInsights()
	w.WriteHeader(http.StatusNoContent)
}
