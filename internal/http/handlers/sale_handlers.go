package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/AnkitPandit120/DukaanMate1/internal/models"
	"github.com/AnkitPandit120/DukaanMate1/internal/repo"
	"github.com/go-chi/chi/v5"
)

// CreateSaleHandler godoc
// @Summary Record a sale
// @Description Records a sale and, when the item is stocked, decrements inventory.
// The quantity sold is clamped to what is on hand; selling an out-of-stock item is rejected.
// @Tags sales
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sale body SaleRequest true "Sale to record"
// @Success 201 {object} SaleResponse
// @Failure 400 {object} []ValidationError
// @Failure 409 {string} string "Out of stock"
// @Router /sales [post]
func CreateSaleHandler(w http.ResponseWriter, r *http.Request) {
	var req SaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateSale(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	quantity := req.Quantity
	stockItem, err := stockRepo.GetByName(req.ItemName)
	stocked := err == nil
	if err != nil && !errors.Is(err, repo.ErrStockItemNotFound) {
		http.Error(w, "could not check stock", http.StatusInternalServerError)
		return
	}

	if stocked {
		if stockItem.Quantity <= 0 {
			http.Error(w, "item is out of stock", http.StatusConflict)
			return
		}
		// Sell at most what is on hand.
		if quantity > stockItem.Quantity {
			quantity = stockItem.Quantity
		}
	}

	sale := models.Sale{
		ItemName: req.ItemName,
		Quantity: quantity,
		Price:    req.Price,
		Date:     nowRFC3339(),
	}
	created, err := saleRepo.Create(sale)
	if err != nil {
		http.Error(w, "could not record sale", http.StatusInternalServerError)
		return
	}

	if stocked {
		if _, err := stockRepo.AdjustQuantity(stockItem.ID, -quantity); err != nil {
			log.Printf("failed to adjust stock for sale %d: %v", created.ID, err)
		}
	}
	invalidateInsights()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(saleResponse(created))
}

// GetSalesHandler godoc
// @Summary List all sales
// @Tags sales
// @Produce json
// @Success 200 {array} SaleResponse
// @Failure 500 {string} string "Internal error"
// @Router /sales [get]
func GetSalesHandler(w http.ResponseWriter, r *http.Request) {
	sales, err := saleRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch sales", http.StatusInternalServerError)
		return
	}
	response := make([]SaleResponse, len(sales))
	for i, s := range sales {
		response[i] = saleResponse(s)
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// GetSaleByIDHandler godoc
// @Summary Get sale by ID
// @Tags sales
// @Produce json
// @Param id path int true "Sale ID"
// @Success 200 {object} SaleResponse
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Router /sales/{id} [get]
func GetSaleByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid sale ID", http.StatusBadRequest)
		return
	}

	sale, err := saleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrSaleNotFound) {
			http.Error(w, "sale not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch sale", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(saleResponse(sale))
}

// DeleteSaleHandler godoc
// @Summary Delete a sale
// @Tags sales
// @Param id path int true "Sale ID"
// @Success 204 "Deleted successfully"
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Router /sales/{id} [delete]
// @Security BearerAuth
func DeleteSaleHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid sale ID", http.StatusBadRequest)
		return
	}
	if err := saleRepo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrSaleNotFound) {
			http.Error(w, "sale not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not delete sale", http.StatusInternalServerError)
		return
	}
	invalidateInsights()
	w.WriteHeader(http.StatusNoContent)
}
