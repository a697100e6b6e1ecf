package handlers_test_suite

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	api "github.com/AnkitPandit120/DukaanMate1/internal/http"
	handler "github.com/AnkitPandit120/DukaanMate1/internal/http/handlers"
)

func TestCreateStockItemHandler_Valid(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter()

	w := createStockItem(r, handler.StockItemRequest{ItemName: "Rice", Category: "Grocery", Quantity: 25, Price: 50})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}

	var resp handler.StockItemResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.ItemName != "Rice" {
		t.Errorf("expected item name 'Rice', got %v", resp.ItemName)
	}
	if resp.LowStock {
		t.Error("expected quantity 25 not to be flagged low stock")
	}
}

func TestCreateStockItemHandler_MergesByName(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter()

	w := createStockItem(r, handler.StockItemRequest{ItemName: "Rice", Category: "Grocery", Quantity: 10, Price: 50})
	var first handler.StockItemResponse
	json.NewDecoder(w.Body).Decode(&first)

	// Same name in different case adds to the existing item.
	w = createStockItem(r, handler.StockItemRequest{ItemName: "  rice ", Category: "Grocery", Quantity: 5, Price: 55})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}
	var merged handler.StockItemResponse
	json.NewDecoder(w.Body).Decode(&merged)

	if merged.Id != first.Id {
		t.Errorf("expected merge into item %d, got new item %d", first.Id, merged.Id)
	}
	if merged.Quantity != 15 {
		t.Errorf("expected merged quantity 15, got %d", merged.Quantity)
	}
	if merged.Price != 55 {
		t.Errorf("expected price updated to 55, got %v", merged.Price)
	}

	listW := doGet(r, "/stock")
	var items []handler.StockItemResponse
	json.NewDecoder(listW.Body).Decode(&items)
	if len(items) != 1 {
		t.Errorf("expected a single stock item after merge, got %d", len(items))
	}
}

func TestCreateStockItemHandler_Invalid(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter()

	tests := []struct {
		name           string
		payload        handler.StockItemRequest
		expectedFields []string
	}{
		{
			name:           "Empty name and negative quantity",
			payload:        handler.StockItemRequest{ItemName: "", Quantity: -1, Price: 10},
			expectedFields: []string{"ItemName", "Quantity"},
		},
		{
			name:           "Bad expiry format",
			payload:        handler.StockItemRequest{ItemName: "Milk", Quantity: 5, Price: 30, ExpiryDate: "31-08-2026"},
			expectedFields: []string{"ExpiryDate"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := createStockItem(r, tt.payload)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400 Bad Request, got %d", w.Code)
			}

			var errs []handler.ValidationError
			if err := json.NewDecoder(w.Body).Decode(&errs); err != nil {
				t.Fatalf("error decoding response: %v", err)
			}
			for _, field := range tt.expectedFields {
				found := false
				for _, e := range errs {
					if e.Field == field {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("expected error for field %q, but not found", field)
				}
			}
		})
	}
}

func TestGetStockHandler_FlagsLowStock(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter()

	createStockItem(r, handler.StockItemRequest{ItemName: "Rice", Category: "Grocery", Quantity: 3, Price: 50})
	createStockItem(r, handler.StockItemRequest{ItemName: "Oil", Category: "Grocery", Quantity: 30, Price: 120})

	w := doGet(r, "/stock")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var items []handler.StockItemResponse
	if err := json.NewDecoder(w.Body).Decode(&items); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	for _, item := range items {
		switch item.ItemName {
		case "Rice":
			if !item.LowStock {
				t.Error("expected Rice (qty 3) to be flagged low stock")
			}
		case "Oil":
			if item.LowStock {
				t.Error("expected Oil (qty 30) not to be flagged low stock")
			}
		}
	}
}

func TestAdjustStockQuantityHandler(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter()

	w := createStockItem(r, handler.StockItemRequest{ItemName: "Rice", Category: "Grocery", Quantity: 10, Price: 50})
	var item handler.StockItemResponse
	json.NewDecoder(w.Body).Decode(&item)

	w = doJSON(r, http.MethodPost, fmt.Sprintf("/stock/%d/adjust", item.Id), handler.QuantityAdjustmentRequest{Delta: -4}, true)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var adjusted handler.StockItemResponse
	json.NewDecoder(w.Body).Decode(&adjusted)
	if adjusted.Quantity != 6 {
		t.Errorf("expected quantity 6 after -4, got %d", adjusted.Quantity)
	}

	// Over-subtracting clamps at zero.
	w = doJSON(r, http.MethodPost, fmt.Sprintf("/stock/%d/adjust", item.Id), handler.QuantityAdjustmentRequest{Delta: -100}, true)
	json.NewDecoder(w.Body).Decode(&adjusted)
	if adjusted.Quantity != 0 {
		t.Errorf("expected quantity clamped at 0, got %d", adjusted.Quantity)
	}
}

func TestUpdateStockItemHandler_NotFound(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter()

	w := doJSON(r, http.MethodPut, "/stock/999", handler.StockItemRequest{ItemName: "Ghost", Quantity: 1, Price: 1}, true)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found, got %d", w.Code)
	}
}

func TestDeleteStockItemHandler(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter()

	w := createStockItem(r, handler.StockItemRequest{ItemName: "Rice", Category: "Grocery", Quantity: 10, Price: 50})
	var item handler.StockItemResponse
	json.NewDecoder(w.Body).Decode(&item)

	delW := doJSON(r, http.MethodDelete, fmt.Sprintf("/stock/%d", item.Id), nil, true)
	if delW.Code != http.StatusNoContent {
		t.Fatalf("expected 204 No Content, got %d", delW.Code)
	}

	getW := doGet(r, fmt.Sprintf("/stock/%d", item.Id))
	if getW.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found after delete, got %d", getW.Code)
	}
}
