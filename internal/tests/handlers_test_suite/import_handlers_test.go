package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	api "github.com/AnkitPandit120/DukaanMate1/internal/http"
	handler "github.com/AnkitPandit120/DukaanMate1/internal/http/handlers"
)

func importCSV(r http.Handler, csvContent string) *httptest.ResponseRecorder {
	buf, contentType := multipartCSV(csvContent, "stock.csv")
	req := httptest.NewRequest(http.MethodPost, "/stock/import", buf)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestImportStockHandler_Valid(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter()

	csv := "item_name,category,quantity,price,expiry_date\n" +
		"Rice,Grocery,25,50,\n" +
		"Milk,Dairy,10,30,2026-09-15\n"

	w := importCSV(r, csv)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var result handler.ImportStockResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if result.ImportedItemsCount != 2 {
		t.Errorf("expected 2 imported items, got %d", result.ImportedItemsCount)
	}
	if len(result.Errors) != 0 {
		t.Errorf("expected no row errors, got %+v", result.Errors)
	}

	listW := doGet(r, "/stock")
	var items []handler.StockItemResponse
	json.NewDecoder(listW.Body).Decode(&items)
	if len(items) != 2 {
		t.Errorf("expected 2 stock items after import, got %d", len(items))
	}
}

func TestImportStockHandler_MergesExistingItems(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter()

	createStockItem(r, handler.StockItemRequest{ItemName: "Rice", Category: "Grocery", Quantity: 10, Price: 50})

	csv := "item_name,category,quantity,price,expiry_date\n" +
		"rice,Grocery,15,52,\n"

	w := importCSV(r, csv)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	listW := doGet(r, "/stock")
	var items []handler.StockItemResponse
	json.NewDecoder(listW.Body).Decode(&items)
	if len(items) != 1 {
		t.Fatalf("expected 1 stock item after merging import, got %d", len(items))
	}
	if items[0].Quantity != 25 {
		t.Errorf("expected merged quantity 25, got %d", items[0].Quantity)
	}
}

func TestImportStockHandler_ReportsBadRows(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter()

	csv := "item_name,category,quantity,price,expiry_date\n" +
		"Rice,Grocery,notanumber,50,\n" +
		"Milk,Dairy,10,30,\n" +
		",Grocery,5,20,\n"

	w := importCSV(r, csv)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var result handler.ImportStockResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if result.ImportedItemsCount != 1 {
		t.Errorf("expected 1 imported item, got %d", result.ImportedItemsCount)
	}
	if len(result.Errors) != 2 {
		t.Errorf("expected 2 row errors, got %+v", result.Errors)
	}
}

func TestImportStockHandler_BadHeader(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter()

	w := importCSV(r, "name,qty\nRice,5\n")
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 Bad Request, got %d", w.Code)
	}
}

func TestImportStockHandler_MissingFile(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter()

	w := doJSON(r, http.MethodPost, "/stock/import", nil, true)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 Bad Request, got %d", w.Code)
	}
}
