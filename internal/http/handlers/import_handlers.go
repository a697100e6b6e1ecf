package handlers

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/AnkitPandit120/DukaanMate1/internal/models"
	"github.com/AnkitPandit120/DukaanMate1/internal/repo"
)

// ImportStockHandler godoc
// @Summary Bulk-import stock from CSV
// @Description Accepts a multipart CSV upload with the columns
// item_name,category,quantity,price,expiry_date. Rows naming an existing item
// (case-insensitive) add to its quantity; invalid rows are reported per row.
// @Tags stock
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "CSV file"
// @Success 200 {object} ImportStockResult
// @Failure 400 {string} string "Invalid upload"
// @Router /stock/import [post]
func ImportStockHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "could not parse form", http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		http.Error(w, "could not read CSV header", http.StatusBadRequest)
		return
	}
	if len(header) < 4 || header[0] != "item_name" {
		http.Error(w, "CSV header must be item_name,category,quantity,price,expiry_date", http.StatusBadRequest)
		return
	}

	result := ImportStockResult{Errors: []ValidationError{}}
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			result.Errors = append(result.Errors, rowError(line, "unreadable row"))
			continue
		}
		if len(record) < 4 {
			result.Errors = append(result.Errors, rowError(line, "expected at least 4 columns"))
			continue
		}

		req := StockItemRequest{
			ItemName: record[0],
			Category: record[1],
		}
		req.Quantity, err = strconv.Atoi(record[2])
		if err != nil {
			result.Errors = append(result.Errors, rowError(line, "quantity must be an integer"))
			continue
		}
		req.Price, err = strconv.ParseFloat(record[3], 64)
		if err != nil {
			result.Errors = append(result.Errors, rowError(line, "price must be a number"))
			continue
		}
		if len(record) > 4 {
			req.ExpiryDate = record[4]
		}

		if rowErrs := validateStockItem(req); len(rowErrs) > 0 {
			result.Errors = append(result.Errors, rowError(line, rowErrs[0].Description))
			continue
		}

		if err := upsertStockItem(req); err != nil {
			result.Errors = append(result.Errors, rowError(line, "could not save item"))
			continue
		}
		result.ImportedItemsCount++
	}
	if result.ImportedItemsCount > 0 {
		invalidateInsights()
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// upsertStockItem merges the row into an existing item of the same name or
// creates a new one.
func upsertStockItem(req StockItemRequest) error {
	existing, err := stockRepo.GetByName(req.ItemName)
	if err == nil {
		existing.Quantity += req.Quantity
		existing.Price = req.Price
		if req.ExpiryDate != "" {
			existing.ExpiryDate = req.ExpiryDate
		}
		existing.UpdatedAt = nowRFC3339()
		_, err = stockRepo.Update(existing)
		return err
	}
	if !errors.Is(err, repo.ErrStockItemNotFound) {
		return err
	}

	now := nowRFC3339()
	_, err = stockRepo.Create(models.StockItem{
		ItemName:   req.ItemName,
		Category:   req.Category,
		Quantity:   req.Quantity,
		Price:      req.Price,
		ExpiryDate: req.ExpiryDate,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	return err
}

func rowError(line int, description string) ValidationError {
	return ValidationError{
		Field:       fmt.Sprintf("row %d", line),
		Description: description,
	}
}
