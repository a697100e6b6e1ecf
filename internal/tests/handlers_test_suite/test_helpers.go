package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"

	api "github.com/AnkitPandit120/DukaanMate1/internal/http"
	handler "github.com/AnkitPandit120/DukaanMate1/internal/http/handlers"
	rl "github.com/AnkitPandit120/DukaanMate1/internal/http/rate_limiter"
	"github.com/AnkitPandit120/DukaanMate1/internal/models"
	"github.com/AnkitPandit120/DukaanMate1/internal/repo"
	"golang.org/x/crypto/bcrypt"
)

var (
	token       string
	saleRepo    *repo.InMemorySaleRepository
	stockRepo   *repo.InMemoryStockRepository
	expenseRepo *repo.InMemoryExpenseRepository
	paymentRepo *repo.InMemoryPaymentRepository
	userRepo    *repo.InMemoryUserRepository
)

func init() {
	setupTestRepos("secret-123")
	r := api.NewRouter()

	var err error
	token, err = generateToken(r, "owner", "secret-123")
	if err != nil {
		panic(fmt.Sprintf("error generating token: %v", err))
	}
}

func setupTestRepos(password string) {
	saleRepo = repo.NewInMemorySaleRepository()
	handler.SetSaleRepo(saleRepo)

	stockRepo = repo.NewInMemoryStockRepository()
	handler.SetStockRepo(stockRepo)

	expenseRepo = repo.NewInMemoryExpenseRepository()
	handler.SetExpenseRepo(expenseRepo)

	paymentRepo = repo.NewInMemoryPaymentRepository()
	handler.SetPaymentRepo(paymentRepo)

	userRepo = repo.NewInMemoryUserRepository()
	handler.SetUserRepo(userRepo)

	// No redis in tests; the insight cache degrades to recomputing.
	handler.SetInsightCache(nil, 0)

	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	userRepo.CreateUser(models.User{
		Username:     "owner",
		PasswordHash: string(hash),
		Role:         "owner",
	})
}

func clearAllData() {
	saleRepo.Clear()
	stockRepo.Clear()
	expenseRepo.Clear()
	paymentRepo.Clear()
	rl.CleanupAllVisitors()
}

func generateToken(r http.Handler, username, password string) (string, error) {
	payload := handler.CredentialsRequest{Username: username, Password: password}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp handler.LoginResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		return "", fmt.Errorf("token decoding failed: %v", err)
	}
	return resp.Token, nil
}

func doJSON(r http.Handler, method, target string, payload any, authorized bool) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if payload != nil {
		json.NewEncoder(&body).Encode(payload)
	}
	req := httptest.NewRequest(method, target, &body)
	if authorized {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doGet(r http.Handler, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createSale(r http.Handler, s handler.SaleRequest) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, "/sales", s, true)
}

func createStockItem(r http.Handler, item handler.StockItemRequest) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, "/stock", item, true)
}

func multipartCSV(csvContent string, filename string) (*bytes.Buffer, string) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, _ := writer.CreateFormFile("file", filename)
	part.Write([]byte(csvContent))

	writer.Close()
	return &buf, writer.FormDataContentType()
}
