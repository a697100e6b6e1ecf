package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"testing"

	api "github.com/AnkitPandit120/DukaanMate1/internal/http"
	handler "github.com/AnkitPandit120/DukaanMate1/internal/http/handlers"
)

func TestRegisterHandler(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter()

	w := doJSON(r, http.MethodPost, "/register", handler.CredentialsRequest{Username: "newshop", Password: "longenough"}, false)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}

	var resp handler.RegisterResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Token == "" {
		t.Error("expected a token in the register response")
	}

	// Same username again is rejected.
	w = doJSON(r, http.MethodPost, "/register", handler.CredentialsRequest{Username: "newshop", Password: "longenough"}, false)
	if w.Code != http.StatusConflict {
		t.Errorf("expected 409 Conflict for duplicate username, got %d", w.Code)
	}
}

func TestRegisterHandler_ShortPassword(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter()

	w := doJSON(r, http.MethodPost, "/register", handler.CredentialsRequest{Username: "shorty", Password: "short"}, false)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 Bad Request, got %d", w.Code)
	}
}

func TestLoginHandler(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter()

	w := doJSON(r, http.MethodPost, "/login", handler.CredentialsRequest{Username: "owner", Password: "secret-123"}, false)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp handler.LoginResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Token == "" || resp.RefreshToken == "" {
		t.Error("expected both access and refresh tokens")
	}
}

func TestLoginHandler_WrongPassword(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter()

	w := doJSON(r, http.MethodPost, "/login", handler.CredentialsRequest{Username: "owner", Password: "wrong-password"}, false)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 Unauthorized, got %d", w.Code)
	}
}

func TestRefreshTokenHandler_RotatesToken(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter()

	w := doJSON(r, http.MethodPost, "/login", handler.CredentialsRequest{Username: "owner", Password: "secret-123"}, false)
	var login handler.LoginResult
	json.NewDecoder(w.Body).Decode(&login)

	w = doJSON(r, http.MethodPost, "/refresh", handler.RefreshRequest{RefreshToken: login.RefreshToken}, false)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var refreshed handler.LoginResult
	json.NewDecoder(w.Body).Decode(&refreshed)
	if refreshed.Token == "" || refreshed.RefreshToken == "" {
		t.Error("expected a fresh token pair")
	}

	// The old refresh token is revoked once used.
	w = doJSON(r, http.MethodPost, "/refresh", handler.RefreshRequest{RefreshToken: login.RefreshToken}, false)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 Unauthorized for reused refresh token, got %d", w.Code)
	}
}

func TestRefreshTokenHandler_InvalidToken(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter()

	w := doJSON(r, http.MethodPost, "/refresh", handler.RefreshRequest{RefreshToken: "not-a-token"}, false)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 Unauthorized, got %d", w.Code)
	}
}
