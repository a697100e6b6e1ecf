package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/AnkitPandit120/DukaanMate1/internal/auth"
	"github.com/AnkitPandit120/DukaanMate1/internal/models"
	"github.com/AnkitPandit120/DukaanMate1/internal/repo"
	"golang.org/x/crypto/bcrypt"
)

// RegisterHandler godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body CredentialsRequest true "Username and password"
// @Success 201 {object} RegisterResult
// @Failure 400 {string} string "Invalid input"
// @Failure 409 {string} string "Username taken"
// @Router /register [post]
func RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || len(req.Password) < 8 {
		http.Error(w, "username is required and password must be at least 8 characters", http.StatusBadRequest)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, "could not register user", http.StatusInternalServerError)
		return
	}

	user, err := userRepo.CreateUser(models.User{
		Username:     req.Username,
		PasswordHash: string(hash),
		Role:         "owner",
		CreatedAt:    nowRFC3339(),
	})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicatedValueUnique) {
			http.Error(w, "username already taken", http.StatusConflict)
			return
		}
		http.Error(w, "could not register user", http.StatusInternalServerError)
		return
	}

	token, err := auth.GenerateToken(user)
	if err != nil {
		http.Error(w, "could not generate token", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, RegisterResult{Message: "user registered", Token: token})
}

// LoginHandler godoc
// @Summary Log in
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body CredentialsRequest true "Username and password"
// @Success 200 {object} LoginResult
// @Failure 401 {string} string "Invalid credentials"
// @Router /login [post]
func LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	user, err := userRepo.GetByUsername(req.Username)
	if err != nil {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := auth.GenerateToken(user)
	if err != nil {
		http.Error(w, "could not generate token", http.StatusInternalServerError)
		return
	}
	refreshToken, err := auth.NewRefreshToken(user.Username)
	if err != nil {
		http.Error(w, "could not generate refresh token", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, LoginResult{Token: token, RefreshToken: refreshToken})
}

// RefreshTokenHandler godoc
// @Summary Exchange a refresh token for a new token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param refresh body RefreshRequest true "Refresh token"
// @Success 200 {object} LoginResult
// @Failure 401 {string} string "Invalid refresh token"
// @Router /refresh [post]
func RefreshTokenHandler(w http.ResponseWriter, r *http.Request) {
	var req RefreshRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	username, ok := auth.ValidateRefreshToken(req.RefreshToken)
	if !ok {
		http.Error(w, "invalid refresh token", http.StatusUnauthorized)
		return
	}

	user, err := userRepo.GetByUsername(username)
	if err != nil {
		http.Error(w, "invalid refresh token", http.StatusUnauthorized)
		return
	}

	token, err := auth.GenerateToken(user)
	if err != nil {
		http.Error(w, "could not generate token", http.StatusInternalServerError)
		return
	}
	refreshToken, err := auth.NewRefreshToken(user.Username)
	if err != nil {
		http.Error(w, "could not generate refresh token", http.StatusInternalServerError)
		return
	}
	auth.RevokeRefreshToken(req.RefreshToken)
	log.Printf("rotated refresh token for %s", user.Username)

	writeJSON(w, http.StatusOK, LoginResult{Token: token, RefreshToken: refreshToken})
}
