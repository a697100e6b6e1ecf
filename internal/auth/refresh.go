package auth

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"
)

type refreshEntry struct {
	Username  string
	ExpiresAt time.Time
}

var (
	refreshTokenStore = map[string]refreshEntry{}
	mu                sync.Mutex
	refreshTokenTTL   = 7 * 24 * time.Hour
)

// ConfigureRefresh sets the refresh-token lifetime.
func ConfigureRefresh(ttl time.Duration) {
	if ttl > 0 {
		refreshTokenTTL = ttl
	}
}

// NewRefreshToken issues an opaque refresh token for the given user.
func NewRefreshToken(username string) (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	token := hex.EncodeToString(buf)

	mu.Lock()
	refreshTokenStore[token] = refreshEntry{
		Username:  username,
		ExpiresAt: time.Now().Add(refreshTokenTTL),
	}
	mu.Unlock()
	return token, nil
}

// ValidateRefreshToken returns the owning username if the token exists and
// has not expired.
func ValidateRefreshToken(token string) (string, bool) {
	mu.Lock()
	defer mu.Unlock()

	entry, ok := refreshTokenStore[token]
	if !ok || time.Now().After(entry.ExpiresAt) {
		return "", false
	}
	return entry.Username, true
}

// RevokeRefreshToken invalidates a refresh token, e.g. after rotation.
func RevokeRefreshToken(token string) {
	mu.Lock()
	delete(refreshTokenStore, token)
	mu.Unlock()
}

// StartRefreshTokenCleaner periodically drops expired refresh tokens.
func StartRefreshTokenCleaner(interval time.Duration) {
	for {
		time.Sleep(interval)
		now := time.Now()
		mu.Lock()
		for token, entry := range refreshTokenStore {
			if now.After(entry.ExpiresAt) {
				delete(refreshTokenStore, token)
			}
		}
		mu.Unlock()
	}
}
