// Package auth implements the login gate: static operator credentials
// and opaque bearer tokens held in process memory. A restart drops every
// token and forces a fresh login.
package auth

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// TokenDuration is how long an issued token stays valid.
const TokenDuration = 30 * 24 * time.Hour

// tokenBytes gives 256 bits of entropy per token.
const tokenBytes = 32

// ErrInvalidCredentials is returned for any username/password mismatch.
// Deliberately one error for both fields so a caller cannot probe which
// one was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Gate issues and verifies bearer tokens. The clock is injectable so
// expiry can be tested without real time passing.
type Gate struct {
	username string
	password string

	mu     sync.Mutex
	tokens map[string]time.Time // token -> expiry

	now    func() time.Time
	logger *zap.Logger
}

func NewGate(username, password string, logger *zap.Logger) *Gate {
	return &Gate{
		username: username,
		password: password,
		tokens:   make(map[string]time.Time),
		now:      time.Now,
		logger:   logger,
	}
}

// SetClock replaces the gate's time source. Tests only.
func (g *Gate) SetClock(now func() time.Time) {
	g.now = now
}

// Login checks the credentials and mints a new token valid for
// TokenDuration. No token is created on a mismatch.
func (g *Gate) Login(username, password string) (string, error) {
	if username != g.username || password != g.password {
		g.logger.Warn("login rejected", zap.String("username", username))
		return "", ErrInvalidCredentials
	}

	token, err := generateToken()
	if err != nil {
		return "", err
	}

	g.mu.Lock()
	g.tokens[token] = g.now().Add(TokenDuration)
	g.mu.Unlock()

	g.logger.Info("login succeeded", zap.String("username", username))
	return token, nil
}

// Verify reports whether a token is active. Expired tokens are evicted
// on lookup.
func (g *Gate) Verify(token string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	expiresAt, ok := g.tokens[token]
	if !ok {
		return false
	}
	if !g.now().Before(expiresAt) {
		delete(g.tokens, token)
		g.logger.Info("evicted expired token")
		return false
	}
	return true
}

// Sweep drops every expired token and returns how many were removed.
// Called from the daily cron job; Verify already evicts lazily, this
// just keeps the map from accumulating abandoned logins.
func (g *Gate) Sweep() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	removed := 0
	for token, expiresAt := range g.tokens {
		if !now.Before(expiresAt) {
			delete(g.tokens, token)
			removed++
		}
	}
	return removed
}

// generateToken returns a cryptographically random URL-safe string.
func generateToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
