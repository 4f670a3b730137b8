package auth

import (
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
)

func newTestGate() *Gate {
	return NewGate("admin", "password123", zap.NewNop())
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	gate := newTestGate()

	token, err := gate.Login("admin", "password123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Fatal("Login returned an empty token")
	}
	if !gate.Verify(token) {
		t.Error("freshly issued token did not verify")
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	gate := newTestGate()

	cases := []struct{ username, password string }{
		{"admin", "wrong"},
		{"wrong", "password123"},
		{"", ""},
	}
	for _, tc := range cases {
		token, err := gate.Login(tc.username, tc.password)
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Login(%q, %q) err = %v, want ErrInvalidCredentials", tc.username, tc.password, err)
		}
		if token != "" {
			t.Errorf("Login(%q, %q) returned a token on failure", tc.username, tc.password)
		}
	}

	// No token may have been created along the way.
	gate.mu.Lock()
	defer gate.mu.Unlock()
	if len(gate.tokens) != 0 {
		t.Errorf("failed logins left %d tokens in the gate", len(gate.tokens))
	}
}

func TestTokensAreUniqueAndOpaque(t *testing.T) {
	gate := newTestGate()

	a, _ := gate.Login("admin", "password123")
	b, _ := gate.Login("admin", "password123")
	if a == b {
		t.Error("two logins produced the same token")
	}
	// 32 random bytes base64-raw-url encode to 43 characters.
	if len(a) != 43 {
		t.Errorf("token length = %d, want 43", len(a))
	}
}

func TestVerifyUnknownToken(t *testing.T) {
	gate := newTestGate()
	if gate.Verify("no-such-token") {
		t.Error("unknown token verified")
	}
	if gate.Verify("") {
		t.Error("empty token verified")
	}
}

func TestVerifyExpiryWithInjectedClock(t *testing.T) {
	gate := newTestGate()

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	gate.SetClock(func() time.Time { return now })

	token, err := gate.Login("admin", "password123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if !gate.Verify(token) {
		t.Fatal("token invalid immediately after issue")
	}

	// One second short of 30 days: still valid.
	now = now.Add(TokenDuration - time.Second)
	if !gate.Verify(token) {
		t.Error("token expired early")
	}

	// At exactly 30 days the token is gone, and stays gone.
	now = now.Add(time.Second)
	if gate.Verify(token) {
		t.Error("token verified at expiry")
	}
	now = now.Add(-time.Hour) // even if the clock steps back
	if gate.Verify(token) {
		t.Error("evicted token verified again")
	}
}

func TestSweepRemovesOnlyExpired(t *testing.T) {
	gate := newTestGate()

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	gate.SetClock(func() time.Time { return now })

	old, _ := gate.Login("admin", "password123")

	now = now.Add(15 * 24 * time.Hour)
	fresh, _ := gate.Login("admin", "password123")

	now = now.Add(TokenDuration - 15*24*time.Hour)
	if removed := gate.Sweep(); removed != 1 {
		t.Errorf("Sweep removed %d tokens, want 1", removed)
	}
	if gate.Verify(old) {
		t.Error("swept token still verifies")
	}
	if !gate.Verify(fresh) {
		t.Error("live token was swept")
	}
}
