package security

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestSessionMintAndVerify(t *testing.T) {
	m := NewSessionManager("test-secret", time.Hour)

	token, err := m.Mint("learner-1")
	if err != nil {
		t.Fatalf("Mint: %v", err)
	}

	learnerID, err := m.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if learnerID != "learner-1" {
		t.Errorf("Verify returned %q", learnerID)
	}
}

func TestSessionVerifyRejectsGarbage(t *testing.T) {
	m := NewSessionManager("test-secret", time.Hour)

	if _, err := m.Verify("not-a-token"); err == nil {
		t.Error("Garbage token should not verify")
	}
}

func TestSessionVerifyRejectsWrongSecret(t *testing.T) {
	token, err := NewSessionManager("secret-a", time.Hour).Mint("learner-1")
	if err != nil {
		t.Fatalf("Mint: %v", err)
	}

	if _, err := NewSessionManager("secret-b", time.Hour).Verify(token); err == nil {
		t.Error("Token signed with another secret should not verify")
	}
}

func TestSessionVerifyRejectsExpired(t *testing.T) {
	m := NewSessionManager("test-secret", -time.Minute)

	token, err := m.Mint("learner-1")
	if err != nil {
		t.Fatalf("Mint: %v", err)
	}
	if _, err := m.Verify(token); err == nil {
		t.Error("Expired token should not verify")
	}
}

func TestSessionCookieFlags(t *testing.T) {
	m := NewSessionManager("test-secret", time.Hour)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	cookie := m.SessionCookie(r, "token")
	if cookie.Name != SessionCookieName || !cookie.HttpOnly {
		t.Errorf("Cookie = %+v", cookie)
	}
	if cookie.Secure {
		t.Error("Plain HTTP request should not set Secure")
	}

	r.Header.Set("X-Forwarded-Proto", "https")
	if !m.SessionCookie(r, "token").Secure {
		t.Error("Proxied HTTPS request should set Secure")
	}
}

func TestParentGate(t *testing.T) {
	gate, err := NewParentGate("1234")
	if err != nil {
		t.Fatalf("NewParentGate: %v", err)
	}

	if !gate.Enabled() {
		t.Error("Gate with a PIN should be enabled")
	}
	if err := gate.Check("1234"); err != nil {
		t.Errorf("Correct PIN rejected: %v", err)
	}
	if err := gate.Check("0000"); !errors.Is(err, ErrWrongPIN) {
		t.Errorf("Wrong PIN err = %v", err)
	}
}

func TestParentGateDisabled(t *testing.T) {
	gate, err := NewParentGate("")
	if err != nil {
		t.Fatalf("NewParentGate: %v", err)
	}

	if gate.Enabled() {
		t.Error("Gate without a PIN should be disabled")
	}
	if err := gate.Check("anything"); err != nil {
		t.Errorf("Disabled gate should pass every check: %v", err)
	}
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(1, 3, time.Hour)

	for i := 0; i < 3; i++ {
		if !rl.Allow("1.2.3.4") {
			t.Fatalf("Request %d within capacity was rejected", i+1)
		}
	}
	if rl.Allow("1.2.3.4") {
		t.Error("Request over capacity was allowed")
	}
	// Other clients have their own buckets.
	if !rl.Allow("5.6.7.8") {
		t.Error("Fresh client was rejected")
	}
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		want       string
	}{
		{"direct", "10.0.0.1:5000", nil, "10.0.0.1"},
		{"x-forwarded-for", "10.0.0.1:5000", map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1"}, "203.0.113.7"},
		{"x-real-ip", "10.0.0.1:5000", map[string]string{"X-Real-IP": "203.0.113.9"}, "203.0.113.9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			if got := GetClientIP(r); got != tt.want {
				t.Errorf("GetClientIP = %q, want %q", got, tt.want)
			}
		})
	}
}
