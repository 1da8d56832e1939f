package security

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionCookieName identifies the active learner on a device.
const SessionCookieName = "learner_session"

// sessionClaims carries the learner ID inside a signed token.
type sessionClaims struct {
	LearnerID string `json:"lid"`
	jwt.RegisteredClaims
}

// SessionManager mints and verifies signed learner-session tokens.
// There are no accounts or passwords; the token only pins which child
// profile the device is acting as.
type SessionManager struct {
	secret   []byte
	duration time.Duration
}

// NewSessionManager creates a new session manager
func NewSessionManager(secret string, duration time.Duration) *SessionManager {
	return &SessionManager{
		secret:   []byte(secret),
		duration: duration,
	}
}

// Mint creates a signed session token for a learner.
func (m *SessionManager) Mint(learnerID string) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		LearnerID: learnerID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.duration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// Verify checks a token and returns the learner ID it carries.
func (m *SessionManager) Verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &sessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("invalid session token: %w", err)
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || claims.LearnerID == "" {
		return "", fmt.Errorf("invalid session claims")
	}
	return claims.LearnerID, nil
}

// SessionCookie creates the session cookie for a minted token, with
// the Secure flag following the request scheme.
func (m *SessionManager) SessionCookie(r *http.Request, token string) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(m.duration),
		HttpOnly: true,
		Secure:   IsSecureRequest(r),
		SameSite: http.SameSiteLaxMode,
	}
}

// DeleteCookie creates the cookie that clears the session.
func (m *SessionManager) DeleteCookie(r *http.Request) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   IsSecureRequest(r),
	}
}

// IsSecureRequest determines if the request came over HTTPS, directly
// or behind a reverse proxy.
func IsSecureRequest(r *http.Request) bool {
	if r.TLS != nil {
		return true
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto == "https" {
		return true
	}
	return r.URL.Scheme == "https"
}
