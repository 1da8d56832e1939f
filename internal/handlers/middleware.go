package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"learnread/internal/models"
	"learnread/internal/repository"
	"learnread/internal/security"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const LearnerContextKey ContextKey = "learner"

// Middleware holds dependencies for middleware functions
type Middleware struct {
	sessions    *security.SessionManager
	learnerRepo *repository.LearnerRepository
	limiter     *security.RateLimiter
}

// NewMiddleware creates a new middleware instance
func NewMiddleware(sessions *security.SessionManager, learnerRepo *repository.LearnerRepository, limiter *security.RateLimiter) *Middleware {
	return &Middleware{
		sessions:    sessions,
		learnerRepo: learnerRepo,
		limiter:     limiter,
	}
}

// RequireLearner requires a valid learner session cookie and puts the
// learner on the request context.
func (m *Middleware) RequireLearner(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(security.SessionCookieName)
		if err != nil {
			respondWithError(w, http.StatusUnauthorized, "No active learner", "", nil)
			return
		}

		learnerID, err := m.sessions.Verify(cookie.Value)
		if err != nil {
			http.SetCookie(w, m.sessions.DeleteCookie(r))
			respondWithError(w, http.StatusUnauthorized, "Session expired", "Invalid learner session", err)
			return
		}

		learner, err := m.learnerRepo.GetLearnerByID(learnerID)
		if err != nil || learner == nil {
			http.SetCookie(w, m.sessions.DeleteCookie(r))
			respondWithError(w, http.StatusUnauthorized, "Unknown learner", "Session for missing learner", err)
			return
		}

		ctx := context.WithValue(r.Context(), LearnerContextKey, learner)
		next(w, r.WithContext(ctx))
	}
}

// LearnerFromContext retrieves the authenticated learner put there by
// RequireLearner.
func LearnerFromContext(ctx context.Context) *models.Learner {
	learner, _ := ctx.Value(LearnerContextKey).(*models.Learner)
	return learner
}

// RateLimit rejects clients that exceed the request budget.
func (m *Middleware) RateLimit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !m.limiter.Allow(security.GetClientIP(r)) {
			respondWithError(w, http.StatusTooManyRequests, "Too many requests", "", nil)
			return
		}
		next(w, r)
	}
}

// Logging logs each request with method, path, status and duration.
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Printf("%s %s %d %s", r.Method, r.URL.Path, rec.status, time.Since(start))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
