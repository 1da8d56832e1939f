package handlers

import (
	"errors"
	"net/http"

	"learnread/internal/service"
)

// DiagnosticHandler drives the first-run letter check over HTTP.
type DiagnosticHandler struct {
	diagnostic *service.DiagnosticService
	progress   *service.ProgressService
}

// NewDiagnosticHandler creates a new diagnostic handler
func NewDiagnosticHandler(diagnostic *service.DiagnosticService, progress *service.ProgressService) *DiagnosticHandler {
	return &DiagnosticHandler{
		diagnostic: diagnostic,
		progress:   progress,
	}
}

// Start handles POST /api/diagnostic/start.
func (h *DiagnosticHandler) Start(w http.ResponseWriter, r *http.Request) {
	learner := LearnerFromContext(r.Context())
	session := h.diagnostic.Start(learner.ID)
	writeJSON(w, http.StatusCreated, session)
}

// Begin handles POST /api/diagnostic/{id}/begin.
func (h *DiagnosticHandler) Begin(w http.ResponseWriter, r *http.Request) {
	session, err := h.diagnostic.Begin(r.Context(), r.PathValue("id"))
	if err != nil {
		respondDiagnosticError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

// Answer handles POST /api/diagnostic/{id}/answer.
func (h *DiagnosticHandler) Answer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Letter string `json:"letter"`
		Known  bool   `json:"known"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}

	session, err := h.diagnostic.Answer(r.Context(), r.PathValue("id"), req.Letter, req.Known)
	if err != nil {
		respondDiagnosticError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

// Complete handles POST /api/diagnostic/{id}/complete: folds the
// result into the learner's progress and marks day 0 done.
func (h *DiagnosticHandler) Complete(w http.ResponseWriter, r *http.Request) {
	learner := LearnerFromContext(r.Context())

	result, err := h.diagnostic.Complete(r.Context(), r.PathValue("id"))
	if err != nil {
		respondDiagnosticError(w, err)
		return
	}

	for _, letter := range result.KnownLetters {
		h.progress.MarkLetterKnown(learner.ID, letter)
	}
	for _, letter := range result.UnknownLetters {
		h.progress.MarkLetterUnknown(learner.ID, letter)
	}
	progress := h.progress.CompleteDay(learner.ID, 0, result.DayResult())

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"result":   result,
		"progress": progress,
	})
}

func respondDiagnosticError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNoSuchSession):
		respondWithError(w, http.StatusNotFound, "No such diagnostic session", "", nil)
	case errors.Is(err, service.ErrWrongPhase):
		respondWithError(w, http.StatusConflict, "Not allowed in current phase", "", nil)
	case errors.Is(err, service.ErrUnknownLetter):
		respondWithError(w, http.StatusBadRequest, "Letter is not part of the diagnostic", "", nil)
	case errors.Is(err, service.ErrDiagnosticNotDone):
		respondWithError(w, http.StatusConflict, "Diagnostic still in progress", "", nil)
	default:
		respondWithError(w, http.StatusInternalServerError, "Diagnostic failed", "Diagnostic", err)
	}
}
