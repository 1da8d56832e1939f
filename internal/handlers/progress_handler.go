package handlers

import (
	"net/http"

	"learnread/internal/security"
	"learnread/internal/service"
)

// ProgressHandler exposes the fine-grained progress mutations the
// reading activities call as the child works.
type ProgressHandler struct {
	progress *service.ProgressService
	gate     *security.ParentGate
}

// NewProgressHandler creates a new progress handler
func NewProgressHandler(progress *service.ProgressService, gate *security.ParentGate) *ProgressHandler {
	return &ProgressHandler{
		progress: progress,
		gate:     gate,
	}
}

// Get handles GET /api/progress.
func (h *ProgressHandler) Get(w http.ResponseWriter, r *http.Request) {
	learner := LearnerFromContext(r.Context())
	writeJSON(w, http.StatusOK, h.progress.Load(learner.ID))
}

// Percent handles GET /api/progress/percent.
func (h *ProgressHandler) Percent(w http.ResponseWriter, r *http.Request) {
	learner := LearnerFromContext(r.Context())
	writeJSON(w, http.StatusOK, map[string]int{
		"percent": h.progress.GetProgressPercent(learner.ID),
	})
}

// MarkLetter handles POST /api/progress/letters: moves a letter into
// the known or unknown set.
func (h *ProgressHandler) MarkLetter(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Letter string `json:"letter"`
		Known  bool   `json:"known"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}
	if req.Letter == "" {
		respondWithError(w, http.StatusBadRequest, "Letter is required", "", nil)
		return
	}

	learner := LearnerFromContext(r.Context())
	if req.Known {
		writeJSON(w, http.StatusOK, h.progress.MarkLetterKnown(learner.ID, req.Letter))
		return
	}
	writeJSON(w, http.StatusOK, h.progress.MarkLetterUnknown(learner.ID, req.Letter))
}

// AddSyllable handles POST /api/progress/syllables: records a syllable
// read and updates the consecutive-correct streak.
func (h *ProgressHandler) AddSyllable(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Syllable string `json:"syllable"`
		Correct  bool   `json:"correct"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}
	if req.Syllable == "" {
		respondWithError(w, http.StatusBadRequest, "Syllable is required", "", nil)
		return
	}

	learner := LearnerFromContext(r.Context())
	if !req.Correct {
		writeJSON(w, http.StatusOK, h.progress.ResetConsecutiveCorrect(learner.ID))
		return
	}

	h.progress.AddSyllableRead(learner.ID, req.Syllable)
	progress := h.progress.IncrementConsecutiveCorrect(learner.ID)
	stage1Passed := h.progress.CheckStage1Complete(learner.ID)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"progress":         progress,
		"stage1JustPassed": stage1Passed,
	})
}

// AddSentence handles POST /api/progress/sentences.
func (h *ProgressHandler) AddSentence(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Sentence string `json:"sentence"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}
	if req.Sentence == "" {
		respondWithError(w, http.StatusBadRequest, "Sentence is required", "", nil)
		return
	}

	learner := LearnerFromContext(r.Context())
	writeJSON(w, http.StatusOK, h.progress.AddSentenceRead(learner.ID, req.Sentence))
}

// CheckStage1 handles POST /api/progress/stage1/check.
func (h *ProgressHandler) CheckStage1(w http.ResponseWriter, r *http.Request) {
	learner := LearnerFromContext(r.Context())
	writeJSON(w, http.StatusOK, map[string]bool{
		"stage1JustPassed": h.progress.CheckStage1Complete(learner.ID),
	})
}

// Reset handles POST /api/progress/reset. Destructive, so it sits
// behind the parent PIN.
func (h *ProgressHandler) Reset(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PIN string `json:"pin"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}
	if err := h.gate.Check(req.PIN); err != nil {
		respondWithError(w, http.StatusForbidden, "Wrong PIN", "", nil)
		return
	}

	learner := LearnerFromContext(r.Context())
	writeJSON(w, http.StatusOK, h.progress.ResetProgress(learner.ID))
}
