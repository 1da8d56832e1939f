package handlers

import (
	"errors"
	"log"
	"net/http"

	"learnread/internal/curriculum"
	"learnread/internal/service"
	"learnread/internal/speech"
)

// LessonHandler drives lesson sessions over HTTP.
type LessonHandler struct {
	lessons  *service.LessonService
	progress *service.ProgressService
	speaker  speech.Speaker
}

// NewLessonHandler creates a new lesson handler
func NewLessonHandler(lessons *service.LessonService, progress *service.ProgressService, speaker speech.Speaker) *LessonHandler {
	return &LessonHandler{
		lessons:  lessons,
		progress: progress,
		speaker:  speaker,
	}
}

// Start handles POST /api/lessons/start.
func (h *LessonHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Day int `json:"day"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}

	learner := LearnerFromContext(r.Context())
	session, err := h.lessons.StartLesson(r.Context(), learner.ID, req.Day)
	if err != nil {
		respondLessonError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, session)
}

// Get handles GET /api/lessons/{id}.
func (h *LessonHandler) Get(w http.ResponseWriter, r *http.Request) {
	session, err := h.lessons.GetSession(r.PathValue("id"))
	if err != nil {
		respondLessonError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

// Begin handles POST /api/lessons/{id}/begin.
func (h *LessonHandler) Begin(w http.ResponseWriter, r *http.Request) {
	session, err := h.lessons.Begin(r.Context(), r.PathValue("id"))
	if err != nil {
		respondLessonError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

// GameComplete handles POST /api/lessons/{id}/game-complete.
func (h *LessonHandler) GameComplete(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CorrectAnswers int `json:"correctAnswers"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}

	session, err := h.lessons.GameComplete(r.Context(), r.PathValue("id"), req.CorrectAnswers)
	if err != nil {
		respondLessonError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

// ReadWord handles POST /api/lessons/{id}/read-word: reads a word
// aloud syllable by syllable and records it in the day's stage.
func (h *LessonHandler) ReadWord(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Word      string   `json:"word"`
		Syllables []string `json:"syllables"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}
	if req.Word == "" {
		respondWithError(w, http.StatusBadRequest, "Word is required", "", nil)
		return
	}

	session, err := h.lessons.GetSession(r.PathValue("id"))
	if err != nil {
		respondLessonError(w, err)
		return
	}

	// Speech is an enhancement: a mute device still gets the word
	// recorded.
	if err := speech.ReadBySyllables(r.Context(), h.speaker, req.Syllables, req.Word); err != nil {
		log.Printf("Speech failed for word %q: %v", req.Word, err)
	}

	learner := LearnerFromContext(r.Context())
	progress, err := h.progress.AddWordRead(learner.ID, req.Word, session.Day.Stage)
	if err != nil {
		// Stage 3 days track sentences, not words; the read-aloud
		// still happened.
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"stress": curriculum.StressMarkFor(req.Word),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"stress":   curriculum.StressMarkFor(req.Word),
		"progress": progress,
	})
}

// ReadingComplete handles POST /api/lessons/{id}/reading-complete.
func (h *LessonHandler) ReadingComplete(w http.ResponseWriter, r *http.Request) {
	session, err := h.lessons.ReadingComplete(r.Context(), r.PathValue("id"))
	if err != nil {
		respondLessonError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

// CreativeComplete handles POST /api/lessons/{id}/creative-complete.
func (h *LessonHandler) CreativeComplete(w http.ResponseWriter, r *http.Request) {
	result, err := h.lessons.CreativeComplete(r.Context(), r.PathValue("id"))
	if err != nil {
		respondLessonError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// SkipCreative handles POST /api/lessons/{id}/skip-creative.
func (h *LessonHandler) SkipCreative(w http.ResponseWriter, r *http.Request) {
	result, err := h.lessons.SkipCreative(r.Context(), r.PathValue("id"))
	if err != nil {
		respondLessonError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func respondLessonError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNoSuchDay):
		respondWithError(w, http.StatusNotFound, "No such day", "", nil)
	case errors.Is(err, service.ErrDayLocked):
		respondWithError(w, http.StatusConflict, "Day is locked", "", nil)
	case errors.Is(err, service.ErrNoSuchSession):
		respondWithError(w, http.StatusNotFound, "No such lesson session", "", nil)
	case errors.Is(err, service.ErrWrongPhase):
		respondWithError(w, http.StatusConflict, "Not allowed in current phase", "", nil)
	default:
		respondWithError(w, http.StatusInternalServerError, "Lesson failed", "Lesson", err)
	}
}
