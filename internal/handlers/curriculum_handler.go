package handlers

import (
	"net/http"
	"strconv"

	"learnread/internal/curriculum"
	"learnread/internal/service"
)

// CurriculumHandler serves the 30-day map and individual day data.
type CurriculumHandler struct {
	progress *service.ProgressService
}

// NewCurriculumHandler creates a new curriculum handler
func NewCurriculumHandler(progress *service.ProgressService) *CurriculumHandler {
	return &CurriculumHandler{progress: progress}
}

// mapDay is one tile on the journey map.
type mapDay struct {
	curriculum.LessonDay
	Completed bool `json:"completed"`
	Playable  bool `json:"playable"`
}

// Map handles GET /api/map: every day annotated with the learner's
// completion and reachability.
func (h *CurriculumHandler) Map(w http.ResponseWriter, r *http.Request) {
	learner := LearnerFromContext(r.Context())
	progress := h.progress.Load(learner.ID)

	days := curriculum.AllDays()
	out := make([]mapDay, 0, len(days))
	for _, day := range days {
		out = append(out, mapDay{
			LessonDay: day,
			Completed: progress.HasCompleted(day.Day),
			Playable:  h.progress.CanPlayDay(learner.ID, day.Day),
		})
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"days":        out,
		"currentDay":  progress.CurrentDay,
		"percent":     h.progress.GetProgressPercent(learner.ID),
		"checkpoints": curriculum.GetCheckpoints(),
	})
}

// Day handles GET /api/days/{day}: the full lesson content for one
// day, including day 0 (the diagnostic).
func (h *CurriculumHandler) Day(w http.ResponseWriter, r *http.Request) {
	day, err := strconv.Atoi(r.PathValue("day"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid day number", "", nil)
		return
	}

	data := curriculum.GetDayData(day)
	if data == nil {
		respondWithError(w, http.StatusNotFound, "No such day", "", nil)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"day":  data,
		"game": curriculum.GameFor(data.Game),
	})
}
