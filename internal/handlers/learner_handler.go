package handlers

import (
	"net/http"

	"learnread/internal/models"
	"learnread/internal/repository"
	"learnread/internal/security"
	"learnread/internal/service"
	"learnread/internal/validation"

	"github.com/google/uuid"
)

// LearnerHandler manages child profiles and the device's active
// learner session.
type LearnerHandler struct {
	learnerRepo *repository.LearnerRepository
	progress    *service.ProgressService
	sessions    *security.SessionManager
}

// NewLearnerHandler creates a new learner handler
func NewLearnerHandler(learnerRepo *repository.LearnerRepository, progress *service.ProgressService, sessions *security.SessionManager) *LearnerHandler {
	return &LearnerHandler{
		learnerRepo: learnerRepo,
		progress:    progress,
		sessions:    sessions,
	}
}

// Create handles POST /api/learners: creates a profile, seeds the
// progress document with the chosen name and character, and signs the
// device in as the new learner.
func (h *LearnerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name      string `json:"name"`
		Character string `json:"character"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}

	name, err := validation.ValidateChildName(req.Name)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error(), "", nil)
		return
	}
	character, err := validation.ValidateCharacter(req.Character)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error(), "", nil)
		return
	}

	learner, err := h.learnerRepo.CreateLearner(uuid.New().String(), name, character)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to create learner", "Create learner", err)
		return
	}

	h.progress.SetChildInfo(learner.ID, name, character)

	if err := h.signIn(w, r, learner.ID); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to create session", "Sign in new learner", err)
		return
	}

	writeJSON(w, http.StatusCreated, learner)
}

// List handles GET /api/learners.
func (h *LearnerHandler) List(w http.ResponseWriter, r *http.Request) {
	learners, err := h.learnerRepo.ListLearners()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to list learners", "List learners", err)
		return
	}
	if learners == nil {
		learners = []models.Learner{}
	}
	writeJSON(w, http.StatusOK, learners)
}

// Select handles POST /api/learners/{id}/select: switches the device
// to another profile.
func (h *LearnerHandler) Select(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	learner, err := h.learnerRepo.GetLearnerByID(id)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to load learner", "Select learner", err)
		return
	}
	if learner == nil {
		respondWithError(w, http.StatusNotFound, "Learner not found", "", nil)
		return
	}

	if err := h.signIn(w, r, learner.ID); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to create session", "Sign in learner", err)
		return
	}

	writeJSON(w, http.StatusOK, learner)
}

// Current handles GET /api/learners/current: the active learner plus a
// progress snapshot. needsDiagnostic tells the front end whether to
// open the day-0 flow.
func (h *LearnerHandler) Current(w http.ResponseWriter, r *http.Request) {
	learner := LearnerFromContext(r.Context())
	progress := h.progress.Load(learner.ID)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"learner":         learner,
		"progress":        progress,
		"percent":         h.progress.GetProgressPercent(learner.ID),
		"needsDiagnostic": !progress.HasCompleted(0),
	})
}

func (h *LearnerHandler) signIn(w http.ResponseWriter, r *http.Request, learnerID string) error {
	token, err := h.sessions.Mint(learnerID)
	if err != nil {
		return err
	}
	http.SetCookie(w, h.sessions.SessionCookie(r, token))
	return nil
}
