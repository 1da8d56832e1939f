package handlers

import (
	"net/http"

	"learnread/internal/security"
	"learnread/internal/service"
)

// ReportHandler sends the parent progress report email on request.
type ReportHandler struct {
	reports  *service.ReportService
	progress *service.ProgressService
	gate     *security.ParentGate
}

// NewReportHandler creates a new report handler
func NewReportHandler(reports *service.ReportService, progress *service.ProgressService, gate *security.ParentGate) *ReportHandler {
	return &ReportHandler{
		reports:  reports,
		progress: progress,
		gate:     gate,
	}
}

// Send handles POST /api/report.
func (h *ReportHandler) Send(w http.ResponseWriter, r *http.Request) {
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

	if !h.reports.IsEnabled() {
		respondWithError(w, http.StatusServiceUnavailable, "Email reports are not configured", "", nil)
		return
	}

	learner := LearnerFromContext(r.Context())
	progress := h.progress.Load(learner.ID)
	percent := h.progress.GetProgressPercent(learner.ID)

	if err := h.reports.SendProgressReport(r.Context(), *learner, progress, percent); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to send report", "Progress report", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "sent"})
}
