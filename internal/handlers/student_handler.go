package handlers

import (
	"errors"
	"net/http"

	"amavidya/internal/content"
	"amavidya/internal/scoring"
	"amavidya/internal/service"
)

// StudentHandler serves the student dashboard endpoints
type StudentHandler struct {
	progressService *service.ProgressService
}

// NewStudentHandler creates a new student handler
func NewStudentHandler(progressService *service.ProgressService) *StudentHandler {
	return &StudentHandler{progressService: progressService}
}

// GetProgress handles GET /api/student/progress
func (h *StudentHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	rec, err := h.progressService.GetProgress(user.ID)
	if err != nil {
		respondWithError(w, http.StatusServiceUnavailable, "Progress is temporarily unavailable", "Progress read failed", err)
		return
	}

	writeJSON(w, http.StatusOK, progressResponse{
		Progress:        rec,
		OverallProgress: scoring.OverallProgress(rec),
		Achievements:    scoring.Achievements(rec),
	})
}

// GetAchievements handles GET /api/student/achievements
func (h *StudentHandler) GetAchievements(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	rec, err := h.progressService.GetProgress(user.ID)
	if err != nil {
		respondWithError(w, http.StatusServiceUnavailable, "Progress is temporarily unavailable", "Progress read failed", err)
		return
	}
	writeJSON(w, http.StatusOK, scoring.Achievements(rec))
}

// CompleteVideo handles POST /api/student/videos/{id}/complete
func (h *StudentHandler) CompleteVideo(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	result, err := h.progressService.CompleteVideo(user.ID, r.PathValue("id"))
	if errors.Is(err, content.ErrNotFound) {
		respondWithError(w, http.StatusNotFound, ErrNotFoundMsg, "", nil)
		return
	}
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Video completion failed", err)
		return
	}

	writeJSON(w, http.StatusOK, newActivityResponse(result))
}
