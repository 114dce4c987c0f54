package handlers

import (
	"errors"
	"net/http"

	"amavidya/internal/service"
)

// TeacherHandler serves the teacher dashboard endpoints
type TeacherHandler struct {
	teacherService *service.TeacherService
}

// NewTeacherHandler creates a new teacher handler
func NewTeacherHandler(teacherService *service.TeacherService) *TeacherHandler {
	return &TeacherHandler{teacherService: teacherService}
}

// Overview handles GET /api/teacher/overview
func (h *TeacherHandler) Overview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.teacherService.Overview()
	if err != nil {
		h.respondRosterError(w, err, "Overview failed")
		return
	}
	writeJSON(w, http.StatusOK, overview)
}

// Students handles GET /api/teacher/students?search=
func (h *TeacherHandler) Students(w http.ResponseWriter, r *http.Request) {
	students, err := h.teacherService.SearchStudents(r.URL.Query().Get("search"))
	if err != nil {
		h.respondRosterError(w, err, "Roster read failed")
		return
	}
	writeJSON(w, http.StatusOK, students)
}

// StudentDetail handles GET /api/teacher/students/{id}
func (h *TeacherHandler) StudentDetail(w http.ResponseWriter, r *http.Request) {
	detail, err := h.teacherService.StudentDetail(r.PathValue("id"))
	if errors.Is(err, service.ErrUserNotFound) {
		respondWithError(w, http.StatusNotFound, ErrNotFoundMsg, "", nil)
		return
	}
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Student detail failed", err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

// SendReport handles POST /api/teacher/report
func (h *TeacherHandler) SendReport(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	if err := h.teacherService.SendProgressReport(r.Context(), user.ID); err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Progress report failed", err)
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "sent"})
}

func (h *TeacherHandler) respondRosterError(w http.ResponseWriter, err error, logMsg string) {
	var pe *service.PersistenceError
	if errors.As(err, &pe) {
		respondWithError(w, http.StatusServiceUnavailable, "Roster is temporarily unavailable", logMsg, err)
		return
	}
	respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, logMsg, err)
}
