package handlers

import (
	"errors"
	"net/http"

	"amavidya/internal/content"
	"amavidya/internal/quiz"
	"amavidya/internal/service"
	"amavidya/internal/validation"
)

// QuizHandler serves the quiz session endpoints
type QuizHandler struct {
	quizService *service.QuizService
}

// NewQuizHandler creates a new quiz handler
func NewQuizHandler(quizService *service.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

// Start handles POST /api/student/games/{id}/start
func (h *QuizHandler) Start(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	view, err := h.quizService.Start(user.ID, r.PathValue("id"))
	if errors.Is(err, content.ErrNotFound) {
		respondWithError(w, http.StatusNotFound, ErrNotFoundMsg, "", nil)
		return
	}
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Quiz start failed", err)
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

// Current handles GET /api/student/quiz
func (h *QuizHandler) Current(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	view, err := h.quizService.Current(user.ID)
	if err != nil {
		h.respondQuizError(w, err, "Quiz lookup failed")
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// Answer handles POST /api/student/quiz/answer
func (h *QuizHandler) Answer(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	var req answerRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "", err)
		return
	}
	if err := validation.Struct(req); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error(), "", nil)
		return
	}

	view, err := h.quizService.Answer(user.ID, *req.Option)
	if err != nil {
		h.respondQuizError(w, err, "Quiz answer failed")
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// Advance handles POST /api/student/quiz/advance
func (h *QuizHandler) Advance(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	result, err := h.quizService.Advance(user.ID)
	if err != nil {
		h.respondQuizError(w, err, "Quiz advance failed")
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Restart handles POST /api/student/quiz/restart
func (h *QuizHandler) Restart(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	view, err := h.quizService.Restart(user.ID)
	if err != nil {
		h.respondQuizError(w, err, "Quiz restart failed")
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// Exit handles POST /api/student/quiz/exit
func (h *QuizHandler) Exit(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	if err := h.quizService.Exit(user.ID); err != nil {
		h.respondQuizError(w, err, "Quiz exit failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// respondQuizError maps quiz domain errors to HTTP statuses
func (h *QuizHandler) respondQuizError(w http.ResponseWriter, err error, logMsg string) {
	switch {
	case errors.Is(err, service.ErrNoActiveSession):
		respondWithError(w, http.StatusNotFound, "No active quiz session", "", nil)
	case errors.Is(err, quiz.ErrAnswerLocked),
		errors.Is(err, quiz.ErrNoAnswer),
		errors.Is(err, quiz.ErrSessionOver),
		errors.Is(err, quiz.ErrOptionOutOfRange):
		respondWithError(w, http.StatusConflict, err.Error(), "", nil)
	default:
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, logMsg, err)
	}
}
