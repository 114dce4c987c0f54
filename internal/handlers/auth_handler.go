package handlers

import (
	"errors"
	"net/http"

	"amavidya/internal/models"
	"amavidya/internal/service"
	"amavidya/internal/validation"
)

// AuthHandler serves registration, login, and account endpoints
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "", err)
		return
	}
	if err := validation.Struct(req); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error(), "", nil)
		return
	}

	role, err := models.ParseRole(req.Role)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Role must be student or teacher", "", nil)
		return
	}

	user, token, err := h.authService.Register(service.RegisterInput{
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     role,
		Grade:    req.Grade,
		Subject:  req.Subject,
	})
	if errors.Is(err, service.ErrUsernameTaken) {
		respondWithError(w, http.StatusConflict, "Username is already taken", "", nil)
		return
	}
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Registration failed", err)
		return
	}

	writeJSON(w, http.StatusCreated, authResponse{Token: token, User: user})
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "", err)
		return
	}
	if err := validation.Struct(req); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error(), "", nil)
		return
	}

	user, token, err := h.authService.Login(req.Username, req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		respondWithError(w, http.StatusUnauthorized, "Invalid username or password", "", nil)
		return
	}
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Login failed", err)
		return
	}

	writeJSON(w, http.StatusOK, authResponse{Token: token, User: user})
}

// Me handles GET /api/auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	writeJSON(w, http.StatusOK, user)
}

// UpdateAvatar handles POST /api/auth/avatar
func (h *AuthHandler) UpdateAvatar(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	var req avatarRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "", err)
		return
	}
	if err := validation.Struct(req); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error(), "", nil)
		return
	}

	if err := h.authService.UpdateAvatar(user.ID, req.Avatar); err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Avatar update failed", err)
		return
	}

	user.Avatar = req.Avatar
	writeJSON(w, http.StatusOK, user)
}
