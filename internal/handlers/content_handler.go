package handlers

import (
	"errors"
	"net/http"

	"amavidya/internal/content"
)

// ContentHandler serves the video and game catalog
type ContentHandler struct {
	catalog *content.Catalog
}

// NewContentHandler creates a new content handler
func NewContentHandler(catalog *content.Catalog) *ContentHandler {
	return &ContentHandler{catalog: catalog}
}

// ListVideos handles GET /api/videos
func (h *ContentHandler) ListVideos(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.Videos())
}

// GetVideo handles GET /api/videos/{id}
func (h *ContentHandler) GetVideo(w http.ResponseWriter, r *http.Request) {
	video, err := h.catalog.Video(r.PathValue("id"))
	if errors.Is(err, content.ErrNotFound) {
		respondWithError(w, http.StatusNotFound, ErrNotFoundMsg, "", nil)
		return
	}
	writeJSON(w, http.StatusOK, video)
}

// ListGames handles GET /api/games. Questions and answers are not
// included; games are played through quiz sessions.
func (h *ContentHandler) ListGames(w http.ResponseWriter, r *http.Request) {
	games := h.catalog.Games()
	summaries := make([]gameSummary, len(games))
	for i, g := range games {
		summaries[i] = toGameSummary(g)
	}
	writeJSON(w, http.StatusOK, summaries)
}

// GetGame handles GET /api/games/{id}
func (h *ContentHandler) GetGame(w http.ResponseWriter, r *http.Request) {
	game, err := h.catalog.Game(r.PathValue("id"))
	if errors.Is(err, content.ErrNotFound) {
		respondWithError(w, http.StatusNotFound, ErrNotFoundMsg, "", nil)
		return
	}
	writeJSON(w, http.StatusOK, toGameSummary(game))
}
