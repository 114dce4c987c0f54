// Package content holds the built-in video and game catalog. The
// catalog ships with the binary so the app works without any external
// content service.
package content

import (
	"errors"

	"amavidya/internal/models"
)

// ErrNotFound is returned when a catalog item does not exist
var ErrNotFound = errors.New("content not found")

// Catalog provides read-only access to videos and games
type Catalog struct {
	videos []models.Video
	games  []models.Game

	videoIndex map[string]int
	gameIndex  map[string]int
}

// NewCatalog builds the catalog from the built-in content set
func NewCatalog() *Catalog {
	c := &Catalog{
		videos:     builtinVideos,
		games:      builtinGames,
		videoIndex: make(map[string]int, len(builtinVideos)),
		gameIndex:  make(map[string]int, len(builtinGames)),
	}
	for i, v := range c.videos {
		c.videoIndex[v.ID] = i
	}
	for i, g := range c.games {
		c.gameIndex[g.ID] = i
	}
	return c
}

// Videos returns all videos in catalog order
func (c *Catalog) Videos() []models.Video {
	out := make([]models.Video, len(c.videos))
	copy(out, c.videos)
	return out
}

// Games returns all games in catalog order
func (c *Catalog) Games() []models.Game {
	out := make([]models.Game, len(c.games))
	copy(out, c.games)
	return out
}

// Video looks up a video by ID
func (c *Catalog) Video(id string) (models.Video, error) {
	i, ok := c.videoIndex[id]
	if !ok {
		return models.Video{}, ErrNotFound
	}
	return c.videos[i], nil
}

// Game looks up a game by ID
func (c *Catalog) Game(id string) (models.Game, error) {
	i, ok := c.gameIndex[id]
	if !ok {
		return models.Game{}, ErrNotFound
	}
	return c.games[i], nil
}
