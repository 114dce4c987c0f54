package scoring

import (
	"fmt"

	"amavidya/internal/models"
)

// Achievement is a milestone shown on the student dashboard
type Achievement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Earned      bool   `json:"earned"`
	Progress    string `json:"progress,omitempty"`
}

// RisingStarXP is the total XP threshold for the Rising Star achievement
const RisingStarXP = 100

// Achievements evaluates every achievement against a progress record
func Achievements(rec *models.ProgressRecord) []Achievement {
	risingStar := Achievement{
		ID:          "rising-star",
		Title:       "Rising Star",
		Description: fmt.Sprintf("Earn %d XP", RisingStarXP),
		Icon:        "⭐",
		Earned:      rec.TotalXP >= RisingStarXP,
	}
	if !risingStar.Earned {
		risingStar.Progress = fmt.Sprintf("%d/%d XP", rec.TotalXP, RisingStarXP)
	}

	return []Achievement{
		{
			ID:          "video-watcher",
			Title:       "Video Watcher",
			Description: "Watch your first video",
			Icon:        "🎬",
			Earned:      rec.VideosWatched > 0,
		},
		{
			ID:          "game-starter",
			Title:       "Game Starter",
			Description: "Play your first game",
			Icon:        "🎮",
			Earned:      rec.GamesPlayed > 0,
		},
		risingStar,
	}
}
