package scoring

import (
	"testing"

	"amavidya/internal/models"
)

func TestAchievementsFreshRecord(t *testing.T) {
	rec := models.NewProgressRecord()
	achievements := Achievements(rec)

	if len(achievements) != 3 {
		t.Fatalf("expected 3 achievements, got %d", len(achievements))
	}
	for _, a := range achievements {
		if a.Earned {
			t.Errorf("achievement %s should not be earned on a fresh record", a.ID)
		}
	}

	// Rising Star shows XP progress while unearned
	star := achievements[2]
	if star.ID != "rising-star" {
		t.Fatalf("expected rising-star last, got %s", star.ID)
	}
	if star.Progress != "0/100 XP" {
		t.Errorf("rising-star progress = %q, want %q", star.Progress, "0/100 XP")
	}
}

func TestAchievementsEarned(t *testing.T) {
	rec := models.NewProgressRecord()
	rec.VideosWatched = 2
	rec.GamesPlayed = 1
	rec.TotalXP = 150

	byID := make(map[string]Achievement)
	for _, a := range Achievements(rec) {
		byID[a.ID] = a
	}

	if !byID["video-watcher"].Earned {
		t.Error("video-watcher should be earned")
	}
	if !byID["game-starter"].Earned {
		t.Error("game-starter should be earned")
	}
	star := byID["rising-star"]
	if !star.Earned {
		t.Error("rising-star should be earned at 150 XP")
	}
	if star.Progress != "" {
		t.Errorf("earned rising-star should not show progress, got %q", star.Progress)
	}
}

func TestRisingStarProgressString(t *testing.T) {
	rec := models.NewProgressRecord()
	rec.TotalXP = 60

	for _, a := range Achievements(rec) {
		if a.ID == "rising-star" {
			if a.Progress != "60/100 XP" {
				t.Errorf("progress = %q, want %q", a.Progress, "60/100 XP")
			}
			return
		}
	}
	t.Fatal("rising-star not found")
}
