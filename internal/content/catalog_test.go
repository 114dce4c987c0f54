package content

import (
	"errors"
	"testing"

	"amavidya/internal/models"
)

func TestCatalogVideos(t *testing.T) {
	c := NewCatalog()

	videos := c.Videos()
	if len(videos) != 4 {
		t.Fatalf("expected 4 videos, got %d", len(videos))
	}

	// One video per subject
	seen := make(map[models.Subject]bool)
	for _, v := range videos {
		seen[v.Subject] = true
	}
	for _, s := range models.Subjects {
		if !seen[s] {
			t.Errorf("no video for subject %s", s)
		}
	}
}

func TestCatalogVideoLookup(t *testing.T) {
	c := NewCatalog()

	v, err := c.Video("photosynthesis")
	if err != nil {
		t.Fatalf("Video(photosynthesis) error: %v", err)
	}
	if v.Subject != models.SubjectScience {
		t.Errorf("subject = %s, want science", v.Subject)
	}

	_, err = c.Video("nope")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCatalogGameLookup(t *testing.T) {
	c := NewCatalog()

	games := c.Games()
	if len(games) != 4 {
		t.Fatalf("expected 4 games, got %d", len(games))
	}

	g, err := c.Game("math-quiz")
	if err != nil {
		t.Fatalf("Game(math-quiz) error: %v", err)
	}
	if len(g.Questions) != 5 {
		t.Errorf("math-quiz has %d questions, want 5", len(g.Questions))
	}

	_, err = c.Game("nope")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCatalogQuestionsWellFormed(t *testing.T) {
	c := NewCatalog()

	for _, g := range c.Games() {
		if len(g.Questions) == 0 {
			t.Errorf("game %s has no questions", g.ID)
		}
		for i, q := range g.Questions {
			if len(q.Options) < 2 {
				t.Errorf("game %s question %d has %d options", g.ID, i, len(q.Options))
			}
			if q.Correct < 0 || q.Correct >= len(q.Options) {
				t.Errorf("game %s question %d correct index %d out of range", g.ID, i, q.Correct)
			}
		}
	}
}

func TestCatalogReturnsCopies(t *testing.T) {
	c := NewCatalog()

	videos := c.Videos()
	videos[0].Title = "mutated"

	again, _ := c.Video(videos[0].ID)
	if again.Title == "mutated" {
		t.Error("Videos() should return a copy, not the backing slice")
	}
}
