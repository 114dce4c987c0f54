package scoring

import (
	"errors"
	"testing"

	"amavidya/internal/models"
)

func TestApplyVideoCompleted(t *testing.T) {
	rec := models.NewProgressRecord()

	next, err := ApplyEvent(rec, models.VideoCompleted{VideoID: "photosynthesis", Subject: models.SubjectScience})
	if err != nil {
		t.Fatalf("ApplyEvent error: %v", err)
	}

	if next.VideosWatched != 1 {
		t.Errorf("VideosWatched = %d, want 1", next.VideosWatched)
	}
	if next.TotalXP != 10 {
		t.Errorf("TotalXP = %d, want 10", next.TotalXP)
	}
	sci := next.Subjects[models.SubjectScience]
	if sci.XP != 10 || sci.Progress != 5 {
		t.Errorf("science stat = %+v, want {Progress:5 XP:10}", sci)
	}

	// Other subjects untouched
	if next.Subjects[models.SubjectMathematics] != (models.SubjectStat{}) {
		t.Errorf("mathematics stat changed: %+v", next.Subjects[models.SubjectMathematics])
	}

	// Input record not mutated
	if rec.TotalXP != 0 || rec.VideosWatched != 0 {
		t.Errorf("input record mutated: %+v", rec)
	}
}

func TestApplyGameCompleted(t *testing.T) {
	rec := models.NewProgressRecord()

	next, err := ApplyEvent(rec, models.GameCompleted{
		GameID:           "math-quiz",
		Subject:          models.SubjectMathematics,
		Score:            3,
		TotalQuestions:   5,
		TimeSpentSeconds: 90,
	})
	if err != nil {
		t.Fatalf("ApplyEvent error: %v", err)
	}

	if next.GamesPlayed != 1 {
		t.Errorf("GamesPlayed = %d, want 1", next.GamesPlayed)
	}
	if next.TotalXP != 20 {
		t.Errorf("TotalXP = %d, want 20", next.TotalXP)
	}
	if next.TimeSpent != 90 {
		t.Errorf("TimeSpent = %d, want 90", next.TimeSpent)
	}
	math := next.Subjects[models.SubjectMathematics]
	if math.XP != 20 || math.Progress != 10 {
		t.Errorf("mathematics stat = %+v, want {Progress:10 XP:20}", math)
	}
}

func TestGameXPIsFlatRegardlessOfScore(t *testing.T) {
	for _, score := range []int{0, 2, 5} {
		rec := models.NewProgressRecord()
		next, err := ApplyEvent(rec, models.GameCompleted{
			GameID:         "math-quiz",
			Subject:        models.SubjectMathematics,
			Score:          score,
			TotalQuestions: 5,
		})
		if err != nil {
			t.Fatalf("ApplyEvent error: %v", err)
		}
		if next.TotalXP != 20 {
			t.Errorf("score %d: TotalXP = %d, want flat 20", score, next.TotalXP)
		}
	}
}

func TestSubjectProgressCapsAt100(t *testing.T) {
	rec := models.NewProgressRecord()
	rec.Subjects[models.SubjectScience] = models.SubjectStat{Progress: 98, XP: 500}

	next, err := ApplyEvent(rec, models.VideoCompleted{VideoID: "photosynthesis", Subject: models.SubjectScience})
	if err != nil {
		t.Fatalf("ApplyEvent error: %v", err)
	}
	if got := next.Subjects[models.SubjectScience].Progress; got != 100 {
		t.Errorf("progress = %d, want capped at 100", got)
	}

	// XP keeps accruing past the cap
	if got := next.Subjects[models.SubjectScience].XP; got != 510 {
		t.Errorf("XP = %d, want 510", got)
	}
}

func TestLevelRecomputedOnApply(t *testing.T) {
	rec := models.NewProgressRecord()
	rec.TotalXP = 90
	rec.CurrentLevel = 1

	next, err := ApplyEvent(rec, models.GameCompleted{GameID: "science-lab", Subject: models.SubjectScience, Score: 5, TotalQuestions: 5})
	if err != nil {
		t.Fatalf("ApplyEvent error: %v", err)
	}
	if next.TotalXP != 110 {
		t.Errorf("TotalXP = %d, want 110", next.TotalXP)
	}
	if next.CurrentLevel != 2 {
		t.Errorf("CurrentLevel = %d, want 2", next.CurrentLevel)
	}
}

func TestStreakUnchangedByEvents(t *testing.T) {
	rec := models.NewProgressRecord()
	rec.CurrentStreak = 7

	next, err := ApplyEvent(rec, models.VideoCompleted{VideoID: "geometry", Subject: models.SubjectMathematics})
	if err != nil {
		t.Fatalf("ApplyEvent error: %v", err)
	}
	if next.CurrentStreak != 7 {
		t.Errorf("CurrentStreak = %d, want 7", next.CurrentStreak)
	}
}

func TestApplyInvalidSubject(t *testing.T) {
	rec := models.NewProgressRecord()

	_, err := ApplyEvent(rec, models.VideoCompleted{VideoID: "x", Subject: "history"})
	if !errors.Is(err, ErrInvalidSubject) {
		t.Errorf("expected ErrInvalidSubject, got %v", err)
	}
}

func TestApplyMalformedRecord(t *testing.T) {
	rec := models.NewProgressRecord()
	delete(rec.Subjects, models.SubjectScience)

	_, err := ApplyEvent(rec, models.VideoCompleted{VideoID: "photosynthesis", Subject: models.SubjectScience})
	if !errors.Is(err, ErrMalformedRecord) {
		t.Errorf("expected ErrMalformedRecord, got %v", err)
	}
}

func TestRepeatedCompletionsKeepAwarding(t *testing.T) {
	rec := models.NewProgressRecord()

	var err error
	cur := rec
	for i := 0; i < 3; i++ {
		cur, err = ApplyEvent(cur, models.GameCompleted{GameID: "math-quiz", Subject: models.SubjectMathematics, Score: 5, TotalQuestions: 5})
		if err != nil {
			t.Fatalf("ApplyEvent #%d error: %v", i, err)
		}
	}

	if cur.GamesPlayed != 3 {
		t.Errorf("GamesPlayed = %d, want 3", cur.GamesPlayed)
	}
	if cur.TotalXP != 60 {
		t.Errorf("TotalXP = %d, want 60", cur.TotalXP)
	}
	if got := cur.Subjects[models.SubjectMathematics].Progress; got != 30 {
		t.Errorf("mathematics progress = %d, want 30", got)
	}
}
