// Package scoring applies learning events to progress records and
// computes the values derived from them.
package scoring

import (
	"errors"
	"fmt"

	"amavidya/internal/models"
)

// XP and subject progress awarded per completed activity. Game XP is a
// flat award regardless of score.
const (
	VideoXP          = 10
	VideoSubjectGain = 5
	GameXP           = 20
	GameSubjectGain  = 10

	MaxSubjectProgress = 100
)

var (
	ErrInvalidSubject  = errors.New("event subject is not a known subject")
	ErrMalformedRecord = errors.New("progress record is missing subject entries")
)

// ApplyEvent returns a new record with the event's rewards applied.
// The input record is never mutated. CurrentLevel is recomputed from
// the updated total XP.
func ApplyEvent(rec *models.ProgressRecord, event models.LearningEvent) (*models.ProgressRecord, error) {
	subject := event.EventSubject()
	if _, err := models.ParseSubject(string(subject)); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSubject, subject)
	}

	stat, ok := rec.Subjects[subject]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMalformedRecord, subject)
	}

	next := rec.Clone()

	switch e := event.(type) {
	case models.VideoCompleted:
		next.VideosWatched++
		next.TotalXP += VideoXP
		stat.XP += VideoXP
		stat.Progress = capProgress(stat.Progress + VideoSubjectGain)
	case models.GameCompleted:
		next.GamesPlayed++
		next.TotalXP += GameXP
		next.TimeSpent += e.TimeSpentSeconds
		stat.XP += GameXP
		stat.Progress = capProgress(stat.Progress + GameSubjectGain)
	default:
		return nil, fmt.Errorf("unknown learning event type %T", event)
	}

	next.Subjects[subject] = stat
	next.CurrentLevel = Level(next.TotalXP)

	return next, nil
}

func capProgress(p int) int {
	if p > MaxSubjectProgress {
		return MaxSubjectProgress
	}
	return p
}
