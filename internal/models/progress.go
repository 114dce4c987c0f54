package models

import "fmt"

// Subject identifies one of the four learning tracks
type Subject string

const (
	SubjectScience     Subject = "science"
	SubjectMathematics Subject = "mathematics"
	SubjectTechnology  Subject = "technology"
	SubjectEngineering Subject = "engineering"
)

// Subjects lists every track in display order
var Subjects = []Subject{
	SubjectScience,
	SubjectMathematics,
	SubjectTechnology,
	SubjectEngineering,
}

// ParseSubject validates a subject string
func ParseSubject(s string) (Subject, error) {
	switch Subject(s) {
	case SubjectScience, SubjectMathematics, SubjectTechnology, SubjectEngineering:
		return Subject(s), nil
	default:
		return "", fmt.Errorf("invalid subject: %q", s)
	}
}

// SubjectStat tracks per-subject completion and experience
type SubjectStat struct {
	Progress int `json:"progress"`
	XP       int `json:"xp"`
}

// ProgressRecord is a student's cumulative learning state. Subjects
// always holds exactly the four tracks. TimeSpent is in seconds.
type ProgressRecord struct {
	TotalXP       int                     `json:"totalXP"`
	CurrentLevel  int                     `json:"currentLevel"`
	VideosWatched int                     `json:"videosWatched"`
	GamesPlayed   int                     `json:"gamesPlayed"`
	TimeSpent     int                     `json:"timeSpent"`
	CurrentStreak int                     `json:"currentStreak"`
	Subjects      map[Subject]SubjectStat `json:"subjects"`
}

// NewProgressRecord returns the zero state for a fresh student
func NewProgressRecord() *ProgressRecord {
	subjects := make(map[Subject]SubjectStat, len(Subjects))
	for _, s := range Subjects {
		subjects[s] = SubjectStat{}
	}
	return &ProgressRecord{
		CurrentLevel: 1,
		Subjects:     subjects,
	}
}

// Clone returns a deep copy so callers can mutate freely
func (r *ProgressRecord) Clone() *ProgressRecord {
	clone := *r
	clone.Subjects = make(map[Subject]SubjectStat, len(r.Subjects))
	for k, v := range r.Subjects {
		clone.Subjects[k] = v
	}
	return &clone
}

// LearningEvent is a completed activity that advances a progress record
type LearningEvent interface {
	EventSubject() Subject
}

// VideoCompleted records a student finishing a video
type VideoCompleted struct {
	VideoID string
	Subject Subject
}

func (e VideoCompleted) EventSubject() Subject { return e.Subject }

// GameCompleted records a student finishing a quiz game
type GameCompleted struct {
	GameID           string
	Subject          Subject
	Score            int
	TotalQuestions   int
	TimeSpentSeconds int
}

func (e GameCompleted) EventSubject() Subject { return e.Subject }
