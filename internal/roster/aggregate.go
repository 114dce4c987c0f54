// Package roster computes the class-wide aggregates shown on the
// teacher dashboard.
package roster

import (
	"math"
	"strings"

	"amavidya/internal/models"
	"amavidya/internal/scoring"
)

// Summary is the headline view of a class
type Summary struct {
	TotalStudents      int `json:"totalStudents"`
	TotalVideosWatched int `json:"totalVideosWatched"`
	TotalGamesPlayed   int `json:"totalGamesPlayed"`
	AverageProgress    int `json:"averageProgress"`
}

// Summarize computes class totals and the average overall progress.
// Students without a progress record count as zero progress.
func Summarize(students []models.StudentOverview) Summary {
	s := Summary{TotalStudents: len(students)}
	if len(students) == 0 {
		return s
	}

	sum := 0
	for _, st := range students {
		if st.Progress == nil {
			continue
		}
		s.TotalVideosWatched += st.Progress.VideosWatched
		s.TotalGamesPlayed += st.Progress.GamesPlayed
		sum += scoring.OverallProgress(st.Progress)
	}
	s.AverageProgress = int(math.Round(float64(sum) / float64(len(students))))
	return s
}

// SubjectAverage computes the class average progress for one subject
func SubjectAverage(students []models.StudentOverview, subject models.Subject) int {
	if len(students) == 0 {
		return 0
	}
	sum := 0
	for _, st := range students {
		if st.Progress == nil {
			continue
		}
		sum += st.Progress.Subjects[subject].Progress
	}
	return int(math.Round(float64(sum) / float64(len(students))))
}

// Search filters students by a case-insensitive substring match on
// name or username, preserving roster order. An empty query returns
// everyone.
func Search(students []models.StudentOverview, query string) []models.StudentOverview {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return students
	}
	var out []models.StudentOverview
	for _, st := range students {
		if strings.Contains(strings.ToLower(st.User.Name), query) ||
			strings.Contains(strings.ToLower(st.User.Username), query) {
			out = append(out, st)
		}
	}
	return out
}
