package scoring

import (
	"testing"

	"amavidya/internal/models"
)

func TestLevel(t *testing.T) {
	tests := []struct {
		totalXP int
		want    int
	}{
		{0, 1},
		{50, 1},
		{99, 1},
		{100, 2},
		{199, 2},
		{200, 3},
		{1050, 11},
	}

	for _, tt := range tests {
		if got := Level(tt.totalXP); got != tt.want {
			t.Errorf("Level(%d) = %d, want %d", tt.totalXP, got, tt.want)
		}
	}
}

func TestOverallProgress(t *testing.T) {
	tests := []struct {
		name     string
		progress map[models.Subject]int
		want     int
	}{
		{
			name:     "all zero",
			progress: map[models.Subject]int{},
			want:     0,
		},
		{
			name: "all complete",
			progress: map[models.Subject]int{
				models.SubjectScience:     100,
				models.SubjectMathematics: 100,
				models.SubjectTechnology:  100,
				models.SubjectEngineering: 100,
			},
			want: 100,
		},
		{
			name: "mixed rounds to nearest",
			progress: map[models.Subject]int{
				models.SubjectScience:     5,
				models.SubjectMathematics: 0,
				models.SubjectTechnology:  0,
				models.SubjectEngineering: 0,
			},
			want: 1, // 5/4 = 1.25 rounds to 1
		},
		{
			name: "rounds up at half",
			progress: map[models.Subject]int{
				models.SubjectScience:     10,
				models.SubjectMathematics: 10,
				models.SubjectTechnology:  5,
				models.SubjectEngineering: 5,
			},
			want: 8, // 30/4 = 7.5 rounds to 8
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := models.NewProgressRecord()
			for s, p := range tt.progress {
				stat := rec.Subjects[s]
				stat.Progress = p
				rec.Subjects[s] = stat
			}
			if got := OverallProgress(rec); got != tt.want {
				t.Errorf("OverallProgress() = %d, want %d", got, tt.want)
			}
		})
	}
}
