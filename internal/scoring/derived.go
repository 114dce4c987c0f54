package scoring

import (
	"math"

	"amavidya/internal/models"
)

// XPPerLevel is how much total XP advances the student one level
const XPPerLevel = 100

// Level computes the level for a total XP amount. Levels start at 1.
func Level(totalXP int) int {
	return totalXP/XPPerLevel + 1
}

// OverallProgress averages the four subject progress values and rounds
// to the nearest whole percent.
func OverallProgress(rec *models.ProgressRecord) int {
	if len(rec.Subjects) == 0 {
		return 0
	}
	sum := 0
	for _, s := range models.Subjects {
		sum += rec.Subjects[s].Progress
	}
	return int(math.Round(float64(sum) / float64(len(models.Subjects))))
}
