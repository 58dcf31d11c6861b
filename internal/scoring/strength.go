// Package scoring computes the aggregate resume strength score.
package scoring

// Strength formula constants. The formula rewards broad vocabulary coverage,
// penalizes flagged bullets, and saturates at 100. It must be reproduced
// exactly for compatibility with previously reported scores.
const (
	skillWeight      = 3
	feedbackWeight   = 5
	feedbackBaseline = 15
	maxScore         = 100
)

// Strength returns the resume strength score in [0, 100]:
// min(100, skillCount*3 + max(0, 15-flaggedBulletCount)*5).
func Strength(skillCount, flaggedBulletCount int) int {
	feedbackScore := feedbackBaseline - flaggedBulletCount
	if feedbackScore < 0 {
		feedbackScore = 0
	}

	raw := skillCount*skillWeight + feedbackScore*feedbackWeight
	if raw > maxScore {
		return maxScore
	}
	return raw
}
