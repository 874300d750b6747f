package scorer

import "github.com/RakshitYadav09/Nasa-Hack-LEO/pkg/interfaces"

// Default threshold values.
const (
	DefaultExcellentThreshold = 70
	DefaultGoodThreshold      = 50
)

// RatingFromScore returns the viability rating for an overall score.
// EXCELLENT: score > excellentThreshold
// GOOD: score > goodThreshold
// CHALLENGING: otherwise
func RatingFromScore(score int, excellentThreshold int, goodThreshold int) interfaces.Rating {
	switch {
	case score > excellentThreshold:
		return interfaces.RatingExcellent
	case score > goodThreshold:
		return interfaces.RatingGood
	default:
		return interfaces.RatingChallenging
	}
}
