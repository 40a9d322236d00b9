package domain

import "math"

// Engagement weights for sentiment monitoring. Retweets carry the most
// signal (active propagation), views the least (mere exposure).
const (
	WeightViews    = 0.1
	WeightLikes    = 0.3
	WeightRetweets = 0.6
)

// WeightedEngagement computes the weighted engagement value used both for
// popularity ranking and for sentiment weighting. Rounded to 2 decimals.
func WeightedEngagement(likes, retweets, views int) float64 {
	score := float64(likes)*WeightLikes +
		float64(retweets)*WeightRetweets +
		float64(views)*WeightViews
	return math.Round(score*100) / 100
}

// PopularityScore ranks a post by its engagement counts. Same weighting as
// WeightedEngagement; kept unrounded since it is only compared, not reported.
func PopularityScore(p Post) float64 {
	return float64(p.Views)*WeightViews +
		float64(p.Likes)*WeightLikes +
		float64(p.Retweets)*WeightRetweets
}

// Round3 truncates sentiment scores to the precision reported to callers.
func Round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
