package usecases

import (
	"context"
	"fmt"
	"math"
	"time"

	"alpha-radar/internal/adapters/ai"
	"alpha-radar/internal/domain"
	"alpha-radar/pkg/log"
)

// insightsTimeout bounds AI insight generation; it is purely additive, so a
// slow model just means deterministic insights only.
const (
	insightsTimeout          = 10 * time.Second
	insightsTimeoutSynthetic = 20 * time.Second
)

// defaultRecommendations accompany every analysis report.
var defaultRecommendations = []string{
	"Monitor sentiment trends over time",
	"Track engagement metrics (likes, retweets, views)",
	"Compare sentiment across different keywords",
}

// Aggregate computes the deterministic sentiment aggregates over analyzed
// posts: the plain mean, the engagement-weighted mean and per-bucket counts
// and weights.
func Aggregate(posts []domain.Post) domain.Aggregate {
	agg := domain.Aggregate{TotalPosts: len(posts)}
	if len(posts) == 0 {
		return agg
	}

	var sum, weightedSum float64
	for _, p := range posts {
		sum += p.SentimentScore
		weightedSum += p.SentimentScore * p.WeightedEngagement
		agg.TotalWeighted += p.WeightedEngagement

		switch {
		case p.SentimentScore > domain.LabelThreshold:
			agg.PositiveCount++
			agg.WeightedPositive += p.WeightedEngagement
		case p.SentimentScore < -domain.LabelThreshold:
			agg.NegativeCount++
			agg.WeightedNegative += p.WeightedEngagement
		default:
			agg.NeutralCount++
			agg.WeightedNeutral += p.WeightedEngagement
		}
	}

	agg.AverageScore = domain.Round3(sum / float64(len(posts)))
	if agg.TotalWeighted > 0 {
		agg.WeightedAverageScore = domain.Round3(weightedSum / agg.TotalWeighted)
	} else {
		// No engagement at all: fall back to the plain mean.
		agg.WeightedAverageScore = agg.AverageScore
	}

	agg.WeightedPositive = round2(agg.WeightedPositive)
	agg.WeightedNegative = round2(agg.WeightedNegative)
	agg.WeightedNeutral = round2(agg.WeightedNeutral)
	agg.TotalWeighted = round2(agg.TotalWeighted)
	return agg
}

// BasicInsights derives the deterministic insight lines from an aggregate.
func BasicInsights(agg domain.Aggregate) []string {
	var overall string
	switch {
	case agg.AverageScore > 0.3:
		overall = "Overall sentiment is strongly positive"
	case agg.AverageScore > 0.1:
		overall = "Overall sentiment is positive"
	case agg.AverageScore < -0.3:
		overall = "Overall sentiment is strongly negative"
	case agg.AverageScore < -0.1:
		overall = "Overall sentiment is negative"
	default:
		overall = "Overall sentiment is neutral"
	}

	counts := fmt.Sprintf("Found %d positive, %d negative, and %d neutral posts",
		agg.PositiveCount, agg.NegativeCount, agg.NeutralCount)
	return []string{overall, counts}
}

// AIInsights asks the model for extra takeaways. Best-effort: any failure
// or timeout returns nil and the caller proceeds with basic insights.
func AIInsights(ctx context.Context, llm ai.Completion, keywords []string, posts []domain.Post, agg domain.Aggregate, synthetic bool) []string {
	if llm == nil {
		return nil
	}

	timeout := insightsTimeout
	if synthetic {
		timeout = insightsTimeoutSynthetic
	}
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	samples := make([]string, 0, len(posts))
	for _, p := range posts {
		samples = append(samples, p.Text)
	}

	insights, err := ai.GenerateInsights(callCtx, llm, ai.InsightsInput{
		Keywords:      keywords,
		TotalPosts:    agg.TotalPosts,
		AverageScore:  agg.AverageScore,
		PositiveCount: agg.PositiveCount,
		NegativeCount: agg.NegativeCount,
		NeutralCount:  agg.NeutralCount,
		SampleTexts:   samples,
	})
	if err != nil {
		log.GlobalWarnCtx(ctx, "ai insight generation failed", "error", err)
		return nil
	}
	return insights
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
