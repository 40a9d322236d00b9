package domain

import "time"

// Deep-dive verdicts. Distinct from the lexical labels: these come from the
// strategic evaluation and are capitalized in the wire format.
const (
	VerdictPositive = "Positive"
	VerdictNeutral  = "Neutral"
	VerdictNegative = "Negative"
)

// DeepDive is the strategic evaluation of one post against the background
// document. A failed analysis still yields a DeepDive with Err set and a
// Neutral verdict.
type DeepDive struct {
	PostID    string   `json:"post_id"`
	PostText  string   `json:"post_text"`
	Author    string   `json:"author"`
	Sentiment string   `json:"sentiment"`
	Summary   string   `json:"summary"`
	Reasoning string   `json:"reasoning"`
	PostURL   string   `json:"post_url,omitempty"`
	URLs      []string `json:"urls,omitempty"`
	Err       string   `json:"error,omitempty"`
}

// Degraded reports whether the analysis failed and this is a placeholder.
func (d DeepDive) Degraded() bool { return d.Err != "" }

// Stage statuses.
const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// StageReport carries timing metadata for one pipeline stage.
type StageReport struct {
	Stage      int       `json:"stage"`
	Status     string    `json:"status"`
	StartedAt  time.Time `json:"timestamp"`
	DurationMS float64   `json:"duration_ms"`
}

// DiscoveryReport is the stage-1 payload: the ranked posts plus query
// provenance.
type DiscoveryReport struct {
	Posts      []Post   `json:"posts"`
	Count      int      `json:"count"`
	Timeframe  string   `json:"timeframe"`
	Source     string   `json:"source"`
	TotalFound int      `json:"total_found"`
	InWindow   int      `json:"in_window"`
	Keywords   []string `json:"keywords_searched"`
	Variations []string `json:"variations_searched"`
}

// Aggregate holds the deterministic sentiment aggregates over the analyzed
// posts. Weighted figures use WeightedEngagement as the weight.
type Aggregate struct {
	AverageScore         float64 `json:"average_score"`
	WeightedAverageScore float64 `json:"weighted_average_score"`
	PositiveCount        int     `json:"positive_count"`
	NegativeCount        int     `json:"negative_count"`
	NeutralCount         int     `json:"neutral_count"`
	TotalPosts           int     `json:"total_posts"`
	WeightedPositive     float64 `json:"weighted_positive"`
	WeightedNegative     float64 `json:"weighted_negative"`
	WeightedNeutral      float64 `json:"weighted_neutral"`
	TotalWeighted        float64 `json:"total_weighted_engagement"`
}

// AnalysisReport is the stage-2 payload: enriched posts, aggregates,
// insights and the deep-dive entries (same order as Posts).
type AnalysisReport struct {
	Posts           []Post     `json:"analyzed_posts"`
	Aggregate       Aggregate  `json:"aggregate_sentiment"`
	Insights        []string   `json:"insights"`
	AIInsightCount  int        `json:"ai_insights_count"`
	Recommendations []string   `json:"recommendations"`
	DeepDive        []DeepDive `json:"deep_dive"`
}

// ScanReport is the terminal result of one two-stage scan. Immutable once
// produced; no cross-scan state is retained.
type ScanReport struct {
	ScanID          string          `json:"scan_id"`
	Status          string          `json:"status"`
	Keywords        []string        `json:"keywords"`
	Stage1          StageReport     `json:"stage1"`
	Stage2          StageReport     `json:"stage2"`
	Discovery       DiscoveryReport `json:"discovery"`
	Analysis        AnalysisReport  `json:"analysis"`
	TotalDurationMS float64         `json:"total_duration_ms"`
	StartedAt       time.Time       `json:"timestamp"`
}
