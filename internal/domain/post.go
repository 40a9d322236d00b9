// Package domain contains the core business entities and rules.
package domain

import "strings"

// Post represents a single social post discovered for a keyword.
// Source adapters create it; the sentiment and deep-dive stages enrich it
// by writing their own disjoint fields.
type Post struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Author string `json:"author"`

	// Timestamp is kept as reported by the source (ISO-8601 when available).
	// Window filtering parses it best-effort; unparseable values count as
	// recent rather than being dropped.
	Timestamp string `json:"timestamp"`

	Likes    int  `json:"likes"`
	Retweets int  `json:"retweets"`
	Views    int  `json:"views"`
	Verified bool `json:"verified"`

	// Provenance: which input keyword and which of its variations matched.
	OriginalKeyword  string `json:"original_keyword"`
	MatchedVariation string `json:"matched_variation"`

	// Set during ranking.
	PopularityScore float64 `json:"popularity_score"`

	// Set by the sentiment stage.
	SentimentScore      float64 `json:"sentiment_score"`
	SentimentLabel      string  `json:"sentiment_label"`
	SentimentConfidence float64 `json:"sentiment_confidence"`
	AIEnhanced          bool    `json:"ai_enhanced"`
	AIReasoning         string  `json:"ai_reasoning,omitempty"`

	WeightedEngagement float64 `json:"weighted_engagement"`
}

// Permalink returns the canonical x.com URL for the post, or empty when the
// author or id is unknown.
func (p Post) Permalink() string {
	handle := strings.TrimPrefix(p.Author, "@")
	if handle == "" || p.ID == "" {
		return ""
	}
	return "https://x.com/" + handle + "/status/" + p.ID
}

// DedupeKey identifies a post for deduplication: the id when present,
// otherwise the normalized lowercase text.
func (p Post) DedupeKey() string {
	if p.ID != "" {
		return "id:" + p.ID
	}
	return "text:" + strings.ToLower(strings.TrimSpace(p.Text))
}

// Sentiment labels assigned by the lexical scorer.
const (
	LabelPositive = "positive"
	LabelNegative = "negative"
	LabelNeutral  = "neutral"
)

// LabelThreshold is the polarity band around zero treated as neutral.
const LabelThreshold = 0.1

// LabelFor classifies a polarity score into positive/negative/neutral.
func LabelFor(score float64) string {
	switch {
	case score > LabelThreshold:
		return LabelPositive
	case score < -LabelThreshold:
		return LabelNegative
	default:
		return LabelNeutral
	}
}

// KeywordQuery maps an original keyword to the textual variations searched
// for it. Variations are merged into a single OR-query per keyword before
// dispatch, so external calls scale with keywords, not variations.
type KeywordQuery struct {
	Keyword    string
	Variations []string
}

// NewKeywordQuery builds a query whose only variation is the keyword itself.
func NewKeywordQuery(keyword string) KeywordQuery {
	return KeywordQuery{Keyword: keyword, Variations: []string{keyword}}
}

// Merged returns the single OR-query dispatched to a source adapter,
// e.g. `(AAPL) OR (Apple) OR ($AAPL)`.
func (q KeywordQuery) Merged() string {
	if len(q.Variations) == 0 {
		return "(" + q.Keyword + ")"
	}
	parts := make([]string, len(q.Variations))
	for i, v := range q.Variations {
		parts[i] = "(" + v + ")"
	}
	return strings.Join(parts, " OR ")
}

// Tag records which variation textually matched the post. The check is a
// case-insensitive substring match that also accepts the $-prefixed ticker
// form; when nothing matches, the first variation is used as a best-effort
// label.
func (q KeywordQuery) Tag(p *Post) {
	p.OriginalKeyword = q.Keyword

	lower := strings.ToLower(p.Text)
	for _, v := range q.Variations {
		vl := strings.ToLower(v)
		if strings.Contains(lower, vl) || strings.Contains(lower, "$"+vl) {
			p.MatchedVariation = v
			return
		}
	}
	if len(q.Variations) > 0 {
		p.MatchedVariation = q.Variations[0]
	} else {
		p.MatchedVariation = q.Keyword
	}
}

// NormalizeKeyword canonicalizes a keyword or variation for dataset lookups:
// uppercased, $-prefix stripped.
func NormalizeKeyword(s string) string {
	return strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(s), "$"))
}
