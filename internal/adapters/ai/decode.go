package ai

import (
	"encoding/json"
	"regexp"
	"strings"

	"alpha-radar/internal/domain"
)

// EscalationResult is the model's answer to a sentiment escalation request.
type EscalationResult struct {
	Score      float64 `json:"sentiment_score"`
	Label      string  `json:"sentiment_label"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}

// DeepDiveResult is the model's answer to a deep-dive evaluation.
type DeepDiveResult struct {
	Sentiment string `json:"sentiment"`
	Summary   string `json:"summary"`
	Reasoning string `json:"reasoning"`
}

// DecodeEscalation parses a sentiment escalation response. Models wrap JSON
// in markdown fences or chat around it often enough that strict decoding is
// only the first attempt; the last resort greps the text for a label.
func DecodeEscalation(content string) EscalationResult {
	candidate := strings.TrimSpace(stripFences(content))

	var result EscalationResult
	if err := json.Unmarshal([]byte(candidate), &result); err == nil && result.Label != "" {
		result.Label = strings.ToLower(result.Label)
		return result
	}

	// Keyword fallback over the raw text.
	lower := strings.ToLower(content)
	switch {
	case strings.Contains(lower, "positive"):
		return EscalationResult{Score: 0.5, Label: domain.LabelPositive, Confidence: 0.7, Reasoning: content}
	case strings.Contains(lower, "negative"):
		return EscalationResult{Score: -0.5, Label: domain.LabelNegative, Confidence: 0.7, Reasoning: content}
	default:
		return EscalationResult{Score: 0, Label: domain.LabelNeutral, Confidence: 0.7, Reasoning: content}
	}
}

var sentimentObjectRe = regexp.MustCompile(`(?s)\{[^{}]*"sentiment"[^{}]*\}`)

// DecodeDeepDive parses a deep-dive response. It tries, in order: a bare
// JSON object mentioning "sentiment", a fenced block, then the whole text.
// Missing fields get defaults and the sentiment verdict is canonicalized,
// so a parseable-but-sloppy response still yields a usable entry.
func DecodeDeepDive(content string) (DeepDiveResult, error) {
	content = strings.TrimSpace(content)

	candidate := sentimentObjectRe.FindString(content)
	if candidate == "" {
		candidate = strings.TrimSpace(stripFences(content))
	}

	var raw map[string]any
	if err := json.Unmarshal([]byte(candidate), &raw); err != nil {
		return DeepDiveResult{}, err
	}

	result := DeepDiveResult{
		Sentiment: domain.VerdictNeutral,
		Summary:   "Post analyzed for strategic importance",
		Reasoning: "Analysis completed",
	}
	if s, ok := raw["sentiment"].(string); ok {
		result.Sentiment = CanonicalVerdict(s)
	}
	if s, ok := raw["summary"].(string); ok && s != "" {
		result.Summary = s
	}
	if s, ok := raw["reasoning"].(string); ok && s != "" {
		result.Reasoning = s
	}
	return result, nil
}

// CanonicalVerdict normalizes a model-reported verdict, including the
// misspellings that show up in practice ("Postive").
func CanonicalVerdict(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return domain.VerdictNeutral
	}
	s = strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
	switch {
	case strings.HasPrefix(s, "Pos"), strings.HasPrefix(s, "Post"):
		return domain.VerdictPositive
	case strings.HasPrefix(s, "Neg"):
		return domain.VerdictNegative
	case s == domain.VerdictNeutral:
		return domain.VerdictNeutral
	default:
		return domain.VerdictNeutral
	}
}

var fenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")

// stripFences unwraps a markdown code fence when present.
func stripFences(content string) string {
	if m := fenceRe.FindStringSubmatch(content); len(m) == 2 {
		return m[1]
	}
	return content
}
