// Package sentiment scores text with the VADER lexicon. It is the cheap
// first pass; low-confidence scores get escalated to the model.
package sentiment

import (
	"github.com/grassmudhorses/vader-go/lexicon"
	"github.com/grassmudhorses/vader-go/sentitext"
)

// Scorer computes lexical polarity scores.
type Scorer struct{}

// NewScorer returns a VADER-backed scorer.
func NewScorer() *Scorer {
	return &Scorer{}
}

// Polarity returns the compound polarity of text in [-1, 1].
func (s *Scorer) Polarity(text string) float64 {
	parsed := sentitext.Parse(text, lexicon.DefaultLexicon)
	return sentitext.PolarityScore(parsed).Compound
}
