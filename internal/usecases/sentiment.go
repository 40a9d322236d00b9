package usecases

import (
	"context"
	"time"

	"alpha-radar/internal/adapters/ai"
	"alpha-radar/internal/domain"
	"alpha-radar/pkg/log"

	"golang.org/x/sync/errgroup"
)

// PolarityScorer is the lexical sentiment port.
type PolarityScorer interface {
	Polarity(text string) float64
}

// EscalationThreshold is the lexical confidence below which a post's
// sentiment is escalated to the model.
const EscalationThreshold = 0.3

// escalationTimeout bounds a single escalation call.
const escalationTimeout = 8 * time.Second

// AnalyzeSentimentUseCase scores posts lexically and escalates ambiguous
// ones to the model. The model is optional; without it only the lexical
// pass runs.
type AnalyzeSentimentUseCase struct {
	scorer PolarityScorer
	llm    ai.Completion
}

// NewAnalyzeSentimentUseCase creates the sentiment use case. llm may be nil.
func NewAnalyzeSentimentUseCase(scorer PolarityScorer, llm ai.Completion) *AnalyzeSentimentUseCase {
	return &AnalyzeSentimentUseCase{scorer: scorer, llm: llm}
}

// Execute scores every post, mutating the sentiment fields in place. Posts
// are processed concurrently; an escalation failure silently keeps the
// lexical reading.
func (uc *AnalyzeSentimentUseCase) Execute(ctx context.Context, posts []domain.Post) []domain.Post {
	g, gctx := errgroup.WithContext(ctx)

	for i := range posts {
		i := i
		g.Go(func() error {
			posts[i] = uc.scoreOne(gctx, posts[i])
			return nil
		})
	}
	// Workers only write their own index and never return errors.
	_ = g.Wait()

	return posts
}

func (uc *AnalyzeSentimentUseCase) scoreOne(ctx context.Context, p domain.Post) domain.Post {
	polarity := domain.Round3(uc.scorer.Polarity(p.Text))

	p.SentimentScore = polarity
	p.SentimentLabel = domain.LabelFor(polarity)
	// Confidence is how far the score sits from neutral.
	p.SentimentConfidence = domain.Round3(abs(polarity))
	p.AIEnhanced = false
	p.WeightedEngagement = domain.WeightedEngagement(p.Likes, p.Retweets, p.Views)

	if p.SentimentConfidence >= EscalationThreshold || uc.llm == nil {
		return p
	}

	callCtx, cancel := context.WithTimeout(ctx, escalationTimeout)
	defer cancel()

	result, err := ai.AnalyzeSentiment(callCtx, uc.llm, p.Text, p.OriginalKeyword)
	if err != nil {
		// Keep the lexical reading; escalation is best-effort.
		log.GlobalDebugCtx(ctx, "sentiment escalation failed, keeping lexical score",
			"post_id", p.ID, "error", err)
		return p
	}

	p.SentimentScore = result.Score
	p.SentimentLabel = result.Label
	if p.SentimentLabel == "" {
		p.SentimentLabel = domain.LabelFor(result.Score)
	}
	p.SentimentConfidence = result.Confidence
	p.AIEnhanced = true
	p.AIReasoning = result.Reasoning
	return p
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
