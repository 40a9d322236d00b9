package usecases

import (
	"context"
	"time"

	"alpha-radar/internal/adapters/ai"
	"alpha-radar/internal/domain"
	"alpha-radar/pkg/log"

	"golang.org/x/sync/errgroup"
)

// BackgroundProvider serves the strategic context document.
type BackgroundProvider interface {
	Text() string
}

// Per-call deep-dive budgets. Synthetic data gets a looser budget since
// there is no external rate pressure and responses can be longer.
const (
	deepDiveTimeout          = 6 * time.Second
	deepDiveTimeoutSynthetic = 12 * time.Second
	deepDiveTokens           = int32(200)
	deepDiveTokensSynthetic  = int32(300)
)

// DeepDiveUseCase evaluates each post against the background document with
// one model call per post, all in parallel. A failed call degrades that one
// entry instead of failing the batch.
type DeepDiveUseCase struct {
	llm        ai.Completion
	background BackgroundProvider
	synthetic  bool
}

// NewDeepDiveUseCase creates the deep-dive use case. synthetic relaxes the
// per-call budgets for dataset-backed runs.
func NewDeepDiveUseCase(llm ai.Completion, background BackgroundProvider, synthetic bool) *DeepDiveUseCase {
	return &DeepDiveUseCase{llm: llm, background: background, synthetic: synthetic}
}

// Execute runs one analysis per post and returns entries in post order,
// one per input post, degraded ones included.
func (uc *DeepDiveUseCase) Execute(ctx context.Context, posts []domain.Post) []domain.DeepDive {
	if len(posts) == 0 {
		return nil
	}

	background := uc.background.Text()
	results := make([]domain.DeepDive, len(posts))

	g, gctx := errgroup.WithContext(ctx)
	for i, p := range posts {
		i, p := i, p
		g.Go(func() error {
			results[i] = uc.analyzeOne(gctx, p, background)
			return nil
		})
	}
	// Per-item failures land in their slot; the group itself never fails.
	_ = g.Wait()

	return results
}

func (uc *DeepDiveUseCase) analyzeOne(ctx context.Context, p domain.Post, background string) domain.DeepDive {
	entry := domain.DeepDive{
		PostID:   p.ID,
		PostText: truncate(p.Text, 200),
		Author:   p.Author,
		PostURL:  p.Permalink(),
		URLs:     ExtractURLs(p.Text),
	}

	if p.Text == "" {
		entry.Sentiment = domain.VerdictNeutral
		entry.Summary = "Post has no text content"
		entry.Reasoning = "Nothing to analyze"
		entry.Err = "empty post text"
		return entry
	}

	timeout, tokens := deepDiveTimeout, deepDiveTokens
	if uc.synthetic {
		timeout, tokens = deepDiveTimeoutSynthetic, deepDiveTokensSynthetic
	}
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	result, err := ai.DeepDive(callCtx, uc.llm, p.Text, background, tokens)
	if err != nil {
		log.GlobalWarnCtx(ctx, "deep dive analysis failed",
			"post_id", p.ID, "error", err)
		entry.Sentiment = domain.VerdictNeutral
		entry.Summary = "Analysis unavailable"
		entry.Reasoning = "Error during analysis: " + err.Error()
		entry.Err = err.Error()
		return entry
	}

	entry.Sentiment = result.Sentiment
	entry.Summary = result.Summary
	entry.Reasoning = result.Reasoning
	return entry
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
