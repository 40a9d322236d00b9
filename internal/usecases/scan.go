package usecases

import (
	"context"
	"fmt"
	"time"

	"alpha-radar/internal/adapters/ai"
	"alpha-radar/internal/domain"
	"alpha-radar/pkg/log"
)

// ScanCache is the report cache port.
type ScanCache interface {
	Get(keywords []string) (*domain.ScanReport, bool)
	Set(keywords []string, report *domain.ScanReport)
}

// ScanOptions tune a single scan request.
type ScanOptions struct {
	// SkipAIInsights suppresses model-generated insights. Nil means the
	// default, which is to skip them.
	SkipAIInsights *bool
}

// ScanUseCase runs the full two-stage pipeline: discovery, then sentiment
// plus deep-dive analysis, and assembles the final report.
type ScanUseCase struct {
	discover  *DiscoverPostsUseCase
	sentiment *AnalyzeSentimentUseCase
	deepDive  *DeepDiveUseCase
	cache     ScanCache
	llm       ai.Completion
	synthetic bool
	now       func() time.Time
}

// NewScanUseCase wires the pipeline. cache and llm may be nil; a nil cache
// just disables report reuse.
func NewScanUseCase(
	discover *DiscoverPostsUseCase,
	sentiment *AnalyzeSentimentUseCase,
	deepDive *DeepDiveUseCase,
	cache ScanCache,
	llm ai.Completion,
	synthetic bool,
) *ScanUseCase {
	return &ScanUseCase{
		discover:  discover,
		sentiment: sentiment,
		deepDive:  deepDive,
		cache:     cache,
		llm:       llm,
		synthetic: synthetic,
		now:       time.Now,
	}
}

// Execute runs one scan. Stage failures are fatal and reported as a
// StageError; per-post analysis failures inside stage 2 are not.
func (uc *ScanUseCase) Execute(ctx context.Context, keywords []string, opts ScanOptions) (*domain.ScanReport, error) {
	if len(keywords) == 0 {
		return nil, domain.ErrNoKeywords
	}

	if uc.cache != nil {
		if cached, ok := uc.cache.Get(keywords); ok {
			log.GlobalInfoCtx(ctx, "serving cached scan report",
				"scan_id", cached.ScanID, "keywords", keywords)
			return cached, nil
		}
	}

	started := uc.now()
	scanID := fmt.Sprintf("scan_%s", started.Format("20060102_150405.000000"))
	log.GlobalInfoCtx(ctx, "scan started", "scan_id", scanID, "keywords", keywords)

	// Stage 1: discovery.
	stage1Start := uc.now()
	discovery, err := uc.discover.Execute(ctx, keywords)
	if err != nil {
		return nil, &domain.StageError{Stage: 1, Elapsed: uc.now().Sub(stage1Start), Err: err}
	}
	stage1 := domain.StageReport{
		Stage:      1,
		Status:     domain.StatusCompleted,
		StartedAt:  stage1Start,
		DurationMS: ms(uc.now().Sub(stage1Start)),
	}
	log.GlobalInfoCtx(ctx, "stage 1 completed",
		"scan_id", scanID, "posts", discovery.Count, "source", discovery.Source, "duration_ms", stage1.DurationMS)

	// Stage 2: sentiment and deep dive over the ranked posts.
	stage2Start := uc.now()
	analysis, err := uc.analyze(ctx, keywords, discovery.Posts, opts)
	if err != nil {
		return nil, &domain.StageError{Stage: 2, Elapsed: uc.now().Sub(stage2Start), Err: err}
	}
	stage2 := domain.StageReport{
		Stage:      2,
		Status:     domain.StatusCompleted,
		StartedAt:  stage2Start,
		DurationMS: ms(uc.now().Sub(stage2Start)),
	}
	log.GlobalInfoCtx(ctx, "stage 2 completed",
		"scan_id", scanID, "analyzed", len(analysis.Posts), "duration_ms", stage2.DurationMS)

	report := &domain.ScanReport{
		ScanID:          scanID,
		Status:          domain.StatusCompleted,
		Keywords:        keywords,
		Stage1:          stage1,
		Stage2:          stage2,
		Discovery:       discovery,
		Analysis:        analysis,
		TotalDurationMS: ms(uc.now().Sub(started)),
		StartedAt:       started,
	}

	if uc.cache != nil {
		uc.cache.Set(keywords, report)
	}
	return report, nil
}

// analyze runs the two stage-2 passes concurrently over the same ranked
// slice: lexical+escalated sentiment, and the per-post deep dives.
func (uc *ScanUseCase) analyze(ctx context.Context, keywords []string, posts []domain.Post, opts ScanOptions) (domain.AnalysisReport, error) {
	if err := ctx.Err(); err != nil {
		return domain.AnalysisReport{}, err
	}

	// The deep dive only reads post text, so it can run against a copy
	// while the sentiment pass mutates the original slice.
	deepDiveInput := make([]domain.Post, len(posts))
	copy(deepDiveInput, posts)

	type diveResult struct{ entries []domain.DeepDive }
	diveDone := make(chan diveResult, 1)
	go func() {
		diveDone <- diveResult{entries: uc.deepDive.Execute(ctx, deepDiveInput)}
	}()

	analyzed := uc.sentiment.Execute(ctx, posts)
	dives := <-diveDone

	agg := Aggregate(analyzed)

	skipAI := true
	if opts.SkipAIInsights != nil {
		skipAI = *opts.SkipAIInsights
	}
	var aiInsights []string
	if !skipAI {
		aiInsights = AIInsights(ctx, uc.llm, keywords, analyzed, agg, uc.synthetic)
	}
	insights := append(aiInsights, BasicInsights(agg)...)

	return domain.AnalysisReport{
		Posts:           analyzed,
		Aggregate:       agg,
		Insights:        insights,
		AIInsightCount:  len(aiInsights),
		Recommendations: defaultRecommendations,
		DeepDive:        dives.entries,
	}, nil
}

func ms(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000
}
