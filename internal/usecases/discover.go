package usecases

import (
	"context"
	"sort"
	"strings"
	"time"

	"alpha-radar/internal/domain"
	"alpha-radar/pkg/log"
)

// Discoverer is the post discovery port, implemented by the source chain.
type Discoverer interface {
	Discover(ctx context.Context, queries []domain.KeywordQuery, limit int) ([]domain.Post, string, error)
}

// Truncation bounds for the discovery stage: prefer five ranked posts,
// warn when fewer than three are available.
const (
	MinRankedPosts = 3
	MaxRankedPosts = 5
)

// recentWindowDays is how far back a post may be to survive the window filter.
const recentWindowDays = 3

// DiscoverPostsUseCase runs the broad scan: fetch, dedupe, window-filter,
// rank and truncate.
type DiscoverPostsUseCase struct {
	discoverer    Discoverer
	maxCandidates int
	now           func() time.Time
}

// NewDiscoverPostsUseCase creates the discovery use case. maxCandidates is
// how many raw posts to request before ranking; <= 0 uses the default 1000.
func NewDiscoverPostsUseCase(discoverer Discoverer, maxCandidates int) *DiscoverPostsUseCase {
	if maxCandidates <= 0 {
		maxCandidates = 1000
	}
	return &DiscoverPostsUseCase{
		discoverer:    discoverer,
		maxCandidates: maxCandidates,
		now:           time.Now,
	}
}

// Execute discovers and ranks posts for the given keywords.
func (uc *DiscoverPostsUseCase) Execute(ctx context.Context, keywords []string) (domain.DiscoveryReport, error) {
	if len(keywords) == 0 {
		return domain.DiscoveryReport{}, domain.ErrNoKeywords
	}

	queries := make([]domain.KeywordQuery, 0, len(keywords))
	variations := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}
		queries = append(queries, domain.NewKeywordQuery(kw))
		variations = append(variations, kw)
	}
	if len(queries) == 0 {
		return domain.DiscoveryReport{}, domain.ErrNoKeywords
	}

	raw, source, err := uc.discoverer.Discover(ctx, queries, uc.maxCandidates)
	if err != nil {
		return domain.DiscoveryReport{}, err
	}
	log.GlobalInfoCtx(ctx, "discovery fetched posts",
		"count", len(raw), "source", source, "keywords", len(queries))

	deduped := dedupe(raw)
	inWindow := uc.filterRecent(deduped)

	for i := range inWindow {
		inWindow[i].PopularityScore = domain.PopularityScore(inWindow[i])
	}
	sort.SliceStable(inWindow, func(i, j int) bool {
		return inWindow[i].PopularityScore > inWindow[j].PopularityScore
	})

	top := inWindow
	if len(top) > MaxRankedPosts {
		top = top[:MaxRankedPosts]
	}
	if len(top) < MinRankedPosts && len(top) > 0 {
		log.GlobalWarnCtx(ctx, "fewer ranked posts than preferred",
			"got", len(top), "want", MinRankedPosts)
	}

	return domain.DiscoveryReport{
		Posts:      top,
		Count:      len(top),
		Timeframe:  "past 3 days",
		Source:     source,
		TotalFound: len(deduped),
		InWindow:   len(inWindow),
		Keywords:   keywords,
		Variations: variations,
	}, nil
}

// dedupe drops repeated posts, preferring the id and falling back to the
// normalized text, keeping first occurrences in order.
func dedupe(posts []domain.Post) []domain.Post {
	seen := make(map[string]bool, len(posts))
	unique := posts[:0:0]
	for _, p := range posts {
		key := p.DedupeKey()
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, p)
	}
	return unique
}

// filterRecent keeps posts from the past window. Posts whose timestamp is
// missing or unparseable are treated as recent and kept.
func (uc *DiscoverPostsUseCase) filterRecent(posts []domain.Post) []domain.Post {
	cutoff := uc.now().Add(-recentWindowDays * 24 * time.Hour)

	kept := posts[:0:0]
	for _, p := range posts {
		if p.Timestamp == "" {
			kept = append(kept, p)
			continue
		}
		ts, err := time.Parse(time.RFC3339, p.Timestamp)
		if err != nil {
			kept = append(kept, p)
			continue
		}
		if !ts.Before(cutoff) {
			kept = append(kept, p)
		}
	}
	return kept
}
