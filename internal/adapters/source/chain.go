package source

import (
	"context"
	"sort"
	"strings"
	"time"

	"alpha-radar/internal/domain"
	"alpha-radar/pkg/log"

	"golang.org/x/sync/errgroup"
)

// Chain walks an ordered list of adapters per keyword, falling through to
// the next one when a source errors or returns nothing. Keywords are
// dispatched concurrently; each keyword resolves its own fallback.
type Chain struct {
	adapters []Adapter
	timeout  time.Duration
}

// NewChain builds a fallback chain. Adapters are tried in the order given.
func NewChain(timeout time.Duration, adapters ...Adapter) *Chain {
	return &Chain{adapters: adapters, timeout: timeout}
}

// SelectOptions captures the environment flags that decide which adapters
// participate in a scan.
type SelectOptions struct {
	ForceSynthetic bool
	ForceScraper   bool
	HasLiveCreds   bool
}

// Select returns the adapter order for the given options. Forced modes pin
// a single adapter; otherwise live credentials enable the live API with the
// scraper as fallback, and with nothing configured the synthetic dataset
// keeps the pipeline usable.
func Select(opts SelectOptions, live, scrape, synthetic Adapter) []Adapter {
	switch {
	case opts.ForceSynthetic:
		return []Adapter{synthetic}
	case opts.ForceScraper:
		return []Adapter{scrape}
	case opts.HasLiveCreds:
		return []Adapter{live, scrape}
	default:
		return []Adapter{synthetic}
	}
}

// Discover fetches posts for every keyword query concurrently and tags each
// post with its originating keyword. The second return value names the
// source(s) that actually produced posts.
func (c *Chain) Discover(ctx context.Context, queries []domain.KeywordQuery, limit int) ([]domain.Post, string, error) {
	if len(c.adapters) == 0 {
		return nil, "", domain.ErrNoSource
	}
	if len(queries) == 0 {
		return nil, "", domain.ErrNoKeywords
	}

	results := make([][]domain.Post, len(queries))
	sources := make([]string, len(queries))

	g, gctx := errgroup.WithContext(ctx)
	for i, q := range queries {
		i, q := i, q
		g.Go(func() error {
			posts, src := c.searchOne(gctx, q, limit)
			for j := range posts {
				q.Tag(&posts[j])
			}
			results[i] = posts
			sources[i] = src
			return gctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return nil, "", err
	}

	var all []domain.Post
	for _, posts := range results {
		all = append(all, posts...)
	}
	return all, mergeSourceNames(sources), nil
}

// searchOne walks the chain for a single keyword. Every adapter gets its own
// timeout; the first one that yields posts wins.
func (c *Chain) searchOne(ctx context.Context, q domain.KeywordQuery, limit int) ([]domain.Post, string) {
	for _, a := range c.adapters {
		callCtx, cancel := context.WithTimeout(ctx, c.timeout)
		posts, err := a.Search(callCtx, q, limit)
		cancel()

		if err != nil {
			log.GlobalWarn("source failed, trying next",
				"source", a.Name(), "keyword", q.Keyword, "error", err)
			continue
		}
		if len(posts) == 0 {
			log.GlobalDebug("source returned no posts",
				"source", a.Name(), "keyword", q.Keyword)
			continue
		}
		return posts, a.Name()
	}
	return nil, ""
}

// mergeSourceNames collapses per-keyword source names into a single report
// value: one name when all keywords resolved the same way, "mixed" otherwise.
func mergeSourceNames(sources []string) string {
	uniq := map[string]bool{}
	for _, s := range sources {
		if s != "" {
			uniq[s] = true
		}
	}
	switch len(uniq) {
	case 0:
		return "none"
	case 1:
		for s := range uniq {
			return s
		}
	}
	names := make([]string, 0, len(uniq))
	for s := range uniq {
		names = append(names, s)
	}
	sort.Strings(names)
	return "mixed:" + strings.Join(names, "+")
}
