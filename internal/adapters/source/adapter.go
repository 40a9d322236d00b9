// Package source provides the post discovery adapters: the live search API,
// the browser-based scraper, and the synthetic dataset, behind a common
// interface with ordered fallback.
package source

import (
	"context"

	"alpha-radar/internal/domain"
)

// Adapter fetches recent posts matching a merged keyword query.
// Implementations return the posts they found; an empty slice with a nil
// error means the source worked but nothing matched.
type Adapter interface {
	// Search runs the merged query and returns up to limit posts.
	Search(ctx context.Context, q domain.KeywordQuery, limit int) ([]domain.Post, error)

	// Name identifies the adapter in reports and logs.
	Name() string
}
