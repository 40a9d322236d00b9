// Package cache stores finished scan reports so a repeated keyword set
// within the TTL is served without rerunning the pipeline.
package cache

import (
	"sort"
	"strings"
	"time"

	"alpha-radar/internal/domain"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// defaultSize bounds how many reports are kept before the LRU evicts.
const defaultSize = 64

// ReportCache is an in-memory, TTL-bounded cache of scan reports keyed by
// their keyword set.
type ReportCache struct {
	lru *expirable.LRU[string, *domain.ScanReport]
}

// NewReportCache creates a cache whose entries expire after ttl.
func NewReportCache(ttl time.Duration) *ReportCache {
	return &ReportCache{
		lru: expirable.NewLRU[string, *domain.ScanReport](defaultSize, nil, ttl),
	}
}

// NormalizedKey canonicalizes a keyword set: lowercased, sorted, joined.
// "AAPL,TSLA" and "tsla, aapl" hit the same entry.
func NormalizedKey(keywords []string) string {
	normalized := make([]string, 0, len(keywords))
	for _, k := range keywords {
		k = strings.ToLower(strings.TrimSpace(k))
		if k != "" {
			normalized = append(normalized, k)
		}
	}
	sort.Strings(normalized)
	return strings.Join(normalized, ",")
}

// Get retrieves a cached report for the keyword set, if fresh.
func (c *ReportCache) Get(keywords []string) (*domain.ScanReport, bool) {
	return c.lru.Get(NormalizedKey(keywords))
}

// Set stores a finished report under its keyword set.
func (c *ReportCache) Set(keywords []string, report *domain.ScanReport) {
	c.lru.Add(NormalizedKey(keywords), report)
}

// Len reports how many entries are currently cached.
func (c *ReportCache) Len() int {
	return c.lru.Len()
}
