package source

import (
	"context"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"alpha-radar/internal/domain"
	"alpha-radar/pkg/log"

	"github.com/chromedp/chromedp"
)

// defaultPacing spaces consecutive searches so the scraper does not hammer
// the search page.
const defaultPacing = 2 * time.Second

// SearchScraper drives a headless browser through the x.com search page and
// parses posts out of the rendered HTML. It is the fallback when the live
// API is unavailable or rejects the request.
type SearchScraper struct {
	pool      *BrowserPool
	selectors *SelectorConfig
	pacing    time.Duration

	mu         sync.Mutex
	lastSearch time.Time
}

// NewSearchScraper creates the browser-based search adapter. pacing is the
// minimum gap between searches; <= 0 uses the default.
func NewSearchScraper(pool *BrowserPool, selectors *SelectorConfig, pacing time.Duration) *SearchScraper {
	if pacing <= 0 {
		pacing = defaultPacing
	}
	return &SearchScraper{
		pool:      pool,
		selectors: selectors,
		pacing:    pacing,
	}
}

// pace blocks until the pacing interval since the previous search has
// passed, or the context is done.
func (s *SearchScraper) pace(ctx context.Context) error {
	s.mu.Lock()
	now := time.Now()
	wait := s.pacing - now.Sub(s.lastSearch)
	if wait < 0 {
		wait = 0
	}
	s.lastSearch = now.Add(wait)
	s.mu.Unlock()

	if wait == 0 {
		return nil
	}
	select {
	case <-time.After(wait):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *SearchScraper) Name() string { return "scraper" }

// Search renders the live search results for the merged query and parses up
// to limit posts. Non-verified authors and reposts are filtered out here
// since the page-level search operators are not reliable.
func (s *SearchScraper) Search(ctx context.Context, q domain.KeywordQuery, limit int) ([]domain.Post, error) {
	if err := s.pace(ctx); err != nil {
		return nil, err
	}

	query := q.Merged() + " filter:verified -filter:retweets"
	pageURL := "https://x.com/search?q=" + url.QueryEscape(query) + "&src=typed_query&f=live"

	var html string

	err := s.pool.WithTab(func(tabCtx context.Context) error {
		// WithTab hands out a fresh tab context; carry over the caller's
		// deadline so a chain timeout still applies.
		if deadline, ok := ctx.Deadline(); ok {
			var cancel context.CancelFunc
			tabCtx, cancel = context.WithDeadline(tabCtx, deadline)
			defer cancel()
		}

		return chromedp.Run(tabCtx,
			chromedp.Navigate(pageURL),
			chromedp.WaitVisible(s.selectors.GetPostContainer(), chromedp.ByQuery),
			chromedp.WaitVisible(s.selectors.GetPostText(), chromedp.ByQuery),
			chromedp.OuterHTML("html", &html),
		)
	})
	if err != nil {
		return nil, domain.ErrSearchFailed
	}

	posts := s.parseResults(html, limit)
	log.GlobalDebug("scraper parsed search results", "keyword", q.Keyword, "posts", len(posts))
	return posts, nil
}

var articleRe = regexp.MustCompile(`(?s)<article[^>]*data-testid="tweet".*?</article>`)

// parseResults extracts posts from a rendered search page.
func (s *SearchScraper) parseResults(html string, limit int) []domain.Post {
	var posts []domain.Post

	for _, block := range articleRe.FindAllString(html, -1) {
		if len(posts) >= limit {
			break
		}

		post, ok := parseArticle(block)
		if !ok {
			continue
		}
		if !post.Verified {
			continue
		}
		posts = append(posts, post)
	}
	return posts
}

// parseArticle pulls one post out of an <article> block. Text is essential;
// everything else degrades to zero values.
func parseArticle(block string) (domain.Post, bool) {
	post := domain.Post{}

	post.Text = extractPostText(block)
	if post.Text == "" {
		return post, false
	}

	if handle, id := extractStatusRef(block); id != "" {
		post.Author = "@" + handle
		post.ID = id
	}

	post.Timestamp = extractTimestamp(block)
	post.Verified = strings.Contains(block, `data-testid="icon-verified"`)

	reposts, likes, views := extractMetrics(block)
	post.Retweets = reposts
	post.Likes = likes
	post.Views = views
	if post.Views == 0 {
		// View counts render lazily; estimate from the counts we got.
		post.Views = (post.Likes + post.Retweets) * 10
	}

	return post, true
}

// extractPostText extracts the post text, stripping markup.
func extractPostText(block string) string {
	re := regexp.MustCompile(`(?s)data-testid="tweetText"[^>]*>(.*?)</div>`)
	matches := re.FindStringSubmatch(block)
	if len(matches) < 2 {
		return ""
	}
	return cleanText(stripHTML(matches[1]))
}

// extractStatusRef extracts the author handle and status id from the
// permalink inside a result block.
func extractStatusRef(block string) (handle, id string) {
	re := regexp.MustCompile(`href="/([a-zA-Z0-9_]+)/status/(\d+)"`)
	matches := re.FindStringSubmatch(block)
	if len(matches) < 3 {
		return "", ""
	}
	return matches[1], matches[2]
}

// extractTimestamp returns the datetime attribute as reported, unparsed.
func extractTimestamp(block string) string {
	re := regexp.MustCompile(`<time[^>]*datetime="([^"]+)"`)
	matches := re.FindStringSubmatch(block)
	if len(matches) < 2 {
		return ""
	}
	return matches[1]
}

var metricsRe = regexp.MustCompile(`aria-label="([^"]*(?:repl|repost|like|view)[^"]*)"`)

// extractMetrics parses engagement counts from the grouped metrics
// aria-label, e.g. "27 replies, 33 reposts, 256 likes, 1062 views".
func extractMetrics(block string) (reposts, likes, views int) {
	matches := metricsRe.FindAllStringSubmatch(block, -1)
	for _, m := range matches {
		label := m[1]
		reposts = pickCount(label, `(?:repost|reposts|retweet|retweets)`, reposts)
		likes = pickCount(label, `(?:like|likes)`, likes)
		views = pickCount(label, `(?:view|views)`, views)
	}
	return
}

// pickCount finds "<n> <unit>" inside an aria-label, keeping any count
// already found.
func pickCount(label, unit string, current int) int {
	if current != 0 {
		return current
	}
	re := regexp.MustCompile(`([\d,.]+[KMB]?)\s+` + unit)
	matches := re.FindStringSubmatch(label)
	if len(matches) < 2 {
		return current
	}
	return parseCount(matches[1])
}

// parseCount converts display counts like "1,062", "1.2K" or "3M" to ints.
func parseCount(s string) int {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	mult := 1.0
	switch {
	case strings.HasSuffix(s, "K"):
		mult, s = 1_000, strings.TrimSuffix(s, "K")
	case strings.HasSuffix(s, "M"):
		mult, s = 1_000_000, strings.TrimSuffix(s, "M")
	case strings.HasSuffix(s, "B"):
		mult, s = 1_000_000_000, strings.TrimSuffix(s, "B")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return int(v * mult)
}

// cleanText removes extra whitespace and trims the text.
func cleanText(text string) string {
	re := regexp.MustCompile(`\s+`)
	text = re.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// stripHTML removes HTML tags from a string.
func stripHTML(html string) string {
	re := regexp.MustCompile(`<[^>]*>`)
	return re.ReplaceAllString(html, "")
}
