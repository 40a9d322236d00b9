// Package fixtures provides HTML test fixtures for the search scraper.
package fixtures

// GenerateSearchResults creates a rendered search page with two verified
// posts and one unverified post.
func GenerateSearchResults() string {
	return `
<!DOCTYPE html>
<html>
<head><title>Search</title></head>
<body>
<section role="region">
<article data-testid="tweet">
    <div data-testid="User-Name">
        <span>Tech Fan</span>
        <a href="/techfan/status/1881001">@techfan</a>
        <svg data-testid="icon-verified"></svg>
    </div>
    <div data-testid="tweetText" dir="ltr">
        Apple earnings beat expectations $AAPL
    </div>
    <time datetime="2026-08-29T10:00:00.000Z">10:00 AM · Aug 29, 2026</time>
    <div role="group" aria-label="27 replies, 45 reposts, 150 likes, 5000 views"></div>
</article>
<article data-testid="tweet">
    <div data-testid="User-Name">
        <span>Trader</span>
        <a href="/trader/status/1881002">@trader</a>
        <svg data-testid="icon-verified"></svg>
    </div>
    <div data-testid="tweetText" dir="ltr">
        Apple stock looking bullish today! $AAPL
    </div>
    <time datetime="2026-08-28T09:30:00.000Z">9:30 AM · Aug 28, 2026</time>
    <div role="group" aria-label="4 replies, 32 reposts, 89 likes"></div>
</article>
<article data-testid="tweet">
    <div data-testid="User-Name">
        <span>Random</span>
        <a href="/random/status/1881003">@random</a>
    </div>
    <div data-testid="tweetText" dir="ltr">
        Apple is fine I guess
    </div>
    <time datetime="2026-08-28T08:00:00.000Z">8:00 AM · Aug 28, 2026</time>
    <div role="group" aria-label="1 reply, 2 reposts, 3 likes, 40 views"></div>
</article>
</section>
</body>
</html>
`
}

// GenerateAbbreviatedCounts creates a search page whose engagement counts
// use display abbreviations.
func GenerateAbbreviatedCounts() string {
	return `
<!DOCTYPE html>
<html>
<body>
<section role="region">
<article data-testid="tweet">
    <div data-testid="User-Name">
        <span>Crypto</span>
        <a href="/crypto/status/1881010">@crypto</a>
        <svg data-testid="icon-verified"></svg>
    </div>
    <div data-testid="tweetText" dir="ltr">
        Bitcoin adoption is accelerating $BTC
    </div>
    <time datetime="2026-08-29T12:00:00.000Z">12:00 PM · Aug 29, 2026</time>
    <div role="group" aria-label="120 replies, 1.2K reposts, 3.4K likes, 1.1M views"></div>
</article>
</section>
</body>
</html>
`
}

// GenerateMissingText creates a post block with no text (skipped by the
// parser).
func GenerateMissingText() string {
	return `
<!DOCTYPE html>
<html>
<body>
<section role="region">
<article data-testid="tweet">
    <div>This post is unavailable.</div>
</article>
</section>
</body>
</html>
`
}
