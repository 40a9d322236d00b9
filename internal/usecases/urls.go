package usecases

import (
	"regexp"
	"strings"
)

var (
	protocolURLRe = regexp.MustCompile(`https?://[a-zA-Z0-9$\-_@.&+!*(),]+(?:%[0-9a-fA-F]{2})*[a-zA-Z0-9$\-_@.&+!*(),%/]*`)
	bareDomainRe  = regexp.MustCompile(`(?:www\.)?[a-zA-Z0-9-]+\.[a-zA-Z]{2,}(?:/[^\s]*)?`)
)

// ExtractURLs finds links mentioned in post text: full URLs first, then
// bare domains like "reuters.com/article" which get an https:// prefix.
// Order of first appearance is preserved; duplicates are dropped.
func ExtractURLs(text string) []string {
	var urls []string
	seen := map[string]bool{}

	add := func(u string) {
		if !seen[u] {
			seen[u] = true
			urls = append(urls, u)
		}
	}

	for _, u := range protocolURLRe.FindAllString(text, -1) {
		add(u)
	}

	for _, u := range bareDomainRe.FindAllString(text, -1) {
		if strings.HasPrefix(u, "http") {
			continue
		}
		// Skip fragments that are already part of a matched full URL.
		if containedInAny(text, urls, u) {
			continue
		}
		add("https://" + u)
	}

	return urls
}

// containedInAny reports whether candidate only occurs inside one of the
// already-extracted URLs.
func containedInAny(text string, urls []string, candidate string) bool {
	occurrences := strings.Count(text, candidate)
	inside := 0
	for _, u := range urls {
		inside += strings.Count(u, candidate)
	}
	return occurrences <= inside
}
