package crawl

import (
	"net/url"
	"regexp"
)

// articleSuffix matches the numeric article ID the site appends to article
// slugs, e.g. ".../some-headline-slug-123456".
var articleSuffix = regexp.MustCompile(`-[0-9]+$`)

// IsArticleURL reports whether rawURL designates an article page rather than
// a section or listing page. The decision is purely syntactic: the URL path
// must end with a hyphen followed by one or more decimal digits.
func IsArticleURL(rawURL string) bool {
	path := rawURL
	if u, err := url.Parse(rawURL); err == nil {
		path = u.Path
	}
	return articleSuffix.MatchString(path)
}

// Classify splits canonical URLs into article and section buckets,
// preserving input order within each bucket.
func Classify(urls []string) (articles, sections []string) {
	for _, u := range urls {
		if IsArticleURL(u) {
			articles = append(articles, u)
		} else {
			sections = append(sections, u)
		}
	}
	return articles, sections
}
