package crawl

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// ComputeHash fingerprints an article body. The crawler and the SQLite sink
// both use it, so a stored hash always matches a recomputed one.
func ComputeHash(body string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(body))
}

// TruncateURL fits an article URL into a progress line of width columns.
// The slug at the end identifies the article, so the head is dropped.
func TruncateURL(url string, width int) string {
	switch {
	case width <= 0:
		return ""
	case len(url) <= width:
		return url
	case width < 4:
		return url[:width]
	}
	return "..." + url[len(url)-(width-3):]
}

const (
	kib = 1 << 10
	mib = 1 << 20
)

// FormatBytes renders the stored body size for the crawl summary.
func FormatBytes(n int) string {
	if n >= mib {
		return fmt.Sprintf("%.1f MB", float64(n)/mib)
	}
	if n >= kib {
		return fmt.Sprintf("%.1f KB", float64(n)/kib)
	}
	return fmt.Sprintf("%d B", n)
}

// FormatTokens renders an approximate token total, rounded to thousands
// once it passes 999.
func FormatTokens(n int) string {
	if n >= 1000 {
		return fmt.Sprintf("~%dk tokens", (n+500)/1000)
	}
	return fmt.Sprintf("~%d tokens", n)
}
