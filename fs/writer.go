// Package fs provides file-based export of articles.
package fs

import (
	"context"
	"errors"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fwojciec/newsrag"
)

// URLToPath converts an article URL to a relative file path.
// Example: https://www.delfi.lt/sportas/pergale-1 → sportas/pergale-1.md
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", newsrag.Errorf(newsrag.EINVALID, "invalid article URL %q", rawURL)
	}

	p := u.Path

	// Handle root or trailing slash → index.md
	if p == "" || p == "/" {
		return "index.md", nil
	}
	trailing := strings.HasSuffix(p, "/")

	// Cleaning against the root keeps ".." segments inside the export dir.
	p = strings.TrimPrefix(path.Clean("/"+p), "/")
	if p == "" {
		return "index.md", nil
	}
	if trailing {
		return p + "/index.md", nil
	}
	return p + ".md", nil
}

// FormatArticle formats an article as markdown with YAML frontmatter.
func FormatArticle(a *newsrag.Article) string {
	var b strings.Builder
	b.WriteString("---\n")
	writeField(&b, "source", a.SourceURL)
	writeField(&b, "headline", newsrag.StringValue(a.Headline))
	writeField(&b, "category", newsrag.StringValue(a.Category))
	writeField(&b, "published", newsrag.StringValue(a.PublicationDate))
	if !a.CrawledAt.IsZero() {
		writeField(&b, "crawled", a.CrawledAt.Format("2006-01-02"))
	}
	b.WriteString("---\n\n")
	if a.Headline != nil && *a.Headline != "" {
		b.WriteString("# ")
		b.WriteString(*a.Headline)
		b.WriteString("\n\n")
	}
	b.WriteString(a.Body)
	return b.String()
}

// writeField writes one frontmatter line, skipping empty values.
func writeField(b *strings.Builder, key, value string) {
	if value == "" {
		return
	}
	b.WriteString(key)
	b.WriteString(": ")
	if needsQuote(value) {
		value = strconv.Quote(value)
	}
	b.WriteString(value)
	b.WriteByte('\n')
}

func needsQuote(s string) bool {
	if strings.Contains(s, ": ") || strings.Contains(s, " #") || strings.ContainsAny(s, "\n\"") {
		return true
	}
	return strings.ContainsRune("'&*!|>%@`[]{},?-#", rune(s[0]))
}

// Ensure Writer implements newsrag.ArticleWriter at compile time.
var _ newsrag.ArticleWriter = (*Writer)(nil)

// Writer writes articles as markdown files to a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// CreateArticle writes an article to disk as a markdown file.
// Returns ECONFLICT if the file already exists.
func (w *Writer) CreateArticle(ctx context.Context, a *newsrag.Article) error {
	if err := a.Validate(); err != nil {
		return err
	}

	relPath, err := URLToPath(a.SourceURL)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(w.baseDir, filepath.FromSlash(relPath))

	// Create parent directories
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	f, err := os.OpenFile(fullPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return newsrag.Errorf(newsrag.ECONFLICT, "%s already exported", relPath)
		}
		return err
	}
	if _, err := f.WriteString(FormatArticle(a)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
