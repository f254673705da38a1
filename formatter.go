package newsrag

import (
	"fmt"
	"strings"
)

// FormatResults formats retrieved chunks for display or LLM context.
// Each chunk is headed by its headline (or source URL) and metadata line.
// Chunks are separated by blank lines.
func FormatResults(results []SearchResult) string {
	if len(results) == 0 {
		return ""
	}

	parts := make([]string, 0, len(results))
	for i, r := range results {
		if r.Chunk == nil {
			continue
		}
		meta := r.Chunk.Metadata
		header := meta.Headline
		if header == "" {
			header = meta.SourceURL
		}
		var b strings.Builder
		fmt.Fprintf(&b, "## [%d] %s\n", i+1, header)
		var info []string
		if meta.Category != "" {
			info = append(info, meta.Category)
		}
		if meta.PublicationDate != "" {
			info = append(info, meta.PublicationDate)
		}
		if meta.SourceURL != "" && meta.SourceURL != header {
			info = append(info, meta.SourceURL)
		}
		if len(info) > 0 {
			b.WriteString(strings.Join(info, " | "))
			b.WriteString("\n")
		}
		b.WriteString(r.Chunk.Text)
		parts = append(parts, b.String())
	}

	return strings.Join(parts, "\n\n")
}
