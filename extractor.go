package newsrag

// LinkExtractor pulls hyperlink targets out of an HTML page.
type LinkExtractor interface {
	// ExtractLinks returns every href value found on the page, in document
	// order, without filtering, resolving or deduplicating them.
	ExtractLinks(html string) ([]string, error)
}

// ArticleExtractor pulls structured fields out of an article page.
// A missing field is not an error: it is reported as nil (metadata) or ""
// (body). Errors are reserved for pages that cannot be parsed at all.
type ArticleExtractor interface {
	// ExtractArticle parses html once and returns the page metadata and
	// body text.
	ExtractArticle(html string) (*ArticleMetadata, string, error)
}

// ExtractResult holds the main content found by a generic Extractor.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// PublicationDate is the publication date found in page metadata,
	// formatted as YYYY-MM-DD, or "" when none was found.
	PublicationDate string

	// Category is the first category found in page metadata, if any.
	Category string

	// ContentHTML is the main content as clean HTML.
	// Boilerplate (nav, footer, sidebar, ads) has been removed.
	ContentHTML string
}

// Extractor extracts main content from arbitrary HTML pages, removing
// boilerplate. It is used as a fallback when site selectors find no body.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}
