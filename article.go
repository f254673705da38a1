package newsrag

import (
	"context"
	"time"
)

// Article represents a crawled news article.
// Optional metadata fields are nil when the page did not carry them.
type Article struct {
	ID              string    `json:"id"`
	SourceURL       string    `json:"sourceUrl"`
	Headline        *string   `json:"headline"`
	PublicationDate *string   `json:"publication_date"`
	Category        *string   `json:"category"`
	Body            string    `json:"article"`
	ContentHash     string    `json:"contentHash"`
	CrawledAt       time.Time `json:"crawledAt"`
}

// Validate returns an error if the article contains invalid fields.
func (a *Article) Validate() error {
	if a.SourceURL == "" {
		return Errorf(EINVALID, "article source URL required")
	}
	return nil
}

// Title returns the headline, falling back to the source URL.
func (a *Article) Title() string {
	if a.Headline != nil && *a.Headline != "" {
		return *a.Headline
	}
	return a.SourceURL
}

// ArticleMetadata holds the metadata fields extracted from an article page.
type ArticleMetadata struct {
	Headline        *string
	PublicationDate *string
	Category        *string
}

// ArticleWriter stores articles emitted by the crawler.
//
// CreateArticle must be idempotent: submitting an article whose source URL
// is already stored returns ECONFLICT and leaves storage unchanged.
type ArticleWriter interface {
	CreateArticle(ctx context.Context, article *Article) error
}

// ArticleService represents a service for managing articles.
type ArticleService interface {
	ArticleWriter

	// FindArticleByID retrieves an article by ID.
	// Returns ENOTFOUND if article does not exist.
	FindArticleByID(ctx context.Context, id string) (*Article, error)

	// FindArticles retrieves articles matching the filter.
	FindArticles(ctx context.Context, filter ArticleFilter) ([]*Article, error)

	// CountArticles returns the number of stored articles.
	CountArticles(ctx context.Context) (int, error)

	// DeleteArticle permanently removes an article and its chunks.
	// Returns ENOTFOUND if article does not exist.
	DeleteArticle(ctx context.Context, id string) error
}

// ArticleFilter represents a filter for FindArticles.
type ArticleFilter struct {
	ID        *string `json:"id"`
	SourceURL *string `json:"sourceUrl"`
	Category  *string `json:"category"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// StringPtr returns a pointer to s, or nil when s is empty.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// StringValue returns the value of p, or "" when p is nil.
func StringValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
