package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/fwojciec/newsrag"
	"github.com/fwojciec/newsrag/crawl"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ newsrag.ArticleService = (*ArticleService)(nil)

// ArticleService implements newsrag.ArticleService using SQLite.
type ArticleService struct {
	db *DB
}

// NewArticleService creates a new ArticleService.
func NewArticleService(db *DB) *ArticleService {
	return &ArticleService{db: db}
}

const articleColumns = "id, source_url, headline, publication_date, category, article, content_hash, crawled_at"

// CreateArticle stores a new article.
// Returns ECONFLICT if an article with the same source URL already exists,
// leaving the stored article unchanged.
func (s *ArticleService) CreateArticle(ctx context.Context, article *newsrag.Article) error {
	if err := article.Validate(); err != nil {
		return err
	}

	if article.ID == "" {
		article.ID = uuid.New().String()
	}
	if article.CrawledAt.IsZero() {
		article.CrawledAt = time.Now()
	}
	article.CrawledAt = article.CrawledAt.UTC().Truncate(time.Second)
	if article.ContentHash == "" {
		article.ContentHash = crawl.ComputeHash(article.Body)
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO articles (`+articleColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(source_url) DO NOTHING
	`, article.ID, article.SourceURL, nullString(article.Headline), nullString(article.PublicationDate),
		nullString(article.Category), article.Body, article.ContentHash, article.CrawledAt.Format(time.RFC3339))
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return newsrag.Errorf(newsrag.ECONFLICT, "article %s already exists", article.SourceURL)
	}
	return nil
}

// FindArticleByID retrieves an article by ID.
func (s *ArticleService) FindArticleByID(ctx context.Context, id string) (*newsrag.Article, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+articleColumns+" FROM articles WHERE id = ?", id)
	article, err := scanArticle(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, newsrag.Errorf(newsrag.ENOTFOUND, "article not found")
	}
	return article, err
}

// FindArticles retrieves articles matching the filter in crawl order.
func (s *ArticleService) FindArticles(ctx context.Context, filter newsrag.ArticleFilter) ([]*newsrag.Article, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + articleColumns + " FROM articles WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}
	if filter.Category != nil {
		query.WriteString(" AND category = ?")
		args = append(args, *filter.Category)
	}

	query.WriteString(" ORDER BY crawled_at ASC, rowid ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []*newsrag.Article
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, article)
	}
	return articles, rows.Err()
}

// CountArticles returns the number of stored articles.
func (s *ArticleService) CountArticles(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM articles").Scan(&n)
	return n, err
}

// DeleteArticle permanently removes an article and its chunks.
func (s *ArticleService) DeleteArticle(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	result, err := tx.ExecContext(ctx, "DELETE FROM articles WHERE id = ?", id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return newsrag.Errorf(newsrag.ENOTFOUND, "article not found")
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM chunks WHERE source_id = ?", id); err != nil {
		return err
	}
	return tx.Commit()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanArticle(row scanner) (*newsrag.Article, error) {
	var a newsrag.Article
	var headline, date, category sql.NullString
	var crawledAt string

	if err := row.Scan(&a.ID, &a.SourceURL, &headline, &date, &category, &a.Body, &a.ContentHash, &crawledAt); err != nil {
		return nil, err
	}
	a.Headline = stringPtr(headline)
	a.PublicationDate = stringPtr(date)
	a.Category = stringPtr(category)

	var err error
	if a.CrawledAt, err = parseRFC3339(crawledAt, "crawled_at"); err != nil {
		return nil, err
	}
	return &a, nil
}
