package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/newsrag"
)

var _ newsrag.ArticleWriter = (*LoggingArticleWriter)(nil)

// LoggingArticleWriter wraps an ArticleWriter with debug logging.
type LoggingArticleWriter struct {
	next   newsrag.ArticleWriter
	logger *slog.Logger
}

// NewLoggingArticleWriter creates a new LoggingArticleWriter.
func NewLoggingArticleWriter(next newsrag.ArticleWriter, logger *slog.Logger) *LoggingArticleWriter {
	return &LoggingArticleWriter{next: next, logger: logger}
}

// CreateArticle delegates to the wrapped writer and logs the outcome.
// Duplicates are logged with their error code rather than as failures.
func (w *LoggingArticleWriter) CreateArticle(ctx context.Context, article *newsrag.Article) (err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"url", article.SourceURL,
			"bytes", len(article.Body),
			"duration", time.Since(begin),
		}
		if code := newsrag.ErrorCode(err); code == newsrag.ECONFLICT {
			attrs = append(attrs, "code", code)
		} else {
			attrs = append(attrs, "err", err)
		}
		w.logger.Debug("store article", attrs...)
	}(time.Now())
	return w.next.CreateArticle(ctx, article)
}
