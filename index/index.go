// Package index builds the vector index over stored articles and
// supplementary documents.
package index

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/fwojciec/newsrag"
	"golang.org/x/sync/errgroup"
)

// Defaults for indexing throughput.
const (
	DefaultBatchSize   = 100
	DefaultConcurrency = 4

	// pageSize is the number of articles loaded per query.
	pageSize = 500
)

// Indexer splits documents into chunks, embeds them, and stores them in the
// vector index.
type Indexer struct {
	Articles    newsrag.ArticleService
	Supplements newsrag.SupplementService
	Chunks      newsrag.ChunkService
	Indexes     newsrag.IndexService
	Embedder    newsrag.Embedder

	ChunkSize    int
	ChunkOverlap int
	BatchSize    int // texts per embedding request
	Concurrency  int // sources embedded in parallel
	Logger       *slog.Logger
}

// Result holds the outcome of an indexing run.
type Result struct {
	Sources int // documents indexed
	Chunks  int // chunks stored
	Skipped int // documents without text
}

// source is one document to be indexed.
type source struct {
	id       string
	kind     string
	text     string
	metadata newsrag.ChunkMetadata
}

// IndexAll rebuilds the chunks of every stored article and supplement.
// Returns ENOTFOUND if there is nothing to index.
func (ix *Indexer) IndexAll(ctx context.Context) (*Result, error) {
	if err := ix.Indexes.EnsureIndex(ctx, newsrag.DefaultIndexConfig()); err != nil {
		return nil, fmt.Errorf("ensure index: %w", err)
	}

	sources, err := ix.loadSources(ctx)
	if err != nil {
		return nil, err
	}
	if len(sources) == 0 {
		return nil, newsrag.Errorf(newsrag.ENOTFOUND, "no documents to index")
	}

	concurrency := ix.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	var indexed, chunks, skipped atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for _, src := range sources {
		g.Go(func() error {
			n, err := ix.indexSource(gctx, src)
			if err != nil {
				return fmt.Errorf("index %s %s: %w", src.kind, src.id, err)
			}
			if n == 0 {
				skipped.Add(1)
				return nil
			}
			indexed.Add(1)
			chunks.Add(int64(n))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &Result{Sources: int(indexed.Load()), Chunks: int(chunks.Load()), Skipped: int(skipped.Load())}
	ix.logger().Info("index built", "sources", result.Sources, "chunks", result.Chunks, "skipped", result.Skipped)
	return result, nil
}

// IndexSupplement stores text as a supplementary document and indexes it.
// Returns EINVALID if text is empty.
func (ix *Indexer) IndexSupplement(ctx context.Context, text string, now time.Time) (*newsrag.Supplement, int, error) {
	supplement := newsrag.NewSupplement(text, now)
	if err := supplement.Validate(); err != nil {
		return nil, 0, err
	}
	if err := ix.Indexes.EnsureIndex(ctx, newsrag.DefaultIndexConfig()); err != nil {
		return nil, 0, fmt.Errorf("ensure index: %w", err)
	}
	if err := ix.Supplements.CreateSupplement(ctx, supplement); err != nil {
		return nil, 0, err
	}

	n, err := ix.indexSource(ctx, supplementSource(supplement))
	if err != nil {
		return nil, 0, err
	}
	return supplement, n, nil
}

func (ix *Indexer) loadSources(ctx context.Context) ([]source, error) {
	var sources []source
	for offset := 0; ; offset += pageSize {
		articles, err := ix.Articles.FindArticles(ctx, newsrag.ArticleFilter{Offset: offset, Limit: pageSize})
		if err != nil {
			return nil, fmt.Errorf("load articles: %w", err)
		}
		for _, a := range articles {
			sources = append(sources, articleSource(a))
		}
		if len(articles) < pageSize {
			break
		}
	}

	if ix.Supplements != nil {
		supplements, err := ix.Supplements.FindSupplements(ctx)
		if err != nil {
			return nil, fmt.Errorf("load supplements: %w", err)
		}
		for _, s := range supplements {
			sources = append(sources, supplementSource(s))
		}
	}
	return sources, nil
}

// indexSource replaces the chunks of one document and returns how many were
// stored. Documents without text store nothing.
func (ix *Indexer) indexSource(ctx context.Context, src source) (int, error) {
	size, overlap := ix.ChunkSize, ix.ChunkOverlap
	if size <= 0 {
		size, overlap = newsrag.DefaultChunkSize, newsrag.DefaultChunkOverlap
	}
	texts := newsrag.SplitText(src.text, size, overlap)
	if len(texts) == 0 {
		return 0, nil
	}

	batch := ix.BatchSize
	if batch <= 0 {
		batch = DefaultBatchSize
	}
	vectors := make([][]float32, 0, len(texts))
	for start := 0; start < len(texts); start += batch {
		end := min(start+batch, len(texts))
		embedded, err := ix.Embedder.EmbedDocuments(ctx, texts[start:end])
		if err != nil {
			return 0, err
		}
		if len(embedded) != end-start {
			return 0, newsrag.Errorf(newsrag.EINTERNAL, "embedder returned %d vectors for %d texts", len(embedded), end-start)
		}
		vectors = append(vectors, embedded...)
	}

	chunks := make([]*newsrag.Chunk, len(texts))
	for i, text := range texts {
		chunks[i] = &newsrag.Chunk{
			SourceID:   src.id,
			SourceKind: src.kind,
			Position:   i,
			Text:       text,
			Embedding:  vectors[i],
			Metadata:   src.metadata,
		}
	}

	if err := ix.Chunks.DeleteChunksBySource(ctx, src.id); err != nil {
		return 0, err
	}
	if err := ix.Chunks.CreateChunks(ctx, chunks); err != nil {
		return 0, err
	}
	ix.logger().Debug("source indexed", "kind", src.kind, "id", src.id, "chunks", len(chunks))
	return len(chunks), nil
}

func (ix *Indexer) logger() *slog.Logger {
	if ix.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return ix.Logger
}

// articleSource embeds the headline with the body so headline words are
// searchable.
func articleSource(a *newsrag.Article) source {
	text := a.Body
	if a.Headline != nil && *a.Headline != "" && a.Body != "" {
		text = *a.Headline + "\n\n" + a.Body
	}
	return source{
		id:   a.ID,
		kind: newsrag.SourceArticle,
		text: text,
		metadata: newsrag.ChunkMetadata{
			Headline:        newsrag.StringValue(a.Headline),
			Category:        newsrag.StringValue(a.Category),
			PublicationDate: newsrag.StringValue(a.PublicationDate),
			SourceURL:       a.SourceURL,
		},
	}
}

func supplementSource(s *newsrag.Supplement) source {
	return source{
		id:   s.ID,
		kind: newsrag.SourceSupplement,
		text: s.Text,
		metadata: newsrag.ChunkMetadata{
			Headline:        newsrag.StringValue(s.Headline),
			Category:        newsrag.StringValue(s.Category),
			PublicationDate: newsrag.StringValue(s.PublicationDate),
		},
	}
}
