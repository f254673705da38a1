package index_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/fwojciec/newsrag"
	"github.com/fwojciec/newsrag/index"
	"github.com/fwojciec/newsrag/mock"
	"github.com/fwojciec/newsrag/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEmbedder maps each text to a unit vector chosen by its length.
type fakeEmbedder struct {
	mu    sync.Mutex
	calls [][]string
}

func (e *fakeEmbedder) mock() *mock.Embedder {
	vector := func(text string) []float32 {
		v := make([]float32, newsrag.EmbeddingDimensions)
		v[len([]rune(text))%newsrag.EmbeddingDimensions] = 1
		return v
	}
	return &mock.Embedder{
		EmbedDocumentsFn: func(_ context.Context, texts []string) ([][]float32, error) {
			e.mu.Lock()
			e.calls = append(e.calls, texts)
			e.mu.Unlock()
			out := make([][]float32, len(texts))
			for i, t := range texts {
				out[i] = vector(t)
			}
			return out, nil
		},
		EmbedQueryFn: func(_ context.Context, text string) ([]float32, error) {
			return vector(text), nil
		},
	}
}

type fixture struct {
	db       *sqlite.DB
	articles *sqlite.ArticleService
	chunks   *sqlite.ChunkService
	embedder *fakeEmbedder
	indexer  *index.Indexer
}

func setup(t *testing.T) *fixture {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })

	f := &fixture{
		db:       db,
		articles: sqlite.NewArticleService(db),
		chunks:   sqlite.NewChunkService(db),
		embedder: &fakeEmbedder{},
	}
	f.indexer = &index.Indexer{
		Articles:    f.articles,
		Supplements: sqlite.NewSupplementService(db),
		Chunks:      f.chunks,
		Indexes:     sqlite.NewIndexService(db),
		Embedder:    f.embedder.mock(),
		ChunkSize:   100,
		Concurrency: 2,
	}
	return f
}

func (f *fixture) addArticle(t *testing.T, url, headline, body string) *newsrag.Article {
	t.Helper()
	a := &newsrag.Article{SourceURL: url, Headline: newsrag.StringPtr(headline), Body: body}
	require.NoError(t, f.articles.CreateArticle(context.Background(), a))
	return a
}

func TestIndexer_IndexAll(t *testing.T) {
	t.Parallel()

	t.Run("chunks and stores every article", func(t *testing.T) {
		t.Parallel()

		f := setup(t)
		ctx := context.Background()
		f.addArticle(t, "https://www.delfi.lt/a-1", "Pirma", "Trumpas tekstas.")
		f.addArticle(t, "https://www.delfi.lt/b-2", "Antra", strings.Repeat("Ilgas sakinys apie orus. ", 20))

		result, err := f.indexer.IndexAll(ctx)

		require.NoError(t, err)
		assert.Equal(t, 2, result.Sources)
		assert.Greater(t, result.Chunks, 2)
		n, err := f.chunks.CountChunks(ctx)
		require.NoError(t, err)
		assert.Equal(t, result.Chunks, n)
	})

	t.Run("records the index definition", func(t *testing.T) {
		t.Parallel()

		f := setup(t)
		f.addArticle(t, "https://www.delfi.lt/a-1", "Pirma", "Tekstas.")

		_, err := f.indexer.IndexAll(context.Background())
		require.NoError(t, err)

		cfg, err := sqlite.NewIndexService(f.db).FindIndex(context.Background(), newsrag.DefaultIndexName)
		require.NoError(t, err)
		assert.Equal(t, newsrag.DefaultIndexConfig(), *cfg)
	})

	t.Run("replaces chunks on reindex", func(t *testing.T) {
		t.Parallel()

		f := setup(t)
		ctx := context.Background()
		f.addArticle(t, "https://www.delfi.lt/a-1", "Pirma", "Tekstas.")

		first, err := f.indexer.IndexAll(ctx)
		require.NoError(t, err)
		_, err = f.indexer.IndexAll(ctx)
		require.NoError(t, err)

		n, err := f.chunks.CountChunks(ctx)
		require.NoError(t, err)
		assert.Equal(t, first.Chunks, n)
	})

	t.Run("carries article metadata into chunks", func(t *testing.T) {
		t.Parallel()

		f := setup(t)
		ctx := context.Background()
		a := &newsrag.Article{
			SourceURL:       "https://www.delfi.lt/sportas/a-1",
			Headline:        newsrag.StringPtr("Pergalė"),
			Category:        newsrag.StringPtr("Sportas"),
			PublicationDate: newsrag.StringPtr("2024-05-01"),
			Body:            "Žalgiris laimėjo.",
		}
		require.NoError(t, f.articles.CreateArticle(ctx, a))

		_, err := f.indexer.IndexAll(ctx)
		require.NoError(t, err)

		results, err := f.chunks.SearchChunks(ctx, make([]float32, newsrag.EmbeddingDimensions), 1)
		require.NoError(t, err)
		require.Len(t, results, 1)
		md := results[0].Chunk.Metadata
		assert.Equal(t, "Pergalė", md.Headline)
		assert.Equal(t, "Sportas", md.Category)
		assert.Equal(t, "2024-05-01", md.PublicationDate)
		assert.Equal(t, a.SourceURL, md.SourceURL)
		assert.Equal(t, "Pergalė Žalgiris laimėjo.", results[0].Chunk.Text)
	})

	t.Run("skips articles without body", func(t *testing.T) {
		t.Parallel()

		f := setup(t)
		f.addArticle(t, "https://www.delfi.lt/a-1", "Tuščia", "")
		f.addArticle(t, "https://www.delfi.lt/b-2", "Pilna", "Tekstas.")

		result, err := f.indexer.IndexAll(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 1, result.Sources)
		assert.Equal(t, 1, result.Skipped)
	})

	t.Run("embeds in batches", func(t *testing.T) {
		t.Parallel()

		f := setup(t)
		f.indexer.ChunkSize = 30
		f.indexer.ChunkOverlap = 0
		f.indexer.BatchSize = 2
		f.addArticle(t, "https://www.delfi.lt/a-1", "H", strings.Repeat("Sakinys numeris vienas. ", 10))

		result, err := f.indexer.IndexAll(context.Background())

		require.NoError(t, err)
		for _, call := range f.embedder.calls {
			assert.LessOrEqual(t, len(call), 2)
		}
		assert.Len(t, f.embedder.calls, (result.Chunks+1)/2)
	})

	t.Run("returns ENOTFOUND when nothing is stored", func(t *testing.T) {
		t.Parallel()

		_, err := setup(t).indexer.IndexAll(context.Background())

		assert.Equal(t, newsrag.ENOTFOUND, newsrag.ErrorCode(err))
	})

	t.Run("propagates embedder failure", func(t *testing.T) {
		t.Parallel()

		f := setup(t)
		f.addArticle(t, "https://www.delfi.lt/a-1", "Pirma", "Tekstas.")
		f.indexer.Embedder = &mock.Embedder{
			EmbedDocumentsFn: func(context.Context, []string) ([][]float32, error) {
				return nil, errors.New("quota exceeded")
			},
		}

		_, err := f.indexer.IndexAll(context.Background())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "quota exceeded")
	})
}

func TestIndexer_IndexSupplement(t *testing.T) {
	t.Parallel()

	t.Run("stores and indexes supplement", func(t *testing.T) {
		t.Parallel()

		f := setup(t)
		ctx := context.Background()
		now := time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)

		supplement, n, err := f.indexer.IndexSupplement(ctx, "Papildoma informacija apie rinkimus.", now)

		require.NoError(t, err)
		assert.Equal(t, 1, n)
		assert.NotEmpty(t, supplement.ID)
		assert.Equal(t, "2024.06.01 09:30", newsrag.StringValue(supplement.PublicationDate))

		results, err := f.chunks.SearchChunks(ctx, make([]float32, newsrag.EmbeddingDimensions), 1)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, newsrag.SourceSupplement, results[0].Chunk.SourceKind)
		assert.Equal(t, newsrag.SupplementHeadline, results[0].Chunk.Metadata.Headline)
	})

	t.Run("supplements are included in full reindex", func(t *testing.T) {
		t.Parallel()

		f := setup(t)
		ctx := context.Background()
		_, _, err := f.indexer.IndexSupplement(ctx, "Papildoma informacija.", time.Now())
		require.NoError(t, err)

		result, err := f.indexer.IndexAll(ctx)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Sources)
	})

	t.Run("rejects empty text", func(t *testing.T) {
		t.Parallel()

		_, _, err := setup(t).indexer.IndexSupplement(context.Background(), "\n  \n", time.Now())

		assert.Equal(t, newsrag.EINVALID, newsrag.ErrorCode(err))
	})
}
