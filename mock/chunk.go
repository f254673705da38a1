package mock

import (
	"context"

	"github.com/fwojciec/newsrag"
)

var _ newsrag.ChunkService = (*ChunkService)(nil)

// ChunkService is a mock implementation of newsrag.ChunkService.
type ChunkService struct {
	CreateChunksFn         func(ctx context.Context, chunks []*newsrag.Chunk) error
	DeleteChunksBySourceFn func(ctx context.Context, sourceID string) error
	CountChunksFn          func(ctx context.Context) (int, error)
	SearchChunksFn         func(ctx context.Context, vector []float32, limit int) ([]newsrag.SearchResult, error)
}

func (s *ChunkService) CreateChunks(ctx context.Context, chunks []*newsrag.Chunk) error {
	return s.CreateChunksFn(ctx, chunks)
}

func (s *ChunkService) DeleteChunksBySource(ctx context.Context, sourceID string) error {
	return s.DeleteChunksBySourceFn(ctx, sourceID)
}

func (s *ChunkService) CountChunks(ctx context.Context) (int, error) {
	return s.CountChunksFn(ctx)
}

func (s *ChunkService) SearchChunks(ctx context.Context, vector []float32, limit int) ([]newsrag.SearchResult, error) {
	return s.SearchChunksFn(ctx, vector, limit)
}

var _ newsrag.Embedder = (*Embedder)(nil)

// Embedder is a mock implementation of newsrag.Embedder.
type Embedder struct {
	EmbedDocumentsFn func(ctx context.Context, texts []string) ([][]float32, error)
	EmbedQueryFn     func(ctx context.Context, text string) ([]float32, error)
}

func (e *Embedder) EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error) {
	return e.EmbedDocumentsFn(ctx, texts)
}

func (e *Embedder) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	return e.EmbedQueryFn(ctx, text)
}

var _ newsrag.IndexService = (*IndexService)(nil)

// IndexService is a mock implementation of newsrag.IndexService.
type IndexService struct {
	EnsureIndexFn func(ctx context.Context, cfg newsrag.IndexConfig) error
	FindIndexFn   func(ctx context.Context, name string) (*newsrag.IndexConfig, error)
}

func (s *IndexService) EnsureIndex(ctx context.Context, cfg newsrag.IndexConfig) error {
	return s.EnsureIndexFn(ctx, cfg)
}

func (s *IndexService) FindIndex(ctx context.Context, name string) (*newsrag.IndexConfig, error) {
	return s.FindIndexFn(ctx, name)
}
