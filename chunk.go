package newsrag

import (
	"context"
)

// Chunk source kinds.
const (
	SourceArticle    = "article"
	SourceSupplement = "supplement"
)

// Chunk represents a section of an article or supplement optimized for
// embedding and retrieval.
type Chunk struct {
	ID         string        `json:"id"`
	SourceID   string        `json:"sourceId"`
	SourceKind string        `json:"sourceKind"`
	Position   int           `json:"position"`
	Text       string        `json:"text"`
	Embedding  []float32     `json:"embedding,omitempty"`
	Metadata   ChunkMetadata `json:"metadata"`
}

// ChunkMetadata contains contextual information about a chunk.
type ChunkMetadata struct {
	Headline        string `json:"headline,omitempty"`
	Category        string `json:"category,omitempty"`
	PublicationDate string `json:"publication_date,omitempty"`

	// Source URL for citation. Empty for supplements.
	SourceURL string `json:"sourceUrl,omitempty"`
}

// Validate returns an error if the chunk contains invalid fields.
func (c *Chunk) Validate() error {
	if c.SourceID == "" {
		return Errorf(EINVALID, "chunk source ID required")
	}
	if c.SourceKind != SourceArticle && c.SourceKind != SourceSupplement {
		return Errorf(EINVALID, "chunk source kind %q unknown", c.SourceKind)
	}
	if c.Text == "" {
		return Errorf(EINVALID, "chunk text required")
	}
	if len(c.Embedding) != EmbeddingDimensions {
		return Errorf(EINVALID, "chunk embedding has %d dimensions, want %d", len(c.Embedding), EmbeddingDimensions)
	}
	return nil
}

// ChunkService represents a service for managing embedded chunks.
type ChunkService interface {
	// CreateChunks stores multiple chunks in a batch.
	CreateChunks(ctx context.Context, chunks []*Chunk) error

	// DeleteChunksBySource removes all chunks of one article or supplement.
	DeleteChunksBySource(ctx context.Context, sourceID string) error

	// CountChunks returns the number of stored chunks.
	CountChunks(ctx context.Context) (int, error)

	// SearchChunks returns the limit chunks most similar to vector,
	// ordered by descending cosine similarity.
	SearchChunks(ctx context.Context, vector []float32, limit int) ([]SearchResult, error)
}

// SearchResult represents a search match.
type SearchResult struct {
	Chunk *Chunk  `json:"chunk"`
	Score float32 `json:"score"`
}

// Embedder turns text into embedding vectors of EmbeddingDimensions length.
type Embedder interface {
	// EmbedDocuments embeds texts that will be stored in the index.
	EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error)

	// EmbedQuery embeds a search query.
	EmbedQuery(ctx context.Context, text string) ([]float32, error)
}
