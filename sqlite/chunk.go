package sqlite

import (
	"context"
	"slices"

	"github.com/fwojciec/newsrag"
	"github.com/google/uuid"
)

// DefaultSearchLimit is the number of chunks SearchChunks returns when no
// limit is given.
const DefaultSearchLimit = 3

// Compile-time interface verification.
var _ newsrag.ChunkService = (*ChunkService)(nil)

// ChunkService implements newsrag.ChunkService using SQLite.
// Embeddings are stored as little-endian float32 blobs and searched by brute
// force cosine similarity.
type ChunkService struct {
	db *DB
}

// NewChunkService creates a new ChunkService.
func NewChunkService(db *DB) *ChunkService {
	return &ChunkService{db: db}
}

// CreateChunks stores chunks in a single transaction.
// Returns EINVALID if any chunk fails validation; nothing is stored then.
func (s *ChunkService) CreateChunks(ctx context.Context, chunks []*newsrag.Chunk) error {
	for _, c := range chunks {
		if err := c.Validate(); err != nil {
			return err
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO chunks (id, source_id, source_kind, position, text, embedding, headline, category, publication_date, source_url)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, c := range chunks {
		if c.ID == "" {
			c.ID = uuid.New().String()
		}
		if _, err := stmt.ExecContext(ctx, c.ID, c.SourceID, c.SourceKind, c.Position, c.Text,
			encodeVector(c.Embedding), c.Metadata.Headline, c.Metadata.Category,
			c.Metadata.PublicationDate, c.Metadata.SourceURL); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// DeleteChunksBySource removes all chunks of one article or supplement.
func (s *ChunkService) DeleteChunksBySource(ctx context.Context, sourceID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM chunks WHERE source_id = ?", sourceID)
	return err
}

// CountChunks returns the number of stored chunks.
func (s *ChunkService) CountChunks(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM chunks").Scan(&n)
	return n, err
}

// SearchChunks returns the limit chunks most similar to vector by cosine
// similarity, best first. A non-positive limit uses DefaultSearchLimit.
// Returns EINVALID if vector does not have EmbeddingDimensions values.
func (s *ChunkService) SearchChunks(ctx context.Context, vector []float32, limit int) ([]newsrag.SearchResult, error) {
	if len(vector) != newsrag.EmbeddingDimensions {
		return nil, newsrag.Errorf(newsrag.EINVALID, "query vector has %d dimensions, want %d", len(vector), newsrag.EmbeddingDimensions)
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, source_id, source_kind, position, text, embedding, headline, category, publication_date, source_url
		FROM chunks
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []newsrag.SearchResult
	for rows.Next() {
		var c newsrag.Chunk
		var blob []byte
		if err := rows.Scan(&c.ID, &c.SourceID, &c.SourceKind, &c.Position, &c.Text, &blob,
			&c.Metadata.Headline, &c.Metadata.Category, &c.Metadata.PublicationDate, &c.Metadata.SourceURL); err != nil {
			return nil, err
		}
		if c.Embedding, err = decodeVector(blob); err != nil {
			return nil, err
		}
		results = append(results, newsrag.SearchResult{Chunk: &c, Score: cosine(vector, c.Embedding)})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	slices.SortStableFunc(results, func(a, b newsrag.SearchResult) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		default:
			return 0
		}
	})
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}
