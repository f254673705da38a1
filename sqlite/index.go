package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/fwojciec/newsrag"
)

// Compile-time interface verification.
var _ newsrag.IndexService = (*IndexService)(nil)

// IndexService implements newsrag.IndexService using SQLite.
type IndexService struct {
	db *DB
}

// NewIndexService creates a new IndexService.
func NewIndexService(db *DB) *IndexService {
	return &IndexService{db: db}
}

// EnsureIndex records cfg if no index with its name exists.
// Returns ECONFLICT if an index with the same name but a different
// configuration exists, and EINVALID if cfg itself is invalid.
func (s *IndexService) EnsureIndex(ctx context.Context, cfg newsrag.IndexConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	existing, err := s.FindIndex(ctx, cfg.Name)
	switch {
	case newsrag.ErrorCode(err) == newsrag.ENOTFOUND:
		_, err := s.db.ExecContext(ctx, `
			INSERT INTO vector_indexes (name, dimensions, similarity, embedding_key, text_key)
			VALUES (?, ?, ?, ?, ?)
		`, cfg.Name, cfg.Dimensions, cfg.Similarity, cfg.EmbeddingKey, cfg.TextKey)
		return err
	case err != nil:
		return err
	case *existing != cfg:
		return newsrag.Errorf(newsrag.ECONFLICT, "index %q exists with a different configuration", cfg.Name)
	default:
		return nil
	}
}

// FindIndex returns the configuration of the named index.
func (s *IndexService) FindIndex(ctx context.Context, name string) (*newsrag.IndexConfig, error) {
	var cfg newsrag.IndexConfig
	err := s.db.QueryRowContext(ctx, `
		SELECT name, dimensions, similarity, embedding_key, text_key
		FROM vector_indexes
		WHERE name = ?
	`, name).Scan(&cfg.Name, &cfg.Dimensions, &cfg.Similarity, &cfg.EmbeddingKey, &cfg.TextKey)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, newsrag.Errorf(newsrag.ENOTFOUND, "index %q not found", name)
	}
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}
