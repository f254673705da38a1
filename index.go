package newsrag

import "context"

// Vector index contract values. Downstream retrieval assumes this schema, so
// chunks are always stored with these dimensions and field names.
const (
	DefaultIndexName    = "vector_index"
	EmbeddingDimensions = 768
	SimilarityCosine    = "cosine"
	EmbeddingKey        = "embedding"
	TextKey             = "text"
)

// IndexConfig describes the vector search index built over chunks.
type IndexConfig struct {
	Name         string `json:"name"`
	Dimensions   int    `json:"numDimensions"`
	Similarity   string `json:"similarity"`
	EmbeddingKey string `json:"path"`
	TextKey      string `json:"textKey"`
}

// DefaultIndexConfig returns the index definition used for the corpus.
func DefaultIndexConfig() IndexConfig {
	return IndexConfig{
		Name:         DefaultIndexName,
		Dimensions:   EmbeddingDimensions,
		Similarity:   SimilarityCosine,
		EmbeddingKey: EmbeddingKey,
		TextKey:      TextKey,
	}
}

// Validate returns an error if the config deviates from the fixed contract.
func (c IndexConfig) Validate() error {
	if c.Name == "" {
		return Errorf(EINVALID, "index name required")
	}
	if c.Dimensions != EmbeddingDimensions {
		return Errorf(EINVALID, "index dimensions must be %d, got %d", EmbeddingDimensions, c.Dimensions)
	}
	if c.Similarity != SimilarityCosine {
		return Errorf(EINVALID, "index similarity must be %q, got %q", SimilarityCosine, c.Similarity)
	}
	if c.EmbeddingKey != EmbeddingKey || c.TextKey != TextKey {
		return Errorf(EINVALID, "index field names must be %q and %q", EmbeddingKey, TextKey)
	}
	return nil
}

// IndexService manages vector index definitions.
type IndexService interface {
	// EnsureIndex creates the index definition if it does not exist.
	// Returns ECONFLICT if an index with the same name has a different definition.
	EnsureIndex(ctx context.Context, cfg IndexConfig) error

	// FindIndex returns the index definition with the given name.
	// Returns ENOTFOUND if it does not exist.
	FindIndex(ctx context.Context, name string) (*IndexConfig, error)
}
