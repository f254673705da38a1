package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/fwojciec/newsrag"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ newsrag.SupplementService = (*SupplementService)(nil)

// SupplementService implements newsrag.SupplementService using SQLite.
type SupplementService struct {
	db *DB
}

// NewSupplementService creates a new SupplementService.
func NewSupplementService(db *DB) *SupplementService {
	return &SupplementService{db: db}
}

// CreateSupplement stores a new supplementary document.
func (s *SupplementService) CreateSupplement(ctx context.Context, supplement *newsrag.Supplement) error {
	if err := supplement.Validate(); err != nil {
		return err
	}

	supplement.ID = uuid.New().String()
	supplement.CreatedAt = time.Now().UTC().Truncate(time.Second)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO supplements (id, headline, category, publication_date, text, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, supplement.ID, nullString(supplement.Headline), nullString(supplement.Category),
		nullString(supplement.PublicationDate), supplement.Text, supplement.CreatedAt.Format(time.RFC3339))
	return err
}

// FindSupplements returns all supplementary documents, oldest first.
func (s *SupplementService) FindSupplements(ctx context.Context) ([]*newsrag.Supplement, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, headline, category, publication_date, text, created_at
		FROM supplements
		ORDER BY created_at ASC, rowid ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var supplements []*newsrag.Supplement
	for rows.Next() {
		var sup newsrag.Supplement
		var headline, category, date sql.NullString
		var createdAt string
		if err := rows.Scan(&sup.ID, &headline, &category, &date, &sup.Text, &createdAt); err != nil {
			return nil, err
		}
		sup.Headline = stringPtr(headline)
		sup.Category = stringPtr(category)
		sup.PublicationDate = stringPtr(date)
		if sup.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}
		supplements = append(supplements, &sup)
	}
	return supplements, rows.Err()
}
