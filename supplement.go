package newsrag

import (
	"context"
	"strings"
	"time"
)

// Fixed metadata assigned to supplementary documents.
const (
	SupplementHeadline = "Papildomas failas"
	SupplementCategory = "Nežinoma"

	// SupplementDateLayout formats the publication date of a supplement.
	SupplementDateLayout = "2006.01.02 15:04"
)

// Supplement is a document injected outside the crawl, such as a local text
// file the user wants to make searchable alongside the articles.
type Supplement struct {
	ID              string    `json:"id"`
	Headline        *string   `json:"headline"`
	Category        *string   `json:"category"`
	PublicationDate *string   `json:"publication_date"`
	Text            string    `json:"text"`
	CreatedAt       time.Time `json:"createdAt"`
}

// NewSupplement returns a supplement for text with the fixed metadata used for
// documents that did not come from the crawl.
func NewSupplement(text string, now time.Time) *Supplement {
	return &Supplement{
		Headline:        StringPtr(SupplementHeadline),
		Category:        StringPtr(SupplementCategory),
		PublicationDate: StringPtr(now.Format(SupplementDateLayout)),
		Text:            text,
	}
}

// Validate returns an error if the supplement contains invalid fields.
func (s *Supplement) Validate() error {
	if strings.TrimSpace(s.Text) == "" {
		return Errorf(EINVALID, "supplement text required")
	}
	return nil
}

// SupplementService represents a service for managing supplementary documents.
type SupplementService interface {
	// CreateSupplement stores a new supplementary document.
	CreateSupplement(ctx context.Context, s *Supplement) error

	// FindSupplements returns all supplementary documents.
	FindSupplements(ctx context.Context) ([]*Supplement, error)
}
