package newsrag

// Converter converts extracted HTML content to plain text suitable for
// storage and embedding.
type Converter interface {
	// Convert transforms clean HTML (e.g., from an Extractor) into text.
	Convert(html string) (string, error)
}
