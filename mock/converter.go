package mock

import "github.com/fwojciec/newsrag"

var _ newsrag.Converter = (*Converter)(nil)

// Converter is a mock implementation of newsrag.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
