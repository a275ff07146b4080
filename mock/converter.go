package mock

import "github.com/globality-corp/deboiler"

var _ deboiler.Converter = (*Converter)(nil)

// Converter is a mock implementation of deboiler.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
