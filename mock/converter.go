package mock

import "github.com/sitebind/sitebind"

var _ sitebind.Converter = (*Converter)(nil)

// Converter is a mock implementation of sitebind.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
