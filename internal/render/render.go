// Package render is the output boundary: it turns an article body into a
// display representation. The store never interprets bodies itself.
package render

import (
	"errors"
	"fmt"

	"pressroom/internal/article"
)

// Renderer converts one article into a display representation.
type Renderer interface {
	Format() string
	Render(a *article.Article) ([]byte, error)
}

var registry = map[string]Renderer{}

// Register adds a renderer under its format name.
func Register(r Renderer) {
	registry[r.Format()] = r
}

// For returns the renderer registered for the given format.
func For(format string) (Renderer, error) {
	r, ok := registry[format]
	if !ok {
		return nil, fmt.Errorf("%q: %w", format, ErrUnsupported)
	}
	return r, nil
}

func init() {
	// Register default renderers
	Register(NewHTML())
	Register(Text{})
}

// ErrUnsupported indicates an output format is not supported.
var ErrUnsupported = errors.New("unsupported output format")
