package render

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"pressroom/internal/article"
)

// HTML renders markdown bodies to HTML fragments with goldmark.
type HTML struct {
	md goldmark.Markdown
}

func NewHTML() *HTML {
	return &HTML{md: goldmark.New(goldmark.WithExtensions(extension.GFM))}
}

func (*HTML) Format() string { return "html" }

func (h *HTML) Render(a *article.Article) ([]byte, error) {
	var buf bytes.Buffer
	if err := h.md.Convert([]byte(a.Body), &buf); err != nil {
		return nil, fmt.Errorf("convert markdown: %w", err)
	}
	return buf.Bytes(), nil
}
