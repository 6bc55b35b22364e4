package render

import (
	"fmt"

	"github.com/charmbracelet/glamour"

	"pressroom/internal/article"
)

// Term renders markdown to ANSI-styled terminal output.
type Term struct {
	tr *glamour.TermRenderer
}

// NewTerm builds a terminal renderer. An empty or "auto" style picks a style
// matching the terminal background.
func NewTerm(style string, width int) (*Term, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style == "" || style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStylePath(style))
	}
	tr, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, fmt.Errorf("init term renderer: %w", err)
	}
	return &Term{tr: tr}, nil
}

func (*Term) Format() string { return "term" }

func (t *Term) Render(a *article.Article) ([]byte, error) {
	heading := fmt.Sprintf("# %s\n\n*%s, %s*\n\n", a.Title, a.Author, a.Published.Format("2006-01-02"))
	out, err := t.tr.Render(heading + a.Body)
	if err != nil {
		return nil, fmt.Errorf("render markdown: %w", err)
	}
	return []byte(out), nil
}
