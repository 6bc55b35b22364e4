package render

import (
	"fmt"
	"strings"

	"pressroom/internal/article"
)

// Text passes the body through untouched under a plain title banner.
// Useful when piping output to other tools.
type Text struct{}

func (Text) Format() string { return "text" }

func (Text) Render(a *article.Article) ([]byte, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\nby %s, %s\n\n", a.Title, a.Author, a.Published.Format("2006-01-02"))
	sb.WriteString(a.Body)
	if !strings.HasSuffix(a.Body, "\n") {
		sb.WriteString("\n")
	}
	return []byte(sb.String()), nil
}
