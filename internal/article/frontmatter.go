package article

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"pressroom/internal/utils"
)

const headerDelimiter = "---"

// header mirrors the YAML metadata block at the top of a raw source.
type header struct {
	ID     string   `yaml:"id"`
	Title  string   `yaml:"title"`
	Author string   `yaml:"author"`
	Date   string   `yaml:"date"`
	Tags   []string `yaml:"tags"`
}

// dateLayouts are the accepted formats for the date field.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

func malformedf(name, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", name, fmt.Sprintf(format, args...), ErrMalformed)
}

// parseSource splits a raw source into metadata header and body and
// validates the required fields (title, author, date).
func parseSource(src RawSource) (*Article, error) {
	head, body, err := splitHeader(normalizeNewlines(src.Data))
	if err != nil {
		return nil, malformedf(src.Name, "%v", err)
	}
	var h header
	if err := yaml.Unmarshal([]byte(head), &h); err != nil {
		return nil, malformedf(src.Name, "parse header: %v", err)
	}

	title := strings.TrimSpace(h.Title)
	if title == "" {
		return nil, malformedf(src.Name, "missing title")
	}
	author := strings.TrimSpace(h.Author)
	if author == "" {
		return nil, malformedf(src.Name, "missing author")
	}
	if strings.TrimSpace(h.Date) == "" {
		return nil, malformedf(src.Name, "missing date")
	}
	published, err := parseDate(h.Date)
	if err != nil {
		return nil, malformedf(src.Name, "unparsable date %q", h.Date)
	}

	id := strings.TrimSpace(h.ID)
	if id == "" {
		id = utils.Slugify(trimSourceExt(src.Name))
	}
	if id == "" {
		return nil, malformedf(src.Name, "cannot derive id")
	}
	// Ids become file names and URL segments; keep them to one path component.
	if strings.ContainsAny(id, "/\\") || id == "." || id == ".." {
		return nil, malformedf(src.Name, "invalid id %q", id)
	}

	return &Article{
		ID:        id,
		Title:     title,
		Author:    author,
		Published: published,
		Tags:      normalizeTags(h.Tags),
		Body:      body,
		Source:    src.Name,
	}, nil
}

// splitHeader separates the YAML block between the opening and closing
// delimiter lines from the body that follows.
func splitHeader(text string) (head, body string, err error) {
	rest, ok := strings.CutPrefix(text, headerDelimiter+"\n")
	if !ok {
		return "", "", fmt.Errorf("missing metadata header")
	}
	if head, body, ok = strings.Cut(rest, "\n"+headerDelimiter+"\n"); ok {
		return head, strings.TrimLeft(body, "\n"), nil
	}
	if head, ok = strings.CutSuffix(rest, "\n"+headerDelimiter); ok {
		return head, "", nil
	}
	return "", "", fmt.Errorf("unterminated metadata header")
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("no layout matched %q", s)
}

// normalizeTags deduplicates and sorts tags so equal sets compare equal.
func normalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

func normalizeNewlines(data []byte) string {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

func trimSourceExt(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}
