package utils

import "strings"

// Slugify lowercases the input and collapses every run of non-alphanumeric
// characters into a single hyphen. The result is safe for ids and file names.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	pending := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pending && b.Len() > 0 {
				b.WriteByte('-')
			}
			pending = false
			b.WriteRune(r)
		default:
			pending = true
		}
	}
	return b.String()
}

// Excerpt returns the first paragraph of markdown text as plain prose,
// truncated to at most limit runes. Heading lines are skipped.
func Excerpt(text string, limit int) string {
	for _, para := range strings.Split(strings.TrimSpace(text), "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" || strings.HasPrefix(para, "#") {
			continue
		}
		para = strings.Join(strings.Fields(para), " ")
		runes := []rune(para)
		if limit > 0 && len(runes) > limit {
			return string(runes[:limit]) + "..."
		}
		return para
	}
	return ""
}
