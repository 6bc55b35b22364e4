package article

import "time"

// Article is a single published piece: parsed metadata plus the raw
// markdown body. Articles are immutable once loaded.
type Article struct {
	ID        string
	Title     string
	Author    string
	Published time.Time
	Tags      []string
	Body      string
	Source    string
}

// RawSource is one unparsed input: opaque bytes plus the name they came
// from. The name seeds the article ID when the header carries none.
type RawSource struct {
	Name string
	Data []byte
}
