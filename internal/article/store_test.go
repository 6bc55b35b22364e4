package article_test

import (
	"errors"
	"testing"

	"pressroom/internal/article"
)

func source(name, header, body string) article.RawSource {
	return article.RawSource{Name: name, Data: []byte("---\n" + header + "---\n\n" + body)}
}

func mustLoad(t *testing.T, sources ...article.RawSource) *article.Store {
	t.Helper()
	s, err := article.Load(sources)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return s
}

func TestLoadGetFieldFidelity(t *testing.T) {
	s := mustLoad(t, source("doubles.md",
		"id: test-doubles\ntitle: The Danger Of Test Doubles\nauthor: Avdi Grimm\ndate: 2022-04-07\ntags: [testing, design]\n",
		"A test double stands in for a real collaborator.\n"))

	a, err := s.Get("test-doubles")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if a.Title != "The Danger Of Test Doubles" {
		t.Errorf("title = %q", a.Title)
	}
	if a.Author != "Avdi Grimm" {
		t.Errorf("author = %q", a.Author)
	}
	if got := a.Published.Format("2006-01-02"); got != "2022-04-07" {
		t.Errorf("published = %s", got)
	}
	if len(a.Tags) != 2 || a.Tags[0] != "design" || a.Tags[1] != "testing" {
		t.Errorf("tags = %v", a.Tags)
	}
	if a.Body != "A test double stands in for a real collaborator.\n" {
		t.Errorf("body = %q", a.Body)
	}
	if a.Source != "doubles.md" {
		t.Errorf("source = %q", a.Source)
	}
}

func TestListNewestFirst(t *testing.T) {
	s := mustLoad(t,
		source("a.md", "id: test-doubles\ntitle: The Danger Of Test Doubles\nauthor: A\ndate: 2022-04-07\n", "x"),
		source("b.md", "id: hook-messages\ntitle: Decoupling Subclasses With Hook Messages\nauthor: A\ndate: 2022-04-12\n", "y"),
	)
	got := s.List()
	if len(got) != 2 {
		t.Fatalf("len = %d", len(got))
	}
	if got[0].ID != "hook-messages" || got[1].ID != "test-doubles" {
		t.Fatalf("order = [%s %s], want newest first", got[0].ID, got[1].ID)
	}
}

func TestListTiesBreakByID(t *testing.T) {
	s := mustLoad(t,
		source("z.md", "id: zeta\ntitle: Z\nauthor: A\ndate: 2022-04-07\n", "x"),
		source("a.md", "id: alpha\ntitle: A\nauthor: A\ndate: 2022-04-07\n", "y"),
		source("m.md", "id: mid\ntitle: M\nauthor: A\ndate: 2022-04-08\n", "z"),
	)
	got := s.List()
	want := []string{"mid", "alpha", "zeta"}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("position %d = %s, want %s", i, got[i].ID, id)
		}
	}
}

func TestListIdempotent(t *testing.T) {
	s := mustLoad(t,
		source("a.md", "id: a\ntitle: A\nauthor: A\ndate: 2022-04-07\n", "x"),
		source("b.md", "id: b\ntitle: B\nauthor: A\ndate: 2022-04-12\n", "y"),
	)
	first, second := s.List(), s.List()
	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("position %d differs: %s vs %s", i, first[i].ID, second[i].ID)
		}
	}
	// Mutating the returned slice must not affect later calls.
	first[0], first[1] = first[1], first[0]
	third := s.List()
	if third[0].ID != second[0].ID {
		t.Fatalf("list order changed after caller mutation")
	}
}

func TestArticlesIteratorRestartable(t *testing.T) {
	s := mustLoad(t,
		source("a.md", "id: a\ntitle: A\nauthor: A\ndate: 2022-04-07\n", "x"),
		source("b.md", "id: b\ntitle: B\nauthor: A\ndate: 2022-04-12\n", "y"),
	)
	seq := s.Articles()
	for range 2 {
		var ids []string
		for a := range seq {
			ids = append(ids, a.ID)
		}
		if len(ids) != 2 || ids[0] != "b" || ids[1] != "a" {
			t.Fatalf("ids = %v", ids)
		}
	}
	// Early break must not poison later iterations.
	for range seq {
		break
	}
	n := 0
	for range seq {
		n++
	}
	if n != 2 {
		t.Fatalf("iterator yielded %d after early break", n)
	}
}

func TestStoreOwnsItsArticles(t *testing.T) {
	s := mustLoad(t, source("a.md",
		"id: a\ntitle: Original\nauthor: A\ndate: 2022-04-07\ntags: [oop]\n", "x"))

	got, err := s.Get("a")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	got.Title = "mutated"
	got.Tags[0] = "mutated"

	again, _ := s.Get("a")
	if again.Title != "Original" || again.Tags[0] != "oop" {
		t.Fatalf("caller mutation leaked into store: %+v", again)
	}

	s.List()[0].Title = "mutated again"
	for a := range s.Articles() {
		a.Title = "mutated once more"
	}
	final, _ := s.Get("a")
	if final.Title != "Original" {
		t.Fatalf("list/iterator mutation leaked into store: %q", final.Title)
	}
}

func TestGetUnknownID(t *testing.T) {
	s := mustLoad(t, source("a.md", "id: a\ntitle: A\nauthor: A\ndate: 2022-04-07\n", "x"))
	if _, err := s.Get("missing"); !errors.Is(err, article.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestLoadMissingMetadata(t *testing.T) {
	cases := []struct {
		name   string
		header string
	}{
		{"missing title", "author: A\ndate: 2022-04-07\n"},
		{"missing author", "title: T\ndate: 2022-04-07\n"},
		{"missing date", "title: T\nauthor: A\n"},
		{"unparsable date", "title: T\nauthor: A\ndate: April 7th\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := article.Load([]article.RawSource{
				source("good.md", "title: G\nauthor: A\ndate: 2022-04-07\n", "x"),
				source("bad.md", tc.header, "y"),
			})
			if !errors.Is(err, article.ErrMalformed) {
				t.Fatalf("err = %v, want ErrMalformed", err)
			}
			if s != nil {
				t.Fatalf("expected no store on malformed input")
			}
		})
	}
}

func TestLoadDuplicateID(t *testing.T) {
	s, err := article.Load([]article.RawSource{
		source("a.md", "id: same\ntitle: A\nauthor: A\ndate: 2022-04-07\n", "x"),
		source("b.md", "id: same\ntitle: B\nauthor: B\ndate: 2022-04-12\n", "y"),
	})
	if !errors.Is(err, article.ErrMalformed) {
		t.Fatalf("err = %v, want ErrMalformed", err)
	}
	if s != nil {
		t.Fatalf("expected no store on duplicate id")
	}
}
