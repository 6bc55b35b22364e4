// Package article holds the immutable in-memory article collection and the
// metadata-header parsing that feeds it.
package article

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"sort"
)

var (
	// ErrNotFound reports a lookup for an id the store does not hold.
	ErrNotFound = errors.New("article not found")
	// ErrMalformed reports a source whose metadata header is missing or invalid.
	ErrMalformed = errors.New("malformed article")
)

// Store is an immutable collection of articles. Built once by Load, it may
// be shared across goroutines without locking.
type Store struct {
	byID  map[string]*Article
	order []*Article // published desc, id asc on ties
}

// Load parses every raw source into an Article and builds the store.
// The first malformed source aborts the load; no partial store is returned.
func Load(sources []RawSource) (*Store, error) {
	s := &Store{byID: make(map[string]*Article, len(sources))}
	for _, src := range sources {
		a, err := parseSource(src)
		if err != nil {
			return nil, err
		}
		if prev, dup := s.byID[a.ID]; dup {
			return nil, malformedf(src.Name, "duplicate id %q (also in %s)", a.ID, prev.Source)
		}
		s.byID[a.ID] = a
		s.order = append(s.order, a)
	}
	sort.Slice(s.order, func(i, j int) bool {
		if !s.order[i].Published.Equal(s.order[j].Published) {
			return s.order[i].Published.After(s.order[j].Published)
		}
		return s.order[i].ID < s.order[j].ID
	})
	return s, nil
}

// Get returns the article with the given id. The store keeps exclusive
// ownership of its articles: callers always receive a copy.
func (s *Store) Get(id string) (*Article, error) {
	a, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("%q: %w", id, ErrNotFound)
	}
	return a.clone(), nil
}

// List returns all articles newest first; equal dates order by id ascending.
// Each call returns fresh copies.
func (s *Store) List() []*Article {
	out := make([]*Article, len(s.order))
	for i, a := range s.order {
		out[i] = a.clone()
	}
	return out
}

// Articles iterates in the same order as List, yielding one copy at a time.
// The sequence restarts from the newest article each time it is ranged over.
func (s *Store) Articles() iter.Seq[*Article] {
	return func(yield func(*Article) bool) {
		for _, a := range s.order {
			if !yield(a.clone()) {
				return
			}
		}
	}
}

func (a *Article) clone() *Article {
	c := *a
	c.Tags = slices.Clone(a.Tags)
	return &c
}

// Len reports the number of articles held.
func (s *Store) Len() int { return len(s.byID) }
