// Package server exposes the article store over a read-only HTTP surface:
// a small JSON API plus the rendered static site.
package server

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"pressroom/internal/article"
)

type (
	ArticleSummary struct {
		ID        string    `json:"id"`
		Title     string    `json:"title"`
		Author    string    `json:"author"`
		Published time.Time `json:"published"`
		Tags      []string  `json:"tags"`
	}

	ArticleDetail struct {
		ArticleSummary
		Body string `json:"body"`
	}
)

// New returns the router. staticDir holds the built site; when empty, only
// the JSON API is mounted.
func New(store *article.Store, staticDir string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/api/articles", handleList(store))
	r.Get("/api/articles/{id}", handleGet(store))

	if staticDir != "" {
		r.Get("/articles/{id}", handlePage(store, staticDir))
		r.Handle("/*", http.FileServer(http.Dir(staticDir)))
	}
	return r
}

// handlePage serves the built article pages. The extensionless route
// redirects to the canonical .html file; both 404 on unknown ids.
func handlePage(store *article.Store, staticDir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if page, ok := strings.CutSuffix(id, ".html"); ok {
			if _, err := store.Get(page); err != nil {
				http.Error(w, "not found", http.StatusNotFound)
				return
			}
			http.ServeFile(w, r, filepath.Join(staticDir, "articles", page+".html"))
			return
		}
		if _, err := store.Get(id); err != nil {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		http.Redirect(w, r, r.URL.Path+".html", http.StatusMovedPermanently)
	}
}

func handleList(store *article.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out := make([]ArticleSummary, 0, store.Len())
		for a := range store.Articles() {
			out = append(out, summarize(a))
		}
		render.JSON(w, r, out)
	}
}

func handleGet(store *article.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		a, err := store.Get(id)
		if err != nil {
			if errors.Is(err, article.ErrNotFound) {
				http.Error(w, "not found", http.StatusNotFound)
				return
			}
			http.Error(w, "lookup failed", http.StatusInternalServerError)
			return
		}
		render.JSON(w, r, ArticleDetail{ArticleSummary: summarize(a), Body: a.Body})
	}
}

func summarize(a *article.Article) ArticleSummary {
	return ArticleSummary{
		ID:        a.ID,
		Title:     a.Title,
		Author:    a.Author,
		Published: a.Published,
		Tags:      a.Tags,
	}
}
