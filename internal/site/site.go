// Package site builds a static HTML site from the article store.
package site

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"path/filepath"

	"pressroom/internal/article"
	"pressroom/internal/render"
	"pressroom/internal/utils"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

const excerptLimit = 240

// Builder renders the store into index, article, and tag pages.
type Builder struct {
	store *article.Store
	html  render.Renderer
	tmpl  *template.Template

	Title   string
	BaseURL string
}

type entry struct {
	ID        string
	Title     string
	Author    string
	Published string
	Tags      []string
	Excerpt   string
}

type indexData struct {
	Site    string
	BaseURL string
	Heading string
	Entries []entry
}

type pageData struct {
	Site    string
	BaseURL string
	Entry   entry
	Body    template.HTML
}

// New builds a site builder over the given store.
func New(store *article.Store, title, baseURL string) (*Builder, error) {
	tmpl, err := template.New("site").Funcs(template.FuncMap{"slug": utils.Slugify}).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Builder{
		store:   store,
		html:    render.NewHTML(),
		tmpl:    tmpl,
		Title:   title,
		BaseURL: baseURL,
	}, nil
}

// Build writes the whole site under outDir: index.html, one page per
// article, and one listing per tag. Files are written atomically.
func (b *Builder) Build(outDir string) error {
	for _, dir := range []string{outDir, filepath.Join(outDir, "articles"), filepath.Join(outDir, "tags")} {
		if err := utils.EnsureDir(dir); err != nil {
			return fmt.Errorf("ensure dir: %w", err)
		}
	}

	articles := b.store.List()
	if err := b.writeIndex(filepath.Join(outDir, "index.html"), b.Title, articles); err != nil {
		return err
	}

	tags := map[string][]*article.Article{}
	for _, a := range articles {
		if err := b.writeArticle(filepath.Join(outDir, "articles", a.ID+".html"), a); err != nil {
			return err
		}
		for _, t := range a.Tags {
			tags[t] = append(tags[t], a)
		}
	}
	for tag, tagged := range tags {
		path := filepath.Join(outDir, "tags", utils.Slugify(tag)+".html")
		if err := b.writeIndex(path, fmt.Sprintf("%s: %s", b.Title, tag), tagged); err != nil {
			return err
		}
	}
	return nil
}

func (b *Builder) writeIndex(path, heading string, articles []*article.Article) error {
	entries := make([]entry, 0, len(articles))
	for _, a := range articles {
		entries = append(entries, newEntry(a))
	}
	data := indexData{Site: b.Title, BaseURL: b.BaseURL, Heading: heading, Entries: entries}
	return b.writePage(path, "index.tmpl", data)
}

func (b *Builder) writeArticle(path string, a *article.Article) error {
	body, err := b.html.Render(a)
	if err != nil {
		return fmt.Errorf("render %s: %w", a.ID, err)
	}
	data := pageData{Site: b.Title, BaseURL: b.BaseURL, Entry: newEntry(a), Body: template.HTML(body)}
	return b.writePage(path, "article.tmpl", data)
}

func (b *Builder) writePage(path, name string, data any) error {
	var buf bytes.Buffer
	if err := b.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("execute %s: %w", name, err)
	}
	return utils.SafeWriteFile(path, buf.Bytes())
}

func newEntry(a *article.Article) entry {
	return entry{
		ID:        a.ID,
		Title:     a.Title,
		Author:    a.Author,
		Published: a.Published.Format("2006-01-02"),
		Tags:      a.Tags,
		Excerpt:   utils.Excerpt(a.Body, excerptLimit),
	}
}
