// Package loader reads raw article sources from a content directory.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"pressroom/internal/article"
)

// Loader collects markdown sources under a single directory tree.
type Loader struct {
	fs  afero.Fs
	dir string
}

// New returns a loader over the given filesystem. Tests pass an in-memory fs.
func New(fs afero.Fs, dir string) *Loader {
	return &Loader{fs: fs, dir: dir}
}

// NewOS returns a loader over the host filesystem.
func NewOS(dir string) *Loader {
	return New(afero.NewOsFs(), dir)
}

// Sources reads every markdown file under the content directory. Results are
// sorted by name so load order is deterministic across platforms.
func (l *Loader) Sources() ([]article.RawSource, error) {
	var out []article.RawSource
	walk := func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !isMarkdown(path) {
			return nil
		}
		data, err := afero.ReadFile(l.fs, path)
		if err != nil {
			return fmt.Errorf("read source %s: %w", path, err)
		}
		name, err := filepath.Rel(l.dir, path)
		if err != nil {
			name = filepath.Base(path)
		}
		out = append(out, article.RawSource{Name: filepath.ToSlash(name), Data: data})
		return nil
	}
	if err := afero.Walk(l.fs, l.dir, walk); err != nil {
		return nil, fmt.Errorf("scan content dir: %w", err)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func isMarkdown(path string) bool {
	name := strings.ToLower(path)
	return strings.HasSuffix(name, ".md") || strings.HasSuffix(name, ".markdown")
}
