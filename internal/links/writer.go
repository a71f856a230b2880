package links

import (
	"bytes"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"linky/internal/domain"
	"linky/internal/store"
)

// frontMatter is the yaml header of a link file. Field order matters for
// stable output.
type frontMatter struct {
	Title    string `yaml:"title"`
	Link     string `yaml:"link"`
	Priority int    `yaml:"priority"`
	Image    string `yaml:"image,omitempty"`
}

// FileStore writes link files into a directory.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

var _ domain.LinkStore = (*FileStore)(nil)

// WriteLink renders f as front matter and writes <dir>/<slug>.md
// atomically.
func (s *FileStore) WriteLink(f domain.LinkFile) error {
	fm := frontMatter{
		Title:    f.Title,
		Link:     f.URL,
		Priority: f.Priority,
		Image:    f.Image,
	}
	body, err := yaml.Marshal(fm)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	buf.Write(body)
	buf.WriteString("---\n\n")

	return store.WriteFile(filepath.Join(s.dir, f.Slug.String()+".md"), buf.Bytes(), 0o644)
}
