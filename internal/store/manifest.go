package store

import (
	"path/filepath"
	"sync"

	"linky/internal/domain"
)

const manifestFile = "capture.json"

// ManifestFileStore keeps the capture manifest as JSON next to the link
// files.
type ManifestFileStore struct {
	dir string
	mu  sync.Mutex
}

func NewManifestFileStore(dir string) *ManifestFileStore {
	return &ManifestFileStore{dir: dir}
}

var _ domain.ManifestStore = (*ManifestFileStore)(nil)

func (s *ManifestFileStore) Load() (domain.Manifest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := make(domain.Manifest)
	if err := ReadJSON(filepath.Join(s.dir, manifestFile), &m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *ManifestFileStore) Save(m domain.Manifest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return WriteJSON(filepath.Join(s.dir, manifestFile), m, 0o644)
}
