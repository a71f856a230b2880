package images

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	gopath "path"
	"path/filepath"
	"sync"

	"golang.org/x/crypto/blake2b"

	"linky/internal/domain"
	"linky/internal/store"
)

// Store downloads thumbnails into dir and maps them to web paths under
// webRoot.
type Store struct {
	dir     string
	webRoot string

	HTTP      *http.Client
	UserAgent string
	MaxBody   int64

	mu sync.Mutex
}

func NewStore(dir, webRoot string, httpClient *http.Client, userAgent string, maxBody int64) *Store {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Store{
		dir:       dir,
		webRoot:   webRoot,
		HTTP:      httpClient,
		UserAgent: userAgent,
		MaxBody:   maxBody,
	}
}

var _ domain.ImageStore = (*Store)(nil)

// Fetch downloads the image at rawURL and stores it under its upstream
// base name. When the stored file already holds identical bytes nothing
// is written and wrote is false.
func (s *Store) Fetch(ctx context.Context, rawURL string) (domain.ImageRef, bool, error) {
	b, err := s.download(ctx, rawURL)
	if err != nil {
		return domain.ImageRef{}, false, err
	}

	name, err := fileName(rawURL, b)
	if err != nil {
		return domain.ImageRef{}, false, err
	}

	sum := blake2b.Sum256(b)
	ref := domain.ImageRef{
		Name:    name,
		WebPath: gopath.Join(s.webRoot, name),
		Digest:  hex.EncodeToString(sum[:]),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, err := os.ReadFile(filepath.Join(s.dir, name)); err == nil {
		if blake2b.Sum256(existing) == sum {
			return ref, false, nil
		}
	}
	if err := store.WriteFile(filepath.Join(s.dir, name), b, 0o644); err != nil {
		return domain.ImageRef{}, false, err
	}
	return ref, true, nil
}

func (s *Store) download(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	if s.UserAgent != "" {
		req.Header.Set("User-Agent", s.UserAgent)
	}

	resp, err := s.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("get %s: %s", rawURL, resp.Status)
	}

	body := io.Reader(resp.Body)
	if s.MaxBody > 0 {
		body = io.LimitReader(resp.Body, s.MaxBody)
	}
	return io.ReadAll(body)
}

// fileName keeps the upstream base name; URLs without one fall back to
// the content digest.
func fileName(rawURL string, content []byte) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("image url %q: %w", rawURL, err)
	}
	name := gopath.Base(u.Path)
	if name == "." || name == "/" || name == "" {
		sum := blake2b.Sum256(content)
		name = hex.EncodeToString(sum[:8])
	}
	return name, nil
}
