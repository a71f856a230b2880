package images_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"linky/internal/images"
)

func TestFetch_DownloadsAndNames(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("png-bytes"))
	}))
	defer srv.Close()

	dir := t.TempDir()
	s := images.NewStore(dir, "/images", srv.Client(), "linky-test", 1<<20)

	ref, wrote, err := s.Fetch(context.Background(), srv.URL+"/thumbs/blog.png")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if !wrote {
		t.Fatal("expected first fetch to write")
	}
	if ref.Name != "blog.png" {
		t.Fatalf("name = %q, want blog.png", ref.Name)
	}
	if ref.WebPath != "/images/blog.png" {
		t.Fatalf("web path = %q, want /images/blog.png", ref.WebPath)
	}
	if ref.Digest == "" {
		t.Fatal("digest empty")
	}

	b, err := os.ReadFile(filepath.Join(dir, "blog.png"))
	if err != nil {
		t.Fatalf("read stored image: %v", err)
	}
	if string(b) != "png-bytes" {
		t.Fatalf("stored bytes = %q", b)
	}
}

func TestFetch_SkipsUnchanged(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte("stable"))
	}))
	defer srv.Close()

	dir := t.TempDir()
	s := images.NewStore(dir, "/images", srv.Client(), "", 0)

	if _, wrote, err := s.Fetch(context.Background(), srv.URL+"/a.png"); err != nil || !wrote {
		t.Fatalf("first fetch: wrote=%v err=%v", wrote, err)
	}
	ref, wrote, err := s.Fetch(context.Background(), srv.URL+"/a.png")
	if err != nil {
		t.Fatalf("second fetch: %v", err)
	}
	if wrote {
		t.Fatal("second fetch rewrote identical content")
	}
	if ref.Name != "a.png" {
		t.Fatalf("name = %q", ref.Name)
	}
	if hits.Load() != 2 {
		t.Fatalf("server hits = %d, want 2", hits.Load())
	}
}

func TestFetch_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	s := images.NewStore(t.TempDir(), "/images", srv.Client(), "", 0)
	if _, _, err := s.Fetch(context.Background(), srv.URL+"/gone.png"); err == nil {
		t.Fatal("expected error on 404")
	}
}
