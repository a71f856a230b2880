package capture_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"linky/internal/domain"
	"linky/internal/services/capture"
)

type fakeFetcher struct {
	profile domain.Profile
	err     error
}

func (f *fakeFetcher) FetchProfile(ctx context.Context, url string) (domain.Profile, error) {
	return f.profile, f.err
}

type fakeLinks struct {
	written []domain.LinkFile
	err     error
}

func (f *fakeLinks) WriteLink(lf domain.LinkFile) error {
	if f.err != nil {
		return f.err
	}
	f.written = append(f.written, lf)
	return nil
}

type fakeImages struct {
	wrote bool
	err   error
}

func (f *fakeImages) Fetch(ctx context.Context, url string) (domain.ImageRef, bool, error) {
	if f.err != nil {
		return domain.ImageRef{}, false, f.err
	}
	return domain.ImageRef{Name: "thumb.png", WebPath: "/images/thumb.png", Digest: "d1"}, f.wrote, nil
}

type fakeManifest struct {
	preload domain.Manifest
	saved   domain.Manifest
}

func (f *fakeManifest) Load() (domain.Manifest, error) {
	if f.preload != nil {
		return f.preload, nil
	}
	return make(domain.Manifest), nil
}

func (f *fakeManifest) Save(m domain.Manifest) error { f.saved = m; return nil }

func TestCapture_WritesLinksAndManifest(t *testing.T) {
	fetcher := &fakeFetcher{profile: domain.Profile{Links: []domain.Link{
		{Title: "My Blog", URL: "https://blog.example.com", Position: 0, Thumbnail: "https://cdn/blog.png"},
		{Title: "Shop", URL: "https://shop.example.com", Position: 1},
	}}}
	ls := &fakeLinks{}
	is := &fakeImages{wrote: true}
	ms := &fakeManifest{}

	svc := capture.New(fetcher, ls, is, ms, zerolog.Nop())
	sum, err := svc.Capture(context.Background(), "https://linktr.ee/someone")
	if err != nil {
		t.Fatalf("capture: %v", err)
	}

	if sum.Links != 2 || sum.Images != 1 || sum.ImagesSkipped != 0 {
		t.Fatalf("summary = %+v", sum)
	}
	if len(ls.written) != 2 {
		t.Fatalf("wrote %d link files", len(ls.written))
	}

	blog := ls.written[0]
	if blog.Slug != "my-blog" || blog.Priority != 1 || blog.Image != "/images/thumb.png" {
		t.Fatalf("blog file = %+v", blog)
	}
	shop := ls.written[1]
	if shop.Slug != "shop" || shop.Priority != 2 || shop.Image != "" {
		t.Fatalf("shop file = %+v", shop)
	}

	if ms.saved == nil {
		t.Fatal("manifest not saved")
	}
	entry, ok := ms.saved["my-blog"]
	if !ok {
		t.Fatal("my-blog missing from manifest")
	}
	if entry.Image != "thumb.png" || entry.ImageDigest != "d1" || entry.Priority != 1 {
		t.Fatalf("manifest entry = %+v", entry)
	}
	if _, ok := ms.saved["shop"]; !ok {
		t.Fatal("shop missing from manifest")
	}
}

func TestCapture_CountsSkippedImages(t *testing.T) {
	fetcher := &fakeFetcher{profile: domain.Profile{Links: []domain.Link{
		{Title: "A", URL: "https://a", Position: 0, Thumbnail: "https://cdn/a.png"},
	}}}
	svc := capture.New(fetcher, &fakeLinks{}, &fakeImages{wrote: false}, &fakeManifest{}, zerolog.Nop())

	sum, err := svc.Capture(context.Background(), "u")
	if err != nil {
		t.Fatalf("capture: %v", err)
	}
	if sum.Images != 0 || sum.ImagesSkipped != 1 {
		t.Fatalf("summary = %+v", sum)
	}
}

func TestCapture_SkipsUnchangedLinks(t *testing.T) {
	fetcher := &fakeFetcher{profile: domain.Profile{Links: []domain.Link{
		{Title: "A", URL: "https://a", Position: 0, Thumbnail: "https://cdn/a.png"},
		{Title: "B", URL: "https://b", Position: 1},
	}}}
	ls := &fakeLinks{}
	ms := &fakeManifest{preload: domain.Manifest{
		// A matches what this capture will produce; B's URL moved.
		"a": {URL: "https://a", Priority: 1, Image: "thumb.png", ImageDigest: "d1", CapturedAt: 123},
		"b": {URL: "https://b.old", Priority: 2, CapturedAt: 123},
	}}

	svc := capture.New(fetcher, ls, &fakeImages{wrote: false}, ms, zerolog.Nop())
	sum, err := svc.Capture(context.Background(), "u")
	if err != nil {
		t.Fatalf("capture: %v", err)
	}

	if sum.Links != 1 || sum.LinksSkipped != 1 {
		t.Fatalf("summary = %+v", sum)
	}
	if len(ls.written) != 1 || ls.written[0].Slug != "b" {
		t.Fatalf("written = %+v, want only b rewritten", ls.written)
	}

	// The untouched entry keeps its original capture time; the changed
	// one was refreshed.
	if got := ms.saved["a"].CapturedAt; got != 123 {
		t.Fatalf("a captured_at = %d, want 123", got)
	}
	if got := ms.saved["b"]; got.URL != "https://b" || got.CapturedAt == 123 {
		t.Fatalf("b entry not refreshed: %+v", got)
	}
}

func TestCapture_FetchError(t *testing.T) {
	boom := errors.New("boom")
	svc := capture.New(&fakeFetcher{err: boom}, &fakeLinks{}, &fakeImages{}, &fakeManifest{}, zerolog.Nop())

	if _, err := svc.Capture(context.Background(), "u"); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
}

func TestCapture_ThumbnailErrorNamesLink(t *testing.T) {
	fetcher := &fakeFetcher{profile: domain.Profile{Links: []domain.Link{
		{Title: "Broken", URL: "https://b", Position: 0, Thumbnail: "https://cdn/b.png"},
	}}}
	down := errors.New("down")
	ms := &fakeManifest{}
	svc := capture.New(fetcher, &fakeLinks{}, &fakeImages{err: down}, ms, zerolog.Nop())

	_, err := svc.Capture(context.Background(), "u")
	if !errors.Is(err, down) {
		t.Fatalf("err = %v, want wrapped down", err)
	}
	if ms.saved != nil {
		t.Fatal("manifest saved despite failure")
	}
}
