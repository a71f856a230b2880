package capture

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"linky/internal/domain"
	"linky/internal/links"
)

// Service runs captures against the stores it is wired with.
type Service struct {
	fetcher  domain.ProfileFetcher
	links    domain.LinkStore
	images   domain.ImageStore
	manifest domain.ManifestStore
	log      zerolog.Logger
}

func New(
	fetcher domain.ProfileFetcher,
	ls domain.LinkStore,
	is domain.ImageStore,
	ms domain.ManifestStore,
	log zerolog.Logger,
) *Service {
	return &Service{fetcher: fetcher, links: ls, images: is, manifest: ms, log: log}
}

// Summary reports what a capture did.
type Summary struct {
	Links         int
	LinksSkipped  int
	Images        int
	ImagesSkipped int
}

// Capture fetches the profile at url and materialises every usable link.
// Links whose manifest entry already matches the fetched state are not
// rewritten and keep their original capture time. A failure on any
// single link aborts the capture with an error naming it; the manifest
// is only saved after all links are written.
func (s *Service) Capture(ctx context.Context, url string) (Summary, error) {
	profile, err := s.fetcher.FetchProfile(ctx, url)
	if err != nil {
		return Summary{}, err
	}
	s.log.Info().Str("url", url).Int("links", len(profile.Links)).Msg("profile fetched")

	manifest, err := s.manifest.Load()
	if err != nil {
		return Summary{}, err
	}

	var sum Summary
	now := time.Now().Unix()
	for _, link := range profile.Links {
		slug := links.SlugFor(link.Title, link.Priority())
		s.log.Info().Str("title", link.Title).Str("slug", slug.String()).Msg("collecting")

		entry := domain.ManifestEntry{
			URL:        link.URL,
			Priority:   link.Priority(),
			CapturedAt: now,
		}

		var imagePath string
		if link.Thumbnail != "" {
			s.log.Debug().Str("slug", slug.String()).Str("thumbnail", link.Thumbnail).Msg("downloading thumbnail")
			ref, wrote, err := s.images.Fetch(ctx, link.Thumbnail)
			if err != nil {
				return sum, fmt.Errorf("thumbnail for %q: %w", link.Title, err)
			}
			if wrote {
				sum.Images++
			} else {
				sum.ImagesSkipped++
			}
			imagePath = ref.WebPath
			entry.Image = ref.Name
			entry.ImageDigest = ref.Digest
		}

		if prev, ok := manifest[slug]; ok && sameEntry(prev, entry) {
			s.log.Debug().Str("slug", slug.String()).Msg("unchanged, skipping")
			sum.LinksSkipped++
			continue
		}

		if err := s.links.WriteLink(domain.LinkFile{
			Slug:     slug,
			Title:    link.Title,
			URL:      link.URL,
			Priority: link.Priority(),
			Image:    imagePath,
		}); err != nil {
			return sum, fmt.Errorf("link file for %q: %w", link.Title, err)
		}
		sum.Links++
		manifest[slug] = entry
	}

	if err := s.manifest.Save(manifest); err != nil {
		return sum, err
	}
	return sum, nil
}

// sameEntry compares entries ignoring capture time, so an unchanged link
// keeps its original CapturedAt.
func sameEntry(a, b domain.ManifestEntry) bool {
	a.CapturedAt, b.CapturedAt = 0, 0
	return a == b
}
