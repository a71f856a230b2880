package domain

import "context"

// ProfileFetcher retrieves a Linktree page and extracts its links.
type ProfileFetcher interface {
	FetchProfile(ctx context.Context, url string) (Profile, error)
}

// LinkStore persists markdown link files.
type LinkStore interface {
	WriteLink(f LinkFile) error
}

// ImageStore downloads and persists thumbnail images.
//
// Fetch reports wrote=false when the stored image already matched the
// downloaded content, so callers can count skipped writes.
type ImageStore interface {
	Fetch(ctx context.Context, url string) (ref ImageRef, wrote bool, err error)
}

// ManifestStore persists the capture manifest. A missing manifest loads
// as empty, not as an error.
type ManifestStore interface {
	Load() (Manifest, error)
	Save(m Manifest) error
}
