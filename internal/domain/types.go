package domain

// Slug is the filename-safe identifier derived from a link title.
type Slug string

// String returns the string form of the slug.
func (s Slug) String() string { return string(s) }

// Link is one entry extracted from a Linktree page payload.
type Link struct {
	Title     string
	URL       string
	Position  int    // 0-based position in the source payload
	Thumbnail string // thumbnail URL; empty when the link has none
}

// Priority is the exported ordering value. Source positions are 0-based,
// link files are 1-based.
func (l Link) Priority() int { return l.Position + 1 }

// Profile is a fetched Linktree page reduced to its usable links.
type Profile struct {
	URL   string
	Links []Link
}

// LinkFile describes one markdown link file to be written.
type LinkFile struct {
	Slug     Slug
	Title    string
	URL      string
	Priority int
	Image    string // web path of the thumbnail; empty when none
}

// ImageRef identifies a stored thumbnail image.
type ImageRef struct {
	Name    string // filename within the image directory
	WebPath string // path the site serves the image under
	Digest  string // hex blake2b digest of the image bytes
}

// ManifestEntry records what a capture wrote for one link.
type ManifestEntry struct {
	URL         string `json:"url"`
	Priority    int    `json:"priority"`
	Image       string `json:"image,omitempty"`
	ImageDigest string `json:"image_digest,omitempty"`
	CapturedAt  int64  `json:"captured_at"`
}

// Manifest maps link slugs to their last captured state.
type Manifest map[Slug]ManifestEntry
