package links

import (
	"fmt"
	"regexp"
	"strings"

	"linky/internal/domain"
)

var (
	nonAlnum = regexp.MustCompile(`[^a-zA-Z0-9]+`)
	edgeDash = regexp.MustCompile(`^-+|-+$`)
)

// SlugFor derives a filename-safe slug from a link title: lowercase,
// runs of non-alphanumerics collapsed to "-", edges trimmed. Titles with
// no usable characters fall back to the link's priority.
func SlugFor(title string, priority int) domain.Slug {
	s := nonAlnum.ReplaceAllString(strings.ToLower(title), "-")
	s = edgeDash.ReplaceAllString(s, "")
	if s == "" {
		s = fmt.Sprintf("link-%d", priority)
	}
	return domain.Slug(s)
}
