package linktree

import (
	"encoding/json"
	"errors"
	"strings"

	"golang.org/x/net/html"

	"linky/internal/domain"
)

// ErrNoPayload is returned when a page carries no embedded JSON data
// block, usually meaning Linktree changed their page format.
var ErrNoPayload = errors.New("no application/json payload in page")

// payload mirrors the slice of the Linktree page state we care about.
type payload struct {
	Props struct {
		PageProps struct {
			Links []payloadLink `json:"links"`
		} `json:"pageProps"`
	} `json:"props"`
}

// payloadLink uses pointers where the upstream payload omits keys
// entirely: a link without a url key is not a link.
type payloadLink struct {
	Title     string  `json:"title"`
	URL       *string `json:"url"`
	Position  int     `json:"position"`
	Thumbnail *string `json:"thumbnail"`
	Modifiers struct {
		ThumbnailImage *string `json:"thumbnailImage"`
	} `json:"modifiers"`
}

// extractLinks pulls the link definitions out of a parsed page. Only
// entries carrying a url survive; thumbnails fall back from the top-level
// field to modifiers.thumbnailImage.
func extractLinks(doc *html.Node) ([]domain.Link, error) {
	raw := payloadText(doc)
	if raw == "" {
		return nil, ErrNoPayload
	}

	var p payload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, err
	}

	var links []domain.Link
	for _, l := range p.Props.PageProps.Links {
		if l.URL == nil {
			continue
		}
		links = append(links, domain.Link{
			Title:     l.Title,
			URL:       *l.URL,
			Position:  l.Position,
			Thumbnail: thumbnailURL(l),
		})
	}
	return links, nil
}

func thumbnailURL(l payloadLink) string {
	if l.Thumbnail != nil {
		return *l.Thumbnail
	}
	if l.Modifiers.ThumbnailImage != nil {
		return *l.Modifiers.ThumbnailImage
	}
	return ""
}

// payloadText returns the text of the first
// <script type="application/json"> element, or "".
func payloadText(doc *html.Node) string {
	var text string
	var walk func(*html.Node) bool
	walk = func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.Data == "script" && scriptType(n) == "application/json" {
			var sb strings.Builder
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if c.Type == html.TextNode {
					sb.WriteString(c.Data)
				}
			}
			text = sb.String()
			return true
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if walk(c) {
				return true
			}
		}
		return false
	}
	walk(doc)
	return text
}

func scriptType(n *html.Node) string {
	for _, a := range n.Attr {
		if a.Key == "type" {
			return a.Val
		}
	}
	return ""
}
