package page

import "golang.org/x/net/html"

const (
	welcomeVideoID = "welcome-vid"
	linksClass     = "links"
)

// PromoteWelcomeVideo moves the #welcome-vid element so it immediately
// precedes the first .links descendant of its own parent. It reports
// whether the document changed; every absence case (no video, no parent,
// no links block under that parent) and the already-in-place case leave
// the tree untouched.
func PromoteWelcomeVideo(doc *html.Node) bool {
	vid := ElementByID(doc, welcomeVideoID)
	if vid == nil || vid.Parent == nil {
		return false
	}
	anchor := FirstByClass(vid.Parent, linksClass)
	if anchor == nil || anchor == vid {
		return false
	}
	return MoveBefore(vid, anchor)
}

// MoveBefore detaches n and reinserts it immediately before anchor,
// under anchor's parent. It reports whether anything moved; n already in
// place is a no-op. An anchor inside n's own subtree counts as absent:
// moving n before its own descendant would detach it from the document.
func MoveBefore(n, anchor *html.Node) bool {
	if n == anchor || anchor.Parent == nil {
		return false
	}
	if contains(n, anchor) {
		return false
	}
	if anchor.PrevSibling == n {
		return false
	}
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
	anchor.Parent.InsertBefore(n, anchor)
	return true
}

// contains reports whether n is a strict ancestor of target.
func contains(n, target *html.Node) bool {
	for p := target.Parent; p != nil; p = p.Parent {
		if p == n {
			return true
		}
	}
	return false
}
