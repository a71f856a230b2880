package page

import (
	"strings"

	"golang.org/x/net/html"
)

// ElementByID returns the first element under root whose id attribute
// equals id, or nil when absent.
func ElementByID(root *html.Node, id string) *html.Node {
	return find(root, func(n *html.Node) bool {
		return attr(n, "id") == id
	})
}

// FirstByClass returns the first descendant of scope carrying class as a
// whitespace-separated class token, or nil when absent. The scope node
// itself is not considered.
func FirstByClass(scope *html.Node, class string) *html.Node {
	for c := scope.FirstChild; c != nil; c = c.NextSibling {
		if n := find(c, func(n *html.Node) bool { return hasClass(n, class) }); n != nil {
			return n
		}
	}
	return nil
}

// find walks root depth-first and returns the first element node
// matching ok.
func find(root *html.Node, ok func(*html.Node) bool) *html.Node {
	if root.Type == html.ElementNode && ok(root) {
		return root
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if n := find(c, ok); n != nil {
			return n
		}
	}
	return nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// hasClass matches class-selector semantics: the class attribute is a
// whitespace-separated token list, so "links-container" never matches
// "links".
func hasClass(n *html.Node, class string) bool {
	for _, tok := range strings.Fields(attr(n, "class")) {
		if tok == class {
			return true
		}
	}
	return false
}
