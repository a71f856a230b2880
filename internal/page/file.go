package page

import (
	"bytes"
	"fmt"
	"os"

	"golang.org/x/net/html"

	"linky/internal/store"
)

// ReorderFile applies PromoteWelcomeVideo to the HTML file at path,
// rewriting it only when the document actually changed. Unchanged files
// are left byte-for-byte alone.
func ReorderFile(path string) (bool, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", path, err)
	}
	doc, err := html.Parse(bytes.NewReader(raw))
	if err != nil {
		return false, fmt.Errorf("parse %s: %w", path, err)
	}
	if !PromoteWelcomeVideo(doc) {
		return false, nil
	}
	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		return false, fmt.Errorf("render %s: %w", path, err)
	}
	if err := store.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return false, fmt.Errorf("write %s: %w", path, err)
	}
	return true, nil
}
