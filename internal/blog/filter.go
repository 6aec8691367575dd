// Package blog decides which pages appear in the blog index and orders them.
package blog

import (
	"strings"

	"github.com/kbchulan/clblogs/internal/page"
)

// HiddenTitleMarker prefixes the titles of numbered sub-pages ("第1节", "第2章")
// that are reachable from their series but stay out of the top-level feed.
const HiddenTitleMarker = "第"

// Predicate decides whether a page is listed in the blog index.
type Predicate func(page.Page) bool

// Filter is the blog listing predicate. A page is excluded when it is a
// README index, when its front matter sets article or index to the boolean
// false, or when its front-matter title starts with HiddenTitleMarker.
func Filter(p page.Page) bool {
	if strings.HasSuffix(p.FilePathRelative, "README.md") {
		return false
	}
	if article, ok := p.Bool("article"); ok && !article {
		return false
	}
	if index, ok := p.Bool("index"); ok && !index {
		return false
	}
	if title, ok := p.String("title"); ok && strings.HasPrefix(title, HiddenTitleMarker) {
		return false
	}
	return true
}

// Select returns the pages accepted by pred, keeping input order.
func Select(pages []page.Page, pred Predicate) []page.Page {
	if pred == nil {
		pred = Filter
	}
	out := make([]page.Page, 0, len(pages))
	for _, p := range pages {
		if pred(p) {
			out = append(out, p)
		}
	}
	return out
}
