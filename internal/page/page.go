// Package page holds the per-page metadata record shared by the blog filter,
// the sidebar sorter and the content scanner.
package page

import (
	"path"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"
)

// Page is the metadata the host framework exposes for one Markdown source.
type Page struct {
	// FilePathRelative is the slash separated source path relative to the
	// content root. Empty for pages without a source file.
	FilePathRelative string
	// Route is the canonical route, see RouteFor.
	Route       string
	Title       string
	Frontmatter map[string]any
	Date        time.Time
	Fingerprint string
}

// RouteFor derives the canonical route of a source file.
// "a/README.md" and "a/index.md" map to "/a/"; "a/b.md" maps to "/a/b".
func RouteFor(rel string) string {
	rel = strings.TrimPrefix(path.Clean("/"+norm.NFC.String(rel)), "/")
	dir, file := path.Split(rel)
	stem := strings.TrimSuffix(file, path.Ext(file))
	if isIndexStem(stem) {
		return "/" + dir
	}
	return "/" + dir + stem
}

// NormalizeRoute brings a user written link or path into canonical route form
// so it can be compared with Page.Route. It applies NFC normalisation, adds a
// leading slash, and drops ".html"/".md" suffixes and index file names.
func NormalizeRoute(r string) string {
	r = norm.NFC.String(strings.TrimSpace(r))
	if r == "" {
		return "/"
	}
	if i := strings.IndexAny(r, "#?"); i >= 0 {
		r = r[:i]
	}
	if !strings.HasPrefix(r, "/") {
		r = "/" + r
	}
	switch {
	case strings.HasSuffix(r, ".md"):
		return RouteFor(r)
	case strings.HasSuffix(r, ".html"):
		r = strings.TrimSuffix(r, ".html")
		dir, file := path.Split(r)
		if isIndexStem(file) {
			return dir
		}
		return r
	}
	return r
}

func isIndexStem(stem string) bool {
	return strings.EqualFold(stem, "readme") || stem == "index"
}

// IsReadme reports whether the page is a directory index page.
func (p Page) IsReadme() bool {
	return strings.HasSuffix(p.FilePathRelative, "README.md")
}

// Dir returns the route of the directory holding the page source.
func (p Page) Dir() string {
	if strings.HasSuffix(p.Route, "/") {
		return p.Route
	}
	if d := path.Dir(p.Route); d != "/" {
		return d + "/"
	}
	return "/"
}

// Value returns a raw front-matter value.
func (p Page) Value(key string) (any, bool) {
	if p.Frontmatter == nil {
		return nil, false
	}
	v, ok := p.Frontmatter[key]
	return v, ok
}

// Bool returns a front-matter value only when it is a YAML boolean.
func (p Page) Bool(key string) (value bool, ok bool) {
	v, _ := p.Value(key)
	value, ok = v.(bool)
	return value, ok
}

// String returns a front-matter value only when it is a string.
func (p Page) String(key string) (string, bool) {
	v, _ := p.Value(key)
	s, ok := v.(string)
	return s, ok
}

// Int returns a numeric front-matter value truncated to int.
func (p Page) Int(key string) (int, bool) {
	v, _ := p.Value(key)
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}

// Strings returns a front-matter value that may be a single string or a list.
func (p Page) Strings(key string) []string {
	v, _ := p.Value(key)
	switch vv := v.(type) {
	case string:
		if vv == "" {
			return nil
		}
		return []string{vv}
	case []string:
		return vv
	case []any:
		out := make([]string, 0, len(vv))
		for _, item := range vv {
			if s, ok := item.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02",
	"2006/1/2",
}

// ParseDate interprets a front-matter date value.
func ParseDate(v any) (time.Time, bool) {
	switch d := v.(type) {
	case time.Time:
		return d, !d.IsZero()
	case string:
		s := strings.TrimSpace(d)
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}
