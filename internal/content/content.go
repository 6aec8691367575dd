// Package content scans the Markdown content tree into page records.
package content

import (
	"bytes"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/inful/mdfp"

	ferrors "github.com/kbchulan/clblogs/internal/foundation/errors"
	"github.com/kbchulan/clblogs/internal/frontmatter"
	"github.com/kbchulan/clblogs/internal/logfields"
	"github.com/kbchulan/clblogs/internal/markdown"
	"github.com/kbchulan/clblogs/internal/page"
)

// DateSource supplies a creation date for pages without a front-matter date.
type DateSource interface {
	Created(rel string) (time.Time, bool)
}

// Options tunes a scan.
type Options struct {
	Dates DateSource
}

// Site is the scanned content tree.
type Site struct {
	Root  string
	Pages []page.Page
	// Links holds the outgoing Markdown links of each page, keyed by route.
	Links map[string][]markdown.Link
	// Problems are per-file failures; the affected files are skipped.
	Problems []error
}

// Page returns the page with the given (normalised) route.
func (s *Site) Page(route string) (page.Page, bool) {
	route = page.NormalizeRoute(route)
	for _, p := range s.Pages {
		if p.Route == route {
			return p, true
		}
	}
	return page.Page{}, false
}

// HasDir reports whether the route names a directory of the content tree.
func (s *Site) HasDir(route string) bool {
	rel := strings.Trim(page.NormalizeRoute(route), "/")
	info, err := os.Stat(filepath.Join(s.Root, filepath.FromSlash(rel)))
	return err == nil && info.IsDir()
}

// Scan walks root and parses every Markdown file outside hidden directories.
func Scan(root string, opts Options) (*Site, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "content directory not accessible").
			WithContext("path", root).Build()
	}
	if !info.IsDir() {
		return nil, ferrors.ContentError("content path is not a directory").WithContext("path", root).Build()
	}

	site := &Site{Root: root, Links: make(map[string][]markdown.Link)}
	err = filepath.WalkDir(root, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			if p != root && skipDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.EqualFold(filepath.Ext(d.Name()), ".md") {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		pg, links, err := load(p, filepath.ToSlash(rel), opts)
		if err != nil {
			slog.Warn("Skipping unreadable page", logfields.Path(rel), logfields.Error(err))
			site.Problems = append(site.Problems, err)
			return nil
		}
		site.Pages = append(site.Pages, pg)
		site.Links[pg.Route] = links
		return nil
	})
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "walk content directory").
			WithContext("path", root).Build()
	}

	sort.Slice(site.Pages, func(i, j int) bool { return site.Pages[i].FilePathRelative < site.Pages[j].FilePathRelative })
	slog.Debug("Scanned content", logfields.Path(root), logfields.Count(len(site.Pages)))
	return site, nil
}

func skipDir(name string) bool {
	return strings.HasPrefix(name, ".") || name == "node_modules"
}

func load(abs, rel string, opts Options) (page.Page, []markdown.Link, error) {
	data, err := os.ReadFile(abs)
	if err != nil {
		return page.Page{}, nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "read page").
			WithContext("path", rel).Build()
	}
	doc, err := frontmatter.Parse(data)
	if err != nil {
		return page.Page{}, nil, ferrors.WrapError(err, ferrors.CategoryContent, "parse front matter").
			WithContext("path", rel).Build()
	}

	p := page.Page{
		FilePathRelative: rel,
		Route:            page.RouteFor(rel),
		Frontmatter:      doc.Fields,
		Fingerprint:      mdfp.CalculateFingerprintFromParts(string(bytes.TrimSpace(doc.Raw)), string(doc.Body)),
	}
	p.Title = titleOf(p, doc.Body)

	if v, ok := p.Value("date"); ok {
		p.Date, _ = page.ParseDate(v)
	}
	if p.Date.IsZero() && opts.Dates != nil {
		p.Date, _ = opts.Dates.Created(rel)
	}
	return p, markdown.Links(doc.Body), nil
}

// titleOf picks the front-matter title, then the first heading, then a name
// derived from the file (or directory for README pages).
func titleOf(p page.Page, body []byte) string {
	if t, ok := p.String("title"); ok && strings.TrimSpace(t) != "" {
		return t
	}
	if h := markdown.FirstHeading(body); h != "" {
		return h
	}
	if p.IsReadme() {
		if dir := path.Base(path.Dir(p.FilePathRelative)); dir != "." {
			return dir
		}
	}
	return strings.TrimSuffix(path.Base(p.FilePathRelative), path.Ext(p.FilePathRelative))
}
