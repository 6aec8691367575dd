package blog

import (
	"sort"
	"time"

	"github.com/kbchulan/clblogs/internal/page"
)

// Entry is one row of the blog index.
type Entry struct {
	Route       string    `yaml:"route" json:"route" toml:"route"`
	Title       string    `yaml:"title" json:"title" toml:"title"`
	Date        time.Time `yaml:"date,omitempty" json:"date" toml:"date,omitempty"`
	Sticky      bool      `yaml:"sticky,omitempty" json:"sticky,omitempty" toml:"sticky,omitempty"`
	Categories  []string  `yaml:"categories,omitempty" json:"categories,omitempty" toml:"categories,omitempty"`
	Tags        []string  `yaml:"tags,omitempty" json:"tags,omitempty" toml:"tags,omitempty"`
	Source      string    `yaml:"source" json:"source" toml:"source"`
	Fingerprint string    `yaml:"fingerprint,omitempty" json:"fingerprint,omitempty" toml:"fingerprint,omitempty"`
}

// Index is the ordered blog listing.
type Index struct {
	Entries  []Entry `yaml:"entries" json:"entries" toml:"entries"`
	Excluded int     `yaml:"excluded" json:"excluded" toml:"excluded"`
}

// BuildIndex filters pages with pred and orders the survivors: sticky pages
// first, then newest date first, then title.
func BuildIndex(pages []page.Page, pred Predicate) Index {
	selected := Select(pages, pred)
	entries := make([]Entry, 0, len(selected))
	for _, p := range selected {
		sticky, _ := p.Bool("sticky")
		entries = append(entries, Entry{
			Route:       p.Route,
			Title:       p.Title,
			Date:        p.Date,
			Sticky:      sticky,
			Categories:  p.Strings("category"),
			Tags:        p.Strings("tag"),
			Source:      p.FilePathRelative,
			Fingerprint: p.Fingerprint,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Sticky != b.Sticky {
			return a.Sticky
		}
		if !a.Date.Equal(b.Date) {
			return a.Date.After(b.Date)
		}
		if a.Title != b.Title {
			return a.Title < b.Title
		}
		return a.Route < b.Route
	})
	return Index{Entries: entries, Excluded: len(pages) - len(selected)}
}
