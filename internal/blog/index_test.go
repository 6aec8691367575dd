package blog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/kbchulan/clblogs/internal/page"
)

func day(d int) time.Time { return time.Date(2025, 1, d, 0, 0, 0, 0, time.UTC) }

func TestBuildIndex_Ordering(t *testing.T) {
	pages := []page.Page{
		{FilePathRelative: "old.md", Route: "/old", Title: "Old", Date: day(1)},
		{FilePathRelative: "new.md", Route: "/new", Title: "New", Date: day(9)},
		{FilePathRelative: "pin.md", Route: "/pin", Title: "Pinned", Date: day(2), Frontmatter: map[string]any{"sticky": true}},
		{FilePathRelative: "b.md", Route: "/b", Title: "B"},
		{FilePathRelative: "a.md", Route: "/a", Title: "A"},
		{FilePathRelative: "README.md", Route: "/"},
	}

	idx := BuildIndex(pages, Filter)

	routes := make([]string, 0, len(idx.Entries))
	for _, e := range idx.Entries {
		routes = append(routes, e.Route)
	}
	require.Equal(t, []string{"/pin", "/new", "/old", "/a", "/b"}, routes)
	require.Equal(t, 1, idx.Excluded)
	require.True(t, idx.Entries[0].Sticky)
}

func TestBuildIndex_CarriesTaxonomies(t *testing.T) {
	pages := []page.Page{{
		FilePathRelative: "rust/ownership.md",
		Route:            "/rust/ownership",
		Title:            "Ownership",
		Fingerprint:      "sha256:abc",
		Frontmatter: map[string]any{
			"category": []any{"rust"},
			"tag":      "memory",
		},
	}}

	idx := BuildIndex(pages, nil)
	require.Len(t, idx.Entries, 1)
	e := idx.Entries[0]
	require.Equal(t, []string{"rust"}, e.Categories)
	require.Equal(t, []string{"memory"}, e.Tags)
	require.Equal(t, "rust/ownership.md", e.Source)
	require.Equal(t, "sha256:abc", e.Fingerprint)
}
