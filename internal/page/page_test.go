package page

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRouteFor(t *testing.T) {
	cases := []struct{ in, want string }{
		{"README.md", "/"},
		{"intro.md", "/intro"},
		{"guide/README.md", "/guide/"},
		{"guide/index.md", "/guide/"},
		{"pages-other/week-once/Episode 132.md", "/pages-other/week-once/Episode 132"},
		{"./blogs-main/rust/01-basics.md", "/blogs-main/rust/01-basics"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, RouteFor(tc.in), tc.in)
	}
}

func TestNormalizeRoute(t *testing.T) {
	cases := []struct{ in, want string }{
		{"", "/"},
		{"intro", "/intro"},
		{"/intro.html", "/intro"},
		{"/blogs-main/", "/blogs-main/"},
		{"/guide/index.html", "/guide/"},
		{"/guide/README.md", "/guide/"},
		{"/intro.html#section", "/intro"},
		{" /pages-other/a.md ", "/pages-other/a"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, NormalizeRoute(tc.in), tc.in)
	}
}

func TestNormalizeRoute_UnicodeForms(t *testing.T) {
	// "é" as a single code point vs. "e" + combining acute accent.
	composed := "/caf\u00e9"
	decomposed := "/cafe\u0301"
	require.Equal(t, NormalizeRoute(composed), NormalizeRoute(decomposed))
}

func TestPageDir(t *testing.T) {
	require.Equal(t, "/a/", Page{Route: "/a/"}.Dir())
	require.Equal(t, "/a/", Page{Route: "/a/b"}.Dir())
	require.Equal(t, "/", Page{Route: "/intro"}.Dir())
}

func TestFrontmatterAccessors(t *testing.T) {
	p := Page{Frontmatter: map[string]any{
		"article":  false,
		"index":    "false",
		"title":    "Intro",
		"order":    3,
		"weight":   2.0,
		"tag":      []any{"go", 1, "yaml"},
		"category": "notes",
	}}

	v, ok := p.Bool("article")
	require.True(t, ok)
	require.False(t, v)

	_, ok = p.Bool("index")
	require.False(t, ok, "string values are not booleans")

	title, ok := p.String("title")
	require.True(t, ok)
	require.Equal(t, "Intro", title)

	n, ok := p.Int("order")
	require.True(t, ok)
	require.Equal(t, 3, n)
	n, ok = p.Int("weight")
	require.True(t, ok)
	require.Equal(t, 2, n)

	require.Equal(t, []string{"go", "yaml"}, p.Strings("tag"))
	require.Equal(t, []string{"notes"}, p.Strings("category"))
	require.Nil(t, p.Strings("missing"))

	_, ok = Page{}.Value("title")
	require.False(t, ok)
}

func TestParseDate(t *testing.T) {
	d, ok := ParseDate("2024-03-05")
	require.True(t, ok)
	require.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), d)

	_, ok = ParseDate("2024/3/5")
	require.True(t, ok)

	_, ok = ParseDate("yesterday")
	require.False(t, ok)

	_, ok = ParseDate(time.Time{})
	require.False(t, ok)
}

func TestIsReadme(t *testing.T) {
	require.True(t, Page{FilePathRelative: "guide/README.md"}.IsReadme())
	require.False(t, Page{FilePathRelative: "guide/intro.md"}.IsReadme())
	require.False(t, Page{}.IsReadme())
}
