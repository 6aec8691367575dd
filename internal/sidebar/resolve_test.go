package sidebar

import (
	"testing"

	"github.com/stretchr/testify/require"

	ferrors "github.com/kbchulan/clblogs/internal/foundation/errors"
	"github.com/kbchulan/clblogs/internal/page"
)

func mkPage(rel, title string, fm map[string]any) page.Page {
	return page.Page{FilePathRelative: rel, Route: page.RouteFor(rel), Title: title, Frontmatter: fm}
}

func samplePages() []page.Page {
	return []page.Page{
		mkPage("README.md", "Home", nil),
		mkPage("intro.md", "Intro", nil),
		mkPage("blogs-main/README.md", "Blogs", nil),
		mkPage("blogs-main/rust/README.md", "Rust", map[string]any{"icon": "gear"}),
		mkPage("blogs-main/rust/02-borrow.md", "Borrowing", map[string]any{"order": 2}),
		mkPage("blogs-main/rust/01-own.md", "Ownership", map[string]any{"order": 1}),
		mkPage("blogs-main/rust/draft.md", "Draft", map[string]any{"index": false}),
		mkPage("blogs-main/rust/async/README.md", "Async", map[string]any{"order": 3}),
		mkPage("blogs-main/rust/async/futures.md", "Futures", nil),
		mkPage("blogs-main/rust/extra/tokio.md", "Tokio", nil),
	}
}

func TestResolve_StructureGroup(t *testing.T) {
	sb := Sidebar{
		{Prefix: "/", Items: []Item{Page("intro")}},
		{Prefix: "/blogs-main/", Items: []Item{Page(""), structureGroup("rust", "rust/")}},
	}

	sections, errs := Resolve(sb, samplePages(), Sorter{SortOrder, SortTitle})
	require.Empty(t, errs)
	require.Len(t, sections, 2)

	require.Equal(t, []Node{{Text: "Intro", Link: "/intro"}}, sections[0].Nodes)

	blogs := sections[1].Nodes
	require.Len(t, blogs, 2)
	require.Equal(t, Node{Text: "Blogs", Link: "/blogs-main/"}, blogs[0])

	rust := blogs[1]
	require.Equal(t, "rust", rust.Text)
	require.True(t, rust.Collapsible)

	texts := make([]string, 0, len(rust.Children))
	for _, c := range rust.Children {
		texts = append(texts, c.Text)
	}
	// order 1, 2, 3 first; unordered "extra" dir afterwards; draft skipped.
	require.Equal(t, []string{"Ownership", "Borrowing", "Async", "extra"}, texts)

	async := rust.Children[2]
	require.Equal(t, "/blogs-main/rust/async/", async.Link)
	require.True(t, async.Collapsible)
	require.Equal(t, []Node{{Text: "Futures", Link: "/blogs-main/rust/async/futures"}}, async.Children)

	extra := rust.Children[3]
	require.Empty(t, extra.Link)
	require.Len(t, extra.Children, 1)
}

func TestResolve_ReportsMissingContent(t *testing.T) {
	sb := Sidebar{
		{Prefix: "/", Items: []Item{Page("intro"), Page("missing")}},
		{Prefix: "/pages-other/", Items: []Item{Page(""), structureGroup("一周一次", "week-once/")}},
	}

	sections, errs := Resolve(sb, samplePages(), Sorter{SortOrder})
	require.Len(t, sections, 2)
	require.Len(t, sections[0].Nodes, 1)

	// missing page, missing prefix dir, missing README, missing structure dir
	require.Len(t, errs, 4)
	problems := make([]string, 0, len(errs))
	for _, err := range errs {
		require.True(t, ferrors.HasCategory(err, ferrors.CategoryContent))
		ce, _ := ferrors.AsClassified(err)
		problem, _ := ce.Context().GetString(ProblemKey)
		problems = append(problems, problem)
	}
	require.Equal(t, []string{ProblemPage, ProblemPrefix, ProblemPage, ProblemStructure}, problems)
}

func TestResolve_ExplicitChildren(t *testing.T) {
	sb := Sidebar{{Prefix: "/blogs-main/", Items: []Item{
		{Text: "rust", Prefix: "rust/", Link: "", Children: List(Page("02-borrow"), Page("01-own"))},
	}}}

	sections, errs := Resolve(sb, samplePages(), nil)
	require.Empty(t, errs)
	group := sections[0].Nodes[0]
	require.Equal(t, "Borrowing", group.Children[0].Text)
	require.Equal(t, "Ownership", group.Children[1].Text)
}

func TestResolvedDocument(t *testing.T) {
	sections := []ResolvedSection{{Prefix: "/", Nodes: []Node{
		{Text: "Intro", Link: "/intro"},
		{Text: "Group", Collapsible: true, Children: []Node{{Text: "Leaf", Icon: "leaf", Link: "/g/leaf"}}},
	}}}

	doc := ResolvedDocument(sections)
	v, _ := doc.Get("/")
	nodes := v.([]any)
	require.Equal(t, map[string]any{"text": "Intro", "link": "/intro"}, nodes[0])
	group := nodes[1].(map[string]any)
	require.Equal(t, true, group["collapsible"])
	require.Len(t, group["children"], 1)
}
