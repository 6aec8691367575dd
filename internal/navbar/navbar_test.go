package navbar

import (
	"testing"

	"github.com/stretchr/testify/require"

	ferrors "github.com/kbchulan/clblogs/internal/foundation/errors"
)

func TestDefault_IsStructurallyValid(t *testing.T) {
	require.Empty(t, Validate(Default()))
}

func TestDefault_ReturnsFreshValues(t *testing.T) {
	a := Default()
	a[0].Text = "changed"
	require.Equal(t, "主页", Default()[0].Text)
}

func TestLinks_AppliesGroupPrefixes(t *testing.T) {
	targets := make([]string, 0)
	for _, l := range Links(Default()) {
		targets = append(targets, l.Target)
	}
	require.Contains(t, targets, "/")
	require.Contains(t, targets, "/blogs-main/rust/")
	require.Contains(t, targets, "/pages-other/week-once/")
	require.Contains(t, targets, "/program-main/")
	require.Len(t, targets, 10)
}

func TestLinks_Location(t *testing.T) {
	links := Links(Default())
	require.Equal(t, "navbar[1].children[3]", links[4].Location)
	require.Equal(t, "rust", links[4].Text)
}

func TestValidate_ReportsViolations(t *testing.T) {
	entries := []Entry{
		{Text: "Home"},
		{Text: "Empty group", Prefix: "/x/"},
		{Link: "/nameless"},
		{Text: "Group", Children: []Entry{{Text: "child"}}},
	}

	errs := Validate(entries)
	require.Len(t, errs, 4)

	locations := make([]string, 0, len(errs))
	for _, err := range errs {
		require.True(t, ferrors.HasCategory(err, ferrors.CategoryValidation))
		c, ok := ferrors.AsClassified(err)
		require.True(t, ok)
		loc, _ := c.Context().GetString("location")
		locations = append(locations, loc)
	}
	require.Equal(t, []string{"navbar[0]", "navbar[1]", "navbar[2]", "navbar[3].children[0]"}, locations)
}

func TestJoin(t *testing.T) {
	require.Equal(t, "/a/b", Join("/a/", "b"))
	require.Equal(t, "/a/b", Join("/a", "b"))
	require.Equal(t, "/abs", Join("/a/", "/abs"))
	require.Equal(t, "https://github.com/x", Join("/a/", "https://github.com/x"))
	require.Equal(t, "b", Join("", "b"))
}

func TestDocument(t *testing.T) {
	doc := Document(Default())
	require.Len(t, doc, 4)

	home := doc[0].(map[string]any)
	require.Equal(t, map[string]any{"text": "主页", "icon": "house", "link": "/"}, home)

	blog := doc[1].(map[string]any)
	require.Equal(t, "/blogs-main/", blog["prefix"])
	require.NotContains(t, blog, "link")
	require.Len(t, blog["children"], 6)
}
