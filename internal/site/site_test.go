package site

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kbchulan/clblogs/internal/render"
)

func TestDefault(t *testing.T) {
	c := Default()
	require.Equal(t, "/ClBlogs/", c.Base)
	require.Equal(t, "zh-CN", c.Lang)
	require.Equal(t, "Chulan's Blog", c.Title)
	require.Equal(t, "Chulan's Blog", c.Description)
	require.NotNil(t, c.Theme)
	require.Equal(t, "KBchulan/ClBlogs", c.Theme.Repo)
}

func TestDefaultIsFresh(t *testing.T) {
	a := Default()
	a.Base = "/other/"
	a.Theme.Footer = "changed"

	b := Default()
	require.Equal(t, "/ClBlogs/", b.Base)
	require.Equal(t, "默认页脚", b.Theme.Footer)
}

func TestDocument(t *testing.T) {
	doc := Default().Document()
	require.Equal(t, "/ClBlogs/", doc["base"])
	require.Equal(t, "zh-CN", doc["lang"])
	th, ok := doc["theme"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "src", th["docsDir"])

	bare := (&Config{Base: "/"}).Document()
	require.NotContains(t, bare, "theme")
}

func TestDocumentEncodesDeclaredOrder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Encode(&buf, render.FormatYAML, Default().Document()))
	out := buf.String()

	at := func(s string) int {
		i := strings.Index(out, s)
		require.GreaterOrEqual(t, i, 0, s)
		return i
	}
	require.Less(t, at("/blogs-main/:"), at("/program-main/:"))
	require.Less(t, at("/program-main/:"), at("/pages-other/:"))
	require.Less(t, at("GitHub:"), at("QQ:"))
	require.Less(t, at("QQ:"), at("Wechat:"))
	require.Less(t, at("Wechat:"), at("Email:"))
	require.Less(t, at("Email:"), at("Gmail:"))
}
