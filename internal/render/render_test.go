package render

import (
	"bytes"
	"strings"
	"testing"

	json "github.com/json-iterator/go"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	ferrors "github.com/kbchulan/clblogs/internal/foundation/errors"
)

func sampleDoc() map[string]any {
	return map[string]any{
		"base":  "/ClBlogs/",
		"title": "Chulan's Blog",
		"theme": map[string]any{
			"displayFooter": true,
			"sidebarSorter": []string{"order", "date", "title"},
			"sidebar": map[string]any{
				"/": []any{"intro"},
			},
		},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"", FormatYAML},
		{"yaml", FormatYAML},
		{"YML", FormatYAML},
		{" json ", FormatJSON},
		{"toml", FormatTOML},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		require.NoError(t, err, tt.in)
		require.Equal(t, tt.want, got)
	}

	_, err := ParseFormat("xml")
	require.Error(t, err)
	require.True(t, ferrors.HasCategory(err, ferrors.CategoryValidation))
}

func TestEncodeYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, FormatYAML, sampleDoc()))

	var back map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &back))
	require.Equal(t, "/ClBlogs/", back["base"])
	require.Contains(t, buf.String(), "  displayFooter: true")
}

func TestEncodeJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, FormatJSON, sampleDoc()))

	var back map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &back))
	require.Equal(t, "Chulan's Blog", back["title"])
	require.Contains(t, buf.String(), "\n  \"base\"")
}

func TestEncodeTOML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, FormatTOML, sampleDoc()))

	var back map[string]any
	require.NoError(t, toml.Unmarshal(buf.Bytes(), &back))
	th := back["theme"].(map[string]any)
	require.Equal(t, true, th["displayFooter"])

	err := Encode(&buf, FormatTOML, []any{"a"})
	require.Error(t, err)
}

func TestEncodeUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	require.Error(t, Encode(&buf, Format("xml"), sampleDoc()))
}

func TestMerge(t *testing.T) {
	dst := sampleDoc()
	Merge(dst, map[string]any{
		"base": "/blog/",
		"theme": map[string]any{
			"sidebarSorter": []string{"date"},
			"extra":         map[string]any{"a": 1},
		},
	})
	require.Equal(t, "/blog/", dst["base"])
	th := dst["theme"].(map[string]any)
	require.Equal(t, []string{"date"}, th["sidebarSorter"])
	require.Equal(t, true, th["displayFooter"])
	require.Equal(t, map[string]any{"a": 1}, th["extra"])

	Merge(dst, nil)
	require.Equal(t, "/blog/", dst["base"])
}

func orderedDoc() map[string]any {
	sidebar := NewMap().
		Set("/", []any{"intro"}).
		Set("/program-main/", []any{""}).
		Set("/pages-other/", []any{map[string]any{"text": "week-once", "children": "structure"}})
	medias := NewMap().Set("GitHub", "KBchulan").Set("QQ", "2262317520").Set("Email", "a@b.c")
	return map[string]any{
		"theme": map[string]any{
			"sidebar": sidebar,
			"blog":    map[string]any{"medias": medias},
		},
	}
}

func requireInOrder(t *testing.T, out string, needles ...string) {
	t.Helper()
	last := -1
	for _, n := range needles {
		i := strings.Index(out, n)
		require.Greater(t, i, last, "%q out of order in:\n%s", n, out)
		last = i
	}
}

func TestEncodeKeepsMapOrder(t *testing.T) {
	for _, f := range []Format{FormatYAML, FormatJSON, FormatTOML} {
		t.Run(string(f), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, f, orderedDoc()))
			out := buf.String()
			requireInOrder(t, out, "/program-main/", "/pages-other/")
			requireInOrder(t, out, "GitHub", "QQ", "Email")
		})
	}
}

func TestEncodeOrderedRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, FormatJSON, orderedDoc()))
	var back map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &back))
	sb := back["theme"].(map[string]any)["sidebar"].(map[string]any)
	require.Equal(t, []any{"intro"}, sb["/"])
	require.Contains(t, buf.String(), "\n  \"theme\": {\n    \"blog\"")

	buf.Reset()
	require.NoError(t, Encode(&buf, FormatTOML, orderedDoc()))
	back = nil
	require.NoError(t, toml.Unmarshal(buf.Bytes(), &back))
	sb = back["theme"].(map[string]any)["sidebar"].(map[string]any)
	require.Equal(t, []any{""}, sb["/program-main/"])
	pages := sb["/pages-other/"].([]any)[0].(map[string]any)
	require.Equal(t, "structure", pages["children"])

	buf.Reset()
	require.NoError(t, Encode(&buf, FormatYAML, orderedDoc()))
	back = nil
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &back))
	medias := back["theme"].(map[string]any)["blog"].(map[string]any)["medias"].(map[string]any)
	require.Equal(t, "2262317520", medias["QQ"])
}

func TestMapSetKeepsPosition(t *testing.T) {
	m := NewMap().Set("b", 1).Set("a", 2).Set("b", 3)
	require.Equal(t, []string{"b", "a"}, m.Keys())
	v, ok := m.Get("b")
	require.True(t, ok)
	require.Equal(t, 3, v)
	require.Equal(t, 2, m.Len())
}

func TestTOMLFallsBackForUntaggableKeys(t *testing.T) {
	var buf bytes.Buffer
	doc := map[string]any{"m": NewMap().Set("z", 1).Set(`a,b`, 2)}
	require.NoError(t, Encode(&buf, FormatTOML, doc))
	var back map[string]any
	require.NoError(t, toml.Unmarshal(buf.Bytes(), &back))
	require.EqualValues(t, 2, back["m"].(map[string]any)["a,b"])
}

func TestMergeIntoOrderedMap(t *testing.T) {
	dst := orderedDoc()
	Merge(dst, map[string]any{"theme": map[string]any{"sidebar": map[string]any{
		"/": []any{"about"},
		"/zz/": []any{""},
	}}})
	sb := dst["theme"].(map[string]any)["sidebar"].(*Map)
	require.Equal(t, []string{"/", "/program-main/", "/pages-other/", "/zz/"}, sb.Keys())
	v, _ := sb.Get("/")
	require.Equal(t, []any{"about"}, v)
}
