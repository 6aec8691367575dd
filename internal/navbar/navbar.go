// Package navbar composes the top-level navigation of the site.
package navbar

import (
	"fmt"
	"strings"

	ferrors "github.com/kbchulan/clblogs/internal/foundation/errors"
)

// Entry is a navbar item. A leaf carries Link; a group carries Children and
// an optional Prefix that is prepended to relative child links.
type Entry struct {
	Text     string
	Icon     string
	Link     string
	Prefix   string
	Children []Entry
}

// IsGroup reports whether the entry nests other entries.
func (e Entry) IsGroup() bool {
	return len(e.Children) > 0 || (e.Link == "" && e.Prefix != "")
}

// Default returns the navbar of the blog.
func Default() []Entry {
	return []Entry{
		{Text: "主页", Icon: "house", Link: "/"},
		{
			Text:   "博客",
			Icon:   "blog",
			Prefix: "/blogs-main/",
			Children: []Entry{
				{Text: "cpp", Icon: "code", Link: "modern-cpp/"},
				{Text: "vue", Icon: "layer-group", Link: "vue3/"},
				{Text: "asio", Icon: "network-wired", Link: "asio/"},
				{Text: "rust", Icon: "gear", Link: "rust/"},
				{Text: "typescript", Icon: "file-code", Link: "typescript/"},
				{Text: "concurrent", Icon: "diagram-project", Link: "concurrent/"},
			},
		},
		{Text: "编程", Icon: "laptop-code", Link: "/program-main/"},
		{
			Text:   "其他",
			Icon:   "feather",
			Prefix: "/pages-other/",
			Children: []Entry{
				{Text: "一周一次", Icon: "calendar-week", Link: "week-once/"},
				{Text: "程序员工作法", Icon: "briefcase", Link: "work-method/"},
			},
		},
	}
}

// Validate checks that every leaf has a link and every group has children.
// It never fails the composition; callers decide what to do with the result.
func Validate(entries []Entry) []error {
	var errs []error
	walk(entries, "navbar", "", func(loc, _ string, e Entry) {
		switch {
		case e.Text == "":
			errs = append(errs, violation(loc, "entry has no text"))
		case e.IsGroup() && len(e.Children) == 0:
			errs = append(errs, violation(loc, fmt.Sprintf("group %q has no children", e.Text)))
		case !e.IsGroup() && strings.TrimSpace(e.Link) == "":
			errs = append(errs, violation(loc, fmt.Sprintf("link %q has no target", e.Text)))
		}
	})
	return errs
}

// Link is a resolved leaf target.
type Link struct {
	Location string
	Text     string
	Target   string
}

// Links flattens every leaf of the tree with group prefixes applied.
func Links(entries []Entry) []Link {
	var out []Link
	walk(entries, "navbar", "", func(loc, prefix string, e Entry) {
		if e.IsGroup() || e.Link == "" {
			return
		}
		out = append(out, Link{Location: loc, Text: e.Text, Target: Join(prefix, e.Link)})
	})
	return out
}

// IsExternal reports whether target leaves the site.
func IsExternal(target string) bool {
	return strings.Contains(target, "://") || strings.HasPrefix(target, "mailto:")
}

// Join resolves link against a group prefix; absolute and external links win.
func Join(prefix, link string) string {
	if strings.HasPrefix(link, "/") || IsExternal(link) || prefix == "" {
		return link
	}
	return strings.TrimSuffix(prefix, "/") + "/" + link
}

func walk(entries []Entry, loc, prefix string, fn func(loc, prefix string, e Entry)) {
	for i, e := range entries {
		here := fmt.Sprintf("%s[%d]", loc, i)
		fn(here, prefix, e)
		if len(e.Children) > 0 {
			walk(e.Children, here+".children", Join(prefix, e.Prefix), fn)
		}
	}
}

func violation(loc, msg string) error {
	return ferrors.ValidationError(msg).WithContext("location", loc).Build()
}

// Document returns the host-shaped representation of the navbar.
func Document(entries []Entry) []any {
	out := make([]any, 0, len(entries))
	for _, e := range entries {
		m := map[string]any{"text": e.Text}
		if e.Icon != "" {
			m["icon"] = e.Icon
		}
		if e.Link != "" {
			m["link"] = e.Link
		}
		if e.Prefix != "" {
			m["prefix"] = e.Prefix
		}
		if len(e.Children) > 0 {
			m["children"] = Document(e.Children)
		}
		out = append(out, m)
	}
	return out
}
