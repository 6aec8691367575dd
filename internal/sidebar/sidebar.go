// Package sidebar composes the per-section sidebar trees and resolves them
// against the content tree.
//
// A Sidebar maps URL path prefixes to ordered item lists. Items are either
// page slugs relative to the prefix (the empty slug names the prefix README)
// or groups whose children are listed explicitly or inferred from the
// directory structure.
package sidebar

import (
	"fmt"
	"strings"

	ferrors "github.com/kbchulan/clblogs/internal/foundation/errors"
	"github.com/kbchulan/clblogs/internal/render"
)

// Children describes how a group obtains its child items.
type Children struct {
	// Structure asks for children inferred from the directory under the
	// group prefix, ordered by the sidebar sorter.
	Structure bool
	Items     []Item
}

// Structure returns directory-inferred children.
func Structure() Children { return Children{Structure: true} }

// List returns explicitly ordered children.
func List(items ...Item) Children { return Children{Items: items} }

// Empty reports whether no children are configured.
func (c Children) Empty() bool { return !c.Structure && len(c.Items) == 0 }

// Item is a sidebar entry.
type Item struct {
	Text        string
	Icon        string
	Prefix      string
	Link        string
	Collapsible bool
	Children    Children
}

// Page returns a bare page slug item.
func Page(slug string) Item { return Item{Link: slug} }

// IsPage reports whether the item is a bare page slug.
func (i Item) IsPage() bool {
	return i.Text == "" && i.Icon == "" && i.Prefix == "" && !i.Collapsible && i.Children.Empty()
}

// Section binds an item list to a URL path prefix.
type Section struct {
	Prefix string
	Items  []Item
}

// Sidebar is an ordered mapping from path prefixes to item lists.
type Sidebar []Section

// Lookup returns the items registered for exactly prefix.
func (s Sidebar) Lookup(prefix string) ([]Item, bool) {
	for _, sec := range s {
		if sec.Prefix == prefix {
			return sec.Items, true
		}
	}
	return nil, false
}

// Match returns the section with the longest prefix covering route.
func (s Sidebar) Match(route string) (Section, bool) {
	var best Section
	found := false
	for _, sec := range s {
		if strings.HasPrefix(route, sec.Prefix) && (!found || len(sec.Prefix) > len(best.Prefix)) {
			best, found = sec, true
		}
	}
	return best, found
}

func structureGroup(text, prefix string) Item {
	return Item{Text: text, Prefix: prefix, Collapsible: true, Children: Structure()}
}

// Default returns the current sidebar of the blog. Earlier revisions of this
// table are not kept.
func Default() Sidebar {
	return Sidebar{
		{Prefix: "/", Items: []Item{Page("intro")}},
		{Prefix: "/blogs-main/", Items: []Item{
			Page(""),
			structureGroup("cpp", "modern-cpp/"),
			structureGroup("vue", "vue3/"),
			structureGroup("asio", "asio/"),
			structureGroup("rust", "rust/"),
			structureGroup("typescript", "typescript/"),
			structureGroup("concurrent", "concurrent/"),
		}},
		{Prefix: "/program-main/", Items: []Item{Page("")}},
		{Prefix: "/pages-other/", Items: []Item{
			Page(""),
			structureGroup("一周一次", "week-once/"),
			structureGroup("程序员工作法", "work-method/"),
		}},
	}
}

// Validate checks the shape of the table: prefixes are absolute directory
// paths and unique, groups have text and a child source.
func Validate(s Sidebar) []error {
	var errs []error
	seen := make(map[string]bool, len(s))
	for _, sec := range s {
		loc := fmt.Sprintf("sidebar[%q]", sec.Prefix)
		if !strings.HasPrefix(sec.Prefix, "/") || !strings.HasSuffix(sec.Prefix, "/") {
			errs = append(errs, violation(loc, "prefix must start and end with /"))
		}
		if seen[sec.Prefix] {
			errs = append(errs, violation(loc, "duplicate prefix"))
		}
		seen[sec.Prefix] = true
		if len(sec.Items) == 0 {
			errs = append(errs, violation(loc, "section has no items"))
		}
		errs = append(errs, validateItems(loc, sec.Items)...)
	}
	return errs
}

func validateItems(loc string, items []Item) []error {
	var errs []error
	for i, it := range items {
		here := fmt.Sprintf("%s[%d]", loc, i)
		if it.IsPage() {
			continue
		}
		if it.Text == "" {
			errs = append(errs, violation(here, "group has no text"))
		}
		if it.Prefix != "" && !strings.HasSuffix(it.Prefix, "/") {
			errs = append(errs, violation(here, fmt.Sprintf("group prefix %q must end with /", it.Prefix)))
		}
		if it.Children.Empty() && it.Link == "" {
			errs = append(errs, violation(here, fmt.Sprintf("group %q has neither children nor link", it.Text)))
		}
		if it.Children.Structure && len(it.Children.Items) > 0 {
			errs = append(errs, violation(here, fmt.Sprintf("group %q mixes structure with explicit children", it.Text)))
		}
		errs = append(errs, validateItems(here+".children", it.Children.Items)...)
	}
	return errs
}

func violation(loc, msg string) error {
	return ferrors.ValidationError(msg).WithContext("location", loc).Build()
}

// Document returns the host-shaped representation: prefix keys mapping to
// lists of slugs and group objects. Prefixes keep their declared order.
func Document(s Sidebar) *render.Map {
	out := render.NewMap()
	for _, sec := range s {
		out.Set(sec.Prefix, itemsDocument(sec.Items))
	}
	return out
}

func itemsDocument(items []Item) []any {
	out := make([]any, 0, len(items))
	for _, it := range items {
		if it.IsPage() {
			out = append(out, it.Link)
			continue
		}
		m := map[string]any{"text": it.Text}
		if it.Icon != "" {
			m["icon"] = it.Icon
		}
		if it.Prefix != "" {
			m["prefix"] = it.Prefix
		}
		if it.Link != "" {
			m["link"] = it.Link
		}
		if it.Collapsible {
			m["collapsible"] = true
		}
		switch {
		case it.Children.Structure:
			m["children"] = "structure"
		case len(it.Children.Items) > 0:
			m["children"] = itemsDocument(it.Children.Items)
		}
		out = append(out, m)
	}
	return out
}
