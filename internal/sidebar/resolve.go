package sidebar

import (
	"fmt"
	"path"
	"sort"
	"strings"

	ferrors "github.com/kbchulan/clblogs/internal/foundation/errors"
	"github.com/kbchulan/clblogs/internal/page"
	"github.com/kbchulan/clblogs/internal/render"
)

// Node is a resolved sidebar entry with a concrete route.
type Node struct {
	Text        string
	Icon        string
	Link        string
	Collapsible bool
	Children    []Node
}

// ResolvedSection is a Section after resolution.
type ResolvedSection struct {
	Prefix string
	Nodes  []Node
}

// resolver indexes the scanned pages by route and by directory.
type resolver struct {
	sorter  Sorter
	byRoute map[string]page.Page
	byDir   map[string][]page.Page
	subdirs map[string]map[string]struct{}
	errs    []error
}

// Resolve expands every section against the scanned pages. Structure groups
// are inferred from the directory tree: the README of a directory becomes
// the group link, pages with `index: false` are skipped and subdirectories
// become nested collapsible groups. Missing pages and empty prefixes are
// reported as content errors; resolution continues past them.
func Resolve(s Sidebar, pages []page.Page, sorter Sorter) ([]ResolvedSection, []error) {
	r := newResolver(pages, sorter)
	out := make([]ResolvedSection, 0, len(s))
	for _, sec := range s {
		if !r.hasDir(sec.Prefix) {
			r.fail(sec.Prefix, ProblemPrefix, "sidebar prefix has no content directory")
		}
		out = append(out, ResolvedSection{Prefix: sec.Prefix, Nodes: r.items(sec.Prefix, sec.Items)})
	}
	return out, r.errs
}

func newResolver(pages []page.Page, sorter Sorter) *resolver {
	r := &resolver{
		sorter:  sorter,
		byRoute: make(map[string]page.Page, len(pages)),
		byDir:   make(map[string][]page.Page),
		subdirs: make(map[string]map[string]struct{}),
	}
	for _, p := range pages {
		r.byRoute[p.Route] = p
		dir := p.Dir()
		if p.Route != dir {
			r.byDir[dir] = append(r.byDir[dir], p)
		}
		for d := dir; d != "/"; {
			parent := path.Dir(strings.TrimSuffix(d, "/"))
			if parent != "/" {
				parent += "/"
			}
			if r.subdirs[parent] == nil {
				r.subdirs[parent] = make(map[string]struct{})
			}
			r.subdirs[parent][d] = struct{}{}
			d = parent
		}
	}
	return r
}

func (r *resolver) hasDir(dir string) bool {
	if _, ok := r.byRoute[dir]; ok {
		return true
	}
	return len(r.byDir[dir]) > 0 || len(r.subdirs[dir]) > 0
}

// Resolve failures carry a ProblemKey context entry naming what was missing.
const (
	ProblemKey       = "problem"
	ProblemPrefix    = "prefix"
	ProblemPage      = "page"
	ProblemStructure = "structure"
)

func (r *resolver) fail(route, problem, msg string) {
	r.errs = append(r.errs, ferrors.ContentError(msg).
		WithContext("route", route).
		WithContext(ProblemKey, problem).
		Build())
}

func (r *resolver) items(base string, items []Item) []Node {
	nodes := make([]Node, 0, len(items))
	for _, it := range items {
		if it.IsPage() {
			route := page.NormalizeRoute(joinRoute(base, it.Link))
			p, ok := r.byRoute[route]
			if !ok {
				r.fail(route, ProblemPage, fmt.Sprintf("sidebar page %q not found", it.Link))
				continue
			}
			nodes = append(nodes, pageNode(p))
			continue
		}
		nodes = append(nodes, r.group(base, it))
	}
	return nodes
}

func (r *resolver) group(base string, it Item) Node {
	gbase := joinRoute(base, it.Prefix)
	n := Node{Text: it.Text, Icon: it.Icon, Collapsible: it.Collapsible}
	if it.Link != "" {
		n.Link = page.NormalizeRoute(joinRoute(gbase, it.Link))
	}
	switch {
	case it.Children.Structure:
		if !r.hasDir(gbase) {
			r.fail(gbase, ProblemStructure, fmt.Sprintf("structure group %q has no content directory", it.Text))
		}
		n.Children = r.structure(gbase)
	default:
		n.Children = r.items(gbase, it.Children.Items)
	}
	return n
}

// structure infers the children of dir from the scanned pages.
func (r *resolver) structure(dir string) []Node {
	type candidate struct {
		entry Entry
		node  Node
	}
	var cands []candidate
	for _, p := range r.byDir[dir] {
		if idx, ok := p.Bool("index"); ok && !idx {
			continue
		}
		cands = append(cands, candidate{
			entry: Entry{Page: p, Title: p.Title, Name: path.Base(p.FilePathRelative)},
			node:  pageNode(p),
		})
	}

	subs := make([]string, 0, len(r.subdirs[dir]))
	for sub := range r.subdirs[dir] {
		subs = append(subs, sub)
	}
	sort.Strings(subs)
	for _, sub := range subs {
		children := r.structure(sub)
		name := path.Base(strings.TrimSuffix(sub, "/"))
		readme, hasReadme := r.byRoute[sub]
		if hasReadme {
			if idx, ok := readme.Bool("index"); ok && !idx {
				continue
			}
		}
		if len(children) == 0 && !hasReadme {
			continue
		}
		n := Node{Text: name, Collapsible: true, Children: children}
		entry := Entry{Page: page.Page{Route: sub}, Title: name, Name: name}
		if hasReadme {
			n.Text = readme.Title
			n.Icon, _ = readme.String("icon")
			n.Link = readme.Route
			entry.Page = readme
			entry.Title = readme.Title
		}
		cands = append(cands, candidate{entry: entry, node: n})
	}

	entries := make([]Entry, len(cands))
	nodes := make(map[string]Node, len(cands))
	for i, c := range cands {
		entries[i] = c.entry
		nodes[c.entry.Page.Route] = c.node
	}
	r.sorter.Sort(entries)
	out := make([]Node, 0, len(entries))
	for _, e := range entries {
		out = append(out, nodes[e.Page.Route])
	}
	return out
}

func pageNode(p page.Page) Node {
	icon, _ := p.String("icon")
	return Node{Text: p.Title, Icon: icon, Link: p.Route}
}

func joinRoute(base, rel string) string {
	if strings.HasPrefix(rel, "/") {
		return rel
	}
	return strings.TrimSuffix(base, "/") + "/" + rel
}

// ResolvedDocument returns the host-shaped representation of resolved sections.
func ResolvedDocument(sections []ResolvedSection) *render.Map {
	out := render.NewMap()
	for _, sec := range sections {
		out.Set(sec.Prefix, nodesDocument(sec.Nodes))
	}
	return out
}

func nodesDocument(nodes []Node) []any {
	out := make([]any, 0, len(nodes))
	for _, n := range nodes {
		m := map[string]any{"text": n.Text}
		if n.Icon != "" {
			m["icon"] = n.Icon
		}
		if n.Link != "" {
			m["link"] = n.Link
		}
		if n.Collapsible {
			m["collapsible"] = true
		}
		if len(n.Children) > 0 {
			m["children"] = nodesDocument(n.Children)
		}
		out = append(out, m)
	}
	return out
}
