package theme

import "github.com/kbchulan/clblogs/internal/blog"

// BlogPlugin configures the blog listing.
type BlogPlugin struct {
	// Filter decides which pages are listed as articles.
	Filter blog.Predicate
	// FilterName is how Filter appears in encoded documents.
	FilterName    string
	ExcerptLength int
}

type Plugins struct {
	Blog       BlogPlugin
	Components []string
	IconPrefix string
}

func DefaultPlugins() Plugins {
	return Plugins{
		Blog: BlogPlugin{
			Filter:        blog.Filter,
			FilterName:    "blog.Filter",
			ExcerptLength: 0,
		},
		Components: []string{"Badge", "VPCard"},
		IconPrefix: "fa6-solid:",
	}
}

func (p Plugins) Document() map[string]any {
	return map[string]any{
		"blog": map[string]any{
			"filter":        p.Blog.FilterName,
			"excerptLength": p.Blog.ExcerptLength,
		},
		"components": map[string]any{"components": p.Components},
		"icon":       map[string]any{"prefix": p.IconPrefix},
	}
}
