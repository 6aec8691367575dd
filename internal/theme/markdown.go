package theme

// Replacement is the element a stylize rule renders instead of the match.
type Replacement struct {
	Tag     string
	Attrs   map[string]string
	Content string
}

// StylizeRule rewrites inline text equal to Matcher when it is wrapped in
// Tag. An empty Tag matches any wrapper.
type StylizeRule struct {
	Matcher     string
	Tag         string
	Replacement Replacement
}

// Apply reports the replacement for a match wrapped in tag, if the rule
// applies to it.
func (r StylizeRule) Apply(tag string) (Replacement, bool) {
	if r.Tag != "" && r.Tag != tag {
		return Replacement{}, false
	}
	attrs := make(map[string]string, len(r.Replacement.Attrs))
	for k, v := range r.Replacement.Attrs {
		attrs[k] = v
	}
	return Replacement{Tag: r.Replacement.Tag, Attrs: attrs, Content: r.Replacement.Content}, true
}

// Markdown lists the markdown features enabled in the framework.
type Markdown struct {
	Align       bool
	Attrs       bool
	CodeTabs    bool
	Component   bool
	Demo        bool
	Figure      bool
	GFM         bool
	ImgLazyload bool
	ImgSize     bool
	Include     bool
	Mark        bool
	PlantUML    bool
	Spoiler     bool
	Sub         bool
	Sup         bool
	Tabs        bool
	Tasklist    bool
	VPre        bool
	Stylize     []StylizeRule
}

func DefaultMarkdown() Markdown {
	return Markdown{
		Align:       true,
		Attrs:       true,
		CodeTabs:    true,
		Component:   true,
		Demo:        true,
		Figure:      true,
		GFM:         true,
		ImgLazyload: true,
		ImgSize:     true,
		Include:     true,
		Mark:        true,
		PlantUML:    true,
		Spoiler:     true,
		Sub:         true,
		Sup:         true,
		Tabs:        true,
		Tasklist:    true,
		VPre:        true,
		Stylize: []StylizeRule{{
			Matcher: "Recommended",
			Tag:     "em",
			Replacement: Replacement{
				Tag:     "Badge",
				Attrs:   map[string]string{"type": "tip"},
				Content: "Recommended",
			},
		}},
	}
}

// Toggles returns the boolean feature flags keyed by option name.
func (m Markdown) Toggles() map[string]bool {
	return map[string]bool{
		"align":       m.Align,
		"attrs":       m.Attrs,
		"codeTabs":    m.CodeTabs,
		"component":   m.Component,
		"demo":        m.Demo,
		"figure":      m.Figure,
		"gfm":         m.GFM,
		"imgLazyload": m.ImgLazyload,
		"imgSize":     m.ImgSize,
		"include":     m.Include,
		"mark":        m.Mark,
		"plantuml":    m.PlantUML,
		"spoiler":     m.Spoiler,
		"sub":         m.Sub,
		"sup":         m.Sup,
		"tabs":        m.Tabs,
		"tasklist":    m.Tasklist,
		"vPre":        m.VPre,
	}
}

func (m Markdown) Document() map[string]any {
	doc := make(map[string]any, 19)
	for k, v := range m.Toggles() {
		doc[k] = v
	}
	rules := make([]any, 0, len(m.Stylize))
	for _, r := range m.Stylize {
		attrs := make(map[string]any, len(r.Replacement.Attrs))
		for k, v := range r.Replacement.Attrs {
			attrs[k] = v
		}
		rules = append(rules, map[string]any{
			"matcher": r.Matcher,
			"tag":     r.Tag,
			"replacement": map[string]any{
				"tag":     r.Replacement.Tag,
				"attrs":   attrs,
				"content": r.Replacement.Content,
			},
		})
	}
	doc["stylize"] = rules
	return doc
}
