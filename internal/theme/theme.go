// Package theme aggregates the theme configuration handed to the site
// framework: identity, navigation, blog profile, encryption, markdown
// features and plugin options.
package theme

import (
	"github.com/kbchulan/clblogs/internal/navbar"
	"github.com/kbchulan/clblogs/internal/sidebar"
)

const (
	Hostname = "https://kbchulan.github.io/ClBlogs/"
	Repo     = "KBchulan/ClBlogs"
	DocsDir  = "src"
)

// DarkMode values understood by the theme.
const (
	DarkModeSwitch  = "switch"
	DarkModeToggle  = "toggle"
	DarkModeAuto    = "auto"
	DarkModeEnable  = "enable"
	DarkModeDisable = "disable"
)

type Author struct {
	Name string
	URL  string
}

// NavbarLayout places named navbar components in the three bar slots.
type NavbarLayout struct {
	Start  []string
	Center []string
	End    []string
}

type MetaLocales struct {
	EditLink string
}

// Config is the root theme aggregate.
type Config struct {
	Hostname      string
	Author        Author
	Repo          string
	DocsDir       string
	DarkMode      string
	Navbar        []navbar.Entry
	NavbarLayout  NavbarLayout
	Sidebar       sidebar.Sidebar
	Footer        string
	DisplayFooter bool
	Blog          Blog
	Encrypt       Encrypt
	MetaLocales   MetaLocales
	Markdown      Markdown
	SidebarSorter []string
	Plugins       Plugins
}

// Default composes the theme configuration of the blog. Every call returns a
// fresh value.
func Default() *Config {
	return &Config{
		Hostname: Hostname,
		Author:   Author{Name: "KBchulan", URL: Hostname},
		Repo:     Repo,
		DocsDir:  DocsDir,
		DarkMode: DarkModeEnable,
		Navbar:   navbar.Default(),
		NavbarLayout: NavbarLayout{
			Start:  []string{"Brand"},
			Center: []string{"Links"},
			End:    []string{"Search", "Repo", "Outlook"},
		},
		Sidebar:       sidebar.Default(),
		Footer:        "默认页脚",
		DisplayFooter: true,
		Blog:          DefaultBlog(),
		Encrypt:       DefaultEncrypt(),
		MetaLocales:   MetaLocales{EditLink: "在 GitHub 上编辑此页"},
		Markdown:      DefaultMarkdown(),
		SidebarSorter: []string{"order", "date", "title"},
		Plugins:       DefaultPlugins(),
	}
}

// SetHostname replaces the hostname and keeps the author URL in step when it
// pointed at the old hostname.
func (c *Config) SetHostname(hostname string) {
	if hostname == "" {
		return
	}
	if c.Author.URL == c.Hostname {
		c.Author.URL = hostname
	}
	c.Hostname = hostname
}

// Document returns the theme options in the shape the framework expects.
func (c *Config) Document() map[string]any {
	return map[string]any{
		"hostname": c.Hostname,
		"author":   map[string]any{"name": c.Author.Name, "url": c.Author.URL},
		"repo":     c.Repo,
		"docsDir":  c.DocsDir,
		"darkmode": c.DarkMode,
		"navbar":   navbar.Document(c.Navbar),
		"navbarLayout": map[string]any{
			"start":  c.NavbarLayout.Start,
			"center": c.NavbarLayout.Center,
			"end":    c.NavbarLayout.End,
		},
		"sidebar":       sidebar.Document(c.Sidebar),
		"footer":        c.Footer,
		"displayFooter": c.DisplayFooter,
		"blog":          c.Blog.Document(),
		"encrypt":       c.Encrypt.Document(),
		"metaLocales":   map[string]any{"editLink": c.MetaLocales.EditLink},
		"markdown":      c.Markdown.Document(),
		"sidebarSorter": c.SidebarSorter,
		"plugins":       c.Plugins.Document(),
	}
}
