// Package site assembles the top-level site configuration.
package site

import "github.com/kbchulan/clblogs/internal/theme"

const (
	Base  = "/ClBlogs/"
	Lang  = "zh-CN"
	Title = "Chulan's Blog"
)

// Config is the root configuration object consumed by the site framework.
type Config struct {
	Base        string
	Lang        string
	Title       string
	Description string
	Theme       *theme.Config
}

// Default returns the site configuration with the composed theme.
func Default() *Config {
	return &Config{
		Base:        Base,
		Lang:        Lang,
		Title:       Title,
		Description: Title,
		Theme:       theme.Default(),
	}
}

// Document returns the host-shaped configuration map.
func (c *Config) Document() map[string]any {
	doc := map[string]any{
		"base":        c.Base,
		"lang":        c.Lang,
		"title":       c.Title,
		"description": c.Description,
	}
	if c.Theme != nil {
		doc["theme"] = c.Theme.Document()
	}
	return doc
}
