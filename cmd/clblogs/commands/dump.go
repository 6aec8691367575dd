package commands

import (
	"github.com/kbchulan/clblogs/internal/render"
)

// DumpCmd implements the 'dump' command.
type DumpCmd struct {
	Format string `short:"f" help:"Output format (yaml, json, toml); defaults to output.format"`
	Part   string `short:"p" default:"site" enum:"site,theme,navbar,sidebar" help:"Part of the configuration to print"`
	Output string `short:"o" help:"Write to this file instead of stdout"`
}

func (d *DumpCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.LoadConfig()
	if err != nil {
		return err
	}
	format, err := outputFormat(d.Format, cfg)
	if err != nil {
		return err
	}

	doc := buildSite(cfg).Document()
	render.Merge(doc, cfg.Overrides)
	return emit(g, cfg, d.Output, d.Part, format, selectPart(doc, d.Part))
}

// selectPart narrows the site document. Navbar and sidebar stay wrapped in
// their key so every part encodes as a table.
func selectPart(doc map[string]any, part string) map[string]any {
	if part == "" || part == "site" {
		return doc
	}
	th, _ := doc["theme"].(map[string]any)
	if part == "theme" {
		return th
	}
	return map[string]any{part: th[part]}
}
