package commands

import (
	"log/slog"

	"github.com/kbchulan/clblogs/internal/logfields"
	"github.com/kbchulan/clblogs/internal/sidebar"
)

// SidebarCmd implements the 'sidebar' command.
type SidebarCmd struct {
	Format string `short:"f" help:"Output format (yaml, json, toml); defaults to output.format"`
	Output string `short:"o" help:"Write to this file instead of stdout"`
}

func (s *SidebarCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.LoadConfig()
	if err != nil {
		return err
	}
	format, err := outputFormat(s.Format, cfg)
	if err != nil {
		return err
	}
	tree, err := scanContent(cfg)
	if err != nil {
		return err
	}

	th := buildSite(cfg).Theme
	sorter, err := sidebar.ParseSorter(th.SidebarSorter)
	if err != nil {
		return err
	}
	sections, errs := sidebar.Resolve(th.Sidebar, tree.Pages, sorter)
	for _, e := range errs {
		slog.Warn("Unresolved sidebar entry", logfields.Error(e))
	}
	return emit(g, cfg, s.Output, "sidebar", format, sidebar.ResolvedDocument(sections))
}
