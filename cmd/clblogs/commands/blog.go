package commands

import (
	"log/slog"

	"github.com/kbchulan/clblogs/internal/blog"
	"github.com/kbchulan/clblogs/internal/logfields"
)

// BlogCmd implements the 'blog' command.
type BlogCmd struct {
	Format string `short:"f" help:"Output format (yaml, json, toml); defaults to output.format"`
	Output string `short:"o" help:"Write to this file instead of stdout"`
}

func (b *BlogCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.LoadConfig()
	if err != nil {
		return err
	}
	format, err := outputFormat(b.Format, cfg)
	if err != nil {
		return err
	}
	tree, err := scanContent(cfg)
	if err != nil {
		return err
	}

	filter := buildSite(cfg).Theme.Plugins.Blog.Filter
	idx := blog.BuildIndex(tree.Pages, filter)
	slog.Info("Built blog index", logfields.Count(len(idx.Entries)), slog.Int("excluded", idx.Excluded))
	return emit(g, cfg, b.Output, "blog", format, idx)
}
