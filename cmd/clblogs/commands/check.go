package commands

import (
	"github.com/kbchulan/clblogs/internal/check"
	"github.com/kbchulan/clblogs/internal/content"
)

// CheckCmd implements the 'check' command.
type CheckCmd struct {
	Format    string `short:"f" default:"text" enum:"text,json" help:"Report format (text or json)"`
	NoContent bool   `help:"Only check the configuration, without scanning the content tree"`
}

// Run exits 2 when errors were found and 1 when only warnings were.
func (c *CheckCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.LoadConfig()
	if err != nil {
		return err
	}

	var tree *content.Site
	dir := ""
	if !c.NoContent {
		if tree, err = scanContent(cfg); err != nil {
			return err
		}
		dir = cfg.ContentDir
	}

	result := check.Run(buildSite(cfg), tree)
	if err := check.NewFormatter(c.Format, isColorSupported(g.Out)).Format(g.Out, result, dir); err != nil {
		return err
	}
	if code := result.ExitCode(); code != 0 {
		return &ExitError{Code: code}
	}
	return nil
}
