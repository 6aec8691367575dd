package commands

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/kbchulan/clblogs/internal/blog"
	"github.com/kbchulan/clblogs/internal/check"
	"github.com/kbchulan/clblogs/internal/config"
	"github.com/kbchulan/clblogs/internal/logfields"
	"github.com/kbchulan/clblogs/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	Output string `short:"o" help:"Rewrite the blog index to this file on every run"`
}

func (w *WatchCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.LoadConfig()
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return watch.New(cfg.ContentDir, cfg.DebounceDuration(), w.handler(g, cfg)).Run(ctx, true)
}

func (w *WatchCmd) handler(g *Global, cfg *config.Config) watch.Handler {
	return func(_ context.Context, runID string) error {
		log := slog.With(logfields.RunID(runID))
		tree, err := scanContent(cfg)
		if err != nil {
			return err
		}
		s := buildSite(cfg)
		result := check.Run(s, tree)
		for _, issue := range result.Issues {
			log.Warn(issue.Message, logfields.Rule(issue.Rule), slog.String("location", issue.Location),
				slog.String("severity", issue.Severity.String()))
		}
		log.Info("Content checked", logfields.Count(len(tree.Pages)),
			slog.Int("errors", result.ErrorCount()), slog.Int("warnings", result.WarningCount()))

		if w.Output == "" {
			return nil
		}
		format, err := outputFormat(formatFromExt(w.Output), cfg)
		if err != nil {
			return err
		}
		return emit(g, cfg, w.Output, "blog", format, blog.BuildIndex(tree.Pages, s.Theme.Plugins.Blog.Filter))
	}
}

func formatFromExt(path string) string {
	ext := filepath.Ext(path)
	if ext == "" {
		return ""
	}
	return ext[1:]
}
