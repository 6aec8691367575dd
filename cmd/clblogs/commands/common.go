package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/kbchulan/clblogs/internal/config"
	"github.com/kbchulan/clblogs/internal/content"
	ferrors "github.com/kbchulan/clblogs/internal/foundation/errors"
	"github.com/kbchulan/clblogs/internal/logfields"
	"github.com/kbchulan/clblogs/internal/render"
	"github.com/kbchulan/clblogs/internal/site"
)

// Global carries the process streams shared by all subcommands.
type Global struct {
	Out io.Writer
	Err io.Writer
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"clblogs.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Dump    DumpCmd    `cmd:"" help:"Print the composed site configuration"`
	Check   CheckCmd   `cmd:"" help:"Check navbar, sidebar and encryption settings against the content tree"`
	Blog    BlogCmd    `cmd:"" help:"Build the blog index from the content tree"`
	Sidebar SidebarCmd `cmd:"" help:"Print the sidebar resolved against the content tree"`
	Encrypt EncryptCmd `cmd:"" help:"Show whether a page is password protected"`
	Watch   WatchCmd   `cmd:"" help:"Re-run checks and the blog index on content changes"`
	Init    InitCmd    `cmd:"" help:"Write an example configuration file"`
}

// AfterApply runs after flag parsing; it installs a provisional logger until
// the configuration is loaded.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return nil
}

// LoadConfig reads the configuration file and switches logging to its
// settings.
func (c *CLI) LoadConfig() (*config.Config, error) {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(cfg.Logging.NewLogger(os.Stderr, c.Verbose))
	slog.Debug("Loaded configuration", logfields.Path(c.Config), logfields.Format(string(cfg.Output.Format)))
	return cfg, nil
}

// ExitError requests a specific process exit code without printing an
// error message.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string { return fmt.Sprintf("exit status %d", e.Code) }

func buildSite(cfg *config.Config) *site.Config {
	s := site.Default()
	cfg.ApplyTo(s)
	return s
}

func scanContent(cfg *config.Config) (*content.Site, error) {
	var opts content.Options
	if cfg.Content.GitDates {
		dates, err := content.OpenGitDates(cfg.ContentDir)
		if err != nil {
			slog.Warn("Git dates disabled", logfields.Path(cfg.ContentDir), logfields.Error(err))
		} else {
			opts.Dates = dates
		}
	}
	return content.Scan(cfg.ContentDir, opts)
}

func outputFormat(flag string, cfg *config.Config) (render.Format, error) {
	if flag == "" {
		return cfg.Output.Format, nil
	}
	return render.ParseFormat(flag)
}

// emit encodes doc to the explicit file, to name inside the configured
// output directory, or to stdout.
func emit(g *Global, cfg *config.Config, file, name string, format render.Format, doc any) error {
	target := file
	if target == "" && cfg.Output.Directory != "" {
		target = filepath.Join(cfg.Output.Directory, name+"."+string(format))
	}
	if target == "" {
		return render.Encode(g.Out, format, doc)
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "create output directory").
			WithContext("path", target).Build()
	}
	f, err := os.Create(target)
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "create output file").
			WithContext("path", target).Build()
	}
	if err := render.Encode(f, format, doc); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "write output file").
			WithContext("path", target).Build()
	}
	slog.Info("Wrote output", logfields.Path(target))
	return nil
}

// isColorSupported reports whether w is a terminal that accepts colour.
func isColorSupported(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	if info, err := f.Stat(); err != nil || info.Mode()&os.ModeCharDevice == 0 {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	term := os.Getenv("TERM")
	return term != "" && term != "dumb"
}
