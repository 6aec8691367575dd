package commands

import (
	"fmt"
)

// EncryptCmd implements the 'encrypt' command.
type EncryptCmd struct {
	Path string `arg:"" optional:"" help:"Page path or route; lists all protected paths when omitted"`
}

func (e *EncryptCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.LoadConfig()
	if err != nil {
		return err
	}
	enc := buildSite(cfg).Theme.Encrypt

	if e.Path == "" {
		for _, p := range enc.Paths() {
			_, _ = fmt.Fprintf(g.Out, "%s\t%s\n", p, enc.Config[p].Hint)
		}
		return nil
	}

	rule, ok := enc.Lookup(e.Path)
	if !ok {
		_, _ = fmt.Fprintf(g.Out, "%s: not protected\n", e.Path)
		return nil
	}
	_, _ = fmt.Fprintf(g.Out, "%s: protected (hint: %s)\n", e.Path, rule.Hint)
	return nil
}
