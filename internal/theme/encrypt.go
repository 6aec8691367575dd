package theme

import (
	"fmt"
	"net/url"
	"sort"

	"github.com/kbchulan/clblogs/internal/page"
)

// EncryptRule gates one page behind a password.
type EncryptRule struct {
	Hint     string
	Password string
}

// Encrypt maps page paths to their password rule. Enforcement is done by the
// framework; this table only declares it.
type Encrypt struct {
	Config map[string]EncryptRule
}

const (
	encryptHint    = "请输入密码："
	weekOncePrefix = "/pages-other/week-once/"
)

var gatedEpisodes = []int{132, 169, 229, 270, 320}

func DefaultEncrypt() Encrypt {
	cfg := make(map[string]EncryptRule, len(gatedEpisodes))
	for _, n := range gatedEpisodes {
		cfg[fmt.Sprintf("%sEpisode %d", weekOncePrefix, n)] = EncryptRule{
			Hint:     encryptHint,
			Password: fmt.Sprintf("episode-%d", n),
		}
	}
	return Encrypt{Config: cfg}
}

// Lookup returns the rule for a page path. Paths match exactly once both
// sides are normalised: percent escapes decoded, NFC applied and a trailing
// ".html" or ".md" dropped.
func (e Encrypt) Lookup(p string) (EncryptRule, bool) {
	want := normalizeEncryptPath(p)
	for key, rule := range e.Config {
		if normalizeEncryptPath(key) == want {
			return rule, true
		}
	}
	return EncryptRule{}, false
}

// Paths lists the gated paths in sorted order.
func (e Encrypt) Paths() []string {
	out := make([]string, 0, len(e.Config))
	for k := range e.Config {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func (e Encrypt) Document() map[string]any {
	cfg := make(map[string]any, len(e.Config))
	for k, r := range e.Config {
		cfg[k] = map[string]any{"hint": r.Hint, "password": r.Password}
	}
	return map[string]any{"config": cfg}
}

func normalizeEncryptPath(p string) string {
	if u, err := url.PathUnescape(p); err == nil {
		p = u
	}
	return page.NormalizeRoute(p)
}
