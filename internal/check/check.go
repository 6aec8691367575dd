// Package check verifies the site configuration against itself and, when
// available, against the scanned content tree.
package check

import (
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/kbchulan/clblogs/internal/content"
	ferrors "github.com/kbchulan/clblogs/internal/foundation/errors"
	"github.com/kbchulan/clblogs/internal/logfields"
	"github.com/kbchulan/clblogs/internal/markdown"
	"github.com/kbchulan/clblogs/internal/navbar"
	"github.com/kbchulan/clblogs/internal/page"
	"github.com/kbchulan/clblogs/internal/sidebar"
	"github.com/kbchulan/clblogs/internal/site"
)

// Rule identifiers.
const (
	RuleNavbarStructure  = "navbar-structure"
	RuleNavbarLink       = "navbar-link"
	RuleSidebarStructure = "sidebar-structure"
	RuleSidebarPrefix    = "sidebar-prefix"
	RuleSidebarPage      = "sidebar-page"
	RuleSorter           = "sorter"
	RuleEncryptRoute     = "encrypt-route"
	RuleEncryptPassword  = "encrypt-password"
	RulePageLink         = "page-link"
	RuleContentParse     = "content-parse"
)

// Run checks cfg. Content-dependent rules are skipped when tree is nil.
func Run(cfg *site.Config, tree *content.Site) *Result {
	r := &Result{}
	th := cfg.Theme

	for _, err := range navbar.Validate(th.Navbar) {
		r.add(fromError(err, RuleNavbarStructure, SeverityError))
	}
	for _, err := range sidebar.Validate(th.Sidebar) {
		r.add(fromError(err, RuleSidebarStructure, SeverityError))
	}
	sorter, err := sidebar.ParseSorter(th.SidebarSorter)
	if err != nil {
		r.add(fromError(err, RuleSorter, SeverityError))
	}
	checkPasswords(r, cfg)

	if tree != nil {
		r.PagesTotal = len(tree.Pages)
		for _, err := range tree.Problems {
			r.add(fromError(err, RuleContentParse, SeverityError))
		}
		checkNavbarLinks(r, cfg, tree)
		checkSidebar(r, cfg, tree, sorter)
		checkEncryptRoutes(r, cfg, tree)
		checkPageLinks(r, tree)
	}

	r.sortIssues()
	slog.Debug("Check finished",
		logfields.Count(len(r.Issues)),
		slog.Int("errors", r.ErrorCount()),
		slog.Int("warnings", r.WarningCount()))
	return r
}

func fromError(err error, rule string, sev Severity) Issue {
	issue := Issue{Rule: rule, Severity: sev, Message: err.Error()}
	if ce, ok := ferrors.AsClassified(err); ok {
		issue.Message = ce.Message()
		if ce.Cause() != nil {
			issue.Message += ": " + ce.Cause().Error()
		}
		for _, key := range []string{"location", "route", "path"} {
			if loc, ok := ce.Context().GetString(key); ok {
				issue.Location = loc
				break
			}
		}
	}
	return issue
}

func exists(tree *content.Site, route string) bool {
	if _, ok := tree.Page(route); ok {
		return true
	}
	return tree.HasDir(route)
}

func checkNavbarLinks(r *Result, cfg *site.Config, tree *content.Site) {
	for _, l := range navbar.Links(cfg.Theme.Navbar) {
		if navbar.IsExternal(l.Target) || exists(tree, l.Target) {
			continue
		}
		r.add(Issue{
			Location: l.Location,
			Severity: SeverityError,
			Rule:     RuleNavbarLink,
			Message:  fmt.Sprintf("navbar entry %q points to missing route %s", l.Text, l.Target),
			Fix:      "create the page or directory, or correct the link",
		})
	}
}

func checkSidebar(r *Result, cfg *site.Config, tree *content.Site, sorter sidebar.Sorter) {
	_, errs := sidebar.Resolve(cfg.Theme.Sidebar, tree.Pages, sorter)
	for _, err := range errs {
		r.add(fromError(err, sidebarRule(err), SeverityError))
	}
}

// sidebarRule reports missing directories under sidebar-prefix and missing
// pages under sidebar-page.
func sidebarRule(err error) string {
	if ce, ok := ferrors.AsClassified(err); ok {
		switch problem, _ := ce.Context().GetString(sidebar.ProblemKey); problem {
		case sidebar.ProblemPrefix, sidebar.ProblemStructure:
			return RuleSidebarPrefix
		}
	}
	return RuleSidebarPage
}

func checkEncryptRoutes(r *Result, cfg *site.Config, tree *content.Site) {
	enc := cfg.Theme.Encrypt
	for _, p := range enc.Paths() {
		if _, ok := tree.Page(p); ok {
			continue
		}
		r.add(Issue{
			Location: "encrypt.config[" + p + "]",
			Severity: SeverityWarning,
			Rule:     RuleEncryptRoute,
			Message:  "encrypted path matches no page; it is not protected",
		})
	}
}

func checkPasswords(r *Result, cfg *site.Config) {
	enc := cfg.Theme.Encrypt
	for _, p := range enc.Paths() {
		if strings.TrimSpace(enc.Config[p].Password) == "" {
			r.add(Issue{
				Location: "encrypt.config[" + p + "]",
				Severity: SeverityError,
				Rule:     RuleEncryptPassword,
				Message:  "encrypted page has an empty password",
			})
		}
	}
}

func checkPageLinks(r *Result, tree *content.Site) {
	for _, p := range tree.Pages {
		for _, l := range tree.Links[p.Route] {
			target, ok := internalTarget(p, l)
			if !ok || exists(tree, target) {
				continue
			}
			r.add(Issue{
				Location: p.FilePathRelative,
				Severity: SeverityWarning,
				Rule:     RulePageLink,
				Message:  fmt.Sprintf("link %s points to missing route %s", l.Destination, target),
			})
		}
	}
}

// internalTarget resolves a link to a site route. Links leaving the site,
// anchors and asset links report false.
func internalTarget(p page.Page, l markdown.Link) (string, bool) {
	dest := strings.TrimSpace(l.Destination)
	if l.Kind != markdown.LinkKindInline || dest == "" || strings.HasPrefix(dest, "#") || navbar.IsExternal(dest) {
		return "", false
	}
	if i := strings.IndexAny(dest, "#?"); i >= 0 {
		dest = dest[:i]
	}
	switch strings.ToLower(path.Ext(dest)) {
	case "", ".md", ".html":
	default:
		return "", false
	}
	if dest == "" {
		return "", false
	}
	if !strings.HasPrefix(dest, "/") {
		dir := strings.HasSuffix(dest, "/")
		dest = path.Join(p.Dir(), dest)
		if dir && dest != "/" {
			dest += "/"
		}
	}
	return page.NormalizeRoute(dest), true
}
