package check

import "sort"

// Severity indicates how serious an issue is.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	// SeverityError marks issues that break the generated site.
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "INFO"
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Issue is a single finding.
type Issue struct {
	Location string // config location ("navbar[1].children[0]") or page path
	Severity Severity
	Rule     string
	Message  string
	Fix      string
}

// Result collects all findings of a run.
type Result struct {
	Issues     []Issue
	PagesTotal int
}

func (r *Result) add(i Issue) { r.Issues = append(r.Issues, i) }

func (r *Result) count(s Severity) int {
	n := 0
	for _, i := range r.Issues {
		if i.Severity == s {
			n++
		}
	}
	return n
}

func (r *Result) ErrorCount() int   { return r.count(SeverityError) }
func (r *Result) WarningCount() int { return r.count(SeverityWarning) }
func (r *Result) HasErrors() bool   { return r.ErrorCount() > 0 }
func (r *Result) HasWarnings() bool { return r.WarningCount() > 0 }

// ExitCode is 2 with errors, 1 with only warnings and 0 otherwise.
func (r *Result) ExitCode() int {
	switch {
	case r.HasErrors():
		return 2
	case r.HasWarnings():
		return 1
	default:
		return 0
	}
}

// sortIssues orders by severity (most severe first), then rule and location.
func (r *Result) sortIssues() {
	sort.SliceStable(r.Issues, func(i, j int) bool {
		a, b := r.Issues[i], r.Issues[j]
		if a.Severity != b.Severity {
			return a.Severity > b.Severity
		}
		if a.Rule != b.Rule {
			return a.Rule < b.Rule
		}
		return a.Location < b.Location
	})
}
