package check

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	json "github.com/json-iterator/go"
)

// Formatter writes a check result.
type Formatter interface {
	Format(w io.Writer, result *Result, contentDir string) error
}

var (
	red    = color.New(color.FgRed, color.Bold).SprintFunc()
	yellow = color.New(color.FgYellow, color.Bold).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	green  = color.New(color.FgGreen, color.Bold).SprintFunc()
	gray   = color.New(color.FgHiBlack).SprintFunc()
)

// NewFormatter returns the formatter for format ("text" or "json").
func NewFormatter(format string, useColor bool) Formatter {
	if format == "json" {
		return JSONFormatter{}
	}
	return TextFormatter{Color: useColor}
}

// TextFormatter prints a human readable report.
type TextFormatter struct {
	Color bool
}

func (f TextFormatter) paint(fn func(...any) string, s string) string {
	if !f.Color {
		return s
	}
	return fn(s)
}

func (f TextFormatter) Format(w io.Writer, result *Result, contentDir string) error {
	var b strings.Builder
	if contentDir != "" {
		fmt.Fprintf(&b, "Checking site configuration against %s\n", contentDir)
	} else {
		fmt.Fprintln(&b, "Checking site configuration")
	}
	fmt.Fprintln(&b, strings.Repeat("━", 60))

	for _, issue := range result.Issues {
		var tag string
		switch issue.Severity {
		case SeverityError:
			tag = f.paint(red, "✗ "+issue.Severity.String())
		case SeverityWarning:
			tag = f.paint(yellow, "⚠ "+issue.Severity.String())
		default:
			tag = f.paint(cyan, "ℹ "+issue.Severity.String())
		}
		fmt.Fprintf(&b, "%s [%s] %s\n", tag, issue.Rule, issue.Location)
		fmt.Fprintf(&b, "  %s\n", issue.Message)
		if issue.Fix != "" {
			fmt.Fprintf(&b, "  %s %s\n", f.paint(gray, "Fix:"), issue.Fix)
		}
	}

	fmt.Fprintln(&b, strings.Repeat("━", 60))
	if contentDir != "" {
		fmt.Fprintf(&b, "  %d pages scanned\n", result.PagesTotal)
	}
	errs, warns := result.ErrorCount(), result.WarningCount()
	switch {
	case errs > 0:
		fmt.Fprintf(&b, "%s %d error%s, %d warning%s\n", f.paint(red, "FAIL"), errs, plural(errs), warns, plural(warns))
	case warns > 0:
		fmt.Fprintf(&b, "%s %d warning%s\n", f.paint(yellow, "WARN"), warns, plural(warns))
	default:
		fmt.Fprintf(&b, "%s configuration is consistent\n", f.paint(green, "OK"))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// JSONFormatter writes the result as a JSON object.
type JSONFormatter struct{}

type jsonOutput struct {
	ContentDir   string      `json:"content_dir,omitempty"`
	PagesTotal   int         `json:"pages_total"`
	ErrorCount   int         `json:"error_count"`
	WarningCount int         `json:"warning_count"`
	Issues       []jsonIssue `json:"issues"`
}

type jsonIssue struct {
	Location string `json:"location,omitempty"`
	Severity string `json:"severity"`
	Rule     string `json:"rule"`
	Message  string `json:"message"`
	Fix      string `json:"fix,omitempty"`
}

func (JSONFormatter) Format(w io.Writer, result *Result, contentDir string) error {
	out := jsonOutput{
		ContentDir:   contentDir,
		PagesTotal:   result.PagesTotal,
		ErrorCount:   result.ErrorCount(),
		WarningCount: result.WarningCount(),
		Issues:       make([]jsonIssue, 0, len(result.Issues)),
	}
	for _, i := range result.Issues {
		out.Issues = append(out.Issues, jsonIssue{
			Location: i.Location,
			Severity: strings.ToLower(i.Severity.String()),
			Rule:     i.Rule,
			Message:  i.Message,
			Fix:      i.Fix,
		})
	}
	enc := json.ConfigCompatibleWithStandardLibrary.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
