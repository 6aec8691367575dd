package errors

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"
)

func TestCLIErrorAdapter_ExitCodeFor(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, slog.Default())

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil error", nil, 0},
		{"validation", ValidationError("bad navbar").Build(), 2},
		{"not found", NotFoundError("no rule").Build(), 4},
		{"config", ConfigError("bad yaml").Build(), 7},
		{"git", NewError(CategoryGit, "no repo").Build(), 8},
		{"content", ContentError("missing dir").Build(), 11},
		{"wrapped content", fmt.Errorf("check: %w", ContentError("missing dir").Build()), 11},
		{"unclassified", stderrors.New("boom"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := adapter.ExitCodeFor(tt.err); got != tt.expected {
				t.Errorf("ExitCodeFor() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCLIErrorAdapter_FormatError(t *testing.T) {
	err := WrapError(stderrors.New("no such file"), CategoryConfig, "load config").Build()

	quiet := NewCLIErrorAdapter(false, nil).FormatError(err)
	if quiet != "Error: load config: no such file" {
		t.Errorf("unexpected quiet format: %q", quiet)
	}

	verbose := NewCLIErrorAdapter(true, nil).FormatError(err)
	if !strings.HasPrefix(verbose, "[config:fatal]") {
		t.Errorf("expected verbose format to carry classification, got %q", verbose)
	}

	if got := NewCLIErrorAdapter(false, nil).FormatError(stderrors.New("boom")); got != "Error: boom" {
		t.Errorf("unexpected unclassified format: %q", got)
	}
}
