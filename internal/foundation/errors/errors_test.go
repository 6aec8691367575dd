package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestClassifiedError(t *testing.T) {
	t.Run("Basic error creation", func(t *testing.T) {
		err := NewError(CategoryConfig, "invalid configuration").
			Fatal().
			WithContext("file", "clblogs.yaml").
			Build()

		if err.Category() != CategoryConfig {
			t.Errorf("expected category %s, got %s", CategoryConfig, err.Category())
		}
		if err.Severity() != SeverityFatal {
			t.Errorf("expected severity %s, got %s", SeverityFatal, err.Severity())
		}
		if err.Message() != "invalid configuration" {
			t.Errorf("expected message 'invalid configuration', got %s", err.Message())
		}

		file, exists := err.Context().GetString("file")
		if !exists || file != "clblogs.yaml" {
			t.Errorf("expected context file=clblogs.yaml, got %v", file)
		}
	})

	t.Run("Wrapped chain detection", func(t *testing.T) {
		inner := ContentError("missing directory").Build()
		wrapped := fmt.Errorf("resolve sidebar: %w", inner)

		if !HasCategory(wrapped, CategoryContent) {
			t.Error("expected wrapped error to keep content category")
		}
		if HasCategory(stderrors.New("plain"), CategoryContent) {
			t.Error("expected unclassified error to carry no category")
		}
	})

	t.Run("WithContext does not mutate original", func(t *testing.T) {
		base := ValidationError("bad entry").WithContext("index", 1).Build()
		derived := base.WithContext("index", 2)

		v, _ := base.Context().Get("index")
		if v != 1 {
			t.Errorf("expected original context to stay 1, got %v", v)
		}
		v, _ = derived.Context().Get("index")
		if v != 2 {
			t.Errorf("expected derived context 2, got %v", v)
		}
	})
}

func TestErrorBuilder(t *testing.T) {
	originalErr := stderrors.New("permission denied")
	err := WrapError(originalErr, CategoryFileSystem, "read page").
		Warning().
		WithContext("path", "src/intro.md").
		Build()

	if !stderrors.Is(err, originalErr) {
		t.Error("expected error to wrap original error")
	}
	if err.Severity() != SeverityWarning {
		t.Errorf("expected severity %s, got %s", SeverityWarning, err.Severity())
	}

	tests := []struct {
		name     string
		builder  *ErrorBuilder
		category ErrorCategory
		severity ErrorSeverity
	}{
		{"ConfigError", ConfigError("x"), CategoryConfig, SeverityFatal},
		{"ValidationError", ValidationError("x"), CategoryValidation, SeverityFatal},
		{"NotFoundError", NotFoundError("x"), CategoryNotFound, SeverityError},
		{"ContentError", ContentError("x"), CategoryContent, SeverityError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			built := tt.builder.Build()
			if built.Category() != tt.category {
				t.Errorf("expected category %s, got %s", tt.category, built.Category())
			}
			if built.Severity() != tt.severity {
				t.Errorf("expected severity %s, got %s", tt.severity, built.Severity())
			}
		})
	}
}

func TestErrorContext(t *testing.T) {
	ctx1 := ErrorContext{}.Set("key1", "value1").Set("shared", "original")
	ctx2 := ErrorContext{}.Set("key2", "value2").Set("shared", "overridden")

	merged := ctx1.Merge(ctx2)

	if v, _ := merged.GetString("key1"); v != "value1" {
		t.Errorf("expected key1=value1, got %s", v)
	}
	if v, _ := merged.GetString("shared"); v != "overridden" {
		t.Errorf("expected shared=overridden, got %s", v)
	}
	if _, ok := ErrorContext(nil).Get("missing"); ok {
		t.Error("expected nil context lookup to miss")
	}
}
