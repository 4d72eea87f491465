package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestClassifiedError(t *testing.T) {
	t.Run("Basic error creation", func(t *testing.T) {
		err := NewError(CategoryConfig, "invalid configuration").
			WithSeverity(SeverityFatal).
			WithContext("file", "tags.yaml").
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
		if !exists || file != "tags.yaml" {
			t.Errorf("expected context file=tags.yaml, got %v", file)
		}
	})

	t.Run("Error detection through wrapping", func(t *testing.T) {
		base := InvalidInputError("pages must be a sequence").Build()
		wrapped := fmt.Errorf("load pages: %w", base)

		if !IsClassified(wrapped) {
			t.Fatal("expected wrapped error to be classified")
		}
		if !HasCategory(wrapped, CategoryValidation) {
			t.Error("expected validation category")
		}
		kind, _ := base.Context().GetString("kind")
		if kind != "invalid_input" {
			t.Errorf("expected kind=invalid_input, got %q", kind)
		}
		if !base.IsFatal() {
			t.Error("expected invalid input to be fatal")
		}
	})

	t.Run("Cause unwrapping", func(t *testing.T) {
		cause := stderrors.New("permission denied")
		err := WrapError(cause, CategoryFileSystem, "read page").Build()

		if !stderrors.Is(err, cause) {
			t.Error("expected errors.Is to find the cause")
		}
		if got := err.Error(); got != "[filesystem:error] read page: permission denied" {
			t.Errorf("unexpected message %q", got)
		}
	})

	t.Run("WithContext returns a copy", func(t *testing.T) {
		orig := ContentError("bad page").Build()
		extended := orig.WithContext("path", "a.md")

		if _, ok := orig.Context().Get("path"); ok {
			t.Error("original context must not change")
		}
		if p, _ := extended.Context().GetString("path"); p != "a.md" {
			t.Errorf("expected path a.md, got %q", p)
		}
	})

	t.Run("Unclassified fallback", func(t *testing.T) {
		if got := GetCategory(stderrors.New("plain")); got != CategoryInternal {
			t.Errorf("expected internal category, got %s", got)
		}
	})
}

func TestErrorContextMerge(t *testing.T) {
	a := ErrorContext{"a": 1, "b": 1}
	b := ErrorContext{"b": 2}

	merged := a.Merge(b)
	if merged["a"] != 1 || merged["b"] != 2 {
		t.Errorf("unexpected merge result %v", merged)
	}
	if a["b"] != 1 {
		t.Error("receiver must not be modified")
	}
	if got := ErrorContext(nil).Merge(b); got["b"] != 2 {
		t.Errorf("nil receiver merge = %v", got)
	}
}
