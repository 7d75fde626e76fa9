package domain

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestOpErrorWrapUnwrap(t *testing.T) {
	root := errors.New("root")
	err := &OpError{
		Op:   "configfile.load",
		Kind: KindInvalidConfig,
		Path: "slope.yaml",
		Err:  root,
	}

	if !errors.Is(err, root) {
		t.Fatalf("expected errors.Is to match cause")
	}

	var got *OpError
	if !errors.As(err, &got) {
		t.Fatalf("expected errors.As to match OpError")
	}
	if got.Kind != KindInvalidConfig {
		t.Fatalf("expected kind %s", KindInvalidConfig)
	}
	if !strings.Contains(err.Error(), "path=slope.yaml") {
		t.Fatalf("expected path in message, got %q", err.Error())
	}
}

func TestIsKind(t *testing.T) {
	err := &OpError{Op: "x", Kind: KindNotFound}
	if !IsKind(err, KindNotFound) {
		t.Fatalf("expected IsKind to match")
	}
	if IsKind(err, KindExecution) {
		t.Fatalf("expected IsKind mismatch")
	}
	if IsKind(errors.New("plain"), KindNotFound) {
		t.Fatalf("plain errors have no kind")
	}
}

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("calc: %w", InvalidInput("domain.parse_point", ErrInvalidInput))
	if got := KindOf(wrapped); got != KindInvalidInput {
		t.Fatalf("expected %s through wrapping, got %q", KindInvalidInput, got)
	}
	if !errors.Is(wrapped, ErrInvalidInput) {
		t.Fatalf("expected sentinel to be reachable")
	}
	if got := KindOf(errors.New("plain")); got != "" {
		t.Fatalf("expected empty kind, got %q", got)
	}
	if IsKind(nil, "") {
		t.Fatalf("nil error has no kind")
	}
}

func TestNilOpError(t *testing.T) {
	var e *OpError
	if e.Error() != "<nil>" {
		t.Fatalf("unexpected %q", e.Error())
	}
	if e.Unwrap() != nil {
		t.Fatalf("expected nil unwrap")
	}
}
