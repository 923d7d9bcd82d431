package services_test

import (
	"errors"
	"strings"
	"testing"

	"ordo/internal/services"
)

func TestWrapIncludesContext(t *testing.T) {
	base := errors.New("boom")
	err := services.Wrap(services.ErrCopy, "organizing", "copy movie", "failed", base)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, services.ErrCopy) {
		t.Fatalf("expected marker to be retained, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped error to contain base error, got %v", err)
	}
	msg := err.Error()
	for _, fragment := range []string{"organizing", "copy movie", "failed"} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("expected %q in error string %q", fragment, msg)
		}
	}
}

func TestWrapDefaultsToTransient(t *testing.T) {
	err := services.Wrap(nil, "scanning", "walk", "boom", nil)
	if !errors.Is(err, services.ErrTransient) {
		t.Fatalf("expected transient marker for nil marker, got %v", err)
	}
}

func TestFatalOnlyForConfiguration(t *testing.T) {
	cfgErr := services.Wrap(services.ErrConfiguration, "setup", "validate", "destination missing", nil)
	if !services.Fatal(cfgErr) {
		t.Fatalf("expected configuration error to be fatal")
	}
	for _, marker := range []error{services.ErrFileAccess, services.ErrCopy, services.ErrValidation, services.ErrTransient} {
		err := services.Wrap(marker, "stage", "op", "msg", nil)
		if services.Fatal(err) {
			t.Fatalf("expected %v to be non-fatal", marker)
		}
	}
	if services.Fatal(nil) {
		t.Fatal("nil error must not be fatal")
	}
}
