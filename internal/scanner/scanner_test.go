package scanner_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"ordo/internal/classify"
	"ordo/internal/config"
	"ordo/internal/logging"
	"ordo/internal/scanner"
	"ordo/internal/services"
)

func write(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestScanClassifiesAcrossRoots(t *testing.T) {
	dir := t.TempDir()
	movies := filepath.Join(dir, "movies")
	subs := filepath.Join(dir, "subs")
	write(t, filepath.Join(movies, "Oldboy.2003.1080p.mkv"))
	write(t, filepath.Join(movies, "notes.txt"))
	write(t, filepath.Join(subs, "nested", "Oldboy.2003.srt"))

	s := scanner.New(logging.NewNop())
	result, err := s.Scan(context.Background(), []config.SourceRoot{
		{Path: movies, Kind: config.SourceKindMovie},
		{Path: subs, Kind: config.SourceKindSubtitle},
	})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(result.Files) != 2 {
		t.Fatalf("files = %d, want 2", len(result.Files))
	}
	if result.Files[0].Kind != classify.KindMovie {
		t.Fatalf("first file kind = %s", result.Files[0].Kind)
	}
	if result.Files[1].Kind != classify.KindSubtitle {
		t.Fatalf("second file kind = %s", result.Files[1].Kind)
	}
	if result.Files[0].TitleKey != result.Files[1].TitleKey {
		t.Fatalf("title keys differ: %q vs %q", result.Files[0].TitleKey, result.Files[1].TitleKey)
	}
}

func TestScanDeterministicOrder(t *testing.T) {
	dir := t.TempDir()
	root := filepath.Join(dir, "movies")
	for _, name := range []string{"b.mkv", "a.mkv", "c.mkv"} {
		write(t, filepath.Join(root, name))
	}

	s := scanner.New(logging.NewNop())
	roots := []config.SourceRoot{{Path: root, Kind: config.SourceKindMovie}}

	first, err := s.Scan(context.Background(), roots)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	second, err := s.Scan(context.Background(), roots)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(first.Files) != 3 || len(second.Files) != 3 {
		t.Fatalf("file counts = %d, %d", len(first.Files), len(second.Files))
	}
	for i := range first.Files {
		if first.Files[i].AbsolutePath != second.Files[i].AbsolutePath {
			t.Fatalf("order differs at %d: %q vs %q", i, first.Files[i].AbsolutePath, second.Files[i].AbsolutePath)
		}
	}
	// Lexical walk order.
	if filepath.Base(first.Files[0].AbsolutePath) != "a.mkv" {
		t.Fatalf("expected lexical order, first = %s", first.Files[0].AbsolutePath)
	}
}

func TestScanDeduplicatesOverlappingRoots(t *testing.T) {
	dir := t.TempDir()
	root := filepath.Join(dir, "movies")
	write(t, filepath.Join(root, "Oldboy.2003.mkv"))

	s := scanner.New(logging.NewNop())
	result, err := s.Scan(context.Background(), []config.SourceRoot{
		{Path: root, Kind: config.SourceKindMovie},
		{Path: root, Kind: config.SourceKindMovie},
	})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(result.Files) != 1 {
		t.Fatalf("expected 1 deduplicated file, got %d", len(result.Files))
	}
}

func TestScanMissingRootIsConfigurationError(t *testing.T) {
	s := scanner.New(logging.NewNop())
	_, err := s.Scan(context.Background(), []config.SourceRoot{
		{Path: filepath.Join(t.TempDir(), "absent"), Kind: config.SourceKindMovie},
	})
	if err == nil {
		t.Fatal("expected error for missing source root")
	}
	if !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
}

func TestScanHonorsCancellation(t *testing.T) {
	dir := t.TempDir()
	root := filepath.Join(dir, "movies")
	write(t, filepath.Join(root, "a.mkv"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := scanner.New(logging.NewNop())
	if _, err := s.Scan(ctx, []config.SourceRoot{{Path: root, Kind: config.SourceKindMovie}}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
