package classify_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"ordo/internal/classify"
	"ordo/internal/services"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestClassifyMovieUnderMovieRoot(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Oldboy.2003.1080p.mkv")
	touch(t, path)

	mf, err := classify.Classify(path, classify.KindMovie)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if mf == nil {
		t.Fatal("expected a MediaFile")
	}
	if mf.Kind != classify.KindMovie {
		t.Fatalf("kind = %s", mf.Kind)
	}
	if mf.Title != "Oldboy 2003" || mf.TitleKey != "oldboy 2003" {
		t.Fatalf("title = %q key = %q", mf.Title, mf.TitleKey)
	}
	if mf.RawName != "Oldboy.2003.1080p.mkv" {
		t.Fatalf("raw name = %q", mf.RawName)
	}
}

func TestClassifyExtensionOverridesSourceKind(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "Oldboy.2003.srt")
	touch(t, sub)

	mf, err := classify.Classify(sub, classify.KindMovie)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if mf.Kind != classify.KindSubtitle {
		t.Fatalf("expected subtitle kind for .srt under movie root, got %s", mf.Kind)
	}

	movie := filepath.Join(dir, "Oldboy.2003.mkv")
	touch(t, movie)
	mf, err = classify.Classify(movie, classify.KindSubtitle)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if mf.Kind != classify.KindMovie {
		t.Fatalf("expected movie kind for .mkv under subtitle root, got %s", mf.Kind)
	}
}

func TestClassifyIgnoresUnknownExtensions(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"notes.txt", "cover.jpg", "checksum.md5", "noext"} {
		path := filepath.Join(dir, name)
		touch(t, path)
		mf, err := classify.Classify(path, classify.KindMovie)
		if err != nil {
			t.Fatalf("Classify(%s): %v", name, err)
		}
		if mf != nil {
			t.Fatalf("expected %s to be ignored, got %+v", name, mf)
		}
	}
}

func TestClassifyMissingPathIsFileAccessError(t *testing.T) {
	_, err := classify.Classify(filepath.Join(t.TempDir(), "gone.mkv"), classify.KindMovie)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, services.ErrFileAccess) {
		t.Fatalf("expected ErrFileAccess, got %v", err)
	}
}

func TestClassifyIgnoresDirectories(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "folder.mkv")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	mf, err := classify.Classify(sub, classify.KindMovie)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if mf != nil {
		t.Fatal("directories must be ignored")
	}
}
