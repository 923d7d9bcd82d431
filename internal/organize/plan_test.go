package organize_test

import (
	"errors"
	"path/filepath"
	"testing"

	"ordo/internal/classify"
	"ordo/internal/matcher"
	"ordo/internal/organize"
	"ordo/internal/services"
	"ordo/internal/testsupport"
)

func planGroup(t *testing.T) matcher.MovieGroup {
	t.Helper()
	moviePath := filepath.Join(t.TempDir(), "Oldboy.2003.1080p.mkv")
	testsupport.WriteFile(t, moviePath, 64)
	return matcher.MovieGroup{
		Title:    "Oldboy 2003",
		TitleKey: "oldboy 2003",
		Movie: &classify.MediaFile{
			AbsolutePath: moviePath,
			Kind:         classify.KindMovie,
			RawName:      "Oldboy.2003.1080p.mkv",
		},
		Subtitles: []classify.MediaFile{
			{AbsolutePath: "/subs/Oldboy.2003.srt", Kind: classify.KindSubtitle, RawName: "Oldboy.2003.srt"},
			{AbsolutePath: "/subs/Oldboy.2003.eng.srt", Kind: classify.KindSubtitle, RawName: "Oldboy.2003.eng.srt"},
		},
		Tag: "Korean",
	}
}

func TestNewPlanComputesLayout(t *testing.T) {
	root := t.TempDir()
	plan, err := organize.NewPlan(planGroup(t), root)
	if err != nil {
		t.Fatalf("NewPlan: %v", err)
	}

	wantDir := filepath.Join(root, "Korean", "Oldboy 2003")
	if plan.MovieDir != wantDir {
		t.Fatalf("movie dir = %q, want %q", plan.MovieDir, wantDir)
	}
	if plan.MoviePath != filepath.Join(wantDir, "Oldboy.2003.1080p.mkv") {
		t.Fatalf("movie path = %q", plan.MoviePath)
	}
	if plan.SubtitleDir != filepath.Join(wantDir, "subtitles") {
		t.Fatalf("subtitle dir = %q", plan.SubtitleDir)
	}
	if len(plan.SubtitlePaths) != 2 {
		t.Fatalf("subtitle paths = %d", len(plan.SubtitlePaths))
	}
	if plan.SubtitlePaths[1] != filepath.Join(wantDir, "subtitles", "Oldboy.2003.eng.srt") {
		t.Fatalf("subtitle path = %q", plan.SubtitlePaths[1])
	}
	if plan.AlreadyExists {
		t.Fatal("empty destination cannot already exist")
	}
}

func TestNewPlanRejectsOrphans(t *testing.T) {
	group := planGroup(t)
	group.Movie = nil
	_, err := organize.NewPlan(group, t.TempDir())
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected ErrValidation for orphaned group, got %v", err)
	}
}

func TestNewPlanRejectsEmptyDestination(t *testing.T) {
	_, err := organize.NewPlan(planGroup(t), "  ")
	if !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
}

func TestNewPlanDisambiguatesSubtitleBasenames(t *testing.T) {
	group := planGroup(t)
	group.Subtitles = []classify.MediaFile{
		{AbsolutePath: "/subs/en/Oldboy.2003.srt", Kind: classify.KindSubtitle, RawName: "Oldboy.2003.srt"},
		{AbsolutePath: "/subs/ko/Oldboy.2003.srt", Kind: classify.KindSubtitle, RawName: "Oldboy.2003.srt"},
		{AbsolutePath: "/subs/sdh/Oldboy.2003.srt", Kind: classify.KindSubtitle, RawName: "Oldboy.2003.srt"},
	}
	plan, err := organize.NewPlan(group, "/archive")
	if err != nil {
		t.Fatalf("NewPlan: %v", err)
	}
	want := []string{
		filepath.Join(plan.SubtitleDir, "Oldboy.2003.srt"),
		filepath.Join(plan.SubtitleDir, "Oldboy.2003.2.srt"),
		filepath.Join(plan.SubtitleDir, "Oldboy.2003.3.srt"),
	}
	if len(plan.SubtitlePaths) != len(want) {
		t.Fatalf("subtitle paths = %d, want %d", len(plan.SubtitlePaths), len(want))
	}
	for i := range want {
		if plan.SubtitlePaths[i] != want[i] {
			t.Fatalf("subtitle path %d = %q, want %q", i, plan.SubtitlePaths[i], want[i])
		}
	}
}

func TestNewPlanSanitizesTagAndTitle(t *testing.T) {
	group := planGroup(t)
	group.Tag = "tv: shows"
	group.Title = "What?"
	plan, err := organize.NewPlan(group, "/archive")
	if err != nil {
		t.Fatalf("NewPlan: %v", err)
	}
	if plan.MovieDir != filepath.Join("/archive", "tv_ shows", "What") {
		t.Fatalf("sanitized dir = %q", plan.MovieDir)
	}
}
