package main

import (
	"os"
	"sync"

	"github.com/schollz/progressbar/v3"

	"ordo/internal/organize"
)

// progressReporter renders a terminal progress bar from executor events. The
// executor publishes from multiple workers, so every update takes the mutex.
type progressReporter struct {
	mu  sync.Mutex
	bar *progressbar.ProgressBar
}

func newProgressReporter(totalFiles int) *progressReporter {
	bar := progressbar.NewOptions(totalFiles,
		progressbar.OptionSetDescription("archiving"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
	return &progressReporter{bar: bar}
}

// Publish advances the bar on file-level events. Group-level events carry no
// file name and don't move the bar.
func (p *progressReporter) Publish(event organize.Event) {
	if event.File == "" {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	_ = p.bar.Add(1)
}

func (p *progressReporter) finish() {
	p.mu.Lock()
	defer p.mu.Unlock()
	_ = p.bar.Finish()
}
