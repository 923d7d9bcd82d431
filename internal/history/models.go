package history

import "time"

// Run summarizes one organize invocation.
type Run struct {
	ID          string
	StartedAt   time.Time
	FinishedAt  time.Time
	Destination string
	Copied      int
	Skipped     int
	Failed      int
	Orphaned    int
}

// Finished reports whether the run recorded a completion timestamp. Runs
// without one were interrupted.
func (r Run) Finished() bool {
	return !r.FinishedAt.IsZero()
}

// GroupRecord is the journaled outcome of one movie group within a run.
type GroupRecord struct {
	RunID        string
	Title        string
	Tag          string
	Status       string
	Detail       string
	FilesCopied  int
	FilesSkipped int
}
