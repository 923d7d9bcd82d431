package organize

// Status classifies the outcome of a file operation or a whole group.
type Status string

const (
	StatusCopied          Status = "copied"
	StatusSkippedExisting Status = "skipped_existing"
	StatusFailed          Status = "failed"
	StatusOrphaned        Status = "orphaned"
)

// Event is emitted per file operation so the caller can render progress. The
// core never prints directly.
type Event struct {
	GroupTitle string
	File       string
	Status     Status
}

// Reporter receives progress events. Implementations must tolerate concurrent
// calls; the executor publishes from its worker pool.
type Reporter interface {
	Publish(Event)
}

// NopReporter discards all events.
type NopReporter struct{}

func (NopReporter) Publish(Event) {}
