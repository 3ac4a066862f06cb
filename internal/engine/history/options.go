package history

import "time"

// Option configures a History during creation.
type Option func(*History)

// WithMaxEntries caps the number of undo entries kept.
// Zero or a negative value leaves the history unbounded.
func WithMaxEntries(max int) Option {
	return func(h *History) {
		if max > 0 {
			h.maxEntries = max
		}
	}
}

// WithDedup makes RecordState skip states equal to the current one.
// The redo stack is still cleared.
func WithDedup(enabled bool) Option {
	return func(h *History) {
		h.dedup = enabled
	}
}

// WithClock sets the time source used to stamp snapshots.
func WithClock(now func() time.Time) Option {
	return func(h *History) {
		if now != nil {
			h.now = now
		}
	}
}
