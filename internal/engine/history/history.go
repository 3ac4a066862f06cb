package history

import (
	"sync"
	"time"
)

// History manages undo/redo state for a document.
//
// Every method holds the lock for its whole read-then-write, so each
// operation is a single critical section.
type History struct {
	mu sync.Mutex

	undoStack []*Snapshot
	redoStack []*Snapshot

	// Configuration
	maxEntries int // 0 means unbounded
	dedup      bool
	now        func() time.Time
}

// NewHistory creates a new, uninitialized history manager.
// The caller records the initial state with RecordState before any undo.
func NewHistory(opts ...Option) *History {
	h := &History{
		now: time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// RecordState captures text as the newest undo entry.
// Clears the redo stack. Consecutive equal states are kept unless
// deduplication is enabled.
func (h *History) RecordState(text string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.redoStack = nil

	if h.dedup && len(h.undoStack) > 0 && h.undoStack[len(h.undoStack)-1].State() == text {
		return
	}

	h.undoStack = append(h.undoStack, NewSnapshot(text, h.now()))
	h.trimLocked()
}

// trimLocked evicts the oldest undo entries beyond maxEntries.
func (h *History) trimLocked() {
	if h.maxEntries <= 0 || len(h.undoStack) <= h.maxEntries {
		return
	}
	excess := len(h.undoStack) - h.maxEntries
	for i := 0; i < excess; i++ {
		h.undoStack[i] = nil
	}
	h.undoStack = h.undoStack[excess:]
}

// Undo steps back one state.
// The floor entry is never removed; at the floor Undo does nothing and
// returns false.
func (h *History) Undo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.undoStack) <= 1 {
		return false
	}

	last := len(h.undoStack) - 1
	entry := h.undoStack[last]
	h.undoStack[last] = nil
	h.undoStack = h.undoStack[:last]
	h.redoStack = append(h.redoStack, entry)
	return true
}

// Redo steps forward one state.
// With nothing to redo it does nothing and returns false.
func (h *History) Redo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.redoStack) == 0 {
		return false
	}

	last := len(h.redoStack) - 1
	entry := h.redoStack[last]
	h.redoStack[last] = nil
	h.redoStack = h.redoStack[:last]
	h.undoStack = append(h.undoStack, entry)
	return true
}

// CanUndo returns true if undo is available.
func (h *History) CanUndo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.undoStack) > 1
}

// CanRedo returns true if redo is available.
func (h *History) CanRedo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.redoStack) > 0
}

// Current returns the restorable state, the text of the newest undo entry.
// Returns false if no state has been recorded yet.
func (h *History) Current() (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.undoStack) == 0 {
		return "", false
	}
	return h.undoStack[len(h.undoStack)-1].State(), true
}

// UndoCount returns the number of entries on the undo stack, floor included.
func (h *History) UndoCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.undoStack)
}

// RedoCount returns the number of redo operations available.
func (h *History) RedoCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.redoStack)
}

// Len returns the total number of entries held on both stacks.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.undoStack) + len(h.redoStack)
}

// PeekUndo returns info about the state Undo would restore.
func (h *History) PeekUndo() (SnapshotInfo, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.undoStack) <= 1 {
		return SnapshotInfo{}, false
	}
	return h.undoStack[len(h.undoStack)-2].Info(), true
}

// PeekRedo returns info about the state Redo would restore.
func (h *History) PeekRedo() (SnapshotInfo, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.redoStack) == 0 {
		return SnapshotInfo{}, false
	}
	return h.redoStack[len(h.redoStack)-1].Info(), true
}

// SetMaxEntries changes the undo capacity.
// Zero or negative removes the bound. If the current stack is larger,
// oldest entries are removed.
func (h *History) SetMaxEntries(max int) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if max < 0 {
		max = 0
	}
	h.maxEntries = max
	h.trimLocked()
}

// MaxEntries returns the undo capacity, 0 when unbounded.
func (h *History) MaxEntries() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.maxEntries
}

// SetDedup toggles skipping of states equal to the current one.
func (h *History) SetDedup(enabled bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.dedup = enabled
}
