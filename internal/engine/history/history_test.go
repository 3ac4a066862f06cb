package history

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to create a history with the floor entry and the given states.
func newTestHistory(t *testing.T, states ...string) *History {
	t.Helper()
	h := NewHistory()
	h.RecordState("")
	for _, s := range states {
		h.RecordState(s)
	}
	return h
}

func current(t *testing.T, h *History) string {
	t.Helper()
	text, ok := h.Current()
	require.True(t, ok, "history not initialized")
	return text
}

// Snapshot Tests

func TestNewSnapshot(t *testing.T) {
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	s := NewSnapshot("hello", at)

	assert.Equal(t, "hello", s.State())
	assert.Equal(t, at, s.Timestamp())
	assert.NotEqual(t, s.ID(), NewSnapshot("hello", at).ID())

	info := s.Info()
	assert.Equal(t, s.ID(), info.ID)
	assert.Equal(t, 5, info.Size)
}

// History Tests

func TestHistoryUninitialized(t *testing.T) {
	h := NewHistory()

	_, ok := h.Current()
	assert.False(t, ok)
	assert.False(t, h.CanUndo())
	assert.False(t, h.CanRedo())
	assert.False(t, h.Undo())
	assert.False(t, h.Redo())
	assert.Equal(t, 0, h.Len())
}

func TestHistoryInitialState(t *testing.T) {
	h := newTestHistory(t)

	assert.False(t, h.CanUndo())
	assert.False(t, h.CanRedo())
	assert.Equal(t, "", current(t, h))
	assert.Equal(t, 1, h.UndoCount())
}

func TestHistoryUndoSequence(t *testing.T) {
	h := newTestHistory(t, "a", "ab", "abc")

	require.True(t, h.Undo())
	assert.Equal(t, "ab", current(t, h))

	require.True(t, h.Undo())
	assert.Equal(t, "a", current(t, h))
	assert.True(t, h.CanUndo())

	require.True(t, h.Undo())
	assert.Equal(t, "", current(t, h))
	assert.False(t, h.CanUndo())
	assert.Equal(t, 3, h.RedoCount())
}

func TestHistorySingleRedo(t *testing.T) {
	h := newTestHistory(t, "a", "ab", "abc")
	h.Undo()

	require.True(t, h.CanRedo())
	require.True(t, h.Redo())
	assert.Equal(t, "abc", current(t, h))
	assert.False(t, h.CanRedo())
}

func TestHistoryRedoAfterUndo(t *testing.T) {
	h := newTestHistory(t, "a", "ab", "abc")
	h.Undo()
	h.Undo()

	require.True(t, h.Redo())
	assert.Equal(t, "ab", current(t, h))
	assert.True(t, h.CanRedo())

	require.True(t, h.Redo())
	assert.Equal(t, "abc", current(t, h))
	assert.False(t, h.CanRedo())
}

func TestHistoryRecordClearsRedo(t *testing.T) {
	h := newTestHistory(t, "a", "ab", "abc")
	h.Undo()
	h.Undo()
	require.Equal(t, 2, h.RedoCount())

	h.RecordState("x")

	assert.False(t, h.CanRedo())
	assert.Equal(t, 0, h.RedoCount())
	assert.Equal(t, "x", current(t, h))
	assert.Equal(t, []string{"", "a", "x"}, undoStates(h))
}

func TestHistoryUndoAtFloor(t *testing.T) {
	h := newTestHistory(t)

	for i := 0; i < 5; i++ {
		assert.False(t, h.Undo())
	}
	assert.Equal(t, 1, h.UndoCount())
	assert.Equal(t, 0, h.RedoCount())
	assert.Equal(t, "", current(t, h))
}

func TestHistoryRedoWhenEmpty(t *testing.T) {
	h := newTestHistory(t, "a")
	before := undoStates(h)

	assert.False(t, h.Redo())
	assert.Equal(t, before, undoStates(h))
	assert.Equal(t, 0, h.RedoCount())
}

func TestHistoryDuplicatesAccumulate(t *testing.T) {
	h := newTestHistory(t, "a", "a", "a")

	assert.Equal(t, 4, h.UndoCount())
	h.Undo()
	assert.Equal(t, "a", current(t, h))
}

func TestHistoryEmptyStringAccepted(t *testing.T) {
	h := newTestHistory(t, "a", "")

	assert.Equal(t, "", current(t, h))
	h.Undo()
	assert.Equal(t, "a", current(t, h))
}

func TestHistoryDedup(t *testing.T) {
	h := NewHistory(WithDedup(true))
	h.RecordState("")
	h.RecordState("a")
	h.RecordState("a")
	h.RecordState("a")

	assert.Equal(t, 2, h.UndoCount())

	h.Undo()
	h.RecordState("")
	assert.Equal(t, 1, h.UndoCount())
	assert.False(t, h.CanRedo(), "dedup still clears redo")
}

func TestHistorySetDedup(t *testing.T) {
	h := newTestHistory(t, "a")
	h.SetDedup(true)
	h.RecordState("a")
	assert.Equal(t, 2, h.UndoCount())

	h.SetDedup(false)
	h.RecordState("a")
	assert.Equal(t, 3, h.UndoCount())
}

func TestHistoryMaxEntries(t *testing.T) {
	h := NewHistory(WithMaxEntries(3))
	h.RecordState("")
	h.RecordState("a")
	h.RecordState("ab")
	h.RecordState("abc")

	assert.Equal(t, 3, h.UndoCount())
	assert.Equal(t, []string{"a", "ab", "abc"}, undoStates(h))

	h.Undo()
	h.Undo()
	assert.False(t, h.CanUndo())
	assert.Equal(t, "a", current(t, h))
}

func TestHistoryMaxEntriesKeepsFloor(t *testing.T) {
	h := NewHistory(WithMaxEntries(1))
	h.RecordState("")
	h.RecordState("a")

	assert.Equal(t, 1, h.UndoCount())
	assert.Equal(t, "a", current(t, h))
	assert.False(t, h.CanUndo())
}

func TestHistorySetMaxEntries(t *testing.T) {
	h := newTestHistory(t, "a", "b", "c", "d")
	assert.Equal(t, 0, h.MaxEntries())

	h.SetMaxEntries(2)
	assert.Equal(t, 2, h.MaxEntries())
	assert.Equal(t, []string{"c", "d"}, undoStates(h))

	h.SetMaxEntries(-1)
	assert.Equal(t, 0, h.MaxEntries())
	h.RecordState("e")
	h.RecordState("f")
	assert.Equal(t, 4, h.UndoCount())
}

func TestHistoryPeek(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tick := 0
	h := NewHistory(WithClock(func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}))
	h.RecordState("")
	h.RecordState("abc")
	h.RecordState("abcdef")

	prev, ok := h.PeekUndo()
	require.True(t, ok)
	assert.Equal(t, 3, prev.Size)
	assert.Equal(t, base.Add(2*time.Second), prev.Timestamp)

	_, ok = h.PeekRedo()
	assert.False(t, ok)

	require.True(t, h.Undo())
	next, ok := h.PeekRedo()
	require.True(t, ok)
	assert.Equal(t, 6, next.Size)
	assert.Equal(t, base.Add(3*time.Second), next.Timestamp)
	assert.NotEqual(t, prev.ID, next.ID)

	// The entry PeekUndo described is now current; Redo brings back the peeked one.
	require.True(t, h.Redo())
	again, ok := h.PeekUndo()
	require.True(t, ok)
	assert.Equal(t, prev.ID, again.ID)
}

func TestHistoryPeekUndoAtFloor(t *testing.T) {
	h := newTestHistory(t)
	_, ok := h.PeekUndo()
	assert.False(t, ok)
}

func TestHistoryUndoRedoInverse(t *testing.T) {
	states := []string{"h", "he", "hel", "hell", "hello"}
	h := newTestHistory(t, states...)
	all := append([]string{""}, states...)
	n := len(states)

	for k := 1; k <= n; k++ {
		require.True(t, h.Undo())
		assert.Equal(t, all[n-k], current(t, h), "after %d undos", k)
	}
	for k := 1; k <= n; k++ {
		require.True(t, h.Redo())
		assert.Equal(t, all[k], current(t, h), "after %d redos", k)
	}
	assert.Equal(t, "hello", current(t, h))
}

// TestHistoryRandomOperations drives random operation sequences and checks
// the floor, redo invalidation, boundary no-op and conservation rules.
func TestHistoryRandomOperations(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for run := 0; run < 50; run++ {
		h := newTestHistory(t)
		recorded := 1

		for step := 0; step < 200; step++ {
			undoBefore := undoStates(h)
			redoBefore := redoStates(h)

			switch rng.Intn(3) {
			case 0:
				h.RecordState(string(rune('a' + rng.Intn(26))))
				recorded = len(undoBefore) + 1
				assert.False(t, h.CanRedo())
			case 1:
				can := h.CanUndo()
				assert.Equal(t, can, h.Undo())
				if !can {
					assert.Equal(t, undoBefore, undoStates(h))
					assert.Equal(t, redoBefore, redoStates(h))
				}
			case 2:
				can := h.CanRedo()
				assert.Equal(t, can, h.Redo())
				if !can {
					assert.Equal(t, undoBefore, undoStates(h))
					assert.Equal(t, redoBefore, redoStates(h))
				}
			}

			require.GreaterOrEqual(t, h.UndoCount(), 1)
			assert.Equal(t, h.UndoCount() == 1, !h.CanUndo())
			assert.Equal(t, recorded, h.Len())
		}
	}
}

func undoStates(h *History) []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return statesOf(h.undoStack)
}

func redoStates(h *History) []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return statesOf(h.redoStack)
}

func statesOf(stack []*Snapshot) []string {
	out := make([]string, len(stack))
	for i, s := range stack {
		out[i] = s.State()
	}
	return out
}
