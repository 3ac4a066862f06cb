// Package history provides linear undo/redo over full-text document states.
//
// The history system follows the Memento pattern: every accepted edit is
// captured as an immutable Snapshot of the whole document, and traversal
// moves snapshots between two stacks. Key concepts:
//
// # Snapshots
//
// A Snapshot holds the complete document text at one instant. It is never
// mutated after construction and never handed out to callers; read-only
// SnapshotInfo values describe entries for display.
//
// # History Stack
//
// The History type owns the undo and redo stacks:
//
//	h := NewHistory()
//	h.RecordState("") // floor entry, recorded once at startup
//
//	h.RecordState("a")
//	h.RecordState("ab")
//
//	h.Undo()
//	text, _ := h.Current() // "a"
//
//	h.Redo()
//	text, _ = h.Current() // "ab"
//
// The oldest undo entry is the floor: Undo never removes it, so CanUndo
// reports false once only the initial state remains. Recording a new state
// always discards the redo stack; branching history is not kept.
//
// # Boundaries
//
// Undo and Redo never fail. Calls made while CanUndo or CanRedo is false
// leave both stacks untouched and report false.
//
// # Capacity
//
// History is unbounded by default. WithMaxEntries caps the undo stack,
// evicting the oldest entries while always keeping at least one.
package history
