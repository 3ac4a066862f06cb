// Package editor provides the document model driven by the terminal UI.
//
// An Editor owns the visible text and caret. Every accepted edit is recorded
// in a history.History as a full-text state. Undo and Redo apply the restored
// state back to the document inside a restore scope, so the programmatic
// change is not recorded again as a new edit.
package editor

import (
	"strings"

	"github.com/Tharindu714/Code-Editor-Memento/internal/engine/history"
)

// ChangeFunc is called after the document text changes.
// restoring is true when the change came from undo or redo.
type ChangeFunc func(text string, restoring bool)

// Editor is a single-document text editor with linear undo/redo.
type Editor struct {
	history *history.History

	text   []rune
	cursor int // rune offset into text

	// restoring suppresses recording while undo/redo applies a state.
	restoring bool

	onChange []ChangeFunc
}

// Option configures an Editor during creation.
type Option func(*Editor)

// WithInitialText sets the starting document text, recorded as the floor entry.
func WithInitialText(text string) Option {
	return func(e *Editor) {
		e.text = []rune(text)
	}
}

// WithChangeFunc registers a change listener.
func WithChangeFunc(fn ChangeFunc) Option {
	return func(e *Editor) {
		if fn != nil {
			e.onChange = append(e.onChange, fn)
		}
	}
}

// New creates an editor backed by h and records the initial state.
// The caret starts at the end of the initial text.
func New(h *history.History, opts ...Option) *Editor {
	e := &Editor{history: h}
	for _, opt := range opts {
		opt(e)
	}
	e.cursor = len(e.text)
	h.RecordState(string(e.text))
	return e
}

// History returns the backing history.
func (e *Editor) History() *history.History {
	return e.history
}

// Text returns the document text.
func (e *Editor) Text() string {
	return string(e.text)
}

// Cursor returns the caret as a rune offset.
func (e *Editor) Cursor() int {
	return e.cursor
}

// Lines returns the document split on newlines.
func (e *Editor) Lines() []string {
	return strings.Split(string(e.text), "\n")
}

// CursorPosition returns the caret as a zero-based line and rune column.
func (e *Editor) CursorPosition() (line, col int) {
	for i := 0; i < e.cursor; i++ {
		if e.text[i] == '\n' {
			line++
			col = 0
			continue
		}
		col++
	}
	return line, col
}

// CanUndo returns true if undo is available.
func (e *Editor) CanUndo() bool {
	return e.history.CanUndo()
}

// CanRedo returns true if redo is available.
func (e *Editor) CanRedo() bool {
	return e.history.CanRedo()
}

// InsertRune inserts r at the caret.
func (e *Editor) InsertRune(r rune) {
	e.InsertText(string(r))
}

// InsertText inserts s at the caret and moves the caret past it.
func (e *Editor) InsertText(s string) {
	if s == "" {
		return
	}
	ins := []rune(s)
	next := make([]rune, 0, len(e.text)+len(ins))
	next = append(next, e.text[:e.cursor]...)
	next = append(next, ins...)
	next = append(next, e.text[e.cursor:]...)
	e.apply(next, e.cursor+len(ins))
}

// DeleteBackward removes the rune before the caret.
// Returns false at the start of the document.
func (e *Editor) DeleteBackward() bool {
	if e.cursor == 0 {
		return false
	}
	next := make([]rune, 0, len(e.text)-1)
	next = append(next, e.text[:e.cursor-1]...)
	next = append(next, e.text[e.cursor:]...)
	e.apply(next, e.cursor-1)
	return true
}

// DeleteForward removes the rune after the caret.
// Returns false at the end of the document.
func (e *Editor) DeleteForward() bool {
	if e.cursor >= len(e.text) {
		return false
	}
	next := make([]rune, 0, len(e.text)-1)
	next = append(next, e.text[:e.cursor]...)
	next = append(next, e.text[e.cursor+1:]...)
	e.apply(next, e.cursor)
	return true
}

// SetText replaces the whole document as one edit.
func (e *Editor) SetText(s string) {
	next := []rune(s)
	e.apply(next, len(next))
}

// Undo restores the previous state.
// Returns false, leaving the document untouched, when nothing can be undone.
func (e *Editor) Undo() bool {
	if !e.history.CanUndo() {
		return false
	}
	e.history.Undo()
	e.restoreCurrent()
	return true
}

// Redo restores the next state.
// Returns false, leaving the document untouched, when nothing can be redone.
func (e *Editor) Redo() bool {
	if !e.history.CanRedo() {
		return false
	}
	e.history.Redo()
	e.restoreCurrent()
	return true
}

// restoreCurrent applies the history's restorable state with recording
// suppressed.
func (e *Editor) restoreCurrent() {
	text, ok := e.history.Current()
	if !ok {
		return
	}
	e.restoring = true
	defer func() { e.restoring = false }()

	next := []rune(text)
	cursor := e.cursor
	if cursor > len(next) {
		cursor = len(next)
	}
	e.apply(next, cursor)
}

// apply installs new text and caret, then records it unless restoring.
func (e *Editor) apply(text []rune, cursor int) {
	e.text = text
	e.cursor = cursor

	s := string(text)
	if !e.restoring {
		e.history.RecordState(s)
	}
	for _, fn := range e.onChange {
		fn(s, e.restoring)
	}
}
