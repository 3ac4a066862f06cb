package app

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/Tharindu714/Code-Editor-Memento/internal/config"
	"github.com/Tharindu714/Code-Editor-Memento/internal/engine/history"
	"github.com/Tharindu714/Code-Editor-Memento/internal/renderer/backend"
)

// theme holds resolved styles for drawing.
type theme struct {
	text   backend.Style
	status backend.Style
	cursor tcell.Color
}

func newTheme(tc config.ThemeConfig) theme {
	return theme{
		text: backend.Style{
			Foreground: backend.ParseColor(tc.Foreground),
			Background: backend.ParseColor(tc.Background),
		},
		status: backend.Style{
			Foreground: backend.ParseColor(tc.StatusForeground),
			Background: backend.ParseColor(tc.StatusBackground),
		},
		cursor: backend.ParseColor(tc.Cursor),
	}
}

// setTheme installs t and pushes the caret color to the backend.
func (app *Application) setTheme(t theme) {
	app.theme = t
	if app.backend != nil {
		app.backend.SetCursorColor(t.cursor)
	}
}

const statusHint = "^Z undo  ^Y redo  ^Q quit"

// render draws the document and the status line.
// The last screen row is the status line; the rest shows text wrapped to
// the screen width.
func (app *Application) render() {
	b := app.backend
	width, height := b.Size()
	if width <= 0 || height <= 0 {
		return
	}

	textRows := height - 1
	line, col := app.editor.CursorPosition()
	rows, cx, cy := layout(app.editor.Lines(), line, col, width, app.Config().Editor.TabWidth)
	app.scrollTo(cy, textRows)

	for row := 0; row < textRows; row++ {
		x := 0
		if idx := app.top + row; idx < len(rows) {
			x = backend.DrawString(b, 0, row, width, rows[idx], app.theme.text)
		}
		backend.FillRow(b, x, row, width, app.theme.text)
	}

	app.renderStatus(width, height-1)

	if textRows > 0 {
		b.ShowCursor(min(cx, width-1), cy-app.top)
	} else {
		b.HideCursor()
	}
	b.Show()
}

// layout wraps lines to width and returns the screen rows with the caret
// position in row coordinates. A caret sitting after a full row gets an
// empty row of its own.
func layout(lines []string, line, col, width, tabWidth int) (rows []string, cx, cy int) {
	for i, l := range lines {
		expanded := []rune(expandTabs(l, tabWidth))
		starts := backend.WrapPoints(expanded, width)

		if i == line {
			// Tab stops depend only on earlier columns, so the expanded
			// prefix is a prefix of the expanded line.
			k := len([]rune(expandTabs(string([]rune(l)[:col]), tabWidth)))
			seg := len(starts) - 1
			for seg > 0 && starts[seg] > k {
				seg--
			}
			cx = backend.StringWidth(string(expanded[starts[seg]:k]))
			if cx >= width {
				starts = append(starts, len(expanded))
				seg++
				cx = 0
			}
			cy = len(rows) + seg
		}

		for j, start := range starts {
			end := len(expanded)
			if j+1 < len(starts) {
				end = starts[j+1]
			}
			rows = append(rows, string(expanded[start:end]))
		}
	}
	return rows, cx, cy
}

// renderStatus draws history counts on the left and key hints on the right.
func (app *Application) renderStatus(width, y int) {
	b := app.backend
	left := " Undo: " + countWithSize(app.history.UndoCount()-1, app.history.PeekUndo) +
		"  Redo: " + countWithSize(app.history.RedoCount(), app.history.PeekRedo)
	x := backend.DrawString(b, 0, y, width, left, app.theme.status)
	backend.FillRow(b, x, y, width, app.theme.status)

	hintX := width - backend.StringWidth(statusHint) - 1
	if hintX > x+1 {
		backend.DrawString(b, hintX, y, width, statusHint, app.theme.status)
	}
}

// countWithSize formats n followed by the byte size of the state the next
// step would restore.
func countWithSize(n int, peek func() (history.SnapshotInfo, bool)) string {
	info, ok := peek()
	if !ok {
		return fmt.Sprintf("%d", n)
	}
	return fmt.Sprintf("%d (%dB)", n, info.Size)
}

// scrollTo adjusts the first visible row so row line stays on screen.
func (app *Application) scrollTo(line, rows int) {
	if rows <= 0 {
		return
	}
	if line < app.top {
		app.top = line
	}
	if line >= app.top+rows {
		app.top = line - rows + 1
	}
}

// expandTabs replaces tabs with spaces up to the next tab stop.
func expandTabs(s string, tabWidth int) string {
	if !strings.ContainsRune(s, '\t') {
		return s
	}
	var b strings.Builder
	col := 0
	for _, r := range s {
		if r == '\t' {
			n := tabWidth - col%tabWidth
			b.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		b.WriteRune(r)
		col += backend.StringWidth(string(r))
	}
	return b.String()
}
