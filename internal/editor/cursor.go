package editor

// MoveLeft moves the caret one rune left.
func (e *Editor) MoveLeft() {
	if e.cursor > 0 {
		e.cursor--
	}
}

// MoveRight moves the caret one rune right.
func (e *Editor) MoveRight() {
	if e.cursor < len(e.text) {
		e.cursor++
	}
}

// MoveHome moves the caret to the start of its line.
func (e *Editor) MoveHome() {
	e.cursor = e.lineStart(e.cursor)
}

// MoveEnd moves the caret to the end of its line.
func (e *Editor) MoveEnd() {
	e.cursor = e.lineEnd(e.cursor)
}

// MoveUp moves the caret to the previous line, keeping the column when possible.
func (e *Editor) MoveUp() {
	start := e.lineStart(e.cursor)
	if start == 0 {
		return
	}
	col := e.cursor - start
	prevStart := e.lineStart(start - 1)
	e.cursor = min(prevStart+col, start-1)
}

// MoveDown moves the caret to the next line, keeping the column when possible.
func (e *Editor) MoveDown() {
	end := e.lineEnd(e.cursor)
	if end >= len(e.text) {
		return
	}
	col := e.cursor - e.lineStart(e.cursor)
	nextStart := end + 1
	e.cursor = min(nextStart+col, e.lineEnd(nextStart))
}

func (e *Editor) lineStart(pos int) int {
	for pos > 0 && e.text[pos-1] != '\n' {
		pos--
	}
	return pos
}

func (e *Editor) lineEnd(pos int) int {
	for pos < len(e.text) && e.text[pos] != '\n' {
		pos++
	}
	return pos
}
