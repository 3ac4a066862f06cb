package backend

import "github.com/mattn/go-runewidth"

// DrawString writes s starting at (x, y), clipped to maxX.
// Wide runes take two columns; the second column is left blank.
// Returns the column after the last drawn rune.
func DrawString(b Backend, x, y, maxX int, s string, style Style) int {
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > maxX {
			break
		}
		b.SetCell(x, y, Cell{Rune: r, Style: style})
		if w == 2 {
			b.SetCell(x+1, y, Cell{Rune: 0, Style: style})
		}
		x += w
	}
	return x
}

// FillRow paints columns [x, maxX) of row y with blanks.
func FillRow(b Backend, x, y, maxX int, style Style) {
	for ; x < maxX; x++ {
		b.SetCell(x, y, Cell{Rune: ' ', Style: style})
	}
}

// StringWidth returns the display width of s in columns.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// WrapPoints splits rs into rows no wider than width and returns the index
// of the first rune of each row. The first entry is always 0.
// Rows break after the last space that fits; a run with no space breaks at
// the column limit. Wide runes never straddle two rows.
func WrapPoints(rs []rune, width int) []int {
	starts := []int{0}
	if width <= 0 {
		return starts
	}

	start, w := 0, 0
	for i, r := range rs {
		rw := runewidth.RuneWidth(r)
		if w+rw > width && i > start {
			brk := i
			for j := i - 1; j > start; j-- {
				if rs[j] == ' ' {
					brk = j + 1
					break
				}
			}
			starts = append(starts, brk)
			start = brk
			w = runewidth.StringWidth(string(rs[brk:i]))
		}
		w += rw
	}
	return starts
}
