package taglist

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// CellBuffer is a fixed-size grid of cells that tag views draw into.
type CellBuffer struct {
	width, height int
	cells         []Cell
}

// NewCellBuffer creates a buffer filled with empty cells.
func NewCellBuffer(width, height int) *CellBuffer {
	width, height = max(width, 0), max(height, 0)
	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i] = EmptyCell
	}
	return &CellBuffer{width: width, height: height, cells: cells}
}

func (b *CellBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Width returns the buffer width.
func (b *CellBuffer) Width() int { return b.width }

// Height returns the buffer height.
func (b *CellBuffer) Height() int { return b.height }

// Get returns the cell at (x, y), or EmptyCell if out of bounds.
func (b *CellBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return EmptyCell
	}
	return b.cells[y*b.width+x]
}

// Set sets the cell at (x, y). Out of bounds writes are dropped.
func (b *CellBuffer) Set(x, y int, c Cell) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = c
}

// SetCharMerge sets a character, keeping the existing background when
// style has none.
func (b *CellBuffer) SetCharMerge(x, y int, char rune, style Style) {
	if !b.inBounds(x, y) {
		return
	}
	b.Set(x, y, Cell{Char: char, Style: b.Get(x, y).Style.Merge(style)})
}

// WriteString writes text from (x, y) rightwards, clipped at maxX
// (exclusive) and at the buffer edge. Wide runes take two columns. It
// returns the number of columns written.
func (b *CellBuffer) WriteString(x, y, maxX int, text string, style Style) int {
	if y < 0 || y >= b.height {
		return 0
	}
	maxX = min(maxX, b.width)
	col := x
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col+w > maxX {
			break
		}
		b.SetCharMerge(col, y, r, style)
		if w == 2 {
			b.SetCharMerge(col+1, y, continuation, style)
		}
		col += w
	}
	return col - x
}

// Clear resets every cell.
func (b *CellBuffer) Clear() {
	for i := range b.cells {
		b.cells[i] = EmptyCell
	}
}

// LastUsedRow returns the index of the last row holding a visible or
// styled cell, or -1 when the buffer is blank.
func (b *CellBuffer) LastUsedRow() int {
	for y := b.height - 1; y >= 0; y-- {
		for x := 0; x < b.width; x++ {
			if c := b.Get(x, y); c.Char != ' ' || c.Style != EmptyStyle {
				return y
			}
		}
	}
	return -1
}

// ToDebugString returns the characters of the buffer, one line per row.
func (b *CellBuffer) ToDebugString() string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < b.width; x++ {
			if c := b.Get(x, y); c.Char != continuation {
				sb.WriteRune(c.Char)
			}
		}
	}
	return sb.String()
}
