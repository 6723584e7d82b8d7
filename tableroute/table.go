// SPDX-License-Identifier: MIT

package tableroute

import (
	"strings"
)

// Placeholder is the rune Table.String prints for an unfilled cell.
const Placeholder = '.'

// Shape returns the row count of the table for a text of length runes laid
// out in columns columns: ceil(length / columns). It returns 0 when either
// argument is not positive.
// Complexity: O(1).
func Shape(length, columns int) int {
	if length <= 0 || columns <= 0 {
		return 0
	}
	return (length + columns - 1) / columns
}

// fillMask reports, for every row-major cell of the table, whether it holds
// a character. The first length cells are filled, the rest are placeholders.
// Encrypt and Decrypt both derive the table shape from this one function.
// Complexity: O(rows×columns).
func fillMask(length, columns int) []bool {
	rows := Shape(length, columns)
	mask := make([]bool, rows*columns)
	for i := 0; i < length && i < len(mask); i++ {
		mask[i] = true
	}
	return mask
}

// Table is the rows×columns work grid of a single call. It is row-major:
// cell (r,c) lives at offset r*Cols + c.
type Table struct {
	Rows, Cols int
	cells      []rune
	filled     []bool
}

// newTable allocates an empty table shaped for length runes.
func newTable(length, columns int) *Table {
	mask := fillMask(length, columns)
	return &Table{
		Rows:   len(mask) / columns,
		Cols:   columns,
		cells:  make([]rune, len(mask)),
		filled: mask,
	}
}

// index maps (r,c) to a row-major offset.
// Complexity: O(1).
func (t *Table) index(r, c int) int {
	return r*t.Cols + c
}

// Coordinate converts a row-major offset back to (row, column).
// Complexity: O(1).
func (t *Table) Coordinate(idx int) (r, c int) {
	return idx / t.Cols, idx % t.Cols
}

// InBounds reports whether (r,c) lies inside the table.
func (t *Table) InBounds(r, c int) bool {
	return r >= 0 && r < t.Rows && c >= 0 && c < t.Cols
}

// At returns the character in cell (r,c). ok is false for placeholders and
// out-of-range coordinates.
func (t *Table) At(r, c int) (ch rune, ok bool) {
	if !t.InBounds(r, c) {
		return 0, false
	}
	i := t.index(r, c)
	if !t.filled[i] {
		return 0, false
	}
	return t.cells[i], true
}

// Filled returns the number of filled cells.
func (t *Table) Filled() int {
	n := 0
	for _, f := range t.filled {
		if f {
			n++
		}
	}
	return n
}

// rowOrder lists filled offsets row-major: top to bottom, left to right.
func (t *Table) rowOrder() []int {
	order := make([]int, 0, len(t.cells))
	for r := 0; r < t.Rows; r++ {
		for c := 0; c < t.Cols; c++ {
			if i := t.index(r, c); t.filled[i] {
				order = append(order, i)
			}
		}
	}
	return order
}

// routeOrder lists filled offsets along the cipher route: rightmost column
// to leftmost, bottom row to top row inside each column.
func (t *Table) routeOrder() []int {
	order := make([]int, 0, len(t.cells))
	for c := t.Cols - 1; c >= 0; c-- {
		for r := t.Rows - 1; r >= 0; r-- {
			if i := t.index(r, c); t.filled[i] {
				order = append(order, i)
			}
		}
	}
	return order
}

// write stores text into the cells listed by order, one rune per offset.
// len(text) equals len(order) for every caller.
func (t *Table) write(order []int, text []rune) {
	for k, i := range order {
		t.cells[i] = text[k]
	}
}

// read concatenates the cells listed by order.
func (t *Table) read(order []int) string {
	out := make([]rune, len(order))
	for k, i := range order {
		out[k] = t.cells[i]
	}
	return string(out)
}

// String renders the table one row per line, cells separated by a space and
// placeholders shown as Placeholder.
func (t *Table) String() string {
	var sb strings.Builder
	for r := 0; r < t.Rows; r++ {
		for c := 0; c < t.Cols; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			if ch, ok := t.At(r, c); ok {
				sb.WriteRune(ch)
			} else {
				sb.WriteRune(Placeholder)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
