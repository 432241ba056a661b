// Package buffer implements the document model of the editor: a sparse,
// lazily populated, growable sequence of text rows.
package buffer

const (
	initialRows   = 32
	rowsIncrement = 16

	initialRowCapacity = 128
	rowIncrement       = 64
)

// Buffer holds the rows of a document. A nil slot is an absent row: it
// renders as a blank line and costs no allocation until a character is first
// inserted into it.
type Buffer struct {
	rows   []*Text
	length int
}

// New creates an empty Buffer.
func New() *Buffer {
	return &Buffer{rows: make([]*Text, initialRows)}
}

// Len returns the logical length of the buffer: one past the highest row
// index ever written to.
func (b *Buffer) Len() int { return b.length }

// Row returns the row at the given index, or nil if the row is absent.
func (b *Buffer) Row(i int) *Text {
	if i < 0 || i >= len(b.rows) {
		return nil
	}
	return b.rows[i]
}

// RowLen returns the length of the row at the given index. It is 0 for an
// absent row.
func (b *Buffer) RowLen(i int) int {
	if r := b.Row(i); r != nil {
		return r.Len()
	}
	return 0
}

// RowString returns the contents of the row at the given index. It is empty
// for an absent row.
func (b *Buffer) RowString(i int) string {
	if r := b.Row(i); r != nil {
		return r.String()
	}
	return ""
}

// InsertChar inserts c into the given row, creating the row if it is absent
// and growing the row array when the index falls beyond it.
func (b *Buffer) InsertChar(row, col int, c byte) {
	if row < 0 {
		return
	}
	if row >= len(b.rows) {
		b.Resize(roundUpTo(row+1, rowsIncrement))
	}
	if row >= b.length {
		b.length = row + 1
	}
	if b.rows[row] == nil {
		b.rows[row] = newText(c, initialRowCapacity, rowIncrement)
	} else {
		b.rows[row].InsertChar(col, c)
	}
}

// RemoveChar removes the byte at the given position. It is a no-op if the
// row is absent.
func (b *Buffer) RemoveChar(row, col int) {
	if row >= 0 && row < len(b.rows) && b.rows[row] != nil {
		b.rows[row].RemoveChar(col)
	}
}

// Resize changes the size of the row array. Shrinking discards the rows at
// or beyond the new size and recomputes the logical length as one past the
// highest present row that remains.
func (b *Buffer) Resize(size int) {
	switch {
	case size < len(b.rows):
		for i := size; i < len(b.rows); i++ {
			b.rows[i] = nil
		}
		b.rows = b.rows[:size]
		if b.length > size {
			b.length = 0
			for i := size - 1; i >= 0; i-- {
				if b.rows[i] != nil {
					b.length = i + 1
					break
				}
			}
		}
	case size > len(b.rows):
		grown := make([]*Text, size)
		copy(grown, b.rows)
		b.rows = grown
	}
}

func roundUpTo(x, multiple int) int {
	return (x + multiple - 1) / multiple * multiple
}
