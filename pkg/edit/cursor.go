package edit

// Cursor movement. Movements clamp the cursor to the window and to the text
// of the destination row. The two bottom rows of the window are reserved for
// the status line, and the rightmost column is never entered.

// maxX returns the rightmost column the cursor may occupy.
func (ed *Editor) maxX() int { return ed.width - 2 }

// maxY returns the lowest row the cursor may occupy.
func (ed *Editor) maxY() int { return ed.height - 3 }

func (ed *Editor) cursorUp() {
	if ed.y > 0 {
		ed.y--
		ed.reclampX()
		ed.tty.MoveCursor(ed.x, ed.y)
	}
}

func (ed *Editor) cursorDown() {
	if ed.y < ed.maxY() {
		ed.y++
		ed.reclampX()
		ed.tty.MoveCursor(ed.x, ed.y)
	}
}

func (ed *Editor) cursorLeft() {
	if ed.x > 0 {
		ed.x--
		ed.tty.MoveCursor(ed.x, ed.y)
	}
}

func (ed *Editor) cursorRight() {
	if ed.x < ed.maxX() && ed.x < ed.buf.RowLen(ed.y) {
		ed.x++
		ed.tty.MoveCursor(ed.x, ed.y)
	}
}

func (ed *Editor) cursorLineStart() {
	ed.x = 0
	ed.tty.MoveCursor(ed.x, ed.y)
}

func (ed *Editor) cursorLineEnd() {
	l := ed.buf.RowLen(ed.y)
	if l > 0 {
		l--
	}
	// The row may extend beyond the window.
	if l > ed.maxX() {
		l = ed.maxX()
	}
	ed.x = l
	ed.tty.MoveCursor(ed.x, ed.y)
}

func (ed *Editor) cursorStartNextRow() {
	if ed.y < ed.maxY() {
		ed.y++
		ed.x = 0
		ed.tty.MoveCursor(ed.x, ed.y)
	}
}

func (ed *Editor) cursorEndPrevRow() {
	if ed.y > 0 {
		ed.y--
		ed.x = ed.buf.RowLen(ed.y)
		if ed.x > ed.maxX() {
			ed.x = ed.maxX()
		}
		ed.tty.MoveCursor(ed.x, ed.y)
	}
}

// reclampX pulls x back onto the text of the current row after a vertical
// move.
func (ed *Editor) reclampX() {
	if l := ed.buf.RowLen(ed.y); ed.x > l {
		ed.x = l
	}
}
