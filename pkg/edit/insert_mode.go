package edit

import (
	"svi.sh/pkg/edit/term"
	"svi.sh/pkg/ui"
)

func (ed *Editor) handleInsertKey(k term.Key) {
	switch k.Kind {
	case term.Esc:
		ed.mode = Normal
		ed.tty.ClearRow(ed.statusRow())
		ed.tty.MoveCursor(ed.x, ed.y)
	case term.Up:
		ed.cursorUp()
	case term.Down:
		ed.cursorDown()
	case term.Right:
		ed.cursorRight()
	case term.Left:
		ed.cursorLeft()
	case term.Enter:
		// Moves to the next row without splitting the current one.
		ed.cursorStartNextRow()
	case term.Backspace:
		if ed.x > 0 && ed.buf.RowLen(ed.y) > 0 {
			ed.modified = true
			ed.buf.RemoveChar(ed.y, ed.x-1)
			ed.redrawRow()
			ed.x--
			ed.tty.MoveCursor(ed.x, ed.y)
		}
	case term.Delete:
		if ed.buf.RowLen(ed.y) > 0 {
			ed.modified = true
			ed.buf.RemoveChar(ed.y, ed.x)
			ed.redrawRow()
			ed.tty.MoveCursor(ed.x, ed.y)
		}
	case term.Char:
		if ed.x < ed.maxX() {
			ed.modified = true
			ed.buf.InsertChar(ed.y, ed.x, k.Ch)
			ed.redrawRow()
			ed.x++
			ed.tty.MoveCursor(ed.x, ed.y)
		}
	}
}

func (ed *Editor) redrawRow() {
	ed.tty.Print(0, ed.y, ui.Style{}, ed.buf.RowString(ed.y))
}
