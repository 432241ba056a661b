package edit

import (
	"svi.sh/pkg/edit/term"
	"svi.sh/pkg/ui"
)

func (ed *Editor) handleNormalKey(k term.Key) {
	switch k.Kind {
	case term.Up:
		ed.cursorUp()
	case term.Down:
		ed.cursorDown()
	case term.Right:
		ed.cursorRight()
	case term.Left:
		ed.cursorLeft()
	case term.Enter:
		ed.cursorStartNextRow()
	case term.Backspace:
		if ed.x == 0 && ed.y > 0 {
			ed.cursorEndPrevRow()
		} else {
			ed.cursorLeft()
		}
	case term.Char:
		switch k.Ch {
		case 'h':
			ed.cursorLeft()
		case 'j':
			ed.cursorDown()
		case 'k':
			ed.cursorUp()
		case 'l':
			ed.cursorRight()
		case '0':
			ed.cursorLineStart()
		case '$':
			ed.cursorLineEnd()
		case 'i':
			ed.enterInsertMode()
		case 'a':
			ed.cursorRight()
			ed.enterInsertMode()
		case ':':
			ed.enterCommandLineMode()
		}
	}
}

func (ed *Editor) enterInsertMode() {
	ed.mode = Insert
	ed.tty.Print(0, ed.statusRow(), ui.Style{}, "INSERT")
	ed.tty.MoveCursor(ed.x, ed.y)
}

func (ed *Editor) enterCommandLineMode() {
	ed.mode = CommandLine
	ed.storedX = ed.x
	// Column 0 of the status row shows the colon itself.
	ed.x = 1
	ed.tty.Print(0, ed.statusRow(), ui.Style{}, ":")
	ed.tty.MoveCursor(ed.x, ed.statusRow())
}
