package edit

import (
	"svi.sh/pkg/edit/buffer"
	"svi.sh/pkg/edit/term"
	"svi.sh/pkg/ui"
)

// Command-line mode edits the command buffer on the status row. The cursor
// column is offset by one from the command buffer index, to account for the
// leading colon.

func (ed *Editor) handleCommandLineKey(k term.Key) {
	switch k.Kind {
	case term.Esc:
		ed.leaveCommandLineMode(true)
	case term.Right:
		if ed.x < ed.maxX() && ed.x-1 < ed.cmd.Len() {
			ed.x++
			ed.tty.MoveCursor(ed.x, ed.statusRow())
		}
	case term.Left:
		if ed.x > 1 {
			ed.x--
			ed.tty.MoveCursor(ed.x, ed.statusRow())
		}
	case term.Enter:
		if err := ed.execCommand(ed.cmd.String()); err != nil {
			ed.tty.Print(0, ed.statusRow(), ui.Style{Foreground: ui.Red},
				err.Error())
		} else {
			ed.tty.ClearRow(ed.statusRow())
		}
		ed.leaveCommandLineMode(false)
	case term.Backspace:
		if ed.x > 1 && ed.cmd.Len() > 0 {
			ed.cmd.RemoveChar(ed.x - 2)
			ed.redrawCommand()
			ed.x--
			ed.tty.MoveCursor(ed.x, ed.statusRow())
		}
	case term.Delete:
		if ed.cmd.Len() > 0 {
			ed.cmd.RemoveChar(ed.x - 1)
			ed.redrawCommand()
			ed.tty.MoveCursor(ed.x, ed.statusRow())
		}
	case term.Char:
		if ed.x > 0 && ed.x < ed.maxX() {
			ed.cmd.InsertChar(ed.x-1, k.Ch)
			ed.redrawCommand()
			ed.x++
			ed.tty.MoveCursor(ed.x, ed.statusRow())
		}
	}
}

// leaveCommandLineMode discards the command buffer, returns to normal mode
// and restores the cursor. With clearStatus it also erases the status row;
// otherwise whatever the executed command printed there stays visible.
func (ed *Editor) leaveCommandLineMode(clearStatus bool) {
	ed.mode = Normal
	ed.cmd = buffer.NewText(initialCmdCapacity, cmdIncrement)
	if clearStatus {
		ed.tty.ClearRow(ed.statusRow())
	}
	ed.x = ed.storedX
	ed.tty.MoveCursor(ed.x, ed.y)
}

func (ed *Editor) redrawCommand() {
	ed.tty.Print(0, ed.statusRow(), ui.Style{}, ":"+ed.cmd.String())
}
