package edit

import (
	"svi.sh/pkg/edit/term"
	"svi.sh/pkg/ui"
)

// TTY is the type of the terminal dependency of the editor. It is satisfied
// by the real terminal via NewTTY, and by fake implementations in tests.
type TTY interface {
	// Size returns the width and height of the terminal.
	Size() (width, height int, err error)
	// ReadEvent reads a single event from the terminal.
	ReadEvent() (term.Event, error)
	// MoveCursor moves the cursor to the 0-based position (x, y).
	MoveCursor(x, y int)
	// Print erases row y and writes text on it starting at column x, in the
	// given style.
	Print(x, y int, style ui.Style, text string)
	// ClearRow erases the contents of row y.
	ClearRow(y int)
}

// NewTTY combines a Terminal and a Reader on it into a TTY.
func NewTTY(t *term.Terminal, rd *term.Reader) TTY {
	return ttyWrapper{t, rd}
}

type ttyWrapper struct {
	*term.Terminal
	reader *term.Reader
}

func (w ttyWrapper) ReadEvent() (term.Event, error) { return w.reader.ReadEvent() }
