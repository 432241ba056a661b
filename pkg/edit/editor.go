// Package edit implements the editing engine: the modal state machine that
// turns terminal events into buffer and cursor operations.
package edit

import (
	"errors"

	"svi.sh/pkg/edit/buffer"
	"svi.sh/pkg/edit/term"
	"svi.sh/pkg/logutil"
)

var logger = logutil.GetLogger("[edit] ")

// Mode identifies the active input mode.
type Mode int

// Possible values for Mode.
const (
	Normal Mode = iota
	Insert
	CommandLine
)

// If probing the terminal size fails, these dimensions are assumed.
const (
	fallbackWidth  = 80
	fallbackHeight = 24
)

// The initial capacity and growth increment of the command buffer.
const (
	initialCmdCapacity = 16
	cmdIncrement       = 16
)

var errHeightTooLow = errors.New("terminal height too low")

// Editor holds the state of an editing session.
type Editor struct {
	tty TTY

	buf *buffer.Buffer
	cmd *buffer.Text

	width, height int
	x, y          int

	mode Mode
	// The column to restore the cursor to when command-line mode ends.
	storedX int

	name     string
	modified bool
	written  bool

	done bool
}

// NewEditor creates an editor on the given terminal. A non-empty name
// becomes the associated file name of the session.
func NewEditor(tty TTY, name string) *Editor {
	return &Editor{
		tty:  tty,
		buf:  buffer.New(),
		cmd:  buffer.NewText(initialCmdCapacity, cmdIncrement),
		name: name,
	}
}

// Run runs the editing session until the user quits or reading an event
// fails.
func (ed *Editor) Run() error {
	ed.probeSize()
	if ed.height < 2 {
		return errHeightTooLow
	}
	ed.tty.MoveCursor(0, 0)

	for !ed.done {
		ev, err := ed.tty.ReadEvent()
		if err != nil {
			return err
		}
		switch ev := ev.(type) {
		case term.ResizeEvent:
			if err := ed.handleResize(); err != nil {
				return err
			}
		case term.KeyEvent:
			ed.handleKey(term.Key(ev))
		}
	}
	return nil
}

func (ed *Editor) probeSize() {
	w, h, err := ed.tty.Size()
	if err != nil {
		logger.Println("size probe failed, assuming fallback size:", err)
		w, h = fallbackWidth, fallbackHeight
	}
	ed.width, ed.height = w, h
}

func (ed *Editor) handleResize() error {
	ed.probeSize()
	if ed.height < 2 {
		return errHeightTooLow
	}
	// The cursor may have been left outside the window if the window shrank.
	if ed.x > ed.maxX() {
		ed.x = ed.maxX()
	}
	if ed.x < 0 {
		ed.x = 0
	}
	if ed.y > ed.maxY() {
		ed.y = ed.maxY()
	}
	if ed.y < 0 {
		ed.y = 0
	}
	ed.tty.MoveCursor(ed.x, ed.y)
	return nil
}

func (ed *Editor) handleKey(k term.Key) {
	switch ed.mode {
	case Insert:
		ed.handleInsertKey(k)
	case CommandLine:
		ed.handleCommandLineKey(k)
	default:
		ed.handleNormalKey(k)
	}
}

// statusRow returns the row used for command entry, the mode indicator and
// error messages.
func (ed *Editor) statusRow() int { return ed.height - 1 }
