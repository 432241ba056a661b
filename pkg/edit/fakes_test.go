package edit

import (
	"errors"
	"fmt"

	"svi.sh/pkg/edit/term"
	"svi.sh/pkg/ui"
)

// errNoMoreEvents terminates a session when its scripted events run out.
var errNoMoreEvents = errors.New("no more events")

// fakeTTY feeds a scripted sequence of events to the editor and records the
// drawing operations.
type fakeTTY struct {
	width, height int
	sizeErr       error

	events []term.Event
	// Sizes to apply when the scripted resize events are delivered.
	resizes [][2]int

	ops              []string
	cursorX, cursorY int
}

func newFakeTTY(width, height int, events ...[]term.Event) *fakeTTY {
	tty := &fakeTTY{width: width, height: height}
	for _, evs := range events {
		tty.events = append(tty.events, evs...)
	}
	return tty
}

func (f *fakeTTY) Size() (int, int, error) {
	if f.sizeErr != nil {
		return 0, 0, f.sizeErr
	}
	return f.width, f.height, nil
}

func (f *fakeTTY) ReadEvent() (term.Event, error) {
	if len(f.events) == 0 {
		return nil, errNoMoreEvents
	}
	ev := f.events[0]
	f.events = f.events[1:]
	if _, isResize := ev.(term.ResizeEvent); isResize && len(f.resizes) > 0 {
		f.width, f.height = f.resizes[0][0], f.resizes[0][1]
		f.resizes = f.resizes[1:]
	}
	return ev, nil
}

func (f *fakeTTY) MoveCursor(x, y int) {
	f.cursorX, f.cursorY = x, y
}

func (f *fakeTTY) Print(x, y int, s ui.Style, text string) {
	f.ops = append(f.ops, fmt.Sprintf("print %d %d %q", x, y, text))
}

func (f *fakeTTY) ClearRow(y int) {
	f.ops = append(f.ops, fmt.Sprintf("clear %d", y))
}

func (f *fakeTTY) hasOp(op string) bool {
	for _, o := range f.ops {
		if o == op {
			return true
		}
	}
	return false
}

// typed converts a string into the key events a terminal user would produce
// by typing it. CR, ESC and DEL bytes become the corresponding keys.
func typed(s string) []term.Event {
	var evs []term.Event
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\r':
			evs = append(evs, key(term.Enter))
		case '\x1b':
			evs = append(evs, key(term.Esc))
		case '\x7f':
			evs = append(evs, key(term.Backspace))
		default:
			evs = append(evs, term.KeyEvent(term.C(s[i])))
		}
	}
	return evs
}

func key(kind term.KeyKind) term.Event { return term.KeyEvent(term.K(kind)) }

func keyTimes(kind term.KeyKind, n int) []term.Event {
	evs := make([]term.Event, n)
	for i := range evs {
		evs[i] = key(kind)
	}
	return evs
}

func resized() []term.Event { return []term.Event{term.ResizeEvent{}} }
