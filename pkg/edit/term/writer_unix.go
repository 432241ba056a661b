//go:build unix

package term

import (
	"fmt"

	"svi.sh/pkg/ui"
)

// Output primitives. Each one writes to the terminal immediately, so that
// the screen is consistent at the moment of any abrupt exit.

// MoveCursor moves the cursor to the 0-based position (x, y).
func (t *Terminal) MoveCursor(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	fmt.Fprintf(t.out, "\033[%d;%dH", y+1, x+1)
}

// ClearRow erases the contents of row y.
func (t *Terminal) ClearRow(y int) {
	if y < 0 {
		return
	}
	fmt.Fprintf(t.out, "\033[%d;H\033[2K", y+1)
}

// Print erases row y and writes text on it starting at column x, in the
// given style.
func (t *Terminal) Print(x, y int, style ui.Style, text string) {
	if x < 0 || y < 0 {
		return
	}
	fmt.Fprintf(t.out, "\033[%d;%dH\033[2K", y+1, x+1)
	if sgr := style.SGR(); sgr != "" {
		fmt.Fprintf(t.out, "\033[%sm%s\033[0m", sgr, text)
	} else {
		fmt.Fprint(t.out, text)
	}
}

// Clear erases the whole screen and moves the cursor to the top left
// corner.
func (t *Terminal) Clear() {
	fmt.Fprint(t.out, "\033[2J\033[;H")
}
