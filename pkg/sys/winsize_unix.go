//go:build unix

package sys

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

// SIGWINCH is the window size change signal.
const SIGWINCH = unix.SIGWINCH

var errZeroSize = errors.New("terminal reports zero size")

// WinSize queries the size of the terminal referenced by the given file. A
// terminal that reports a zero dimension (e.g. a serial console) is treated
// as a failed query, so that the caller can fall back to probing.
func WinSize(file *os.File) (row, col int, err error) {
	ws, err := unix.IoctlGetWinsize(int(file.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}
	if ws.Row == 0 || ws.Col == 0 {
		return 0, 0, errZeroSize
	}
	return int(ws.Row), int(ws.Col), nil
}
