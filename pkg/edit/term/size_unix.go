//go:build unix

package term

import (
	"errors"
	"fmt"
	"io"
	"time"

	"golang.org/x/sys/unix"

	"svi.sh/pkg/sys"
	"svi.sh/pkg/sys/eunix"
)

// How long to wait for the terminal's reply when probing the size with a
// cursor position report.
const sizeProbeTimeout = 500 * time.Millisecond

// Longest reply to the probe that is still worth parsing.
const maxProbeReply = 16

// Size returns the width and height of the terminal. It first asks the
// system for the window size; if that fails, it falls back to probing the
// terminal itself. The caller should substitute fallback dimensions when
// both fail.
func (t *Terminal) Size() (width, height int, err error) {
	row, col, err := sys.WinSize(t.in)
	if err == nil {
		return col, row, nil
	}
	logger.Println("window size query failed, probing terminal:", err)
	return t.probeSize()
}

// probeSize moves the cursor towards the bottom right corner, beyond any
// realistic window size, and asks the terminal to report where the cursor
// actually ended up.
func (t *Terminal) probeSize() (width, height int, err error) {
	if _, err := t.out.WriteString("\033[9999;9999H\033[6n"); err != nil {
		return 0, 0, err
	}
	ready, err := eunix.WaitForRead(sizeProbeTimeout, t.in)
	if err != nil {
		return 0, 0, err
	}
	if !ready[0] {
		return 0, 0, errors.New("no reply to size probe")
	}

	// The reply has the form ESC [ rows ; cols R.
	var reply []byte
	for len(reply) < maxProbeReply {
		var b [1]byte
		n, err := unix.Read(int(t.in.Fd()), b[:])
		if err != nil {
			return 0, 0, fmt.Errorf("read size probe reply: %w", err)
		}
		if n != 1 {
			return 0, 0, io.ErrNoProgress
		}
		reply = append(reply, b[0])
		if b[0] == 'R' {
			break
		}
	}
	var row, col int
	if _, err := fmt.Sscanf(string(reply), "\033[%d;%dR", &row, &col); err != nil {
		return 0, 0, fmt.Errorf("parse size probe reply %q: %w", reply, err)
	}
	return col, row, nil
}
