//go:build unix

package term

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"svi.sh/pkg/errutil"
	"svi.sh/pkg/sys"
	"svi.sh/pkg/sys/eunix"
)

// Terminal is a terminal that has been set up for editing. It is created by
// Setup and released by Restore.
type Terminal struct {
	in, out  *os.File
	saved    *eunix.Termios
	restored bool
}

// Setup puts the terminal attached to in and out in the mode suitable for
// editing: raw attributes and non-blocking reads, with the screen cleared.
// The returned Terminal's Restore method undoes the setup; it must be called
// on every exit path, including the fatal ones.
func Setup(in, out *os.File) (*Terminal, error) {
	if !sys.IsATTY(in.Fd()) || !sys.IsATTY(out.Fd()) {
		return nil, errors.New("stdin and stdout must be a terminal")
	}

	fd := int(in.Fd())
	attrs, err := eunix.TermiosForFd(fd)
	if err != nil {
		return nil, fmt.Errorf("can't get terminal attribute: %w", err)
	}
	saved := attrs.Copy()

	attrs.SetRaw()
	if err := attrs.ApplyToFd(fd); err != nil {
		return nil, fmt.Errorf("can't set up terminal attribute: %w", err)
	}
	if err := unix.SetNonblock(fd, true); err != nil {
		saved.ApplyToFd(fd)
		return nil, fmt.Errorf("can't set non-blocking IO: %w", err)
	}

	t := &Terminal{in: in, out: out, saved: saved}
	t.Clear()
	return t, nil
}

// Restore restores the saved terminal attributes and blocking mode, and
// clears the screen. Calling it more than once is allowed; the later calls
// are no-ops.
func (t *Terminal) Restore() error {
	if t.restored {
		return nil
	}
	t.restored = true
	fd := int(t.in.Fd())
	err := errutil.Multi(
		t.saved.ApplyToFd(fd),
		unix.SetNonblock(fd, false))
	t.Clear()
	return err
}
