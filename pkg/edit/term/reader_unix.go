//go:build unix

package term

import (
	"os"
	"os/signal"

	"golang.org/x/sys/unix"

	"svi.sh/pkg/logutil"
	"svi.sh/pkg/sys"
	"svi.sh/pkg/sys/eunix"
)

var logger = logutil.GetLogger("[term] ")

// Reader reads terminal events from a file. Besides key presses it reports
// window size changes: the size change signal is relayed to a pipe that
// event waits select on along with the file, so a resize that arrives
// between two waits is not lost.
type Reader struct {
	in             *os.File
	winchR, winchW *os.File
	sigCh          chan os.Signal
}

// NewReader creates a new Reader on the given terminal file. The file must
// be in non-blocking mode.
func NewReader(in *os.File) (*Reader, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, err
	}
	rd := &Reader{in, r, w, make(chan os.Signal, 1)}
	signal.Notify(rd.sigCh, sys.SIGWINCH)
	go rd.relayWinch()
	return rd, nil
}

func (rd *Reader) relayWinch() {
	for range rd.sigCh {
		rd.winchW.Write([]byte{'r'})
	}
}

// ReadEvent reads a single event, blocking until input arrives. A pending
// resize takes precedence over queued key presses.
func (rd *Reader) ReadEvent() (Event, error) {
	var b [1]byte
	for {
		ready, err := eunix.WaitForRead(-1, rd.in, rd.winchR)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return nil, err
		}
		if ready[1] {
			rd.winchR.Read(b[:])
			return ResizeEvent{}, nil
		}
		if !ready[0] {
			continue
		}
		if key, ok := decodeKey(rd.tryReadByte); ok {
			return KeyEvent(key), nil
		}
		logger.Println("discarded unrecognized input sequence")
	}
}

// tryReadByte reads one byte from the terminal without blocking.
func (rd *Reader) tryReadByte() (byte, bool) {
	var b [1]byte
	n, err := unix.Read(int(rd.in.Fd()), b[:])
	if err != nil || n != 1 {
		return 0, false
	}
	return b[0], true
}

// Close stops resize notifications and releases the resources of the
// Reader. It does not close the file used to create the Reader.
func (rd *Reader) Close() {
	signal.Stop(rd.sigCh)
	close(rd.sigCh)
	rd.winchR.Close()
	rd.winchW.Close()
}
