package eunix

import (
	"time"

	"golang.org/x/sys/unix"
)

func doSelect(nfd int, r, w, e *unix.FdSet, timeout time.Duration) error {
	var pts *unix.Timespec
	if timeout >= 0 {
		ts := unix.NsecToTimespec(int64(timeout))
		pts = &ts
	}
	// On ARM64, MIPS64 and MIPS64LE, unix.Select is emulated in userland and
	// will dereference timeout. Use Pselect to work around the problem.
	// Bug: https://github.com/golang/go/issues/24189
	_, err := unix.Pselect(nfd, r, w, e, pts, nil)
	return err
}
