//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package eunix

import (
	"time"

	"golang.org/x/sys/unix"
)

func doSelect(nfd int, r, w, e *unix.FdSet, timeout time.Duration) error {
	var ptv *unix.Timeval
	if timeout >= 0 {
		tv := unix.NsecToTimeval(int64(timeout))
		ptv = &tv
	}
	return unix.Select(nfd, r, w, e, ptv)
}
