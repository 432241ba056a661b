package buffer

import (
	"os"

	"golang.org/x/sys/unix"
)

// flush writes all the pending segments with a single vectored write.
func flush(file *os.File, segments [][]byte) error {
	_, err := unix.Writev(int(file.Fd()), segments)
	return err
}
