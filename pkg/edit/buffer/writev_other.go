//go:build !linux

package buffer

import "os"

// The byte-slice variant of writev is only exposed on Linux; elsewhere the
// pending segments are flushed sequentially.
func flush(file *os.File, segments [][]byte) error {
	for _, segment := range segments {
		if _, err := file.Write(segment); err != nil {
			return err
		}
	}
	return nil
}
