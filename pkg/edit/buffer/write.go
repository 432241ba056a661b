package buffer

import (
	"os"

	"svi.sh/pkg/errutil"
)

// How many pending segments to accumulate before flushing them in one
// vectored write.
const writeBatch = 32

var newline = []byte{'\n'}

// WriteFile serializes the buffer to the named file. Every row up to the
// logical length, present or absent, is followed by exactly one newline
// byte. Unless overwrite is true, writing fails if the file already exists;
// the caller can detect that case with errors.Is(err, fs.ErrExist).
func (b *Buffer) WriteFile(name string, overwrite bool) error {
	flags := os.O_WRONLY | os.O_CREATE
	if overwrite {
		flags |= os.O_TRUNC
	} else {
		flags |= os.O_EXCL
	}
	file, err := os.OpenFile(name, flags, 0o666)
	if err != nil {
		return err
	}
	return errutil.Multi(b.writeTo(file), file.Close())
}

func (b *Buffer) writeTo(file *os.File) error {
	batch := make([][]byte, 0, writeBatch)
	push := func(segment []byte) error {
		if len(batch) == writeBatch {
			if err := flush(file, batch); err != nil {
				return err
			}
			batch = batch[:0]
		}
		batch = append(batch, segment)
		return nil
	}
	for i := 0; i < b.length; i++ {
		if row := b.rows[i]; row != nil {
			if err := push(row.bs); err != nil {
				return err
			}
		}
		if err := push(newline); err != nil {
			return err
		}
	}
	if len(batch) == 0 {
		return nil
	}
	return flush(file, batch)
}
