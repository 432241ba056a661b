// Package sys provides thin wrappers of system utilities with the same API
// across OSes. The subpackage eunix provides Unix-specific utilities.
package sys

import (
	"github.com/mattn/go-isatty"
)

// IsATTY determines whether the given file descriptor refers to a terminal.
func IsATTY(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
