// Package buildinfo contains build information.
package buildinfo

import (
	"fmt"
	"os"

	"svi.sh/pkg/prog"
)

// Version identifies the version of svi.
const Version = "0.1.0"

// Program is the buildinfo subprogram. It handles the -version flag.
type Program struct{}

func (Program) Run(fds [3]*os.File, f *prog.Flags, _ []string) error {
	if !f.Version {
		return prog.ErrNotSuitable
	}
	fmt.Fprintln(fds[1], Version)
	return nil
}
