// Command svi is a small modal text editor for the terminal.
package main

import (
	"os"

	"svi.sh/pkg/buildinfo"
	"svi.sh/pkg/edit"
	"svi.sh/pkg/prog"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(buildinfo.Program{}, edit.Program{})))
}
