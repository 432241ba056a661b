package edit

import (
	"fmt"
	"os"

	"svi.sh/pkg/edit/term"
	"svi.sh/pkg/prog"
)

// Program is the editor subprogram. It owns the terminal for the duration of
// the session.
type Program struct{}

func (Program) Run(fds [3]*os.File, _ *prog.Flags, args []string) error {
	if len(args) > 1 {
		return prog.BadUsage("at most one file name may be given")
	}
	name := ""
	if len(args) == 1 {
		name = args[0]
	}

	t, err := term.Setup(fds[0], fds[1])
	if err != nil {
		return err
	}
	defer t.Restore()

	rd, err := term.NewReader(fds[0])
	if err != nil {
		return fmt.Errorf("can't set up terminal reader: %w", err)
	}
	defer rd.Close()

	return NewEditor(NewTTY(t, rd), name).Run()
}
