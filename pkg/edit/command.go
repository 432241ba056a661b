package edit

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

// Colon commands have the form HEAD[!][ ARG]. The head is compared against
// "q", "w" and "wq"; an unrecognized head is accepted as a successful no-op.
// The bang overrides safety checks. The argument, when the head takes one,
// is everything after the first space.

// cmdMatches reports whether the head token of cmd equals name, and whether
// the head carries a trailing bang. The bang result is only meaningful when
// the head matches.
func cmdMatches(cmd, name string) (ok, bang bool) {
	head := cmd
	if i := strings.IndexByte(cmd, ' '); i >= 0 {
		head = cmd[:i]
	}
	if strings.HasSuffix(head, "!") {
		return head[:len(head)-1] == name, true
	}
	return head == name, false
}

// cmdArg returns the part of cmd after the first space, or "" if there is
// nothing after it.
func cmdArg(cmd string) string {
	if i := strings.IndexByte(cmd, ' '); i >= 0 && i+1 < len(cmd) {
		return cmd[i+1:]
	}
	return ""
}

// execCommand executes a colon command against the editor state. A non-nil
// return is a message for the status row; the editor state is unchanged in
// that case, except that a write may have adopted a file name before
// failing.
func (ed *Editor) execCommand(cmd string) error {
	logger.Printf("execute command %q", cmd)
	if ok, bang := cmdMatches(cmd, "q"); ok {
		if !bang && ed.modified {
			return errors.New("buffer modified")
		}
		ed.done = true
		return nil
	}
	okW, bangW := cmdMatches(cmd, "w")
	okWq, bangWq := cmdMatches(cmd, "wq")
	if okW || okWq {
		arg := cmdArg(cmd)
		name := arg
		if name == "" {
			name = ed.name
		}
		if name == "" {
			return errors.New("no file name specified")
		}
		if ed.name == "" {
			ed.name = name
		}
		bang := (okW && bangW) || (okWq && bangWq)
		if err := ed.buf.WriteFile(name, bang || ed.written); err != nil {
			if errors.Is(err, fs.ErrExist) {
				return errors.New("file exists (add ! to override)")
			}
			return fmt.Errorf("writing to file failed: %v", err)
		}
		ed.modified = false
		ed.written = true
		if okWq {
			ed.done = true
		}
		return nil
	}
	return nil
}
