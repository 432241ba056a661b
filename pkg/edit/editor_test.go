package edit

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"svi.sh/pkg/edit/term"
	"svi.sh/pkg/must"
	"svi.sh/pkg/testutil"
)

func TestEditor_InsertAndWrite(t *testing.T) {
	testutil.InTempDir(t)
	tty := newFakeTTY(80, 24, typed("iabc\x1b:w out\r:q\r"))

	ed := NewEditor(tty, "")
	if err := ed.Run(); err != nil {
		t.Fatal("Run errors:", err)
	}
	if got := must.ReadFileString("out"); got != "abc\n" {
		t.Errorf("got file content %q, want %q", got, "abc\n")
	}
	if !tty.hasOp(`print 0 23 "INSERT"`) {
		t.Error("no INSERT indicator was shown")
	}
	if ed.modified || !ed.written {
		t.Errorf("got modified %v written %v, want false true",
			ed.modified, ed.written)
	}
	if ed.name != "out" {
		t.Errorf("got name %q, want %q", ed.name, "out")
	}
}

func TestEditor_QuitWithUnsavedChanges(t *testing.T) {
	tty := newFakeTTY(80, 24, typed("ix\x1b:q\r"))
	err := NewEditor(tty, "").Run()
	if err != errNoMoreEvents {
		t.Error("the session quit despite unsaved changes")
	}
	if !tty.hasOp(`print 0 23 "buffer modified"`) {
		t.Error("no error message was shown")
	}

	// The bang overrides the check.
	tty = newFakeTTY(80, 24, typed("ix\x1b:q!\r"))
	if err := NewEditor(tty, "").Run(); err != nil {
		t.Error("Run errors:", err)
	}
}

func TestEditor_WriteRefusesToClobber(t *testing.T) {
	testutil.InTempDir(t)
	must.WriteFile("out", "old")
	tty := newFakeTTY(80, 24, typed("inew\x1b:w\r:w!\r:q\r"))

	ed := NewEditor(tty, "out")
	if err := ed.Run(); err != nil {
		t.Fatal("Run errors:", err)
	}
	if !tty.hasOp(`print 0 23 "file exists (add ! to override)"`) {
		t.Error("no error message was shown for the plain write")
	}
	if got := must.ReadFileString("out"); got != "new\n" {
		t.Errorf("got file content %q, want %q", got, "new\n")
	}
}

func TestEditor_WriteNeedsFileName(t *testing.T) {
	tty := newFakeTTY(80, 24, typed(":w\r"))
	if err := NewEditor(tty, "").Run(); err != errNoMoreEvents {
		t.Error("Run should run out of events, but didn't")
	}
	if !tty.hasOp(`print 0 23 "no file name specified"`) {
		t.Error("no error message was shown")
	}
}

func TestEditor_SecondWriteOverwrites(t *testing.T) {
	testutil.InTempDir(t)
	tty := newFakeTTY(80, 24, typed("ia\x1b:w\rib\x1b:w\r:q\r"))

	if err := NewEditor(tty, "out").Run(); err != nil {
		t.Fatal("Run errors:", err)
	}
	if got := must.ReadFileString("out"); got != "ab\n" {
		t.Errorf("got file content %q, want %q", got, "ab\n")
	}
}

func TestEditor_WriteQuit(t *testing.T) {
	testutil.InTempDir(t)
	tty := newFakeTTY(80, 24, typed("ihi\x1b:wq out\r"))

	ed := NewEditor(tty, "")
	if err := ed.Run(); err != nil {
		t.Fatal("Run errors:", err)
	}
	if got := must.ReadFileString("out"); got != "hi\n" {
		t.Errorf("got file content %q, want %q", got, "hi\n")
	}
}

func TestEditor_UnknownCommandIsNoOp(t *testing.T) {
	tty := newFakeTTY(80, 24, typed(":frob\r:q\r"))
	if err := NewEditor(tty, "").Run(); err != nil {
		t.Error("Run errors:", err)
	}
	if !tty.hasOp("clear 23") {
		t.Error("the status row was not cleared")
	}
}

func TestEditor_CursorMotion(t *testing.T) {
	tty := newFakeTTY(80, 24, typed("iabc\x1bjk0l$h"))
	ed := NewEditor(tty, "")
	ed.Run()

	// Moving down lands on an empty row, pulling the cursor to column 0;
	// moving back up keeps it there. Then "l" from column 0, "$" to the last
	// character and "h" one step back.
	if ed.x != 1 || ed.y != 0 {
		t.Errorf("got cursor (%d, %d), want (1, 0)", ed.x, ed.y)
	}
	if tty.cursorX != 1 || tty.cursorY != 0 {
		t.Errorf("got terminal cursor (%d, %d), want (1, 0)",
			tty.cursorX, tty.cursorY)
	}
}

func TestEditor_MotionBoundaries(t *testing.T) {
	// 10x5 window: the cursor may reach column 8 and row 2 at most.
	tty := newFakeTTY(10, 5,
		keyTimes(term.Up, 2), keyTimes(term.Left, 2),
		keyTimes(term.Down, 5), keyTimes(term.Right, 3))
	ed := NewEditor(tty, "")
	ed.Run()

	// Right on an empty row is a no-op regardless of the window.
	if ed.x != 0 || ed.y != 2 {
		t.Errorf("got cursor (%d, %d), want (0, 2)", ed.x, ed.y)
	}
}

func TestEditor_CursorStaysInWindowOnLongRow(t *testing.T) {
	// A row can outgrow the window: insertion at the left edge is allowed
	// regardless of the row's length. 10 columns wide, so column 8 is the
	// rightmost the cursor may reach.
	longRow := "iaaaaaaaa\x1b0iaaaaaaaa\x1b"

	// "$" on the over-long row.
	tty := newFakeTTY(10, 24, typed(longRow+"$"))
	ed := NewEditor(tty, "")
	ed.Run()
	if got := ed.buf.RowLen(0); got != 16 {
		t.Fatalf("got row length %d, want 16", got)
	}
	if ed.x != 8 {
		t.Errorf("got cursor column %d after $, want 8", ed.x)
	}

	// Backspace at column 0 of the row below the over-long row.
	tty = newFakeTTY(10, 24, typed(longRow+"\r\x7f"))
	ed = NewEditor(tty, "")
	ed.Run()
	if ed.x != 8 || ed.y != 0 {
		t.Errorf("got cursor (%d, %d) after backspace, want (8, 0)",
			ed.x, ed.y)
	}
}

func TestEditor_InsertStopsAtRightEdge(t *testing.T) {
	tty := newFakeTTY(6, 24, typed("iabcdefg\x1b"))
	ed := NewEditor(tty, "")
	ed.Run()

	if got := ed.buf.RowString(0); got != "abcd" {
		t.Errorf("got row %q, want %q", got, "abcd")
	}
	if ed.x != 4 {
		t.Errorf("got cursor column %d, want 4", ed.x)
	}
}

func TestEditor_ArrowKeysEditInPlace(t *testing.T) {
	tty := newFakeTTY(80, 24,
		typed("iab"), keyTimes(term.Left, 3), typed("X\x1b"))
	ed := NewEditor(tty, "")
	ed.Run()

	if got := ed.buf.RowString(0); got != "Xab" {
		t.Errorf("got row %q, want %q", got, "Xab")
	}
	if ed.x != 1 {
		t.Errorf("got cursor column %d, want 1", ed.x)
	}
}

func TestEditor_EnterDoesNotSplit(t *testing.T) {
	tty := newFakeTTY(80, 24, typed("iab\rcd\x1b"))
	ed := NewEditor(tty, "")
	ed.Run()

	if got := ed.buf.RowString(0); got != "ab" {
		t.Errorf("got row 0 %q, want %q", got, "ab")
	}
	if got := ed.buf.RowString(1); got != "cd" {
		t.Errorf("got row 1 %q, want %q", got, "cd")
	}
}

func TestEditor_BackspaceAtColumnZero(t *testing.T) {
	tty := newFakeTTY(80, 24, typed("iab\x1b\r\x7f"))
	ed := NewEditor(tty, "")
	ed.Run()

	// In normal mode, backspace at column 0 lands at the end of the previous
	// row.
	if ed.x != 2 || ed.y != 0 {
		t.Errorf("got cursor (%d, %d), want (2, 0)", ed.x, ed.y)
	}
}

func TestEditor_DeleteAndBackspace(t *testing.T) {
	tty := newFakeTTY(80, 24, typed("iabcd"), keyTimes(term.Left, 2),
		typed("\x7f"), []term.Event{key(term.Delete)}, typed("\x1b"))
	ed := NewEditor(tty, "")
	ed.Run()

	if got := ed.buf.RowString(0); got != "ad" {
		t.Errorf("got row %q, want %q", got, "ad")
	}
	if !ed.modified {
		t.Error("the buffer should be modified")
	}
}

func TestEditor_Resize(t *testing.T) {
	tty := newFakeTTY(80, 24, typed("iabcdef\x1b"), resized())
	tty.resizes = [][2]int{{6, 24}}
	ed := NewEditor(tty, "")
	ed.Run()

	if ed.width != 6 {
		t.Errorf("got width %d, want 6", ed.width)
	}
	if ed.x != 4 {
		t.Errorf("got cursor column %d, want 4", ed.x)
	}
}

func TestEditor_ResizeClampsRow(t *testing.T) {
	tty := newFakeTTY(80, 24, typed("\r\r\r"), resized())
	tty.resizes = [][2]int{{80, 5}}
	ed := NewEditor(tty, "")
	ed.Run()

	if ed.y != 2 {
		t.Errorf("got cursor row %d, want 2", ed.y)
	}
}

func TestEditor_ResizeTooLow(t *testing.T) {
	tty := newFakeTTY(80, 24, resized())
	tty.resizes = [][2]int{{80, 1}}
	if err := NewEditor(tty, "").Run(); err != errHeightTooLow {
		t.Errorf("got error %v, want %v", err, errHeightTooLow)
	}
}

func TestEditor_HeightTooLow(t *testing.T) {
	tty := newFakeTTY(80, 1)
	if err := NewEditor(tty, "").Run(); err != errHeightTooLow {
		t.Errorf("got error %v, want %v", err, errHeightTooLow)
	}
}

func TestEditor_FallbackSize(t *testing.T) {
	tty := newFakeTTY(0, 0)
	tty.sizeErr = errNoMoreEvents
	ed := NewEditor(tty, "")
	ed.Run()

	if ed.width != 80 || ed.height != 24 {
		t.Errorf("got size %dx%d, want 80x24", ed.width, ed.height)
	}
}

func TestEditor_CommandLineEditing(t *testing.T) {
	testutil.InTempDir(t)
	// Type ":wx", fix the typo with backspace, finish as ":wq".
	tty := newFakeTTY(80, 24, typed(":wx\x7fq\r"))
	if err := NewEditor(tty, "out").Run(); err != nil {
		t.Fatal("Run errors:", err)
	}
	if got := must.ReadFileString("out"); got != "" {
		t.Errorf("got file content %q, want it empty", got)
	}
}

func TestEditor_CommandLineArrowsAndDelete(t *testing.T) {
	// Type ":wq", move to the front, delete the "w"; the command runs as a
	// plain quit.
	tty := newFakeTTY(80, 24, typed(":wq"), keyTimes(term.Left, 3),
		[]term.Event{key(term.Delete)}, typed("\r"))
	if err := NewEditor(tty, "").Run(); err != nil {
		t.Error("Run errors:", err)
	}
}

func TestEditor_CommandLineRendering(t *testing.T) {
	tty := newFakeTTY(80, 24, typed(":w\x1b"))
	NewEditor(tty, "").Run()

	wantOps := []string{
		`print 0 23 ":"`,
		`print 0 23 ":w"`,
		"clear 23",
	}
	if diff := cmp.Diff(wantOps, tty.ops); diff != "" {
		t.Errorf("operations (-want +got):\n%s", diff)
	}
}

func TestEditor_CommandLineEscDiscards(t *testing.T) {
	tty := newFakeTTY(80, 24, typed(":q\x1bia\x1b"))
	ed := NewEditor(tty, "")
	ed.Run()

	// The ":q" was discarded by the escape, so the session went on.
	if !ed.modified {
		t.Error("the insertion after the discarded command did not happen")
	}
	if ed.cmd.Len() != 0 {
		t.Errorf("got %d bytes in the command buffer, want 0", ed.cmd.Len())
	}
	if !tty.hasOp("clear 23") {
		t.Error("the status row was not cleared")
	}
}
