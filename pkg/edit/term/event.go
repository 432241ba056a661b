// Package term provides the interface to the terminal: setting up and
// restoring terminal modes, decoding input into events, and the output
// primitives the editor draws with.
package term

import "fmt"

// Event represents an event that can be read from the terminal.
type Event interface {
	isEvent()
}

// KeyEvent represents a key press.
type KeyEvent Key

// ResizeEvent is emitted when the terminal window has been resized.
type ResizeEvent struct{}

func (KeyEvent) isEvent()    {}
func (ResizeEvent) isEvent() {}

// Key represents a single key press.
type Key struct {
	Kind KeyKind
	// Ch is the input character. It is only meaningful when Kind is Char.
	Ch byte
}

// KeyKind classifies keys.
type KeyKind int

// Possible values for KeyKind.
const (
	Char KeyKind = iota
	Esc
	Up
	Down
	Right
	Left
	Enter
	Backspace
	Delete
)

var kindNames = [...]string{
	"Char", "Esc", "Up", "Down", "Right", "Left", "Enter", "Backspace",
	"Delete",
}

// K builds a Key with the given functional kind.
func K(kind KeyKind) Key { return Key{Kind: kind} }

// C builds a Key for a plain character.
func C(ch byte) Key { return Key{Kind: Char, Ch: ch} }

func (k Key) String() string {
	if k.Kind == Char {
		return fmt.Sprintf("Char(%q)", k.Ch)
	}
	if int(k.Kind) < len(kindNames) {
		return kindNames[k.Kind]
	}
	return fmt.Sprintf("bad key kind %d", int(k.Kind))
}
