package term

// Input decoding runs a small state machine over the bytes that are already
// pending on the terminal. A terminal delivers each escape sequence in one
// burst, so when a byte of a sequence is missing the sequence is not coming;
// the only exception is a lone ESC byte, which denotes the escape key
// itself.

type decodeState int

const (
	decodeStart decodeState = iota
	sawEscape
	sawBracket
	sawDigit
)

// csiFinal maps the final byte of an ESC [ sequence to the key it denotes.
var csiFinal = map[byte]KeyKind{
	'A': Up,
	'B': Down,
	'C': Right,
	'D': Left,
}

// decodeKey decodes one key from pending input. The read argument returns
// the next pending byte, if any, without blocking. The second return value
// is false if there was no byte to decode or the input is not a recognized
// key; either way the consumed bytes are gone.
func decodeKey(read func() (byte, bool)) (Key, bool) {
	b, ok := read()
	if !ok {
		return Key{}, false
	}
	state := decodeStart
	for {
		switch state {
		case decodeStart:
			switch {
			case b == 0x1b:
				state = sawEscape
			case b == '\r':
				return K(Enter), true
			case b == 0x7f:
				return K(Backspace), true
			case b < 0x7f:
				return C(b), true
			default:
				// Only ASCII input is supported.
				return Key{}, false
			}
		case sawEscape:
			b, ok = read()
			if !ok {
				return K(Esc), true
			}
			if b != '[' {
				return Key{}, false
			}
			state = sawBracket
		case sawBracket:
			b, ok = read()
			if !ok {
				return Key{}, false
			}
			if kind, found := csiFinal[b]; found {
				return K(kind), true
			}
			if b != '3' {
				return Key{}, false
			}
			state = sawDigit
		case sawDigit:
			b, ok = read()
			if !ok || b != '~' {
				return Key{}, false
			}
			return K(Delete), true
		}
	}
}
