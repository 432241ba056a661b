package buffer

// Text is a growable byte sequence with increment-based capacity management.
// Its capacity always stays strictly greater than its length. The zero Text
// is not useful; use NewText.
type Text struct {
	bs   []byte
	incr int
}

// NewText creates an empty Text with the given initial capacity and growth
// increment.
func NewText(capacity, incr int) *Text {
	return &Text{make([]byte, 0, capacity), incr}
}

func newText(c byte, capacity, incr int) *Text {
	t := &Text{make([]byte, 1, capacity), incr}
	t.bs[0] = c
	return t
}

// Len returns the number of bytes in t.
func (t *Text) Len() int { return len(t.bs) }

// String returns the contents of t.
func (t *Text) String() string { return string(t.bs) }

// InsertChar inserts c at index i, shifting the subsequent bytes right. An
// index beyond the end appends instead. The capacity grows by the
// configured increment when the sequence has filled up.
func (t *Text) InsertChar(i int, c byte) {
	if len(t.bs)+1 >= cap(t.bs) {
		grown := make([]byte, len(t.bs), cap(t.bs)+t.incr)
		copy(grown, t.bs)
		t.bs = grown
	}
	if i > len(t.bs) {
		i = len(t.bs)
	}
	t.bs = t.bs[:len(t.bs)+1]
	copy(t.bs[i+1:], t.bs[i:])
	t.bs[i] = c
}

// RemoveChar removes the byte at index i, shifting the subsequent bytes
// left. It is a no-op on an empty Text; an index beyond the end removes the
// last byte instead.
func (t *Text) RemoveChar(i int) {
	if len(t.bs) == 0 {
		return
	}
	if i > len(t.bs)-1 {
		i = len(t.bs) - 1
	}
	copy(t.bs[i:], t.bs[i+1:])
	t.bs = t.bs[:len(t.bs)-1]
}
