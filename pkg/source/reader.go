package source

import "unicode/utf8"

// EOF is reported by a Reader once the cursor (or its lookahead) has moved
// past the last code point of the source text.
const EOF rune = -1

// Reader is the code-point cursor the lexer consumes. It exposes the code
// point at the current read position and one code point of lookahead, and
// advances only forward. Both values are re-derived after every Advance,
// including past end of input, where they become EOF.
type Reader interface {
	// Current returns the code point at the cursor, or EOF.
	Current() rune
	// Lookahead returns the code point one position ahead of the cursor, or EOF.
	Lookahead() rune
	// Advance moves the cursor forward by n positions (n >= 1).
	Advance(n int)
}

// StringReader is a Reader backed by an in-memory string.
type StringReader struct {
	src string
	off int // byte offset of the first code point not yet decoded
	cur rune
	la  rune
}

// NewStringReader creates a cursor over src, positioned at its first code point.
func NewStringReader(src string) *StringReader {
	r := &StringReader{src: src}
	r.cur = r.decode()
	r.la = r.decode()
	return r
}

func (r *StringReader) decode() rune {
	if r.off >= len(r.src) {
		return EOF
	}
	c, size := utf8.DecodeRuneInString(r.src[r.off:])
	r.off += size
	return c
}

func (r *StringReader) Current() rune   { return r.cur }
func (r *StringReader) Lookahead() rune { return r.la }

func (r *StringReader) Advance(n int) {
	for i := 0; i < n; i++ {
		r.cur = r.la
		r.la = r.decode()
	}
}
