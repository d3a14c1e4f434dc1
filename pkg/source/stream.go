package source

import (
	"bufio"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// StreamReader is a Reader backed by a streaming decoder. Input is decoded as
// UTF-8 unless a UTF-8/UTF-16 byte order mark says otherwise; script files on
// the web are routinely saved either way. The cursor only ever moves forward,
// which is all the lexer requires.
type StreamReader struct {
	br  *bufio.Reader
	cur rune
	la  rune
	err error
}

// NewStreamReader creates a cursor over r, positioned at its first code point.
func NewStreamReader(r io.Reader) *StreamReader {
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	sr := &StreamReader{br: bufio.NewReader(decoded)}
	sr.cur = sr.decode()
	sr.la = sr.decode()
	return sr
}

func (r *StreamReader) decode() rune {
	if r.err != nil {
		return EOF
	}
	c, _, err := r.br.ReadRune()
	if err != nil {
		if err != io.EOF {
			r.err = err
		}
		return EOF
	}
	return c
}

func (r *StreamReader) Current() rune   { return r.cur }
func (r *StreamReader) Lookahead() rune { return r.la }

func (r *StreamReader) Advance(n int) {
	for i := 0; i < n; i++ {
		r.cur = r.la
		r.la = r.decode()
	}
}

// Err reports the first read error other than end of input, if any. Once a
// read fails the cursor behaves as if the source had ended.
func (r *StreamReader) Err() error { return r.err }
