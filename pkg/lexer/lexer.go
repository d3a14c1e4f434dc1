package lexer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"jay/pkg/errors"
	"jay/pkg/source"
)

// Lexer turns a stream of code points into ECMAScript tokens. It owns a
// source cursor, line/column counters, a reusable token-text accumulator, and
// the template-substitution nesting stack. One Lexer serves one source unit
// and one goroutine; calls must be serialized by the caller.
type Lexer struct {
	reader source.Reader

	line int // current 1-based line number
	col  int // 0-based code-point offset within the current line

	startLine int // position where the token being scanned starts
	startCol  int

	buf strings.Builder // token-text accumulator, cleared per token

	// templateDepth holds one counter per template literal whose substitution
	// is currently being scanned. The top counter tracks unmatched '{' inside
	// that substitution, so '}' can be classified as either a block close or
	// the end of the substitution.
	templateDepth []int

	// prev is the type of the last significant (non-trivia) token, for the
	// regex-vs-division lookback rule.
	prev TokenType

	token Token // last produced token
}

// New creates a Lexer reading from r.
func New(r source.Reader) *Lexer {
	return &Lexer{
		reader: r,
		line:   1,
		token:  Token{Type: EOF, Line: 1},
	}
}

// NewFromString creates a Lexer over an in-memory source string.
func NewFromString(src string) *Lexer {
	return New(source.NewStringReader(src))
}

// CurrentToken returns the last token produced by NextToken.
func (l *Lexer) CurrentToken() Token { return l.token }

// NextToken scans the input and returns the next token. Once end of input is
// reached the EOF token is returned on every subsequent call. A returned
// error is always a *errors.SyntaxError carrying the source position; lexical
// errors are fatal to the current token, no resynchronization is attempted.
func (l *Lexer) NextToken() (Token, error) {
	tok, err := l.scan()
	if err != nil {
		return Token{}, err
	}
	l.token = tok
	switch tok.Type {
	case COMMENT, HASHBANG:
		// Trivia never changes the regex/division context.
	default:
		l.prev = tok.Type
	}
	return tok, nil
}

func (l *Lexer) cur() rune  { return l.reader.Current() }
func (l *Lexer) peek() rune { return l.reader.Lookahead() }

// advance moves the cursor n code points forward within the current line.
func (l *Lexer) advance(n int) {
	l.reader.Advance(n)
	l.col += n
}

// newline consumes one LineTerminatorSequence, collapsing <CR><LF> into a
// single line break.
func (l *Lexer) newline() {
	c := l.cur()
	l.reader.Advance(1)
	l.line++
	l.col = 0
	if c == cr && l.cur() == lf {
		l.reader.Advance(1)
	}
}

func (l *Lexer) errorf(format string, args ...interface{}) *errors.SyntaxError {
	return &errors.SyntaxError{
		Position: errors.Position{Line: l.line, Column: l.col},
		Msg:      fmt.Sprintf(format, args...),
	}
}

func (l *Lexer) make(t TokenType, literal string) Token {
	return Token{Type: t, Literal: literal, Line: l.startLine, Column: l.startCol}
}

// scan clears the accumulator, skips whitespace and line terminators, and
// dispatches on the code point at the cursor.
func (l *Lexer) scan() (Token, error) {
	l.buf.Reset()

	for {
		c := l.cur()
		l.startLine, l.startCol = l.line, l.col

		switch {
		case c == source.EOF:
			if len(l.templateDepth) > 0 {
				return Token{}, l.errorf("unterminated template literal")
			}
			return l.make(EOF, ""), nil
		case isLineTerminator(c):
			l.newline()
		case isWhitespace(c):
			l.advance(1)
		case !isSourceCharacter(c):
			return Token{}, l.errorf("invalid source character")
		default:
			return l.dispatch(c)
		}
	}
}

func (l *Lexer) dispatch(c rune) (Token, error) {
	switch {
	case c == '#':
		return l.scanHash()
	case c == '/':
		return l.scanSlash()
	case c == '"' || c == '\'':
		return l.scanString(c)
	case c == '`':
		return l.scanTemplate(true)
	case c == '{':
		if n := len(l.templateDepth); n > 0 {
			l.templateDepth[n-1]++
		}
		l.advance(1)
		return l.make(LBRACE, "{"), nil
	case c == '}':
		if n := len(l.templateDepth); n > 0 {
			if l.templateDepth[n-1] == 0 {
				// The '}' closes the current template substitution: pop and
				// resume scanning the template's string portion.
				l.templateDepth = l.templateDepth[:n-1]
				l.advance(1)
				return l.scanTemplate(false)
			}
			l.templateDepth[n-1]--
		}
		l.advance(1)
		return l.make(RBRACE, "}"), nil
	case c == '.':
		if isDecimalDigit(l.peek()) {
			return l.scanNumber()
		}
		return l.scanDot()
	case isDecimalDigit(c):
		return l.scanNumber()
	case c == '$' || c == '_' || isIDStart(c):
		return l.scanIdentifier(IDENT)
	case c == '\\' && l.peek() == 'u':
		return l.scanIdentifier(IDENT)
	default:
		return l.scanOperator(c)
	}
}

// --- Comments and hashbang ---

// scanHash handles '#!': hashbang comments and private identifiers. Whether a
// hashbang is legal at this position (it is only meaningful at the very start
// of a source unit) is the caller's concern.
func (l *Lexer) scanHash() (Token, error) {
	p := l.peek()
	switch {
	case p == '!':
		l.advance(2)
		return l.scanLineCommentText(HASHBANG)
	case p == '$' || p == '_' || isIDStart(p) || (p == '\\'):
		l.buf.WriteByte('#')
		l.advance(1)
		return l.scanIdentifier(PRIVATE_IDENT)
	}
	return Token{}, l.errorf("unexpected character '#'")
}

// scanLineCommentText consumes to (but not including) the next line
// terminator or end of input. The token text is the raw interior: for
// "//// x" that is "// x".
func (l *Lexer) scanLineCommentText(t TokenType) (Token, error) {
	for {
		c := l.cur()
		if c == source.EOF || isLineTerminator(c) {
			return l.make(t, l.buf.String()), nil
		}
		l.buf.WriteRune(c)
		l.advance(1)
	}
}

// scanSlash disambiguates comments, regex literals, and division.
func (l *Lexer) scanSlash() (Token, error) {
	switch l.peek() {
	case '/':
		l.advance(2)
		return l.scanLineCommentText(COMMENT)
	case '*':
		return l.scanBlockComment()
	}
	if l.regexAllowed() {
		return l.scanRegExp()
	}
	if l.peek() == '=' {
		l.advance(2)
		return l.make(SLASH_ASSIGN, "/="), nil
	}
	l.advance(1)
	return l.make(SLASH, "/"), nil
}

// regexAllowed implements the one-token lookback rule: a '/' starts a regular
// expression unless the previous significant token produced a value or closed
// a grouping.
func (l *Lexer) regexAllowed() bool {
	switch l.prev {
	case NUMBER, STRING, IDENT, RPAREN, RBRACKET:
		return false
	}
	return !IsKeyword(l.prev)
}

// scanBlockComment consumes to '*/', collapsing every embedded line
// terminator sequence into a single '\n' in the decoded text.
func (l *Lexer) scanBlockComment() (Token, error) {
	l.advance(2) // consume '/*'
	for {
		c := l.cur()
		switch {
		case c == source.EOF:
			return Token{}, l.errorf("unterminated multi-line comment")
		case c == '*' && l.peek() == '/':
			l.advance(2)
			return l.make(COMMENT, l.buf.String()), nil
		case isLineTerminator(c):
			l.newline()
			l.buf.WriteByte('\n')
		default:
			l.buf.WriteRune(c)
			l.advance(1)
		}
	}
}

// --- Identifiers ---

// scanIdentifier consumes identifier characters and Unicode escapes. The
// accumulated (decoded) text is matched against the keyword table unless the
// token is a private identifier.
func (l *Lexer) scanIdentifier(kind TokenType) (Token, error) {
	for {
		c := l.cur()
		switch {
		case isIdentAllowed(c):
			l.buf.WriteRune(c)
			l.advance(1)
		case c == '\\':
			if l.peek() != 'u' {
				return Token{}, l.errorf("invalid escape in identifier")
			}
			first := l.buf.Len() == 0 || (kind == PRIVATE_IDENT && l.buf.Len() == 1)
			l.advance(2)
			chr, err := l.scanUnicodeEscape()
			if err != nil {
				return Token{}, err
			}
			// The decoded code point must itself be legal at this position;
			// `a\u0020b` does not smuggle a space into an identifier.
			if first {
				if chr != '$' && chr != '_' && !isIDStart(chr) {
					return Token{}, l.errorf("invalid identifier start %q from Unicode escape", chr)
				}
			} else if !isIdentAllowed(chr) {
				return Token{}, l.errorf("invalid identifier character %q from Unicode escape", chr)
			}
			l.buf.WriteRune(chr)
		default:
			text := l.buf.String()
			if kind == PRIVATE_IDENT {
				return l.make(PRIVATE_IDENT, text), nil
			}
			return l.make(LookupIdent(text), text), nil
		}
	}
}

// scanUnicodeEscape decodes the part of a Unicode escape after "\u": either
// exactly 4 hex digits, or "{" HexDigits "}" where digits may be separated by
// single underscores. The cursor is expected to sit on the first character
// after the "u".
func (l *Lexer) scanUnicodeEscape() (rune, *errors.SyntaxError) {
	if l.cur() != '{' {
		var v rune
		for i := 0; i < 4; i++ {
			d, ok := hexDigitValue(l.cur())
			if !ok {
				return 0, l.errorf("invalid Unicode escape sequence")
			}
			v = v*16 + rune(d)
			l.advance(1)
		}
		if !utf8.ValidRune(v) {
			return 0, l.errorf("Unicode escape is not a valid scalar value")
		}
		return v, nil
	}

	l.advance(1) // consume '{'
	var v rune
	digits := 0
	sep := false
	for {
		c := l.cur()
		if c == '_' {
			if digits == 0 || sep {
				return 0, l.errorf("misplaced separator in Unicode escape")
			}
			sep = true
			l.advance(1)
			continue
		}
		d, ok := hexDigitValue(c)
		if !ok {
			break
		}
		v = v*16 + rune(d)
		if v > utf8.MaxRune {
			return 0, l.errorf("Unicode escape out of range")
		}
		digits++
		sep = false
		l.advance(1)
	}
	if digits == 0 {
		return 0, l.errorf("expected hex digits in Unicode escape")
	}
	if sep {
		return 0, l.errorf("misplaced separator in Unicode escape")
	}
	if l.cur() != '}' {
		return 0, l.errorf("unterminated Unicode escape")
	}
	l.advance(1)
	if !utf8.ValidRune(v) {
		return 0, l.errorf("Unicode escape is not a valid scalar value")
	}
	return v, nil
}

// --- Numbers ---

// scanDigitRun consumes digits of the given radix, permitting single '_'
// separators between digits of the run. It reports how many digits were
// consumed and whether a non-octal decimal digit (8 or 9) appeared.
func (l *Lexer) scanDigitRun(radix int) (int, bool, *errors.SyntaxError) {
	n := 0
	nonOctal := false
	for {
		c := l.cur()
		if c == '_' {
			if n == 0 {
				return n, nonOctal, l.errorf("numeric separator must follow a digit")
			}
			if !isRadixDigit(l.peek(), radix) {
				return n, nonOctal, l.errorf("numeric separator must be followed by a digit")
			}
			l.buf.WriteByte('_')
			l.advance(1)
			continue
		}
		if !isRadixDigit(c, radix) {
			return n, nonOctal, nil
		}
		if c == '8' || c == '9' {
			nonOctal = true
		}
		l.buf.WriteRune(c)
		l.advance(1)
		n++
	}
}

// scanExponent consumes 'e'/'E', an optional sign, and the exponent digits.
func (l *Lexer) scanExponent() *errors.SyntaxError {
	l.buf.WriteRune(l.cur())
	l.advance(1)
	if c := l.cur(); c == '+' || c == '-' {
		l.buf.WriteRune(c)
		l.advance(1)
	}
	n, _, err := l.scanDigitRun(10)
	if err != nil {
		return err
	}
	if n == 0 {
		return l.errorf("missing digits in exponent")
	}
	return nil
}

// finishNumber rejects a literal that runs straight into a digit or
// identifier character, which covers out-of-radix digits ("0b102") and stray
// suffixes ("123abc") in one check.
func (l *Lexer) finishNumber() (Token, error) {
	c := l.cur()
	if isDecimalDigit(c) || c == '$' || c == '_' || c == '\\' || isIDStart(c) {
		return Token{}, l.errorf("unexpected character after numeric literal")
	}
	return l.make(NUMBER, l.buf.String()), nil
}

func (l *Lexer) scanRadixNumber(radix int) (Token, error) {
	l.buf.WriteRune(l.cur())
	l.buf.WriteRune(l.peek())
	l.advance(2)
	n, _, err := l.scanDigitRun(radix)
	if err != nil {
		return Token{}, err
	}
	if n == 0 {
		return Token{}, l.errorf("missing digits after radix prefix")
	}
	if l.cur() == 'n' {
		l.buf.WriteByte('n')
		l.advance(1)
	}
	return l.finishNumber()
}

// scanNumber implements the numeric literal state machine: decimal
// integer/float with optional fraction and exponent, legacy octal with the
// 8/9-digit decimal fallback, 0b/0o/0x radix prefixes, numeric separators,
// and the BigInt suffix. The raw matched text is the token payload.
func (l *Lexer) scanNumber() (Token, error) {
	c := l.cur()

	if c == '.' {
		l.buf.WriteByte('.')
		l.advance(1)
		if _, _, err := l.scanDigitRun(10); err != nil {
			return Token{}, err
		}
		if c := l.cur(); c == 'e' || c == 'E' {
			if err := l.scanExponent(); err != nil {
				return Token{}, err
			}
		}
		if l.cur() == 'n' {
			return Token{}, l.errorf("BigInt suffix on non-integer literal")
		}
		return l.finishNumber()
	}

	if c == '0' {
		switch l.peek() {
		case 'b', 'B':
			return l.scanRadixNumber(2)
		case 'o', 'O':
			return l.scanRadixNumber(8)
		case 'x', 'X':
			return l.scanRadixNumber(16)
		}
	}

	// A leading 0 followed by digits is a legacy octal literal, unless an 8
	// or 9 digit (or a fraction/exponent) flips it back to decimal. The
	// decimal fallback keeps its leading-zero taint: "09" is a number, "09n"
	// is not.
	leadingZero := c == '0' && isDecimalDigit(l.peek())
	legacyOctal := leadingZero

	_, nonOctal, err := l.scanDigitRun(10)
	if err != nil {
		return Token{}, err
	}
	if nonOctal {
		legacyOctal = false
	}

	integer := true
	if next := l.cur(); next == '.' || next == 'e' || next == 'E' {
		legacyOctal = false
	}
	if !legacyOctal && l.cur() == '.' {
		integer = false
		l.buf.WriteByte('.')
		l.advance(1)
		if _, _, err := l.scanDigitRun(10); err != nil {
			return Token{}, err
		}
	}
	if c := l.cur(); !legacyOctal && (c == 'e' || c == 'E') {
		integer = false
		if err := l.scanExponent(); err != nil {
			return Token{}, err
		}
	}

	if l.cur() == 'n' {
		if !integer {
			return Token{}, l.errorf("BigInt suffix on non-integer literal")
		}
		if leadingZero {
			return Token{}, l.errorf("BigInt suffix on leading-zero literal")
		}
		l.buf.WriteByte('n')
		l.advance(1)
	}
	return l.finishNumber()
}

// --- Strings and templates ---

// scanString consumes a string literal; the opening quote fixes which
// character closes it. The token payload is the fully escape-decoded text.
func (l *Lexer) scanString(quote rune) (Token, error) {
	l.advance(1) // consume the opening quote
	for {
		c := l.cur()
		switch {
		case c == quote:
			l.advance(1)
			return l.make(STRING, l.buf.String()), nil
		case c == source.EOF, c == lf, c == cr:
			return Token{}, l.errorf("unterminated string literal")
		case c == ls || c == ps:
			// <LS> and <PS> are stored verbatim but still count as a line
			// break for position tracking.
			l.buf.WriteRune(c)
			l.newline()
		case c == '\\':
			if err := l.scanEscape(); err != nil {
				return Token{}, err
			}
		default:
			l.buf.WriteRune(c)
			l.advance(1)
		}
	}
}

// scanEscape decodes one backslash escape into the accumulator. The cursor
// sits on the backslash. Shared between strings and templates.
func (l *Lexer) scanEscape() *errors.SyntaxError {
	l.advance(1) // consume the backslash
	c := l.cur()
	switch {
	case c == source.EOF:
		return l.errorf("unterminated string literal")
	case c == lf || c == cr:
		// Line continuation: consumed, produces no character.
		l.newline()
		return nil
	case c == ls || c == ps:
		l.buf.WriteRune(c)
		l.newline()
		return nil
	}

	switch c {
	case 'b':
		l.buf.WriteByte('\b')
	case 'f':
		l.buf.WriteByte('\f')
	case 'n':
		l.buf.WriteByte('\n')
	case 'r':
		l.buf.WriteByte('\r')
	case 't':
		l.buf.WriteByte('\t')
	case 'v':
		l.buf.WriteByte('\v')
	case 'x':
		l.advance(1)
		v := 0
		for i := 0; i < 2; i++ {
			d, ok := hexDigitValue(l.cur())
			if !ok {
				return l.errorf("invalid hexadecimal escape sequence")
			}
			v = v*16 + d
			l.advance(1)
		}
		l.buf.WriteRune(rune(v))
		return nil
	case 'u':
		l.advance(1)
		chr, err := l.scanUnicodeEscape()
		if err != nil {
			return err
		}
		l.buf.WriteRune(chr)
		return nil
	case '0', '1', '2', '3', '4', '5', '6', '7':
		return l.scanOctalEscape(c)
	default:
		// Covers \' \" \\ \` and every NonEscapeCharacter (\z is 'z').
		l.buf.WriteRune(c)
	}
	l.advance(1)
	return nil
}

// scanOctalEscape decodes a legacy octal escape. Digit count follows the
// grammar: a lone 0 (including before 8/9) is NUL; 0-3 may take up to two
// more octal digits; 4-7 at most one more.
func (l *Lexer) scanOctalEscape(first rune) *errors.SyntaxError {
	v := int(first - '0')
	l.advance(1)
	if first == '0' && !isOctalDigit(l.cur()) {
		l.buf.WriteByte(0)
		return nil
	}
	if isOctalDigit(l.cur()) {
		v = v*8 + int(l.cur()-'0')
		l.advance(1)
		if first <= '3' && isOctalDigit(l.cur()) {
			v = v*8 + int(l.cur()-'0')
			l.advance(1)
		}
	}
	l.buf.WriteRune(rune(v))
	return nil
}

// scanTemplate consumes the string portion of a template literal, either from
// the opening backtick (head == true) or re-entered after a substitution
// closed. It emits TEMPLATE or TEMPLATE_HEAD for the head and TEMPLATE_TAIL
// or TEMPLATE_MIDDLE otherwise, depending on whether another substitution
// begins.
func (l *Lexer) scanTemplate(head bool) (Token, error) {
	if head {
		l.advance(1) // consume the opening backtick
	}
	for {
		c := l.cur()
		switch {
		case c == source.EOF:
			return Token{}, l.errorf("unterminated template literal")
		case c == '`':
			l.advance(1)
			if head {
				return l.make(TEMPLATE, l.buf.String()), nil
			}
			return l.make(TEMPLATE_TAIL, l.buf.String()), nil
		case c == '$' && l.peek() == '{':
			l.advance(2)
			l.templateDepth = append(l.templateDepth, 0)
			if head {
				return l.make(TEMPLATE_HEAD, l.buf.String()), nil
			}
			return l.make(TEMPLATE_MIDDLE, l.buf.String()), nil
		case c == lf || c == cr:
			// Raw terminators are legal inside templates; <CR> and <CR><LF>
			// normalize to a single LF.
			l.buf.WriteByte('\n')
			l.newline()
		case c == ls || c == ps:
			l.buf.WriteRune(c)
			l.newline()
		case c == '\\':
			if err := l.scanEscape(); err != nil {
				return Token{}, err
			}
		default:
			l.buf.WriteRune(c)
			l.advance(1)
		}
	}
}

// --- Regular expressions ---

// scanRegExp consumes a regular expression literal up to the unescaped,
// unbracketed closing '/', then the trailing flag characters. The payload is
// the raw body with escapes preserved verbatim; regex engines need the
// original escape text.
func (l *Lexer) scanRegExp() (Token, error) {
	l.advance(1) // consume the opening '/'
	classDepth := 0
	for {
		c := l.cur()
		switch {
		case c == source.EOF || isLineTerminator(c):
			return Token{}, l.errorf("unterminated regular expression literal")
		case c == '\\':
			n := l.peek()
			if n == source.EOF || isLineTerminator(n) {
				return Token{}, l.errorf("unterminated regular expression literal")
			}
			l.buf.WriteRune(c)
			l.buf.WriteRune(n)
			l.advance(2)
		case c == '[':
			classDepth++
			l.buf.WriteRune(c)
			l.advance(1)
		case c == ']':
			if classDepth == 0 {
				return Token{}, l.errorf("unmatched ']' in regular expression")
			}
			classDepth--
			l.buf.WriteRune(c)
			l.advance(1)
		case c == '/' && classDepth == 0:
			l.advance(1)
			var flags strings.Builder
			for isIdentAllowed(l.cur()) {
				flags.WriteRune(l.cur())
				l.advance(1)
			}
			tok := l.make(REGEXP, l.buf.String())
			tok.Flags = flags.String()
			return tok, nil
		default:
			l.buf.WriteRune(c)
			l.advance(1)
		}
	}
}

// --- Operators ---

func (l *Lexer) scanDot() (Token, error) {
	if l.peek() != '.' {
		l.advance(1)
		return l.make(DOT, "."), nil
	}
	l.advance(1)
	if l.peek() == '.' {
		l.advance(2)
		return l.make(SPREAD, "..."), nil
	}
	// A lone '..' has no reading; emit the first dot, the second is rescanned.
	return l.make(DOT, "."), nil
}

// scanOperator performs the longest-match operator scan. Every decision needs
// at most the current code point and one of lookahead, so multi-step
// operators like '>>>=' are matched by advancing through their prefixes.
func (l *Lexer) scanOperator(c rune) (Token, error) {
	switch c {
	case '=':
		if l.peek() == '=' {
			l.advance(1)
			if l.peek() == '=' {
				l.advance(2)
				return l.make(STRICT_EQ, "==="), nil
			}
			l.advance(1)
			return l.make(EQ, "=="), nil
		}
		if l.peek() == '>' {
			l.advance(2)
			return l.make(ARROW, "=>"), nil
		}
		l.advance(1)
		return l.make(ASSIGN, "="), nil
	case '!':
		if l.peek() == '=' {
			l.advance(1)
			if l.peek() == '=' {
				l.advance(2)
				return l.make(STRICT_NOT_EQ, "!=="), nil
			}
			l.advance(1)
			return l.make(NOT_EQ, "!="), nil
		}
		l.advance(1)
		return l.make(BANG, "!"), nil
	case '<':
		if l.peek() == '=' {
			l.advance(2)
			return l.make(LE, "<="), nil
		}
		if l.peek() == '<' {
			l.advance(1)
			if l.peek() == '=' {
				l.advance(2)
				return l.make(SHIFT_LEFT_ASSIGN, "<<="), nil
			}
			l.advance(1)
			return l.make(SHIFT_LEFT, "<<"), nil
		}
		l.advance(1)
		return l.make(LT, "<"), nil
	case '>':
		if l.peek() == '=' {
			l.advance(2)
			return l.make(GE, ">="), nil
		}
		if l.peek() == '>' {
			l.advance(1)
			if l.peek() == '=' {
				l.advance(2)
				return l.make(SHIFT_RIGHT_ASSIGN, ">>="), nil
			}
			if l.peek() == '>' {
				l.advance(1)
				if l.peek() == '=' {
					l.advance(2)
					return l.make(UNSIGNED_ASSIGN, ">>>="), nil
				}
				l.advance(1)
				return l.make(UNSIGNED_SHIFT, ">>>"), nil
			}
			l.advance(1)
			return l.make(SHIFT_RIGHT, ">>"), nil
		}
		l.advance(1)
		return l.make(GT, ">"), nil
	case '+':
		if l.peek() == '+' {
			l.advance(2)
			return l.make(INC, "++"), nil
		}
		if l.peek() == '=' {
			l.advance(2)
			return l.make(PLUS_ASSIGN, "+="), nil
		}
		l.advance(1)
		return l.make(PLUS, "+"), nil
	case '-':
		if l.peek() == '-' {
			l.advance(2)
			return l.make(DEC, "--"), nil
		}
		if l.peek() == '=' {
			l.advance(2)
			return l.make(MINUS_ASSIGN, "-="), nil
		}
		l.advance(1)
		return l.make(MINUS, "-"), nil
	case '*':
		if l.peek() == '*' {
			l.advance(1)
			if l.peek() == '=' {
				l.advance(2)
				return l.make(EXPONENT_ASSIGN, "**="), nil
			}
			l.advance(1)
			return l.make(EXPONENT, "**"), nil
		}
		if l.peek() == '=' {
			l.advance(2)
			return l.make(ASTERISK_ASSIGN, "*="), nil
		}
		l.advance(1)
		return l.make(ASTERISK, "*"), nil
	case '%':
		if l.peek() == '=' {
			l.advance(2)
			return l.make(PERCENT_ASSIGN, "%="), nil
		}
		l.advance(1)
		return l.make(PERCENT, "%"), nil
	case '&':
		if l.peek() == '&' {
			l.advance(1)
			if l.peek() == '=' {
				l.advance(2)
				return l.make(LOGICAL_AND_ASSIGN, "&&="), nil
			}
			l.advance(1)
			return l.make(LOGICAL_AND, "&&"), nil
		}
		if l.peek() == '=' {
			l.advance(2)
			return l.make(AMP_ASSIGN, "&="), nil
		}
		l.advance(1)
		return l.make(AMP, "&"), nil
	case '|':
		if l.peek() == '|' {
			l.advance(1)
			if l.peek() == '=' {
				l.advance(2)
				return l.make(LOGICAL_OR_ASSIGN, "||="), nil
			}
			l.advance(1)
			return l.make(LOGICAL_OR, "||"), nil
		}
		if l.peek() == '=' {
			l.advance(2)
			return l.make(PIPE_ASSIGN, "|="), nil
		}
		l.advance(1)
		return l.make(PIPE, "|"), nil
	case '^':
		if l.peek() == '=' {
			l.advance(2)
			return l.make(CARET_ASSIGN, "^="), nil
		}
		l.advance(1)
		return l.make(CARET, "^"), nil
	case '?':
		if l.peek() == '?' {
			l.advance(1)
			if l.peek() == '=' {
				l.advance(2)
				return l.make(COALESCE_ASSIGN, "??="), nil
			}
			l.advance(1)
			return l.make(COALESCE, "??"), nil
		}
		if l.peek() == '.' {
			l.advance(1)
			if isDecimalDigit(l.peek()) {
				// "?.3" is a conditional followed by a number, not optional
				// chaining; the dot is left for the number scanner.
				return l.make(QUESTION, "?"), nil
			}
			l.advance(1)
			return l.make(OPTIONAL_CHAIN, "?."), nil
		}
		l.advance(1)
		return l.make(QUESTION, "?"), nil
	case '~', ',', ';', ':', '(', ')', '[', ']':
		l.advance(1)
		return l.make(TokenType(string(c)), string(c)), nil
	}
	return Token{}, l.errorf("unexpected character %q", c)
}
