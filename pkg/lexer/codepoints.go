package lexer

import "unicode"

// Named code points the scanner cares about.
const (
	cr     = '\r'     // CARRIAGE RETURN
	lf     = '\n'     // LINE FEED
	ls     = '\u2028' // LINE SEPARATOR
	ps     = '\u2029' // PARAGRAPH SEPARATOR
	zwnbsp = '\ufeff' // ZERO WIDTH NO-BREAK SPACE
)

// isWhitespace reports whether chr matches the WhiteSpace production:
// <TAB>, <VT>, <FF>, <ZWNBSP>, or any Unicode space separator.
func isWhitespace(chr rune) bool {
	switch chr {
	case '\t', '\v', '\f', zwnbsp:
		return true
	}
	return unicode.IsSpace(chr)
}

// isLineTerminator reports whether chr matches the LineTerminator production:
// <LF>, <CR>, <LS>, <PS>.
func isLineTerminator(chr rune) bool {
	switch chr {
	case lf, cr, ls, ps:
		return true
	}
	return false
}

// isSourceCharacter reports whether chr is a valid SourceCharacter, i.e. any
// Unicode code point in 0x0000..0x10ffff.
func isSourceCharacter(chr rune) bool {
	return chr >= 0 && chr <= unicode.MaxRune
}

// idStartTable approximates Unicode ID_Start: ASCII letters, the common
// accented-letter and symbol ranges, the CJK block, and halfwidth/fullwidth
// forms. ZWNJ/ZWJ live here too, as in the grammar's identifier rules.
var idStartTable = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x0041, 0x005a, 1},
		{0x0061, 0x007a, 1},
		{0x00aa, 0x00aa, 1},
		{0x00b5, 0x00b5, 1},
		{0x00ba, 0x00ba, 1},
		{0x00c0, 0x00d6, 1},
		{0x00d8, 0x00f6, 1},
		{0x00f8, 0x02ff, 1},
		{0x0370, 0x037d, 1},
		{0x037f, 0x1fff, 1},
		{0x200c, 0x200d, 1},
		{0x2070, 0x218f, 1},
		{0x2c00, 0x2fef, 1},
		{0x3001, 0xd7ff, 1},
		{0xf900, 0xfdff, 1},
		{0xfe70, 0xfefe, 1},
		{0xff10, 0xff19, 1},
		{0xff21, 0xff3a, 1},
		{0xff41, 0xff5a, 1},
		{0xff65, 0xffdc, 1},
	},
	LatinOffset: 7,
}

// idContinueTable is idStartTable plus digits, underscore, combining marks,
// and the undertie pair.
var idContinueTable = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x0030, 0x0039, 1},
		{0x0041, 0x005a, 1},
		{0x005f, 0x005f, 1},
		{0x0061, 0x007a, 1},
		{0x00aa, 0x00aa, 1},
		{0x00b5, 0x00b5, 1},
		{0x00ba, 0x00ba, 1},
		{0x00c0, 0x00d6, 1},
		{0x00d8, 0x00f6, 1},
		{0x00f8, 0x02ff, 1},
		{0x0300, 0x037d, 1},
		{0x037f, 0x1fff, 1},
		{0x200c, 0x200d, 1},
		{0x203f, 0x2040, 1},
		{0x2070, 0x218f, 1},
		{0x2c00, 0x2fef, 1},
		{0x3001, 0xd7ff, 1},
		{0xf900, 0xfdff, 1},
		{0xfe70, 0xfefe, 1},
		{0xff10, 0xff19, 1},
		{0xff21, 0xff3a, 1},
		{0xff41, 0xff5a, 1},
		{0xff65, 0xffdc, 1},
	},
	LatinOffset: 9,
}

// isIDStart reports whether chr may start an IdentifierName. $ and _ are
// accepted by the scanner separately; they are lexical special cases, not
// Unicode properties.
func isIDStart(chr rune) bool {
	return unicode.Is(idStartTable, chr)
}

// isIDContinue reports whether chr may continue an IdentifierName.
func isIDContinue(chr rune) bool {
	return unicode.Is(idContinueTable, chr)
}

// isIdentAllowed reports whether chr is acceptable at any position of an
// identifier once scanning one, including the $ and _ special cases.
func isIdentAllowed(chr rune) bool {
	return chr == '$' || chr == '_' || isIDStart(chr) || isIDContinue(chr)
}

func isDecimalDigit(chr rune) bool {
	return '0' <= chr && chr <= '9'
}

func isOctalDigit(chr rune) bool {
	return '0' <= chr && chr <= '7'
}

func isHexDigit(chr rune) bool {
	return ('0' <= chr && chr <= '9') || ('a' <= chr && chr <= 'f') || ('A' <= chr && chr <= 'F')
}

func isBinaryDigit(chr rune) bool {
	return chr == '0' || chr == '1'
}

// isRadixDigit checks if the character is a valid digit for the given radix.
func isRadixDigit(chr rune, radix int) bool {
	switch radix {
	case 16:
		return isHexDigit(chr)
	case 10:
		return isDecimalDigit(chr)
	case 8:
		return isOctalDigit(chr)
	case 2:
		return isBinaryDigit(chr)
	default:
		return false
	}
}

// hexDigitValue returns the numeric value of a hex digit, or false.
func hexDigitValue(chr rune) (int, bool) {
	switch {
	case '0' <= chr && chr <= '9':
		return int(chr - '0'), true
	case 'a' <= chr && chr <= 'f':
		return int(chr-'a') + 10, true
	case 'A' <= chr && chr <= 'F':
		return int(chr-'A') + 10, true
	}
	return 0, false
}
