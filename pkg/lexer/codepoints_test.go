package lexer

import "testing"

func TestIsWhitespace(t *testing.T) {
	for _, chr := range []rune{' ', '\t', '\v', '\f', '\u00a0', '\ufeff', '\u3000'} {
		if !isWhitespace(chr) {
			t.Errorf("%U should be whitespace", chr)
		}
	}
	for _, chr := range []rune{'a', '0', '_', '/'} {
		if isWhitespace(chr) {
			t.Errorf("%U should not be whitespace", chr)
		}
	}
}

func TestIsLineTerminator(t *testing.T) {
	for _, chr := range []rune{'\n', '\r', '\u2028', '\u2029'} {
		if !isLineTerminator(chr) {
			t.Errorf("%U should be a line terminator", chr)
		}
	}
	for _, chr := range []rune{' ', '\t', '\v', 'x'} {
		if isLineTerminator(chr) {
			t.Errorf("%U should not be a line terminator", chr)
		}
	}
}

func TestIsSourceCharacter(t *testing.T) {
	if !isSourceCharacter(0) || !isSourceCharacter('a') || !isSourceCharacter(0x10ffff) {
		t.Error("valid scalar values should be source characters")
	}
	if isSourceCharacter(-1) || isSourceCharacter(0x110000) {
		t.Error("out-of-range values should not be source characters")
	}
}

func TestIdentifierTables(t *testing.T) {
	starts := []rune{'a', 'z', 'A', 'Z', 'é', 'µ', '张', 'あ', 'Ａ'}
	for _, chr := range starts {
		if !isIDStart(chr) {
			t.Errorf("%U should be an identifier start", chr)
		}
	}
	// $ and _ are lexical special cases, not classifier membership.
	for _, chr := range []rune{'1', '$', ' ', '!'} {
		if isIDStart(chr) {
			t.Errorf("%U should not be an identifier start", chr)
		}
	}

	continues := []rune{'0', '9', '_', 'a', '张', '́', '‌', '‍'}
	for _, chr := range continues {
		if !isIDContinue(chr) {
			t.Errorf("%U should be an identifier continue", chr)
		}
	}
	for _, chr := range []rune{'$', ' ', '#', '-'} {
		if isIDContinue(chr) {
			t.Errorf("%U should not be an identifier continue", chr)
		}
	}
}
