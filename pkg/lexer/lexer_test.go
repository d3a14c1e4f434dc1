package lexer

import (
	"testing"
)

// tokenizeAll pulls tokens until EOF, failing the test on a lexical error.
func tokenizeAll(t *testing.T, input string) []Token {
	t.Helper()
	l := NewFromString(input)
	var toks []Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("input %q: unexpected error: %v", input, err)
		}
		toks = append(toks, tok)
		if tok.Type == EOF {
			return toks
		}
	}
}

func TestNextToken(t *testing.T) {
	input := `var five = 5;
const ten = 10.5;

function add(x, y) {
  return x + y;
}

if (5 <= 10) {
  x ??= y?.z ?? w;
} else {
  x >>>= 1;
}

new Foo() instanceof Foo;
typeof x !== "undefined";
[1, 2, ...rest];`

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
		expectedLine    int
	}{
		{VAR, "var", 1},
		{IDENT, "five", 1},
		{ASSIGN, "=", 1},
		{NUMBER, "5", 1},
		{SEMICOLON, ";", 1},
		{CONST, "const", 2},
		{IDENT, "ten", 2},
		{ASSIGN, "=", 2},
		{NUMBER, "10.5", 2},
		{SEMICOLON, ";", 2},
		{FUNCTION, "function", 4},
		{IDENT, "add", 4},
		{LPAREN, "(", 4},
		{IDENT, "x", 4},
		{COMMA, ",", 4},
		{IDENT, "y", 4},
		{RPAREN, ")", 4},
		{LBRACE, "{", 4},
		{RETURN, "return", 5},
		{IDENT, "x", 5},
		{PLUS, "+", 5},
		{IDENT, "y", 5},
		{SEMICOLON, ";", 5},
		{RBRACE, "}", 6},
		{IF, "if", 8},
		{LPAREN, "(", 8},
		{NUMBER, "5", 8},
		{LE, "<=", 8},
		{NUMBER, "10", 8},
		{RPAREN, ")", 8},
		{LBRACE, "{", 8},
		{IDENT, "x", 9},
		{COALESCE_ASSIGN, "??=", 9},
		{IDENT, "y", 9},
		{OPTIONAL_CHAIN, "?.", 9},
		{IDENT, "z", 9},
		{COALESCE, "??", 9},
		{IDENT, "w", 9},
		{SEMICOLON, ";", 9},
		{RBRACE, "}", 10},
		{ELSE, "else", 10},
		{LBRACE, "{", 10},
		{IDENT, "x", 11},
		{UNSIGNED_ASSIGN, ">>>=", 11},
		{NUMBER, "1", 11},
		{SEMICOLON, ";", 11},
		{RBRACE, "}", 12},
		{NEW, "new", 14},
		{IDENT, "Foo", 14},
		{LPAREN, "(", 14},
		{RPAREN, ")", 14},
		{INSTANCEOF, "instanceof", 14},
		{IDENT, "Foo", 14},
		{SEMICOLON, ";", 14},
		{TYPEOF, "typeof", 15},
		{IDENT, "x", 15},
		{STRICT_NOT_EQ, "!==", 15},
		{STRING, "undefined", 15},
		{SEMICOLON, ";", 15},
		{LBRACKET, "[", 16},
		{NUMBER, "1", 16},
		{COMMA, ",", 16},
		{NUMBER, "2", 16},
		{COMMA, ",", 16},
		{SPREAD, "...", 16},
		{IDENT, "rest", 16},
		{RBRACKET, "]", 16},
		{SEMICOLON, ";", 16},
		{EOF, "", 16},
	}

	l := NewFromString(input)
	for i, tt := range tests {
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("tests[%d] - unexpected error: %v", i, err)
		}
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q (literal %q)",
				i, tt.expectedType, tok.Type, tok.Literal)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
		if tok.Line != tt.expectedLine {
			t.Fatalf("tests[%d] - line wrong for %q. expected=%d, got=%d",
				i, tok.Literal, tt.expectedLine, tok.Line)
		}
	}
}

func TestIdentifierNames(t *testing.T) {
	input := `$ _ h $hello _world foobar 张三`
	want := []string{"$", "_", "h", "$hello", "_world", "foobar", "张三"}

	l := NewFromString(input)
	for i, w := range want {
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("token %d: unexpected error: %v", i, err)
		}
		if tok.Type != IDENT {
			t.Fatalf("token %d: expected IDENT, got %q", i, tok.Type)
		}
		if tok.Literal != w {
			t.Fatalf("token %d: expected literal %q, got %q", i, w, tok.Literal)
		}
	}
}

func TestIdentifierUnicodeEscapes(t *testing.T) {
	tests := []struct {
		input           string
		expectedType    TokenType
		expectedLiteral string
	}{
		{`\u0066or`, FOR, "for"}, // keyword match happens on decoded text
		{`ab\u{63}`, IDENT, "abc"},
		{`\u{4e}ode`, IDENT, "Node"},
		{`x\u0041`, IDENT, "xA"},
	}
	for _, tt := range tests {
		toks := tokenizeAll(t, tt.input)
		if toks[0].Type != tt.expectedType || toks[0].Literal != tt.expectedLiteral {
			t.Errorf("input %q: expected %s %q, got %s %q",
				tt.input, tt.expectedType, tt.expectedLiteral, toks[0].Type, toks[0].Literal)
		}
	}
}

func TestIdentifierEscapeMustBeIdentifierChar(t *testing.T) {
	// A Unicode escape only contributes a code point that would be legal
	// unescaped at the same position.
	inputs := []string{
		`a\u0020b`,  // space can never appear inside an identifier
		`a\u{2d}b`,  // '-' is not ID_Continue
		`\u0031ab`,  // a digit cannot start an identifier
		`#\u0020ab`, // same rule after the private-name sigil
	}
	for _, input := range inputs {
		lx := NewFromString(input)
		var err error
		for {
			var tok Token
			tok, err = lx.NextToken()
			if err != nil || tok.Type == EOF {
				break
			}
		}
		if err == nil {
			t.Errorf("input %q: expected identifier escape error, got none", input)
		}
	}
}

func TestKeywords(t *testing.T) {
	words := []string{
		"await", "break", "case", "catch", "class", "const", "continue",
		"debugger", "default", "delete", "do", "else", "enum", "export",
		"extends", "false", "finally", "for", "function", "if", "import", "in",
		"instanceof", "new", "null", "return", "super", "switch", "this",
		"throw", "true", "try", "typeof", "var", "void", "while", "with",
		"yield",
	}
	for _, w := range words {
		if tt := LookupIdent(w); tt == IDENT {
			t.Errorf("%q should resolve to a keyword token type", w)
		}
	}
	for _, w := range []string{"let", "async", "undefined", "Await", "FOR"} {
		if tt := LookupIdent(w); tt != IDENT {
			t.Errorf("%q should be a plain identifier, got %q", w, tt)
		}
	}
}

func TestSingleLineComments(t *testing.T) {
	toks := tokenizeAll(t, "// hi\n//// x")
	if toks[0].Type != COMMENT || toks[0].Literal != " hi" {
		t.Errorf("first comment: got %s %q", toks[0].Type, toks[0].Literal)
	}
	if toks[1].Type != COMMENT || toks[1].Literal != "// x" {
		t.Errorf("second comment: got %s %q", toks[1].Type, toks[1].Literal)
	}
	if toks[1].Line != 2 {
		t.Errorf("second comment line: got %d", toks[1].Line)
	}
}

func TestMultiLineComments(t *testing.T) {
	toks := tokenizeAll(t, "/**\n* hello\n* world\n*/")
	if toks[0].Type != COMMENT || toks[0].Literal != "*\n* hello\n* world\n" {
		t.Errorf("got %s %q", toks[0].Type, toks[0].Literal)
	}

	// A CR LF pair collapses into a single line break in the decoded text.
	toks = tokenizeAll(t, "/*a\r\nb*/ x")
	if toks[0].Literal != "a\nb" {
		t.Errorf("crlf comment: got %q", toks[0].Literal)
	}
	if toks[1].Line != 2 {
		t.Errorf("token after comment should be on line 2, got %d", toks[1].Line)
	}

	l := NewFromString("/* never closed")
	if _, err := l.NextToken(); err == nil {
		t.Error("unterminated multi-line comment should be an error")
	}
}

func TestHashbangComment(t *testing.T) {
	toks := tokenizeAll(t, "#! hashbang")
	if toks[0].Type != HASHBANG || toks[0].Literal != " hashbang" {
		t.Errorf("got %s %q", toks[0].Type, toks[0].Literal)
	}

	toks = tokenizeAll(t, "#!/usr/bin/env node\nx")
	if toks[0].Type != HASHBANG || toks[0].Literal != "/usr/bin/env node" {
		t.Errorf("got %s %q", toks[0].Type, toks[0].Literal)
	}
	if toks[1].Type != IDENT || toks[1].Line != 2 {
		t.Errorf("token after hashbang: got %s on line %d", toks[1].Type, toks[1].Line)
	}
}

func TestPrivateIdentifiers(t *testing.T) {
	toks := tokenizeAll(t, "this.#name")
	want := []struct {
		typ TokenType
		lit string
	}{
		{THIS, "this"},
		{DOT, "."},
		{PRIVATE_IDENT, "#name"},
	}
	for i, w := range want {
		if toks[i].Type != w.typ || toks[i].Literal != w.lit {
			t.Errorf("token %d: expected %s %q, got %s %q", i, w.typ, w.lit, toks[i].Type, toks[i].Literal)
		}
	}

	l := NewFromString("# x")
	if _, err := l.NextToken(); err == nil {
		t.Error("lone '#' should be an error")
	}
}

func TestEOFIdempotent(t *testing.T) {
	l := NewFromString("x")
	if tok, _ := l.NextToken(); tok.Type != IDENT {
		t.Fatalf("expected IDENT, got %s", tok.Type)
	}
	for i := 0; i < 3; i++ {
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("EOF call %d: unexpected error: %v", i, err)
		}
		if tok.Type != EOF {
			t.Fatalf("EOF call %d: got %s", i, tok.Type)
		}
	}
}

func TestLineAndColumnAccounting(t *testing.T) {
	toks := tokenizeAll(t, "a\r\nbb ccc\n\nd")
	want := []struct {
		lit       string
		line, col int
	}{
		{"a", 1, 0},
		{"bb", 2, 0},
		{"ccc", 2, 3},
		{"d", 4, 0},
	}
	for i, w := range want {
		if toks[i].Literal != w.lit || toks[i].Line != w.line || toks[i].Column != w.col {
			t.Errorf("token %d: expected %q at %d:%d, got %q at %d:%d",
				i, w.lit, w.line, w.col, toks[i].Literal, toks[i].Line, toks[i].Column)
		}
	}
}

func TestCurrentToken(t *testing.T) {
	l := NewFromString("a b")
	tok, _ := l.NextToken()
	if got := l.CurrentToken(); got != tok {
		t.Errorf("CurrentToken mismatch: %v vs %v", got, tok)
	}
}

func TestUnexpectedCharacter(t *testing.T) {
	l := NewFromString("  @")
	_, err := l.NextToken()
	if err == nil {
		t.Fatal("'@' should be an error")
	}
}

func TestDots(t *testing.T) {
	toks := tokenizeAll(t, "a.b ... ..")
	want := []TokenType{IDENT, DOT, IDENT, SPREAD, DOT, DOT, EOF}
	for i, w := range want {
		if toks[i].Type != w {
			t.Errorf("token %d: expected %q, got %q", i, w, toks[i].Type)
		}
	}
}
