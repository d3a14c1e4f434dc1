package lexer

// TokenType represents the type of a token. For punctuators the value is the
// operator text itself, so the parser can match low-frequency punctuators
// without a dedicated constant each.
type TokenType string

// Token represents a lexical token. Literal carries the decoded lexeme where
// one exists: escape sequences are resolved for strings, templates and
// identifiers, while NUMBER keeps the raw source text (value conversion is the
// parser layer's job) and REGEXP keeps the raw body between the delimiting
// slashes, with the trailing flag characters in Flags.
type Token struct {
	Type    TokenType
	Literal string
	Flags   string // regular expression flags; empty for every other kind
	Line    int    // 1-based line number where the token starts
	Column  int    // 0-based code-point offset within the line
}

// --- Token Types ---
const (
	// Special
	EOF TokenType = "EOF" // End Of Input

	// Trivia
	COMMENT  TokenType = "COMMENT"  // // ... and /* ... */, interior text
	HASHBANG TokenType = "HASHBANG" // #!..., text after the marker

	// Identifiers + Literals
	IDENT           TokenType = "IDENT"           // variableName, functionName
	PRIVATE_IDENT   TokenType = "PRIVATE_IDENT"   // #name, text includes the '#'
	NUMBER          TokenType = "NUMBER"          // 123, 4.5e6, 0x1f, 123n (raw text)
	STRING          TokenType = "STRING"          // "hello", 'world' (decoded)
	REGEXP          TokenType = "REGEXP"          // /body/flags (raw body)
	TEMPLATE        TokenType = "TEMPLATE"        // `no substitutions`
	TEMPLATE_HEAD   TokenType = "TEMPLATE_HEAD"   // `text${
	TEMPLATE_MIDDLE TokenType = "TEMPLATE_MIDDLE" // }text${
	TEMPLATE_TAIL   TokenType = "TEMPLATE_TAIL"   // }text`

	// Keywords
	AWAIT      TokenType = "AWAIT"
	BREAK      TokenType = "BREAK"
	CASE       TokenType = "CASE"
	CATCH      TokenType = "CATCH"
	CLASS      TokenType = "CLASS"
	CONST      TokenType = "CONST"
	CONTINUE   TokenType = "CONTINUE"
	DEBUGGER   TokenType = "DEBUGGER"
	DEFAULT    TokenType = "DEFAULT"
	DELETE     TokenType = "DELETE"
	DO         TokenType = "DO"
	ELSE       TokenType = "ELSE"
	ENUM       TokenType = "ENUM"
	EXPORT     TokenType = "EXPORT"
	EXTENDS    TokenType = "EXTENDS"
	FALSE      TokenType = "FALSE"
	FINALLY    TokenType = "FINALLY"
	FOR        TokenType = "FOR"
	FUNCTION   TokenType = "FUNCTION"
	IF         TokenType = "IF"
	IMPORT     TokenType = "IMPORT"
	IN         TokenType = "IN"
	INSTANCEOF TokenType = "INSTANCEOF"
	NEW        TokenType = "NEW"
	NULL       TokenType = "NULL"
	RETURN     TokenType = "RETURN"
	SUPER      TokenType = "SUPER"
	SWITCH     TokenType = "SWITCH"
	THIS       TokenType = "THIS"
	THROW      TokenType = "THROW"
	TRUE       TokenType = "TRUE"
	TRY        TokenType = "TRY"
	TYPEOF     TokenType = "TYPEOF"
	VAR        TokenType = "VAR"
	VOID       TokenType = "VOID"
	WHILE      TokenType = "WHILE"
	WITH       TokenType = "WITH"
	YIELD      TokenType = "YIELD"

	// Single-character operators and delimiters
	ASSIGN    TokenType = "="
	PLUS      TokenType = "+"
	MINUS     TokenType = "-"
	BANG      TokenType = "!"
	ASTERISK  TokenType = "*"
	SLASH     TokenType = "/"
	PERCENT   TokenType = "%"
	AMP       TokenType = "&"
	PIPE      TokenType = "|"
	CARET     TokenType = "^"
	TILDE     TokenType = "~"
	LT        TokenType = "<"
	GT        TokenType = ">"
	QUESTION  TokenType = "?"
	DOT       TokenType = "."
	COMMA     TokenType = ","
	SEMICOLON TokenType = ";"
	COLON     TokenType = ":"
	LPAREN    TokenType = "("
	RPAREN    TokenType = ")"
	LBRACE    TokenType = "{"
	RBRACE    TokenType = "}"
	LBRACKET  TokenType = "["
	RBRACKET  TokenType = "]"

	// Multi-character operators
	ARROW              TokenType = "=>"
	EQ                 TokenType = "=="
	STRICT_EQ          TokenType = "==="
	NOT_EQ             TokenType = "!="
	STRICT_NOT_EQ      TokenType = "!=="
	LE                 TokenType = "<="
	GE                 TokenType = ">="
	SHIFT_LEFT         TokenType = "<<"
	SHIFT_RIGHT        TokenType = ">>"
	UNSIGNED_SHIFT     TokenType = ">>>"
	SHIFT_LEFT_ASSIGN  TokenType = "<<="
	SHIFT_RIGHT_ASSIGN TokenType = ">>="
	UNSIGNED_ASSIGN    TokenType = ">>>="
	INC                TokenType = "++"
	DEC                TokenType = "--"
	EXPONENT           TokenType = "**"
	EXPONENT_ASSIGN    TokenType = "**="
	PLUS_ASSIGN        TokenType = "+="
	MINUS_ASSIGN       TokenType = "-="
	ASTERISK_ASSIGN    TokenType = "*="
	SLASH_ASSIGN       TokenType = "/="
	PERCENT_ASSIGN     TokenType = "%="
	AMP_ASSIGN         TokenType = "&="
	PIPE_ASSIGN        TokenType = "|="
	CARET_ASSIGN       TokenType = "^="
	LOGICAL_AND        TokenType = "&&"
	LOGICAL_OR         TokenType = "||"
	COALESCE           TokenType = "??"
	LOGICAL_AND_ASSIGN TokenType = "&&="
	LOGICAL_OR_ASSIGN  TokenType = "||="
	COALESCE_ASSIGN    TokenType = "??="
	OPTIONAL_CHAIN     TokenType = "?."
	SPREAD             TokenType = "..."
)

var keywords = map[string]TokenType{
	"await":      AWAIT,
	"break":      BREAK,
	"case":       CASE,
	"catch":      CATCH,
	"class":      CLASS,
	"const":      CONST,
	"continue":   CONTINUE,
	"debugger":   DEBUGGER,
	"default":    DEFAULT,
	"delete":     DELETE,
	"do":         DO,
	"else":       ELSE,
	"enum":       ENUM,
	"export":     EXPORT,
	"extends":    EXTENDS,
	"false":      FALSE,
	"finally":    FINALLY,
	"for":        FOR,
	"function":   FUNCTION,
	"if":         IF,
	"import":     IMPORT,
	"in":         IN,
	"instanceof": INSTANCEOF,
	"new":        NEW,
	"null":       NULL,
	"return":     RETURN,
	"super":      SUPER,
	"switch":     SWITCH,
	"this":       THIS,
	"throw":      THROW,
	"true":       TRUE,
	"try":        TRY,
	"typeof":     TYPEOF,
	"var":        VAR,
	"void":       VOID,
	"while":      WHILE,
	"with":       WITH,
	"yield":      YIELD,
}

// keywordTypes is the reverse view of keywords, for the one-token-lookback
// rule that treats any reserved word as a value-producing token.
var keywordTypes = make(map[TokenType]bool, len(keywords))

func init() {
	for _, t := range keywords {
		keywordTypes[t] = true
	}
}

// LookupIdent checks the keywords table for an identifier.
func LookupIdent(ident string) TokenType {
	if tokType, ok := keywords[ident]; ok {
		return tokType
	}
	return IDENT
}

// IsKeyword reports whether t is one of the reserved-word token types.
func IsKeyword(t TokenType) bool {
	return keywordTypes[t]
}
