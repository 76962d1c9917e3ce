package lox

import "fmt"

// TokenType represents the kind of token.
type TokenType int

const (
	// Special
	EOF TokenType = iota

	// Single-character punctuation
	LEFT_PAREN  // "("
	RIGHT_PAREN // ")"
	LEFT_BRACE  // "{"
	RIGHT_BRACE // "}"
	COMMA       // ","
	DOT         // "."
	MINUS       // "-"
	PLUS        // "+"
	SEMICOLON   // ";"
	SLASH       // "/"
	STAR        // "*"

	// One- or two-character operators
	BANG          // "!"
	BANG_EQUAL    // "!="
	EQUAL         // "="
	EQUAL_EQUAL   // "=="
	GREATER       // ">"
	GREATER_EQUAL // ">="
	LESS          // "<"
	LESS_EQUAL    // "<="

	// Literals & identifiers
	IDENTIFIER
	STRING
	NUMBER

	// Keywords
	AND
	CLASS
	ELSE
	FALSE
	FUN
	FOR
	IF
	NIL
	OR
	PRINT
	RETURN
	SUPER
	THIS
	TRUE
	VAR
	WHILE
)

// Token is a lexical token with optional literal value. Tokens are produced
// once by the lexer and never mutated; the parser and interpreter hold them
// only for diagnostics.
type Token struct {
	Type    TokenType
	Lexeme  string      // raw text slice
	Literal interface{} // parsed value for NUMBER/STRING literals
	Line    int         // 1-based
}

func (t Token) String() string {
	return fmt.Sprintf("%v %q %v", t.Type, t.Lexeme, t.Literal)
}

// keywords map
var keywords = map[string]TokenType{
	"and":    AND,
	"class":  CLASS,
	"else":   ELSE,
	"false":  FALSE,
	"for":    FOR,
	"fun":    FUN,
	"if":     IF,
	"nil":    NIL,
	"or":     OR,
	"print":  PRINT,
	"return": RETURN,
	"super":  SUPER,
	"this":   THIS,
	"true":   TRUE,
	"var":    VAR,
	"while":  WHILE,
}
