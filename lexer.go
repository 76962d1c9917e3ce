// lexer.go — error-tolerant scanner for Lox source text.
//
// The lexer walks the source with a start/current cursor pair and emits a
// flat token slice terminated by exactly one EOF token. It never fails
// fatally: unscannable input (a stray character, an unterminated string or
// block comment) is reported through the shared Reporter and scanning resumes
// at the next character, so one pass surfaces every independent lexical fault.
//
// Two-character operators use one-byte lookahead (maximal munch). "//" starts
// a line comment, "/* ... */" a block comment that may span newlines; strings
// may span newlines as well, and every embedded newline bumps the line
// counter. Numbers are digit runs with an optional ".digits" tail; a trailing
// dot is left unconsumed for the next scan step. Identifiers are re-classified
// through the keyword table after scanning.
package lox

import "strconv"

// Lexer scans a Lox source string into tokens.
type Lexer struct {
	src    string
	start  int // start index of current lexeme
	cur    int // current index
	line   int // 1-based
	tokens []Token
	rep    *Reporter

	interactive bool // REPL mode: unterminated string/comment at EOF is "incomplete"
	incomplete  bool
}

// NewLexer creates a lexer for the given source, reporting faults to rep.
func NewLexer(src string, rep *Reporter) *Lexer {
	return &Lexer{src: src, line: 1, rep: rep}
}

// NewLexerInteractive creates a REPL-mode lexer: constructs left open at end
// of input set Incomplete instead of reporting, so the caller can ask for a
// continuation line.
func NewLexerInteractive(src string, rep *Reporter) *Lexer {
	l := NewLexer(src, rep)
	l.interactive = true
	return l
}

// ScanTokens tokenizes the entire source and returns the tokens, EOF last.
func (l *Lexer) ScanTokens() []Token {
	for !l.isAtEnd() {
		l.start = l.cur
		l.scanToken()
	}
	l.tokens = append(l.tokens, Token{Type: EOF, Line: l.line})
	return l.tokens
}

// Incomplete reports whether an interactive scan ran out of input inside a
// string or block comment.
func (l *Lexer) Incomplete() bool { return l.incomplete }

func (l *Lexer) isAtEnd() bool { return l.cur >= len(l.src) }

func (l *Lexer) peek() byte {
	if l.isAtEnd() {
		return 0
	}
	return l.src[l.cur]
}

func (l *Lexer) peekNext() byte {
	if l.cur+1 >= len(l.src) {
		return 0
	}
	return l.src[l.cur+1]
}

func (l *Lexer) advance() byte {
	ch := l.src[l.cur]
	l.cur++
	return ch
}

// match consumes the next byte iff it equals expected.
func (l *Lexer) match(expected byte) bool {
	if l.isAtEnd() || l.src[l.cur] != expected {
		return false
	}
	l.cur++
	return true
}

func (l *Lexer) addToken(tt TokenType, lit interface{}) {
	l.tokens = append(l.tokens, Token{
		Type:    tt,
		Lexeme:  l.src[l.start:l.cur],
		Literal: lit,
		Line:    l.line,
	})
}

func (l *Lexer) err(msg string) {
	if l.interactive && l.isAtEnd() {
		l.incomplete = true
		return
	}
	l.rep.Error(l.line, msg)
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
func isAlpha(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_' }
func isAlphaNum(b byte) bool {
	return isAlpha(b) || isDigit(b)
}

// ----- main scanner -----

func (l *Lexer) scanToken() {
	ch := l.advance()
	switch ch {
	case '(':
		l.addToken(LEFT_PAREN, nil)
	case ')':
		l.addToken(RIGHT_PAREN, nil)
	case '{':
		l.addToken(LEFT_BRACE, nil)
	case '}':
		l.addToken(RIGHT_BRACE, nil)
	case ',':
		l.addToken(COMMA, nil)
	case '.':
		l.addToken(DOT, nil)
	case '-':
		l.addToken(MINUS, nil)
	case '+':
		l.addToken(PLUS, nil)
	case ';':
		l.addToken(SEMICOLON, nil)
	case '*':
		l.addToken(STAR, nil)
	case '!':
		if l.match('=') {
			l.addToken(BANG_EQUAL, nil)
		} else {
			l.addToken(BANG, nil)
		}
	case '=':
		if l.match('=') {
			l.addToken(EQUAL_EQUAL, nil)
		} else {
			l.addToken(EQUAL, nil)
		}
	case '<':
		if l.match('=') {
			l.addToken(LESS_EQUAL, nil)
		} else {
			l.addToken(LESS, nil)
		}
	case '>':
		if l.match('=') {
			l.addToken(GREATER_EQUAL, nil)
		} else {
			l.addToken(GREATER, nil)
		}
	case '/':
		if l.match('/') {
			l.ignoreUntilNewline()
		} else if l.match('*') {
			l.scanBlockComment()
		} else {
			l.addToken(SLASH, nil)
		}
	case ' ', '\r', '\t':
		// whitespace, no token
	case '\n':
		l.line++
	case '"':
		l.scanString()
	default:
		if isDigit(ch) {
			l.scanNumber()
		} else if isAlpha(ch) {
			l.scanIdentifier()
		} else {
			l.err("Unexpected character.")
		}
	}
}

// ----- scanners -----

// scanString consumes a double-quoted literal. Strings may span lines; the
// surrounding quotes are trimmed from the stored value.
func (l *Lexer) scanString() {
	for !l.isAtEnd() && l.peek() != '"' {
		if l.peek() == '\n' {
			l.line++
		}
		l.advance()
	}
	if l.isAtEnd() {
		l.err("Unterminated string.")
		return
	}
	l.advance() // closing quote
	l.addToken(STRING, l.src[l.start+1:l.cur-1])
}

// scanNumber consumes digits with an optional fractional part. A dot with no
// digit after it is not part of the number and stays for the next scan step.
func (l *Lexer) scanNumber() {
	for isDigit(l.peek()) {
		l.advance()
	}
	if l.peek() == '.' && isDigit(l.peekNext()) {
		l.advance() // consume '.'
		for isDigit(l.peek()) {
			l.advance()
		}
	}
	// Lexeme is digits with at most one interior dot; ParseFloat cannot fail.
	v, _ := strconv.ParseFloat(l.src[l.start:l.cur], 64)
	l.addToken(NUMBER, v)
}

// scanIdentifier consumes [A-Za-z_][A-Za-z0-9_]* and re-classifies keywords.
func (l *Lexer) scanIdentifier() {
	for isAlphaNum(l.peek()) {
		l.advance()
	}
	lex := l.src[l.start:l.cur]
	if tt, ok := keywords[lex]; ok {
		l.addToken(tt, nil)
		return
	}
	l.addToken(IDENTIFIER, nil)
}

// scanBlockComment discards up to the matching "*/"; newlines inside still
// count toward the line number.
func (l *Lexer) scanBlockComment() {
	for !l.isAtEnd() {
		if l.peek() == '\n' {
			l.line++
		}
		if l.peek() == '*' && l.peekNext() == '/' {
			l.advance()
			l.advance()
			return
		}
		l.advance()
	}
	l.err("Unterminated multi-line comment.")
}

// ignoreUntilNewline eats until '\n' or end of input.
func (l *Lexer) ignoreUntilNewline() {
	for !l.isAtEnd() && l.peek() != '\n' {
		l.advance()
	}
}
