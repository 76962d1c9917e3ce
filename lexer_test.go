// lexer_test.go
package lox

import (
	"bytes"
	"io"
	"reflect"
	"testing"
)

func scanClean(t *testing.T, src string) []Token {
	t.Helper()
	rep := NewReporter(io.Discard)
	toks := NewLexer(src, rep).ScanTokens()
	if rep.HadError() {
		t.Fatalf("unexpected lex errors in %q: %v", src, rep.Diags())
	}
	return toks
}

func scanCapture(src string) ([]Token, *Reporter, string) {
	var buf bytes.Buffer
	rep := NewReporter(&buf)
	toks := NewLexer(src, rep).ScanTokens()
	return toks, rep, buf.String()
}

func tokenTypes(toks []Token) []TokenType {
	out := make([]TokenType, 0, len(toks))
	for _, tk := range toks {
		out = append(out, tk.Type)
	}
	return out
}

func wantTypes(t *testing.T, src string, want []TokenType) []Token {
	t.Helper()
	got := scanClean(t, src)
	if !reflect.DeepEqual(tokenTypes(got), want) {
		t.Fatalf("\nsource:\n%s\nwant types:\n%v\ngot types:\n%v\n", src, want, tokenTypes(got))
	}
	return got
}

func Test_Lexer_WhitespaceAndCommentsOnly_YieldsEOF(t *testing.T) {
	for _, src := range []string{
		"",
		"   \t\r  ",
		"\n\n\n",
		"// just a comment",
		"// one\n// two\n",
		"/* block */",
		"/* multi\nline\nblock */  // and a tail\n",
	} {
		toks := scanClean(t, src)
		if len(toks) != 1 || toks[0].Type != EOF {
			t.Fatalf("source %q: want exactly one EOF token, got %v", src, toks)
		}
	}
}

func Test_Lexer_EOFCarriesFinalLine(t *testing.T) {
	toks := scanClean(t, "var a;\nvar b;\n")
	if got := toks[len(toks)-1]; got.Type != EOF || got.Line != 3 {
		t.Fatalf("want EOF on line 3, got %v", got)
	}
}

func Test_Lexer_SingleCharacterTokens(t *testing.T) {
	wantTypes(t, "(){},.-+;*", []TokenType{
		LEFT_PAREN, RIGHT_PAREN, LEFT_BRACE, RIGHT_BRACE,
		COMMA, DOT, MINUS, PLUS, SEMICOLON, STAR, EOF,
	})
}

func Test_Lexer_OneOrTwoCharacterTokens(t *testing.T) {
	wantTypes(t, "! != = == > >= < <=", []TokenType{
		BANG, BANG_EQUAL, EQUAL, EQUAL_EQUAL,
		GREATER, GREATER_EQUAL, LESS, LESS_EQUAL, EOF,
	})
}

func Test_Lexer_StringLiteral(t *testing.T) {
	toks := wantTypes(t, `"hi mom!"`, []TokenType{STRING, EOF})
	if toks[0].Literal != "hi mom!" {
		t.Fatalf("want literal %q, got %v", "hi mom!", toks[0].Literal)
	}
	if toks[0].Lexeme != `"hi mom!"` {
		t.Fatalf("lexeme should keep the quotes, got %q", toks[0].Lexeme)
	}
}

func Test_Lexer_MultilineString_CountsLines(t *testing.T) {
	toks := wantTypes(t, "\"a\nb\"", []TokenType{STRING, EOF})
	if toks[0].Literal != "a\nb" {
		t.Fatalf("want literal %q, got %v", "a\nb", toks[0].Literal)
	}
	if toks[1].Line != 2 {
		t.Fatalf("embedded newline must advance the line counter, EOF at line %d", toks[1].Line)
	}
}

func Test_Lexer_NumberLiterals(t *testing.T) {
	toks := wantTypes(t, "123 123.7890", []TokenType{NUMBER, NUMBER, EOF})
	if toks[0].Literal != 123.0 {
		t.Fatalf("want 123.0, got %v", toks[0].Literal)
	}
	if toks[1].Literal != 123.789 {
		t.Fatalf("want 123.789, got %v", toks[1].Literal)
	}
}

func Test_Lexer_TrailingDotIsNotPartOfNumber(t *testing.T) {
	toks := wantTypes(t, "123.", []TokenType{NUMBER, DOT, EOF})
	if toks[0].Literal != 123.0 {
		t.Fatalf("want 123.0, got %v", toks[0].Literal)
	}
}

func Test_Lexer_KeywordsAndIdentifiers(t *testing.T) {
	toks := wantTypes(t, "var orchid and nilly nil", []TokenType{
		VAR, IDENTIFIER, AND, IDENTIFIER, NIL, EOF,
	})
	if toks[1].Lexeme != "orchid" || toks[3].Lexeme != "nilly" {
		t.Fatalf("identifier lexemes wrong: %v", toks)
	}
}

func Test_Lexer_UnexpectedCharacter_ReportsAndContinues(t *testing.T) {
	toks, rep, out := scanCapture("@ + $")
	if !rep.HadError() {
		t.Fatal("expected lexical errors")
	}
	if want := "[1] Error: Unexpected character.\n[1] Error: Unexpected character.\n"; out != want {
		t.Fatalf("want %q, got %q", want, out)
	}
	// The scan still yields the tokens around the bad characters.
	if !reflect.DeepEqual(tokenTypes(toks), []TokenType{PLUS, EOF}) {
		t.Fatalf("want PLUS EOF, got %v", tokenTypes(toks))
	}
}

func Test_Lexer_UnterminatedString(t *testing.T) {
	toks, _, out := scanCapture("print \"abc")
	if want := "[1] Error: Unterminated string.\n"; out != want {
		t.Fatalf("want %q, got %q", want, out)
	}
	if !reflect.DeepEqual(tokenTypes(toks), []TokenType{PRINT, EOF}) {
		t.Fatalf("no token may be emitted for the broken string, got %v", tokenTypes(toks))
	}
}

func Test_Lexer_UnterminatedBlockComment(t *testing.T) {
	_, _, out := scanCapture("1 /* open\nforever")
	if want := "[2] Error: Unterminated multi-line comment.\n"; out != want {
		t.Fatalf("want %q, got %q", want, out)
	}
}

func Test_Lexer_Idempotent(t *testing.T) {
	src := "var x = 1.5; // tail\nprint x != 2;"
	a := scanClean(t, src)
	b := scanClean(t, src)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("two fresh scans of the same text differ:\n%v\n%v", a, b)
	}
}

func Test_Lexer_Interactive_OpenConstructsAreIncomplete(t *testing.T) {
	for _, src := range []string{"print \"abc", "1 /* open"} {
		var buf bytes.Buffer
		rep := NewReporter(&buf)
		lex := NewLexerInteractive(src, rep)
		lex.ScanTokens()
		if !lex.Incomplete() {
			t.Fatalf("source %q: want incomplete", src)
		}
		if rep.HadError() || buf.Len() > 0 {
			t.Fatalf("source %q: incomplete input must not report, got %q", src, buf.String())
		}
	}
}
