// printer_test.go
package lox

import (
	"io"
	"testing"
)

func Test_Printer_Program(t *testing.T) {
	src := `var x = 1 + 2 * 3;
print x == 7;
{ x = -x; }
`
	rep := NewReporter(io.Discard)
	toks := NewLexer(src, rep).ScanTokens()
	stmts, _ := NewParser(toks, rep).Parse()
	if rep.HadError() {
		t.Fatalf("unexpected parse errors: %v", rep.Diags())
	}
	want := "(var x (+ 1 (* 2 3)))\n" +
		"(print (== x 7))\n" +
		"(block (expr (assign x (- x))))\n"
	if got := PrintProgram(stmts); got != want {
		t.Fatalf("want:\n%s\ngot:\n%s", want, got)
	}
}

func Test_Printer_StringLiteralsAreQuoted(t *testing.T) {
	e := &Binary{
		Operator: Token{Type: PLUS, Lexeme: "+", Line: 1},
		Left:     &Literal{Value: Str("a")},
		Right:    &Literal{Value: Str("b")},
	}
	if got := PrintExpr(e); got != `(+ "a" "b")` {
		t.Fatalf("got %s", got)
	}
}
