// errors.go: diagnostics reporter and source-snippet rendering.
//
// The reporter is an explicit collector value threaded through the lexer,
// parser, and interpreter instead of process-global "had error" flags. Each
// stage reports independently; the CLI inspects the sticky flags afterward to
// pick an exit code, and the interactive session resets them per line.
//
// Wire formats (stable, consumed by the CLI and by tests):
//
//	lex/parse:  [<line>] Error<where>: <message>
//	            <where> is "" for generic errors, " at end" or " at '<lexeme>'"
//	            for token-anchored parse errors.
//	runtime:    <message>
//	            [line <line>]
//
// ExplainDiag additionally renders a numbered snippet of the offending source
// region with a caret under the lexeme when one is known. It is opt-in and
// never part of the wire format above.
package lox

import (
	"fmt"
	"io"
	"strings"
)

// Diag is one recorded lexical or syntax diagnostic.
type Diag struct {
	Line   int
	Where  string // "", " at end", or " at '<lexeme>'"
	Msg    string
	Lexeme string // offending lexeme when token-anchored, else ""
}

// Reporter collects diagnostics and writes their one-line renderings to Out
// as they arrive.
type Reporter struct {
	Out             io.Writer
	diags           []Diag
	hadError        bool
	hadRuntimeError bool
}

// NewReporter returns a reporter writing rendered diagnostics to w.
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{Out: w}
}

// Error reports a generic lexical/syntax fault at a source line.
func (r *Reporter) Error(line int, message string) {
	r.report(Diag{Line: line, Msg: message})
}

// ErrorAt reports a syntax fault anchored at a token, distinguishing
// "at end" from "at '<lexeme>'".
func (r *Reporter) ErrorAt(tok Token, message string) {
	if tok.Type == EOF {
		r.report(Diag{Line: tok.Line, Where: " at end", Msg: message})
		return
	}
	r.report(Diag{
		Line:   tok.Line,
		Where:  fmt.Sprintf(" at '%s'", tok.Lexeme),
		Msg:    message,
		Lexeme: tok.Lexeme,
	})
}

// Runtime reports an evaluation-time fault.
func (r *Reporter) Runtime(err *RuntimeError) {
	fmt.Fprintf(r.Out, "%s\n[line %d]\n", err.Msg, err.Token.Line)
	r.hadRuntimeError = true
}

// HadError reports whether any lexical or syntax fault was recorded.
func (r *Reporter) HadError() bool { return r.hadError }

// HadRuntimeError reports whether any evaluation fault was recorded.
func (r *Reporter) HadRuntimeError() bool { return r.hadRuntimeError }

// Diags returns the recorded lexical/syntax diagnostics in report order.
func (r *Reporter) Diags() []Diag { return r.diags }

// Reset clears the sticky flags and recorded diagnostics. The interactive
// session calls this at the start of each line.
func (r *Reporter) Reset() {
	r.diags = nil
	r.hadError = false
	r.hadRuntimeError = false
}

func (r *Reporter) report(d Diag) {
	fmt.Fprintf(r.Out, "[%d] Error%s: %s\n", d.Line, d.Where, d.Msg)
	r.diags = append(r.diags, d)
	r.hadError = true
}

/* ===========================
   snippet rendering
   =========================== */

// ExplainDiag builds a numbered snippet around a diagnostic's line, with up
// to one line of context on each side and a caret under the offending lexeme
// when the diagnostic carries one. Line numbers out of range are clamped so
// rendering never fails on short or empty sources.
func ExplainDiag(src string, d Diag) string {
	lines := strings.Split(src, "\n")
	if len(lines) == 0 {
		lines = []string{""}
	}
	line := d.Line
	if line < 1 {
		line = 1
	}
	if line > len(lines) {
		line = len(lines)
	}
	lineTxt := lines[line-1]

	var b strings.Builder
	fmt.Fprintf(&b, "[%d] Error%s: %s\n\n", d.Line, d.Where, d.Msg)
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lineTxt)
	if d.Lexeme != "" {
		if col := strings.Index(lineTxt, d.Lexeme); col >= 0 {
			fmt.Fprintf(&b, "     | %s%s\n", strings.Repeat(" ", col), strings.Repeat("^", len(d.Lexeme)))
		}
	}
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return b.String()
}
