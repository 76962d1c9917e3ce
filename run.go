// run.go — the Lex→Parse→Evaluate pipeline behind both CLI modes.
package lox

import (
	"errors"
	"fmt"
	"io"
)

// Runner ties one interpreter and one reporter together for a sequence of
// runs. A whole-file run uses a single Run call; the interactive session
// reuses the Runner across lines so global bindings persist while the error
// flags are reset per line.
type Runner struct {
	Interp *Interpreter
	Rep    *Reporter
}

// NewRunner creates a runner printing program output to out and diagnostics
// to errOut.
func NewRunner(out, errOut io.Writer) *Runner {
	return &Runner{
		Interp: NewInterpreter(out),
		Rep:    NewReporter(errOut),
	}
}

// Run performs the full pipeline once. If lexing or parsing reported any
// fault, evaluation is skipped entirely; a runtime fault stops evaluation and
// is reported once. Inspect the reporter's flags afterward.
func (r *Runner) Run(source string) {
	toks := NewLexer(source, r.Rep).ScanTokens()
	stmts, _ := NewParser(toks, r.Rep).Parse()
	if r.Rep.HadError() {
		return
	}
	if err := r.Interp.Execute(stmts); err != nil {
		var re *RuntimeError
		if errors.As(err, &re) {
			r.Rep.Runtime(re)
			return
		}
		// Interpreter invariant violation; surface it rather than swallow.
		fmt.Fprintln(r.Rep.Out, err)
	}
}

// InputComplete probes whether source forms complete statements, for REPL
// continuation prompts. Diagnostics from the probe are discarded; a wrong
// line still counts as complete so the real run can report it.
func InputComplete(source string) bool {
	rep := NewReporter(io.Discard)
	lex := NewLexerInteractive(source, rep)
	toks := lex.ScanTokens()
	if lex.Incomplete() {
		return false
	}
	_, err := NewParserInteractive(toks, rep).Parse()
	return !IsIncomplete(err)
}
