package cmd

import (
	"fmt"
	"os"

	lox "github.com/TheJolman/lox"
)

// runFile executes one script to completion and maps the reporter's sticky
// flags to the documented exit codes.
func runFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lox: cannot read %s: %v\n", path, err)
		return &exitError{code: 64}
	}
	src := string(raw)

	if showAST {
		return dumpAST(src)
	}

	r := lox.NewRunner(os.Stdout, os.Stderr)
	r.Run(src)
	if explain {
		explainDiags(r.Rep, src)
	}
	switch {
	case r.Rep.HadError():
		return &exitError{code: 65}
	case r.Rep.HadRuntimeError():
		return &exitError{code: 70}
	}
	return nil
}

// dumpAST parses without evaluating and prints one S-expression per
// statement.
func dumpAST(src string) error {
	rep := lox.NewReporter(os.Stderr)
	toks := lox.NewLexer(src, rep).ScanTokens()
	stmts, _ := lox.NewParser(toks, rep).Parse()
	if rep.HadError() {
		if explain {
			explainDiags(rep, src)
		}
		return &exitError{code: 65}
	}
	fmt.Print(lox.PrintProgram(stmts))
	return nil
}

func explainDiags(rep *lox.Reporter, src string) {
	for _, d := range rep.Diags() {
		fmt.Fprintln(os.Stderr)
		fmt.Fprint(os.Stderr, lox.ExplainDiag(src, d))
	}
}
