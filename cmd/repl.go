package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	lox "github.com/TheJolman/lox"
)

const (
	historyFile = ".lox_history"
	promptMain  = "> "
	promptCont  = "... "
)

// redWriter wraps each write in an ANSI red span; the REPL routes
// diagnostics through it so they stand apart from program output.
type redWriter struct{ w io.Writer }

func (rw redWriter) Write(p []byte) (int, error) {
	if _, err := io.WriteString(rw.w, "\x1b[31m"); err != nil {
		return 0, err
	}
	n, err := rw.w.Write(p)
	if err != nil {
		return n, err
	}
	_, err = io.WriteString(rw.w, "\x1b[0m")
	return n, err
}

// replLoop runs the interactive session. One runner lives for the whole
// session, so var declarations persist between lines; the error flags reset
// at the start of each line.
func replLoop() error {
	fmt.Printf("Lox %s\nCtrl+C cancels input, Ctrl+D exits.\n", lox.Version)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	r := lox.NewRunner(os.Stdout, redWriter{w: os.Stderr})
	for {
		code, ok := readStatement(ln)
		if !ok {
			fmt.Println()
			return nil
		}
		if strings.TrimSpace(code) == "" {
			continue
		}

		r.Rep.Reset()
		r.Run(code)
		if explain {
			for _, d := range r.Rep.Diags() {
				fmt.Fprint(os.Stderr, lox.ExplainDiag(code, d))
			}
		}
		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))
	}
}

// readStatement collects prompt lines until they form complete statements,
// probing with the interactive parser. Ctrl+C drops the pending input;
// Ctrl+D ends the session.
func readStatement(ln *liner.State) (string, bool) {
	var b strings.Builder
	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", true
		}
		if err != nil {
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		if src := b.String(); lox.InputComplete(src) {
			return src, true
		}
	}
}
