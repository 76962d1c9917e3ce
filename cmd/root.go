package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	lox "github.com/TheJolman/lox"
)

var (
	explain bool
	showAST bool
)

var rootCmd = &cobra.Command{
	Use:   "lox [script]",
	Short: "Lox tree-walking interpreter",
	Long: `Lox interpreter — lexer, recursive-descent parser, and tree-walking
evaluator over lexically scoped environments.

With a script argument the file is run to completion. Without one an
interactive session starts: bindings persist between lines, error flags
reset per line.
`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(_ *cobra.Command, args []string) error {
		if len(args) == 0 {
			return replLoop()
		}
		return runFile(args[0])
	},
}

// exitError carries a specific process exit code out of a command.
type exitError struct{ code int }

func (e *exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

// Execute runs the CLI and returns the process exit code: 0 on success,
// 64 for invalid invocation, 65 after lexical/syntax faults, 70 after a
// runtime fault.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		var ee *exitError
		if errors.As(err, &ee) {
			return ee.code
		}
		fmt.Fprintln(os.Stderr, err)
		return 64
	}
	return 0
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the interpreter version",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println(lox.Version)
	},
}

func init() {
	rootCmd.Flags().BoolVar(&explain, "explain", false, "render source snippets for reported errors")
	rootCmd.Flags().BoolVar(&showAST, "ast", false, "print the parsed program instead of evaluating it")

	rootCmd.AddCommand(versionCmd, testCmd)
}
