package cmd

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	lox "github.com/TheJolman/lox"
)

var testVerbose bool

var testCmd = &cobra.Command{
	Use:   "test [fixture.yaml ...]",
	Short: "Run YAML fixture files",
	Long: `Runs end-to-end fixture cases (source, expected output, expected
diagnostics). With no arguments, every testdata/*.yaml file is run.
`,
	RunE: func(_ *cobra.Command, args []string) error {
		paths := args
		if len(paths) == 0 {
			var err error
			if paths, err = filepath.Glob(filepath.Join("testdata", "*.yaml")); err != nil {
				return err
			}
			sort.Strings(paths)
		}
		if len(paths) == 0 {
			return fmt.Errorf("no fixture files found")
		}

		total, failed := 0, 0
		for _, p := range paths {
			f, err := lox.LoadFixtures(p)
			if err != nil {
				return err
			}
			for _, c := range f.Cases {
				total++
				if err := lox.RunFixtureCase(c); err != nil {
					failed++
					fmt.Printf("FAIL %s: %v\n", p, err)
					continue
				}
				if testVerbose {
					fmt.Printf("ok   %s: %s\n", p, c.Name)
				}
			}
		}

		fmt.Printf("%d cases, %d failed\n", total, failed)
		if failed > 0 {
			return &exitError{code: 1}
		}
		return nil
	},
}

func init() {
	testCmd.Flags().BoolVarP(&testVerbose, "verbose", "v", false, "print passing cases too")
}
