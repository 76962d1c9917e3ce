// fixture.go — YAML-described interpreter cases.
//
// A fixture file holds end-to-end cases: a source program, the stdout it must
// produce, and the diagnostic lines it must emit. The same files drive both
// "go test" (fixture_test.go) and the "lox test" subcommand.
//
// File format:
//
//	cases:
//	  - name: precedence
//	    source: |
//	      print 1 + 2 * 3;
//	    output: |
//	      7
//	  - name: undefined variable
//	    source: |
//	      print x;
//	    errors:
//	      - "Undefined variable 'x'."
//	      - "[line 1]"
//
// "output" is matched exactly against stdout. "errors" is matched line by
// line against the reporter's stream (lex/parse renderings and the two-line
// runtime rendering alike).
package lox

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// FixtureCase is one end-to-end interpreter case.
type FixtureCase struct {
	Name   string   `yaml:"name"`
	Source string   `yaml:"source"`
	Output string   `yaml:"output"`
	Errors []string `yaml:"errors"`
}

// FixtureFile is the top-level fixture document.
type FixtureFile struct {
	Cases []FixtureCase `yaml:"cases"`
}

// LoadFixtures reads and decodes one fixture file.
func LoadFixtures(path string) (*FixtureFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f FixtureFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	for i, c := range f.Cases {
		if c.Name == "" {
			return nil, fmt.Errorf("%s: case %d has no name", path, i)
		}
	}
	return &f, nil
}

// RunFixtureCase executes one case in a fresh interpreter and compares the
// observed output and diagnostics with the expectations. A nil return means
// the case passed; otherwise the error describes the first mismatch.
func RunFixtureCase(c FixtureCase) error {
	var out, errOut bytes.Buffer
	r := NewRunner(&out, &errOut)
	r.Run(c.Source)

	if got := out.String(); got != c.Output {
		return fmt.Errorf("%s: stdout mismatch\nwant:\n%s\ngot:\n%s", c.Name, c.Output, got)
	}
	wantErr := ""
	if len(c.Errors) > 0 {
		wantErr = strings.Join(c.Errors, "\n") + "\n"
	}
	if got := errOut.String(); got != wantErr {
		return fmt.Errorf("%s: diagnostics mismatch\nwant:\n%s\ngot:\n%s", c.Name, wantErr, got)
	}
	return nil
}
