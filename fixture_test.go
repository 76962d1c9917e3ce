// fixture_test.go
package lox

import (
	"os"
	"path/filepath"
	"testing"
)

func Test_Fixtures(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("testdata", "*.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) == 0 {
		t.Fatal("no fixture files under testdata/")
	}
	for _, p := range paths {
		f, err := LoadFixtures(p)
		if err != nil {
			t.Fatal(err)
		}
		for _, c := range f.Cases {
			c := c
			t.Run(filepath.Base(p)+"/"+c.Name, func(t *testing.T) {
				if err := RunFixtureCase(c); err != nil {
					t.Fatal(err)
				}
			})
		}
	}
}

func Test_Fixtures_LoadRejectsUnnamedCases(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(p, []byte("cases:\n  - source: \"print 1;\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFixtures(p); err == nil {
		t.Fatal("want an error for a case with no name")
	}
}
