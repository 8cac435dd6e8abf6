package cmd

import (
	"os"
	"testing"
)

// chdirTest changes the working directory to dir for the duration of the
// test, restoring the previous one on cleanup (equivalent of t.Chdir, which
// requires Go 1.24).
func chdirTest(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("chdirTest: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdirTest: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("chdirTest: restoring working directory: %v", err)
		}
	})
}
