package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const triangleOBJ = "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"

func TestRunSummary(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "tri.obj")
	if err := os.WriteFile(good, []byte(triangleOBJ), 0o644); err != nil {
		t.Fatal(err)
	}
	missing := filepath.Join(dir, "missing.obj")

	tests := []struct {
		name    string
		models  []string
		summary string
		err     string
	}{
		{"all loaded", []string{good, good}, "2 loaded, 0 failed", ""},
		{"one missing", []string{good, good, missing}, "2 loaded, 1 failed", "1 of 3 models failed to load"},
		{"all missing", []string{missing}, "0 loaded, 1 failed", "1 of 1 models failed to load"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := run(&out, tt.models)
			if !strings.Contains(out.String(), tt.summary) {
				t.Errorf("expected summary %q in output:\n%s", tt.summary, out.String())
			}
			switch {
			case tt.err == "" && err != nil:
				t.Errorf("unexpected error: %v", err)
			case tt.err != "" && (err == nil || err.Error() != tt.err):
				t.Errorf("expected error %q, got %v", tt.err, err)
			}
		})
	}
}
