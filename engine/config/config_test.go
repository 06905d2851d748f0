package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spaghettifunk/objview/engine/wavefront"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
	if cfg.Loader.MaxLineLength != wavefront.DefaultMaxLineLength {
		t.Errorf("unexpected max line length %d", cfg.Loader.MaxLineLength)
	}
	if p, _ := cfg.MissingPolicy(); p != wavefront.MissingDefault {
		t.Errorf("unexpected policy %v", p)
	}
}

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(`
[log]
level = "debug"

[loader]
max_line_length = 1024
missing_attributes = "strict"

[assets]
dir = "models"
watch = true
`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Log.Level != "debug" || cfg.Loader.MaxLineLength != 1024 || cfg.Assets.Dir != "models" || !cfg.Assets.Watch {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.Jobs.Workers != Default().Jobs.Workers {
		t.Error("sections absent from the file should keep their defaults")
	}
	if p, _ := cfg.MissingPolicy(); p != wavefront.MissingStrict {
		t.Errorf("expected strict policy, got %v", p)
	}
	if len(cfg.LoaderOptions()) != 2 {
		t.Error("expected two loader options")
	}
}

func TestParseInvalid(t *testing.T) {
	tests := map[string]string{
		"syntax":       "[loader\n",
		"unknown key":  "[loader]\ncolour = 1\n",
		"line length":  "[loader]\nmax_line_length = 0\n",
		"policy":       "[loader]\nmissing_attributes = \"maybe\"\n",
		"workers":      "[jobs]\nworkers = 0\n",
		"reload queue": "[assets]\nreload_queue_size = 0\n",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse([]byte(data)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "objview.toml")
	if err := os.WriteFile(path, []byte("[jobs]\nworkers = 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Jobs.Workers != 4 {
		t.Errorf("expected 4 workers, got %d", cfg.Jobs.Workers)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
