package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := ParseConfig([]byte("{}\n"), "test.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.DefaultExhaustive() {
		t.Error("default_signifies_exhaustive should default to true")
	}
	if len(cfg.Packages) != 1 || cfg.Packages[0] != "./..." {
		t.Errorf("packages = %v, want [./...]", cfg.Packages)
	}
	if cfg.Output.Color != ColorAuto {
		t.Errorf("color = %q, want auto", cfg.Output.Color)
	}
	if cfg.Output.Format != FormatText {
		t.Errorf("format = %q, want text", cfg.Output.Format)
	}
}

func TestParseConfig_Full(t *testing.T) {
	yaml := `
default_signifies_exhaustive: false
packages:
  - ./internal/...
  - ./pkg/...
exclude:
  - example.com/shapes.Shape
output:
  color: never
  format: json
`
	cfg, err := ParseConfig([]byte(yaml), "test.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DefaultExhaustive() {
		t.Error("expected default_signifies_exhaustive to be false")
	}
	if len(cfg.Packages) != 2 {
		t.Fatalf("expected 2 patterns, got %d", len(cfg.Packages))
	}
	if !cfg.Excluded("example.com/shapes.Shape") {
		t.Error("expected example.com/shapes.Shape to be excluded")
	}
	if cfg.Excluded("example.com/shapes.Other") {
		t.Error("example.com/shapes.Other should not be excluded")
	}
	if cfg.Output.Color != ColorNever || cfg.Output.Format != FormatJSON {
		t.Errorf("output = %+v, want never/json", cfg.Output)
	}
}

func TestParseConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"bad color", "output:\n  color: rainbow\n", "output.color"},
		{"bad format", "output:\n  format: xml\n", "output.format"},
		{"empty pattern", "packages:\n  - \"\"\n", "packages[0]"},
		{"unqualified exclude", "exclude:\n  - Shape\n", "exclude[0]"},
		{"duplicate exclude", "exclude:\n  - a/b.C\n  - a/b.C\n", "listed twice"},
		{"not yaml", "packages: [", "parsing test.yaml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.yaml), "test.yaml")
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestFindConfig_WalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(root, "a", "sumtype.yml")
	if err := os.WriteFile(want, []byte("packages: [./...]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := FindConfig(nested)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Errorf("FindConfig = %q, want %q", got, want)
	}

	cfg, err := LoadConfig(got)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Packages[0] != "./..." {
		t.Errorf("packages = %v", cfg.Packages)
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil || !strings.Contains(err.Error(), "reading config") {
		t.Fatalf("expected reading error, got %v", err)
	}
}
