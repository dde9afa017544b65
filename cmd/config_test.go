package cmd

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	// A missing file is not an error, it yields the defaults.
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() returned an unexpected error: %v", err)
	}

	if cfg.Camelot.Command != "camelot" || cfg.Camelot.Pages != "all" || cfg.Camelot.Flavor != "lattice" {
		t.Errorf("wrong camelot defaults: %+v", cfg.Camelot)
	}
	if cfg.Render.Style != "auto" || cfg.Render.Width != 80 {
		t.Errorf("wrong render defaults: %+v", cfg.Render)
	}
}

func TestLoadConfigPartialFile(t *testing.T) {
	path := writeFixture(t, "config.yaml", "camelot:\n  flavor: stream\nrender:\n  width: 120\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() returned an unexpected error: %v", err)
	}

	// the file values
	if cfg.Camelot.Flavor != "stream" {
		t.Errorf("Flavor = %q, want %q", cfg.Camelot.Flavor, "stream")
	}
	if cfg.Render.Width != 120 {
		t.Errorf("Width = %d, want %d", cfg.Render.Width, 120)
	}
	// the fields the file left out keep their defaults
	if cfg.Camelot.Command != "camelot" {
		t.Errorf("Command = %q, want the default %q", cfg.Camelot.Command, "camelot")
	}
	if cfg.Render.Style != "auto" {
		t.Errorf("Style = %q, want the default %q", cfg.Render.Style, "auto")
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string // substring of the error message
	}{
		{"unknown flavor", "camelot:\n  flavor: diagonal\n", "Flavor"},
		{"width too small", "render:\n  width: 10\n", "Width"},
		{"unknown style", "render:\n  style: rainbow\n", "Style"},
		{"not yaml", "{ camelot", "parse config"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFixture(t, "config.yaml", tc.content)
			_, err := LoadConfig(path)
			if err == nil {
				t.Fatalf("LoadConfig() returned no error, want one containing %q", tc.want)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("LoadConfig() error = %q, want it to contain %q", err, tc.want)
			}
		})
	}
}
