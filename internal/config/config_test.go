package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/aerissecure/xl2tex/latex"
	"github.com/aerissecure/xl2tex/xlsx"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "xl2tex.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
round_to_dp: true
num_dp: 3
sheet: Results
range: B2:H20
reader: excelize
output: table.tex
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	want := Config{
		Settings: latex.Settings{RoundToDP: true, NumDP: 3, Booktabs: true},
		Sheet:    "Results",
		Range:    "B2:H20",
		Reader:   xlsx.ReaderExcelize,
		Output:   "table.tex",
	}
	if cfg != want {
		t.Errorf("Load() = %+v, want %+v", cfg, want)
	}
}

func TestLoadKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "booktabs: false\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Booktabs || cfg.NumDP != 2 || cfg.Reader != xlsx.ReaderUnioffice {
		t.Errorf("Load() = %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		target error
	}{
		{name: "negative dp", body: "num_dp: -1\n", target: latex.ErrInvalidSettings},
		{name: "unknown reader", body: "reader: xlrd\n", target: xlsx.ErrUnknownReader},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if !errors.Is(err, tt.target) {
				t.Errorf("got %v, want %v", err, tt.target)
			}
		})
	}

	for _, body := range []string{"range: A0\n", "num_dp: [1\n"} {
		if _, err := Load(writeConfig(t, body)); err == nil {
			t.Errorf("Load(%q) should fail", body)
		}
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: got %v", err)
	}
}
