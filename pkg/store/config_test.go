package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
)

func TestLoadConfigPrecedence(t *testing.T) {
	t.Setenv("DAYBOOK_CONFIG_PATH", "")
	t.Setenv("DAYBOOK_PATH", "")
	t.Setenv("BULLET_JOURNAL_PATH", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("default config: %v", err)
	}
	want, _ := homedir.Expand(DefaultPath)
	if cfg.BasePath() != want {
		t.Fatalf("expected default %q, got %q", want, cfg.BasePath())
	}

	t.Setenv("BULLET_JOURNAL_PATH", "/tmp/legacy")
	cfg, err = LoadConfig()
	if err != nil {
		t.Fatalf("legacy config: %v", err)
	}
	if cfg.BasePath() != "/tmp/legacy" {
		t.Fatalf("expected legacy path, got %q", cfg.BasePath())
	}

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".daybook.yaml"), []byte("path: /tmp/from-file\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("DAYBOOK_CONFIG_PATH", dir)
	cfg, err = LoadConfig()
	if err != nil {
		t.Fatalf("file config: %v", err)
	}
	if cfg.BasePath() != "/tmp/from-file" {
		t.Fatalf("expected file path, got %q", cfg.BasePath())
	}
	if ConfigFile(cfg) == "" {
		t.Fatalf("expected config file to be reported")
	}

	t.Setenv("DAYBOOK_PATH", "/tmp/from-env")
	cfg, err = LoadConfig()
	if err != nil {
		t.Fatalf("env config: %v", err)
	}
	if cfg.BasePath() != "/tmp/from-env" {
		t.Fatalf("expected env path, got %q", cfg.BasePath())
	}
}

func TestLoadConfigMalformedFile(t *testing.T) {
	t.Setenv("DAYBOOK_PATH", "")
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".daybook.yaml"), []byte("path: [unterminated\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("DAYBOOK_CONFIG_PATH", dir)
	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected malformed config to fail")
	}
}
