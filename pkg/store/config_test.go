package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mitchellh/go-homedir"
)

func TestLoadConfigDefaults(t *testing.T) {
	homedir.DisableCache = true
	t.Setenv("TODO_CONFIG_PATH", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	home := os.Getenv("HOME")
	if want := filepath.Join(home, ".todo.db"); cfg.BasePath() != want {
		t.Fatalf("BasePath = %q, want %q", cfg.BasePath(), want)
	}
	if cfg.Key() != "todos" {
		t.Fatalf("Key = %q", cfg.Key())
	}
	if cfg.RemovalDelay() != 500*time.Millisecond {
		t.Fatalf("RemovalDelay = %v", cfg.RemovalDelay())
	}
	if cfg.ToastDuration() != 3*time.Second {
		t.Fatalf("ToastDuration = %v", cfg.ToastDuration())
	}
	if want := filepath.Join(cfg.BasePath(), "todo.log"); cfg.LogFile() != want {
		t.Fatalf("LogFile = %q, want %q", cfg.LogFile(), want)
	}
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	data := "path: " + filepath.Join(dir, "db") + "\nremoval_delay: 250ms\nkey: mine\n"
	if err := os.WriteFile(filepath.Join(dir, ".todo.yaml"), []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("TODO_CONFIG_PATH", dir)
	t.Setenv("TODO_TOAST_DURATION", "1s")
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.BasePath() != filepath.Join(dir, "db") {
		t.Fatalf("BasePath = %q", cfg.BasePath())
	}
	if cfg.Key() != "mine" {
		t.Fatalf("Key = %q", cfg.Key())
	}
	if cfg.RemovalDelay() != 250*time.Millisecond {
		t.Fatalf("RemovalDelay = %v", cfg.RemovalDelay())
	}
	if cfg.ToastDuration() != time.Second {
		t.Fatalf("ToastDuration = %v", cfg.ToastDuration())
	}
}
