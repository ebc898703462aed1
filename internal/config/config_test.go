package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"shuttle/internal/config"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, path, exists, err := config.Load(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if exists {
		t.Fatalf("expected missing config, got exists for %s", path)
	}
	if cfg.Folders.ImportLabel != "Import Folder" {
		t.Fatalf("unexpected default import label %q", cfg.Folders.ImportLabel)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadExpandsAndOverrides(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	content := `
[paths]
import_dir = "` + filepath.Join(dir, "inbox") + `"
failed_dir = "` + filepath.Join(dir, "quarantine") + `"
log_dir = "` + filepath.Join(dir, "logs") + `"

[folders]
import_label = "Inbox"
failed_label = "Quarantine"
`
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, exists, err := config.Load(cfgPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to be detected")
	}
	if cfg.Paths.ImportDir != filepath.Join(dir, "inbox") {
		t.Fatalf("unexpected import dir %q", cfg.Paths.ImportDir)
	}
	if cfg.Folders.FailedLabel != "Quarantine" {
		t.Fatalf("unexpected failed label %q", cfg.Folders.FailedLabel)
	}
	if got := cfg.DatabasePath(); got != filepath.Join(dir, "logs", "shuttle.db") {
		t.Fatalf("unexpected database path %q", got)
	}
}

func TestLoadEmptyWatchedPathStaysEmpty(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	content := `
[paths]
import_dir = ""
log_dir = "` + filepath.Join(dir, "logs") + `"
`
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, _, err := config.Load(cfgPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Paths.ImportDir != "" {
		t.Fatalf("expected empty import dir to stay empty, got %q", cfg.Paths.ImportDir)
	}
}

func TestValidateRejectsBadLoggingFormat(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.Format = "yaml"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for bad logging format")
	}
}

func TestValidateRejectsSameWatchedFolders(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Paths.ImportDir = dir
	cfg.Paths.FailedDir = dir
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for identical watched folders")
	}
}

func TestCreateSample(t *testing.T) {
	target := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(target); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected sample config content")
	}
}
