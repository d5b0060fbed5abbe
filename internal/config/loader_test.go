package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if cfg.Version != "1" {
		t.Errorf("Expected version '1', got '%s'", cfg.Version)
	}
	if cfg.Store.Path != filepath.Join(".tock", "tasks.json") {
		t.Errorf("Expected default store path .tock/tasks.json, got '%s'", cfg.Store.Path)
	}
	if cfg.Store.Format != "json" {
		t.Errorf("Expected default format 'json', got '%s'", cfg.Store.Format)
	}
	if !cfg.Journal.Enabled {
		t.Error("Expected journal to be enabled by default")
	}
	if cfg.Journal.Path != filepath.Join(".tock", "journal.jsonl") {
		t.Errorf("Expected default journal path .tock/journal.jsonl, got '%s'", cfg.Journal.Path)
	}
}

func TestWriteDefault(t *testing.T) {
	t.Parallel()
	tmpDir := t.TempDir()

	path := filepath.Join(tmpDir, "config.yaml")
	if err := WriteDefault(path); err != nil {
		t.Fatalf("WriteDefault failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read config: %v", err)
	}

	contentStr := string(content)
	if !strings.Contains(contentStr, "format: json") {
		t.Error("Expected 'format: json' in default config")
	}
	if !strings.Contains(contentStr, "journal:") {
		t.Error("Expected journal section in default config")
	}
}

func TestLoadNoConfigFilesReturnsDefaults(t *testing.T) {
	// Cannot use t.Parallel() - modifies HOME env var and cwd
	tmpHome := t.TempDir()
	tmpProject := t.TempDir()
	t.Setenv("HOME", tmpHome)

	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)
	os.Chdir(tmpProject)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Store.Format != "json" {
		t.Errorf("Expected default format 'json', got '%s'", cfg.Store.Format)
	}
}

func TestLoadLayering(t *testing.T) {
	// Cannot use t.Parallel() - modifies HOME env var and cwd
	tmpHome := t.TempDir()
	tmpProject := t.TempDir()
	t.Setenv("HOME", tmpHome)

	// Global config switches format to yaml
	globalDir := filepath.Join(tmpHome, ".tock")
	if err := os.MkdirAll(globalDir, 0755); err != nil {
		t.Fatal(err)
	}
	globalConfig := "version: \"1\"\nstore:\n  format: yaml\n"
	if err := os.WriteFile(filepath.Join(globalDir, "config.yaml"), []byte(globalConfig), 0644); err != nil {
		t.Fatal(err)
	}

	// Project config overrides the store path and disables the journal
	projectDir := filepath.Join(tmpProject, ".tock")
	if err := os.MkdirAll(projectDir, 0755); err != nil {
		t.Fatal(err)
	}
	projectConfig := "store:\n  path: work/tasks.yaml\njournal:\n  enabled: false\n"
	if err := os.WriteFile(filepath.Join(projectDir, "config.yaml"), []byte(projectConfig), 0644); err != nil {
		t.Fatal(err)
	}

	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)
	os.Chdir(tmpProject)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Store.Format != "yaml" {
		t.Errorf("Expected global format 'yaml', got '%s'", cfg.Store.Format)
	}
	if cfg.Store.Path != "work/tasks.yaml" {
		t.Errorf("Expected project path override, got '%s'", cfg.Store.Path)
	}
	if cfg.Journal.Enabled {
		t.Error("Expected project config to disable the journal")
	}
}
