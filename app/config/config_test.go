package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"todo-api/app/config"
)

func TestLoadProfiles(t *testing.T) {
	t.Setenv("TODO_CONFIG", "")

	t.Setenv("TODO_ENV", "")
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Env != config.Development {
		t.Errorf("expected development by default, got %q", cfg.Env)
	}
	if cfg.DefaultTodoListName != "__master__" {
		t.Errorf("expected __master__ default list name, got %q", cfg.DefaultTodoListName)
	}

	t.Setenv("TODO_ENV", "testing")
	testCfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if testCfg.DatabasePath == cfg.DatabasePath {
		t.Error("expected testing profile to use its own database")
	}

	t.Setenv("TODO_ENV", "staging")
	if _, err := config.Load(); err == nil {
		t.Error("expected an error for an unknown profile name")
	}
}

func TestLoadTOMLOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todo.toml")
	override := []byte("addr = \"127.0.0.1:9090\"\nlog_level = \"warn\"\n")
	if err := os.WriteFile(path, override, 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	t.Setenv("TODO_ENV", "production")
	t.Setenv("TODO_CONFIG", path)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Addr != "127.0.0.1:9090" {
		t.Errorf("expected overridden addr, got %q", cfg.Addr)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("expected overridden log level, got %q", cfg.LogLevel)
	}
	if cfg.DefaultTodoListName != "__master__" {
		t.Errorf("expected profile default to survive, got %q", cfg.DefaultTodoListName)
	}
}
