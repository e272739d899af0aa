package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Env selects a configuration profile.
type Env string

// All possible envs.
const (
	Development Env = "development"
	Testing     Env = "testing"
	Production  Env = "production"
)

// Config holds the full configuration for the server. A profile fixes the
// defaults; individual values can be overridden from an optional TOML file
// named by TODO_CONFIG.
type Config struct {
	Env Env `toml:"-"`

	Addr                string `toml:"addr"`
	DatabasePath        string `toml:"database_path"`
	DefaultTodoListName string `toml:"default_todolist_name"`
	LogLevel            string `toml:"log_level"`
}

func defaults(env Env) *Config {
	cfg := &Config{
		Env:                 env,
		Addr:                "0.0.0.0:8080",
		DatabasePath:        "todo.db",
		DefaultTodoListName: "__master__",
		LogLevel:            "debug",
	}
	switch env {
	case Testing:
		cfg.DatabasePath = "todo_test.db"
	case Production:
		cfg.LogLevel = "info"
	}
	return cfg
}

// Load builds the configuration for the profile named by TODO_ENV
// (development when unset) and applies overrides from the TOML file named by
// TODO_CONFIG, if any.
func Load() (*Config, error) {
	env := Env(os.Getenv("TODO_ENV"))
	if env == "" {
		env = Development
	}
	switch env {
	case Development, Testing, Production:
	default:
		return nil, fmt.Errorf("invalid configuration profile name: %q", env)
	}

	cfg := defaults(env)

	if path := os.Getenv("TODO_CONFIG"); path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}
	return cfg, nil
}
