// Package config loads claude-recall configuration from TOML.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config is the top-level configuration.
type Config struct {
	Claude  ClaudeConfig  `toml:"claude"`
	Display DisplayConfig `toml:"display"`
}

// ClaudeConfig points at the Claude Code data directory.
type ClaudeConfig struct {
	// ClaudeDir is the Claude home directory (default ~/.claude).
	ClaudeDir string `toml:"claude_dir"`
	// DangerouslySkipPermissions passes --dangerously-skip-permissions to
	// spawned claude processes.
	DangerouslySkipPermissions bool `toml:"dangerously_skip_permissions"`
}

// DisplayConfig controls presentation details.
type DisplayConfig struct {
	// DateFormat is the time.Format layout used for session timestamps.
	DateFormat string `toml:"date_format"`
	// ShowAgentSessions includes sidechain sessions in detail listings.
	ShowAgentSessions bool `toml:"show_agent_sessions"`
}

// Default returns the built-in configuration.
func Default() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		Claude: ClaudeConfig{
			ClaudeDir: filepath.Join(home, ".claude"),
		},
		Display: DisplayConfig{
			DateFormat:        "01/02 15:04",
			ShowAgentSessions: true,
		},
	}
}

// Load reads the config file from the default location, falling back to
// defaults when no file exists.
func Load() (*Config, error) {
	path := DefaultPath()
	if _, err := os.Stat(path); err != nil {
		return Default(), nil
	}
	return FromFile(path)
}

// FromFile reads a specific config file. Values not present in the file
// keep their defaults.
func FromFile(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(ExpandPath(path), cfg); err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	cfg.Claude.ClaudeDir = ExpandPath(cfg.Claude.ClaudeDir)
	return cfg, nil
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(base, "claude-recall", "config.toml")
}

// ProjectsDir returns the directory holding one subdirectory per project.
func (c *Config) ProjectsDir() string {
	return filepath.Join(ExpandPath(c.Claude.ClaudeDir), "projects")
}

// ExpandPath expands a leading ~/ to the user home directory.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
