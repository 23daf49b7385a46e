package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.True(t, filepath.IsAbs(cfg.Claude.ClaudeDir))
	assert.Equal(t, "projects", filepath.Base(cfg.ProjectsDir()))
	assert.True(t, cfg.Display.ShowAgentSessions)
}

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[claude]
claude_dir = "/srv/claude"
dangerously_skip_permissions = true

[display]
date_format = "2006-01-02"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := FromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/claude", cfg.Claude.ClaudeDir)
	assert.Equal(t, filepath.Join("/srv/claude", "projects"), cfg.ProjectsDir())
	assert.True(t, cfg.Claude.DangerouslySkipPermissions)
	assert.Equal(t, "2006-01-02", cfg.Display.DateFormat)
	// Unset values keep their defaults.
	assert.True(t, cfg.Display.ShowAgentSessions)
}

func TestFromFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("not [valid toml"), 0o644))

	_, err := FromFile(path)
	assert.Error(t, err)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".claude"), ExpandPath("~/.claude"))
	assert.Equal(t, "/absolute/path", ExpandPath("/absolute/path"))
	assert.Equal(t, "relative", ExpandPath("relative"))
}
