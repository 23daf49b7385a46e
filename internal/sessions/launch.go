package sessions

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/helmling/claude-recall/internal/config"
)

// ResumeSession changes to the project directory and runs claude --resume
// wired to the current terminal.
func ResumeSession(cfg *config.Config, sessionID, projectPath string) error {
	return runClaude(cfg, projectPath, "--resume", sessionID)
}

// NewSession starts a fresh claude conversation in the project directory.
func NewSession(cfg *config.Config, projectPath string) error {
	return runClaude(cfg, projectPath)
}

func runClaude(cfg *config.Config, projectPath string, args ...string) error {
	if projectPath != "" {
		if err := os.Chdir(projectPath); err != nil {
			return fmt.Errorf("failed to change to project directory %s: %w", projectPath, err)
		}
	}

	if cfg.Claude.DangerouslySkipPermissions {
		args = append(args, "--dangerously-skip-permissions")
	}

	cmd := exec.Command(findClaudeBinary(), args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// findClaudeBinary looks for claude in PATH, then in the usual install
// locations.
func findClaudeBinary() string {
	if path, err := exec.LookPath("claude"); err == nil {
		return path
	}

	homeDir, _ := os.UserHomeDir()
	for _, candidate := range []string{
		filepath.Join(homeDir, ".claude", "local", "claude"),
		"/usr/local/bin/claude",
		"/opt/homebrew/bin/claude",
	} {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "claude"
}
