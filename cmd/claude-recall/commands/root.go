package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/helmling/claude-recall/internal/config"
	"github.com/helmling/claude-recall/internal/sessions"
	"github.com/helmling/claude-recall/internal/tui"
)

var (
	debugMode  bool
	configPath string
	claudeDir  string
)

// NewRootCommand creates the root command for claude-recall.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "claude-recall",
		Short: "Browse and resume Claude Code sessions",
		Long: `claude-recall scans ~/.claude/projects for session logs, groups them
by project, and lets you pick a session to resume in an interactive browser.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI()
		},
	}

	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false,
		"print discovered projects and sessions instead of launching the TUI")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"path to a config file (default: "+config.DefaultPath()+")")
	rootCmd.PersistentFlags().StringVar(&claudeDir, "claude-dir", "",
		"override the Claude data directory")

	rootCmd.AddCommand(NewShowCommand())
	rootCmd.AddCommand(NewStatsCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	var cfg *config.Config
	var err error

	if configPath != "" {
		cfg, err = config.FromFile(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if claudeDir != "" {
		cfg.Claude.ClaudeDir = claudeDir
	}
	return cfg, nil
}

func setupLogging() {
	level := slog.LevelWarn
	if debugMode {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}

func runTUI() error {
	setupLogging()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store := sessions.NewStore(cfg)

	if debugMode {
		return runDebugMode(store)
	}

	result, err := tui.Show(store, cfg)
	if err != nil {
		return fmt.Errorf("failed to run session browser: %w", err)
	}
	if result == nil {
		return nil
	}

	if result.Session != nil {
		return sessions.ResumeSession(cfg, result.Session.ID, result.Session.ProjectPath)
	}
	if result.NewSessionPath != "" {
		return sessions.NewSession(cfg, result.NewSessionPath)
	}
	return nil
}

// runDebugMode scans synchronously and dumps the aggregate as plain text.
func runDebugMode(store *sessions.Store) error {
	if err := store.Scan(); err != nil {
		return err
	}

	projects := store.Projects()
	fmt.Printf("Found %d projects, %d sessions\n\n",
		len(projects), store.TotalSessionCount())

	for _, project := range projects {
		fmt.Printf("%s (%s)\n", project.Name, project.Path)
		fmt.Printf("  %d sessions, %d messages, last active %s\n",
			project.SessionCount, project.TotalMessages,
			project.LastActivity.Format("2006-01-02 15:04"))

		projectSessions, _ := store.SessionsForProject(project.EncodedPath)
		for _, session := range projectSessions {
			fmt.Printf("  - %s  %s  %d msgs\n",
				session.DisplayName(),
				session.LastMessage.Format("2006-01-02 15:04"),
				session.MessageCount)
		}
		fmt.Println()
	}

	return nil
}
