package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/helmling/claude-recall/internal/stats"
)

// NewStatsCommand creates the stats command.
func NewStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show per-project log volume and token usage",
		Long: `stats aggregates every session log at once with DuckDB and prints
entry counts and token totals per project.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			usages, err := stats.FetchProjectUsage(cfg.ProjectsDir())
			if err != nil {
				return fmt.Errorf("failed to gather usage stats: %w", err)
			}
			if len(usages) == 0 {
				fmt.Println("No session logs found")
				return nil
			}

			header := color.New(color.Bold)
			header.Printf("%-40s %10s %10s %10s  %s\n",
				"PROJECT", "ENTRIES", "INPUT", "OUTPUT", "LAST ACTIVITY")

			for _, u := range usages {
				name := u.ProjectPath
				if len(name) > 40 {
					name = "..." + name[len(name)-37:]
				}

				lastActivity := "-"
				if !u.LastActivity.IsZero() {
					lastActivity = u.LastActivity.Format("2006-01-02 15:04")
				}

				fmt.Printf("%-40s %10d %10s %10s  %s\n",
					name, u.EntryCount,
					stats.FormatTokens(u.InputTokens),
					stats.FormatTokens(u.OutputTokens),
					lastActivity)
			}
			return nil
		},
	}
}
