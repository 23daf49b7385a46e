// Package stats answers corpus-wide questions about the session logs.
// Unlike the streaming scanner, which summarizes one file at a time, these
// aggregations cut across every project at once, so they run as SQL over
// the whole corpus via DuckDB's read_json.
package stats

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"time"

	"github.com/helmling/claude-recall/internal/db"
)

// ProjectUsage aggregates log volume and token spend for one project.
type ProjectUsage struct {
	ProjectPath  string
	EntryCount   int64
	InputTokens  int64
	OutputTokens int64
	LastActivity time.Time
}

// FetchProjectUsage aggregates entry counts and token totals per project
// across every session file under projectsDir, most recently active first.
func FetchProjectUsage(projectsDir string) ([]ProjectUsage, error) {
	database, err := db.Get()
	if err != nil {
		return nil, err
	}

	globPattern := filepath.Join(projectsDir, "**", "*.jsonl")

	query := fmt.Sprintf(`
		SELECT
			COALESCE(cwd, 'Unknown') AS project_path,
			COUNT(*) AS entry_count,
			COALESCE(SUM(message.usage.input_tokens), 0) AS input_tokens,
			COALESCE(SUM(message.usage.output_tokens), 0) AS output_tokens,
			MAX(timestamp) AS last_activity
		FROM read_json('%s',
			format = 'newline_delimited',
			union_by_name = true,
			filename = true
		)
		WHERE sessionId IS NOT NULL
		GROUP BY cwd
		ORDER BY MAX(timestamp) DESC
	`, globPattern)

	rows, err := database.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to execute usage query: %w", err)
	}
	defer rows.Close()

	var usages []ProjectUsage
	for rows.Next() {
		var u ProjectUsage
		var input, output sql.NullInt64
		var lastActivity sql.NullString

		if err := rows.Scan(&u.ProjectPath, &u.EntryCount, &input, &output, &lastActivity); err != nil {
			continue
		}

		u.InputTokens = input.Int64
		u.OutputTokens = output.Int64
		if lastActivity.Valid {
			if ts, err := time.Parse(time.RFC3339, lastActivity.String); err == nil {
				u.LastActivity = ts.Local()
			}
		}

		usages = append(usages, u)
	}

	return usages, nil
}

// FormatTokens renders a token count compactly, e.g. "1.2M" or "450.0K".
func FormatTokens(n int64) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1_000)
	default:
		return fmt.Sprintf("%d", n)
	}
}
