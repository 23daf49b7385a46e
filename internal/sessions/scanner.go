package sessions

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/helmling/claude-recall/internal/pathenc"
	"github.com/helmling/claude-recall/pkg/models"
)

// ScanProjects enumerates the immediate subdirectories of root, summarizes
// every session log inside each, and returns the aggregate view: projects
// ordered by most recent activity plus the per-project session lists keyed
// by encoded directory name.
//
// The scan is best-effort. Unreadable subdirectories and files are skipped;
// a missing root yields an empty result; any other failure to list the root
// is reported.
func ScanProjects(root string) ([]models.Project, map[string][]models.Session, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, map[string][]models.Session{}, nil
		}
		return nil, nil, fmt.Errorf("failed to read projects directory: %w", err)
	}

	var projects []models.Project
	sessionsByProject := make(map[string][]models.Session)

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		encoded := entry.Name()
		sessions := loadProjectSessions(filepath.Join(root, encoded))
		if len(sessions) == 0 {
			continue
		}

		project := models.Project{
			EncodedPath:  encoded,
			Path:         pathenc.Decode(encoded),
			SessionCount: len(sessions),
		}
		project.Name = filepath.Base(project.Path)
		for _, s := range sessions {
			project.TotalMessages += s.MessageCount
			if s.LastMessage.After(project.LastActivity) {
				project.LastActivity = s.LastMessage
			}
		}

		sessionsByProject[encoded] = sessions
		projects = append(projects, project)
	}

	sort.SliceStable(projects, func(i, j int) bool {
		return projects[i].LastActivity.After(projects[j].LastActivity)
	})

	return projects, sessionsByProject, nil
}

// loadProjectSessions summarizes every .jsonl file directly inside dir and
// drops agent sidechains, which cannot be resumed on their own. Sidechain
// files are still parsed; the exclusion happens after the summary is built.
func loadProjectSessions(dir string) []models.Session {
	files, err := os.ReadDir(dir)
	if err != nil {
		slog.Debug("skipping unreadable project directory", "dir", dir, "error", err)
		return nil
	}

	var sessions []models.Session
	for _, f := range files {
		if f.IsDir() || filepath.Ext(f.Name()) != logExt {
			continue
		}

		sess, err := ParseSessionSummary(filepath.Join(dir, f.Name()))
		if err != nil {
			if !errors.Is(err, ErrNoEntries) {
				slog.Debug("skipping unreadable session file", "file", f.Name(), "error", err)
			}
			continue
		}
		if sess.IsAgent {
			continue
		}
		sessions = append(sessions, sess)
	}

	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].LastMessage.After(sessions[j].LastMessage)
	})

	return sessions
}
