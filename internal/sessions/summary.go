package sessions

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/helmling/claude-recall/internal/pathenc"
	"github.com/helmling/claude-recall/pkg/models"
)

const (
	logExt = ".jsonl"

	previewMaxRunes = 200

	initialScanBufSize = 64 * 1024
	maxScanTokenSize   = 10 * 1024 * 1024
)

// ErrNoEntries reports a log file with zero parseable entries. Such a file
// is not broken in any actionable way; it simply yields no session.
var ErrNoEntries = errors.New("session has no entries")

// ParseSessionSummary reads one session file start to end and distills it
// into a Session record. Blank and malformed lines are skipped; metadata
// fields take the first non-empty value they see and never change after
// that. A file where no line parses returns ErrNoEntries.
func ParseSessionSummary(path string) (models.Session, error) {
	f, err := os.Open(path)
	if err != nil {
		return models.Session{}, fmt.Errorf("failed to open session file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return models.Session{}, fmt.Errorf("failed to stat session file: %w", err)
	}

	// The file name is authoritative for identity: sidechain files carry
	// the parent session's sessionId in their entries.
	sess := models.Session{
		ID:       strings.TrimSuffix(filepath.Base(path), logExt),
		FilePath: path,
		FileSize: info.Size(),
	}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, initialScanBufSize), maxScanTokenSize)

	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		entry, ts, ok := parseLogEntry(line)
		if !ok {
			continue
		}
		sess.MessageCount++

		if sess.ProjectPath == "" {
			sess.ProjectPath = entry.Cwd
		}
		if sess.Slug == "" {
			sess.Slug = entry.Slug
		}
		if sess.GitBranch == "" {
			sess.GitBranch = entry.GitBranch
		}
		if sess.AgentID == "" {
			sess.AgentID = entry.AgentID
		}
		if entry.IsSidechain {
			sess.IsAgent = true
		}

		// Entries are chronological in practice, but first/last are
		// tracked by arrival order rather than trusting a sort.
		if sess.FirstMessage.IsZero() {
			sess.FirstMessage = ts
		}
		sess.LastMessage = ts

		if sess.Preview == "" && entry.Type == "user" {
			if _, text := messageText(entry.Message); text != "" {
				sess.Preview = sanitizePreview(text)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return models.Session{}, fmt.Errorf("failed to read session file: %w", err)
	}

	if sess.MessageCount == 0 {
		return models.Session{}, ErrNoEntries
	}

	// When no entry carried a cwd, fall back to decoding the project
	// directory name.
	if sess.ProjectPath == "" {
		sess.ProjectPath = pathenc.Decode(filepath.Base(filepath.Dir(path)))
	}

	return sess, nil
}

// sanitizePreview flattens control characters (including newlines) to
// spaces, trims, and caps the result at previewMaxRunes.
func sanitizePreview(text string) string {
	flattened := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, text)

	runes := []rune(strings.TrimSpace(flattened))
	if len(runes) > previewMaxRunes {
		return string(runes[:previewMaxRunes]) + "..."
	}
	return string(runes)
}
