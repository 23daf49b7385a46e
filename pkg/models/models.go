package models

import (
	"fmt"
	"time"
)

// Session summarizes one Claude Code session JSONL file.
type Session struct {
	// ID comes from the file name. The sessionId recorded inside the file
	// can belong to a parent session for agent sidechains, so it is never
	// used for identity.
	ID string
	// ProjectPath is the decoded working directory of the session.
	ProjectPath string
	// Slug is the human-readable session name, when recorded.
	Slug string
	// GitBranch is the branch at session start, when recorded.
	GitBranch string
	// AgentID identifies the agent for sidechain sessions.
	AgentID string
	// FirstMessage and LastMessage are the timestamps of the first and
	// last parsed entries.
	FirstMessage time.Time
	LastMessage  time.Time
	// MessageCount is the number of successfully parsed entries.
	MessageCount int
	// Preview is a sanitized excerpt of the first user message.
	Preview string
	// FilePath is the backing JSONL file.
	FilePath string
	// FileSize is the byte length of the backing file at scan time.
	FileSize int64
	// IsAgent marks sidechain sessions, which cannot be resumed on their
	// own.
	IsAgent bool
}

// DisplayName returns a short label for the session: the slug when present,
// an agent label for sidechains, otherwise a session ID prefix.
func (s *Session) DisplayName() string {
	if s.Slug != "" {
		return s.Slug
	}
	if s.AgentID != "" {
		return "agent-" + s.AgentID
	}
	if len(s.ID) > 8 {
		return s.ID[:8]
	}
	return s.ID
}

// ResumeCommand returns the shell command that resumes this session.
func (s *Session) ResumeCommand() string {
	return "claude --resume " + s.ID
}

// Duration is the approximate session length, first message to last.
func (s *Session) Duration() time.Duration {
	return s.LastMessage.Sub(s.FirstMessage)
}

// DurationString formats Duration for display, e.g. "2h 15m".
func (s *Session) DurationString() string {
	d := s.Duration()
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60

	switch {
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	case minutes > 0:
		return fmt.Sprintf("%dm", minutes)
	default:
		return "< 1m"
	}
}

// Project groups the sessions recorded under one encoded directory.
type Project struct {
	// EncodedPath is the flattened directory name and the project's
	// stable key.
	EncodedPath string
	// Path is the best-effort decoded filesystem path.
	Path string
	// Name is the last component of Path.
	Name string
	// SessionCount and TotalMessages are recomputed on every scan.
	SessionCount  int
	TotalMessages int
	// LastActivity is the most recent LastMessage across the project's
	// sessions.
	LastActivity time.Time
	// Sessions is filled in by consumers when a project is opened.
	Sessions []Session
}
