package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/helmling/claude-recall/internal/sessions"
)

type (
	// ScanCompletedMsg reports a finished discovery scan.
	ScanCompletedMsg struct {
		RequestID string
		Err       error
	}

	// TickMsg drives the spinner animation.
	TickMsg time.Time
)

// scanCmd runs a store scan off the update loop and delivers the outcome.
func scanCmd(store *sessions.Store) tea.Cmd {
	return func() tea.Msg {
		requestID, results := store.ScanAsync(context.Background())
		result := <-results
		return ScanCompletedMsg{RequestID: requestID, Err: result.Err}
	}
}

// tickCmd creates a ticker for the spinner animation.
func tickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
