package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSessionDisplayName(t *testing.T) {
	s := Session{ID: "3f8a2b1c-9d7e-4a5f-8b2c-1d9e7a5f3b2c"}
	assert.Equal(t, "3f8a2b1c", s.DisplayName())

	s.AgentID = "a1b2c3"
	assert.Equal(t, "agent-a1b2c3", s.DisplayName())

	s.Slug = "twinkly-singing-nova"
	assert.Equal(t, "twinkly-singing-nova", s.DisplayName())

	short := Session{ID: "abc"}
	assert.Equal(t, "abc", short.DisplayName())
}

func TestSessionResumeCommand(t *testing.T) {
	s := Session{ID: "abc-123"}
	assert.Equal(t, "claude --resume abc-123", s.ResumeCommand())
}

func TestSessionDurationString(t *testing.T) {
	start := time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		last time.Time
		want string
	}{
		{"hours and minutes", start.Add(2*time.Hour + 15*time.Minute), "2h 15m"},
		{"minutes only", start.Add(5 * time.Minute), "5m"},
		{"under a minute", start.Add(30 * time.Second), "< 1m"},
		{"single entry", start, "< 1m"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := Session{FirstMessage: start, LastMessage: tc.last}
			assert.Equal(t, tc.want, s.DurationString())
		})
	}
}
