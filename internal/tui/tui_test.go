package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helmling/claude-recall/internal/config"
	"github.com/helmling/claude-recall/internal/sessions"
	"github.com/helmling/claude-recall/pkg/models"
)

func newTestModel(t *testing.T) model {
	t.Helper()

	cfg := config.Default()
	cfg.Claude.ClaudeDir = t.TempDir()
	require.NoError(t, os.MkdirAll(cfg.ProjectsDir(), 0o755))

	store := sessions.NewStore(cfg)
	return initialModel(store, cfg)
}

func sized(t *testing.T, m model) model {
	t.Helper()

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return updated.(model)
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestInitialModelStartsLoading(t *testing.T) {
	m := newTestModel(t)

	assert.True(t, m.loading)
	assert.Equal(t, projectView, m.currentMode)
	assert.NotNil(t, m.indicator)
}

func TestScanCompletedPopulatesProjects(t *testing.T) {
	m := sized(t, newTestModel(t))

	m.projects = nil
	updated, _ := m.Update(ScanCompletedMsg{RequestID: "req"})
	m = updated.(model)

	assert.False(t, m.loading)
	assert.Empty(t, m.projects)
	assert.Equal(t, projectView, m.currentMode)
}

func TestScanCompletedErrorQuits(t *testing.T) {
	m := sized(t, newTestModel(t))

	updated, cmd := m.Update(ScanCompletedMsg{Err: os.ErrPermission})
	m = updated.(model)

	assert.Error(t, m.err)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestProjectNavigation(t *testing.T) {
	m := sized(t, newTestModel(t))
	m.loading = false
	m.projects = []models.Project{
		{EncodedPath: "-tmp-a", Path: "/tmp/a", Name: "a"},
		{EncodedPath: "-tmp-b", Path: "/tmp/b", Name: "b"},
	}

	updated, _ := m.Update(keyMsg("j"))
	m = updated.(model)
	assert.Equal(t, 1, m.projectCursor)

	// Cursor stays on the last entry.
	updated, _ = m.Update(keyMsg("down"))
	m = updated.(model)
	assert.Equal(t, 1, m.projectCursor)

	updated, _ = m.Update(keyMsg("k"))
	m = updated.(model)
	assert.Equal(t, 0, m.projectCursor)

	updated, _ = m.Update(keyMsg("up"))
	m = updated.(model)
	assert.Equal(t, 0, m.projectCursor)
}

func TestEnterOpensProjectFromStore(t *testing.T) {
	cfg := config.Default()
	cfg.Claude.ClaudeDir = t.TempDir()
	projectDir := filepath.Join(cfg.ProjectsDir(), "-tmp-recall")
	require.NoError(t, os.MkdirAll(projectDir, 0o755))

	line := `{"type":"user","uuid":"u1","sessionId":"s1",` +
		`"timestamp":"2026-08-20T10:00:00Z","cwd":"/tmp/recall",` +
		`"message":{"role":"user","content":"hello"}}`
	require.NoError(t, os.WriteFile(
		filepath.Join(projectDir, "abc.jsonl"), []byte(line+"\n"), 0o644))

	store := sessions.NewStore(cfg)
	require.NoError(t, store.Scan())

	m := sized(t, initialModel(store, cfg))
	m.loading = false
	m.projects = store.Projects()
	require.Len(t, m.projects, 1)

	updated, _ := m.Update(keyMsg("enter"))
	m = updated.(model)

	assert.Equal(t, sessionView, m.currentMode)
	require.NotNil(t, m.selectedProject)
	require.Len(t, m.selectedProject.Sessions, 1)
	assert.Equal(t, "abc", m.selectedProject.Sessions[0].ID)

	// Selecting the session hands it back as the result.
	updated, cmd := m.Update(keyMsg("enter"))
	m = updated.(model)
	require.NotNil(t, m.result)
	require.NotNil(t, m.result.Session)
	assert.Equal(t, "abc", m.result.Session.ID)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestEscReturnsToProjectView(t *testing.T) {
	m := sized(t, newTestModel(t))
	m.loading = false
	m.currentMode = sessionView
	m.selectedProject = &models.Project{Name: "a"}
	m.sessionCursor = 2

	updated, _ := m.Update(keyMsg("esc"))
	m = updated.(model)

	assert.Equal(t, projectView, m.currentMode)
	assert.Nil(t, m.selectedProject)
	assert.Equal(t, 0, m.sessionCursor)
}

func TestNewSessionKey(t *testing.T) {
	m := sized(t, newTestModel(t))
	m.loading = false
	m.projects = []models.Project{{EncodedPath: "-tmp-a", Path: "/tmp/a", Name: "a"}}

	updated, cmd := m.Update(keyMsg("n"))
	m = updated.(model)

	require.NotNil(t, m.result)
	assert.Equal(t, "/tmp/a", m.result.NewSessionPath)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestRescanKey(t *testing.T) {
	m := sized(t, newTestModel(t))
	m.loading = false

	updated, cmd := m.Update(keyMsg("r"))
	m = updated.(model)

	assert.True(t, m.loading)
	assert.NotNil(t, cmd)
}

func TestQuitKeys(t *testing.T) {
	for _, key := range []string{"q", "ctrl+c"} {
		m := sized(t, newTestModel(t))
		m.loading = false

		msg := keyMsg(key)
		if key == "ctrl+c" {
			msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		}
		_, cmd := m.Update(msg)
		require.NotNil(t, cmd, key)
		assert.Equal(t, tea.Quit(), cmd(), key)
	}
}

func TestTickAdvancesSpinnerWhileLoading(t *testing.T) {
	m := sized(t, newTestModel(t))
	require.True(t, m.loading)

	before := m.indicator.spinner.frame
	updated, cmd := m.Update(TickMsg(time.Now()))
	m = updated.(model)

	assert.NotEqual(t, before, m.indicator.spinner.frame)
	assert.NotNil(t, cmd)
}

func TestViewRendersProjectList(t *testing.T) {
	m := sized(t, newTestModel(t))
	m.loading = false
	m.projects = []models.Project{
		{EncodedPath: "-tmp-a", Path: "/tmp/a", Name: "recall",
			SessionCount: 2, TotalMessages: 7, LastActivity: time.Now()},
	}
	m.updateViewport()

	view := m.View()
	assert.Contains(t, view, "recall")
	assert.Contains(t, view, "Projects")
}

func TestWrapText(t *testing.T) {
	lines := wrapText("the quick brown fox jumps over the lazy dog", 15)
	for _, line := range lines {
		assert.LessOrEqual(t, len(line), 15)
	}
	assert.Equal(t, "the quick brown fox jumps over the lazy dog",
		strings.Join(lines, " "))

	assert.Equal(t, []string{"hello"}, wrapText("hello", 0))
}

func TestFormatSize(t *testing.T) {
	assert.Equal(t, "512 B", formatSize(512))
	assert.Equal(t, "2.0 KB", formatSize(2048))
	assert.Equal(t, "1.5 MB", formatSize(3*1<<20/2))
}
