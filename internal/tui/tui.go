package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/helmling/claude-recall/internal/config"
	"github.com/helmling/claude-recall/internal/sessions"
	"github.com/helmling/claude-recall/pkg/models"
)

type viewMode int

const (
	projectView viewMode = iota
	sessionView
)

// Result is what the browser hands back once the program exits: either a
// session to resume or a project path to start a new conversation in.
type Result struct {
	Session        *models.Session
	NewSessionPath string
}

type model struct {
	store *sessions.Store
	cfg   *config.Config

	projects        []models.Project
	currentMode     viewMode
	projectCursor   int
	sessionCursor   int
	selectedProject *models.Project
	result          *Result

	viewport      viewport.Model // project list
	leftViewport  viewport.Model // sessions list in split view
	rightViewport viewport.Model // session detail in split view

	loading   bool
	indicator *LoadingIndicator

	ready  bool
	err    error
	width  int
	height int
}

func initialModel(store *sessions.Store, cfg *config.Config) model {
	return model{
		store:       store,
		cfg:         cfg,
		currentMode: projectView,
		loading:     true,
		indicator:   NewLoadingIndicator("Scanning sessions..."),
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(tea.EnterAltScreen, scanCmd(m.store), tickCmd())
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeViewports()

	case ScanCompletedMsg:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, tea.Quit
		}
		m.projects = m.store.Projects()
		// The aggregate was replaced wholesale; any open project refers to
		// the previous snapshot, so drop back to the list.
		m.currentMode = projectView
		m.selectedProject = nil
		m.sessionCursor = 0
		if m.projectCursor >= len(m.projects) {
			m.projectCursor = 0
		}
		m.updateViewport()

	case TickMsg:
		if m.loading {
			m.indicator.Tick()
			return m, tickCmd()
		}

	case tea.KeyMsg:
		if m.loading {
			if s := msg.String(); s == "ctrl+c" || s == "q" {
				return m, tea.Quit
			}
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "r":
			m.loading = true
			m.indicator = NewLoadingIndicator("Rescanning...")
			return m, tea.Batch(scanCmd(m.store), tickCmd())

		case "up", "k":
			if m.currentMode == projectView {
				if m.projectCursor > 0 {
					m.projectCursor--
					m.updateViewport()
				}
			} else if m.sessionCursor > 0 {
				m.sessionCursor--
				m.updateViewport()
			}

		case "down", "j":
			if m.currentMode == projectView {
				if m.projectCursor < len(m.projects)-1 {
					m.projectCursor++
					m.updateViewport()
				}
			} else if m.selectedProject != nil && m.sessionCursor < len(m.selectedProject.Sessions)-1 {
				m.sessionCursor++
				m.updateViewport()
			}

		case "enter":
			if m.currentMode == projectView {
				m.openProject()
			} else if m.selectedProject != nil && m.sessionCursor < len(m.selectedProject.Sessions) {
				session := m.selectedProject.Sessions[m.sessionCursor]
				m.result = &Result{Session: &session}
				return m, tea.Quit
			}

		case "n":
			if path := m.highlightedProjectPath(); path != "" {
				m.result = &Result{NewSessionPath: path}
				return m, tea.Quit
			}

		case "esc", "backspace":
			if m.currentMode == sessionView {
				m.currentMode = projectView
				m.selectedProject = nil
				m.sessionCursor = 0
				m.updateViewport()
			}
		}
	}

	if m.currentMode == projectView {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	} else {
		var leftCmd, rightCmd tea.Cmd
		m.leftViewport, leftCmd = m.leftViewport.Update(msg)
		m.rightViewport, rightCmd = m.rightViewport.Update(msg)
		cmds = append(cmds, leftCmd, rightCmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *model) resizeViewports() {
	leftWidth := m.width/2 - 1
	rightWidth := m.width - leftWidth - 1
	viewHeight := m.height - 3

	if !m.ready {
		m.viewport = viewport.New(m.width, viewHeight)
		m.leftViewport = viewport.New(leftWidth, viewHeight)
		m.rightViewport = viewport.New(rightWidth, viewHeight)
		m.ready = true
	} else {
		m.viewport.Width = m.width
		m.viewport.Height = viewHeight
		m.leftViewport.Width = leftWidth
		m.leftViewport.Height = viewHeight
		m.rightViewport.Width = rightWidth
		m.rightViewport.Height = viewHeight
	}
	m.updateViewport()
}

// openProject loads the highlighted project's sessions from the store and
// switches to the split view.
func (m *model) openProject() {
	if m.projectCursor >= len(m.projects) {
		return
	}

	project := m.projects[m.projectCursor]
	projectSessions, ok := m.store.SessionsForProject(project.EncodedPath)
	if !ok {
		return
	}
	project.Sessions = projectSessions

	m.selectedProject = &project
	m.currentMode = sessionView
	m.sessionCursor = 0
	m.updateViewport()
}

// highlightedProjectPath is the decoded path of whichever project the user
// is currently on, in either view.
func (m *model) highlightedProjectPath() string {
	if m.currentMode == sessionView && m.selectedProject != nil {
		return m.selectedProject.Path
	}
	if m.projectCursor < len(m.projects) {
		return m.projects[m.projectCursor].Path
	}
	return ""
}

func (m *model) updateViewport() {
	if !m.ready {
		return
	}
	if m.currentMode == projectView {
		m.viewport.SetContent(m.renderProjects())
	} else {
		m.leftViewport.SetContent(m.renderSessionsList())
		m.rightViewport.SetContent(m.renderSessionDetail())
	}
}

func (m model) renderProjects() string {
	if len(m.projects) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
		return emptyStyle.Render("No projects found")
	}

	var s strings.Builder

	for i, project := range m.projects {
		cursor := "  "
		if i == m.projectCursor {
			cursor = "> "
		}

		style := lipgloss.NewStyle()
		if i == m.projectCursor {
			style = style.Foreground(lipgloss.Color("212")).Bold(true)
		}

		line := fmt.Sprintf("%s%s (%d sessions, %d messages) - %s",
			cursor,
			project.Name,
			project.SessionCount,
			project.TotalMessages,
			project.LastActivity.Format("2006-01-02 15:04"))

		s.WriteString(style.Render(line) + "\n")
	}

	return s.String()
}

func (m model) renderSessionsList() string {
	if m.selectedProject == nil {
		return "No project selected"
	}

	var s strings.Builder

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	s.WriteString(headerStyle.Render("Sessions") + "\n")
	s.WriteString(strings.Repeat("─", max(m.leftViewport.Width-2, 10)) + "\n\n")

	for i, session := range m.selectedProject.Sessions {
		cursor := "  "
		if i == m.sessionCursor {
			cursor = "> "
		}

		nameStyle := lipgloss.NewStyle()
		if i == m.sessionCursor {
			nameStyle = nameStyle.Foreground(lipgloss.Color("212")).Bold(true)
		} else {
			nameStyle = nameStyle.Foreground(lipgloss.Color("252"))
		}
		s.WriteString(nameStyle.Render(cursor+session.DisplayName()) + "\n")

		metaStyle := lipgloss.NewStyle()
		if i == m.sessionCursor {
			metaStyle = metaStyle.Foreground(lipgloss.Color("245"))
		} else {
			metaStyle = metaStyle.Foreground(lipgloss.Color("238"))
		}
		meta := fmt.Sprintf("  %s · %d msgs",
			session.LastMessage.Format(m.cfg.Display.DateFormat),
			session.MessageCount)
		s.WriteString(metaStyle.Render(meta) + "\n")

		if i < len(m.selectedProject.Sessions)-1 {
			s.WriteString("\n")
		}
	}

	return s.String()
}

func (m model) renderSessionDetail() string {
	var s strings.Builder

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	s.WriteString(headerStyle.Render("Session") + "\n")
	s.WriteString(strings.Repeat("─", max(m.rightViewport.Width-2, 10)) + "\n\n")

	if m.selectedProject == nil || m.sessionCursor >= len(m.selectedProject.Sessions) {
		return s.String()
	}
	session := m.selectedProject.Sessions[m.sessionCursor]

	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("243")).
		Bold(true)
	valueStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	writeField := func(label, value string) {
		if value == "" {
			return
		}
		s.WriteString(labelStyle.Render(label+": ") + valueStyle.Render(value) + "\n")
	}

	writeField("ID", session.ID)
	writeField("Slug", session.Slug)
	writeField("Branch", session.GitBranch)
	writeField("Duration", session.DurationString())
	writeField("Messages", fmt.Sprintf("%d", session.MessageCount))
	writeField("Size", formatSize(session.FileSize))
	writeField("Resume", session.ResumeCommand())

	if session.Preview != "" {
		s.WriteString("\n" + labelStyle.Render("First message") + "\n")
		wrapWidth := max(m.rightViewport.Width-4, 20)
		for _, line := range wrapText(session.Preview, wrapWidth) {
			s.WriteString(valueStyle.Render(line) + "\n")
		}
	}

	return s.String()
}

func (m model) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}

	if m.err != nil {
		return fmt.Sprintf("\n  Error: %v\n", m.err)
	}

	header := m.renderHeader()
	footer := m.renderFooter()

	if m.loading {
		return fmt.Sprintf("%s\n%s\n%s", header,
			LoadingOverlay(m.width, m.height-3, m.indicator), footer)
	}

	if m.currentMode == projectView {
		return fmt.Sprintf("%s\n%s\n%s", header, m.viewport.View(), footer)
	}
	return fmt.Sprintf("%s\n%s\n%s", header, m.renderSplitView(), footer)
}

func (m model) renderSplitView() string {
	leftStyle := lipgloss.NewStyle().
		Width(m.leftViewport.Width).
		Height(m.leftViewport.Height)

	rightStyle := lipgloss.NewStyle().
		Width(m.rightViewport.Width).
		Height(m.rightViewport.Height)

	dividerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("238")).
		Height(m.leftViewport.Height)

	divider := strings.TrimSuffix(
		strings.Repeat("│\n", m.leftViewport.Height), "\n")

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		leftStyle.Render(m.leftViewport.View()),
		dividerStyle.Render(divider),
		rightStyle.Render(m.rightViewport.View()),
	)
}

func (m model) renderHeader() string {
	title := "Claude Recall - Projects"
	if m.currentMode == sessionView && m.selectedProject != nil {
		title = fmt.Sprintf("Claude Recall - %s", m.selectedProject.Name)
	}

	style := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("63"))

	return style.Render(title)
}

func (m model) renderFooter() string {
	info := "↑/↓: navigate • enter: select • n: new session • r: rescan"
	if m.currentMode == sessionView {
		info += " • esc: back"
	}
	info += " • q: quit"

	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	return style.Render(info)
}

// wrapText wraps text to fit within the specified width.
func wrapText(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{text}
	}

	var lines []string
	currentLine := words[0]
	for _, word := range words[1:] {
		if len(currentLine)+1+len(word) > width {
			lines = append(lines, currentLine)
			currentLine = word
		} else {
			currentLine += " " + word
		}
	}
	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return lines
}

// formatSize renders a byte count for display.
func formatSize(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}

// Show runs the browser over the given store and returns what the user
// picked, or nil when they just quit.
func Show(store *sessions.Store, cfg *config.Config) (*Result, error) {
	p := tea.NewProgram(
		initialModel(store, cfg),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m := finalModel.(model)
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}
