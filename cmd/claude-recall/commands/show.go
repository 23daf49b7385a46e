package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/helmling/claude-recall/internal/sessions"
	"github.com/helmling/claude-recall/pkg/models"
)

// NewShowCommand creates the show command for non-interactive listings.
func NewShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show [project] [session-id]",
		Short: "Print projects and sessions without the TUI",
		Long: `With no arguments, show lists every project. With a project name or
path it lists that project's sessions, and with a session id as well it
prints the full session summary.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			store := sessions.NewStore(cfg)
			if err := store.Scan(); err != nil {
				return err
			}

			switch len(args) {
			case 0:
				return showProjects(store)
			case 1:
				return showProject(store, args[0])
			default:
				return showSession(store, args[0], args[1])
			}
		},
	}
}

func showProjects(store *sessions.Store) error {
	projects := store.Projects()
	if len(projects) == 0 {
		fmt.Println("No projects found")
		return nil
	}

	bold := color.New(color.Bold)
	dim := color.New(color.FgHiBlack)

	for _, project := range projects {
		bold.Println(project.Name)
		dim.Printf("  %s\n", project.Path)
		fmt.Printf("  %d sessions, %d messages, last active %s\n",
			project.SessionCount, project.TotalMessages,
			project.LastActivity.Format("2006-01-02 15:04"))
	}
	return nil
}

func showProject(store *sessions.Store, name string) error {
	project, projectSessions, err := findProject(store, name)
	if err != nil {
		return err
	}

	bold := color.New(color.Bold)
	dim := color.New(color.FgHiBlack)

	bold.Printf("%s (%s)\n\n", project.Name, project.Path)
	for _, session := range projectSessions {
		fmt.Printf("%s  %s  %d msgs\n",
			session.LastMessage.Format("2006-01-02 15:04"),
			session.DisplayName(), session.MessageCount)
		dim.Printf("  %s\n", session.ResumeCommand())
	}
	return nil
}

func showSession(store *sessions.Store, name, sessionID string) error {
	_, projectSessions, err := findProject(store, name)
	if err != nil {
		return err
	}

	for _, session := range projectSessions {
		if session.ID == sessionID || strings.HasPrefix(session.ID, sessionID) {
			printSessionDetail(session)
			return nil
		}
	}
	return fmt.Errorf("no session %s in project %s", sessionID, name)
}

func printSessionDetail(session models.Session) {
	label := color.New(color.Bold)

	field := func(name, value string) {
		if value == "" {
			return
		}
		label.Printf("%-10s", name+":")
		fmt.Println(" " + value)
	}

	field("ID", session.ID)
	field("Project", session.ProjectPath)
	field("Slug", session.Slug)
	field("Branch", session.GitBranch)
	field("First", session.FirstMessage.Format("2006-01-02 15:04:05"))
	field("Last", session.LastMessage.Format("2006-01-02 15:04:05"))
	field("Duration", session.DurationString())
	field("Messages", fmt.Sprintf("%d", session.MessageCount))
	field("File", session.FilePath)
	field("Resume", session.ResumeCommand())

	if session.Preview != "" {
		fmt.Println()
		label.Println("First message:")
		fmt.Println("  " + session.Preview)
	}
}

// findProject matches by display name, decoded path, or encoded directory
// name.
func findProject(store *sessions.Store, name string) (models.Project, []models.Session, error) {
	for _, project := range store.Projects() {
		if project.Name == name || project.Path == name ||
			project.EncodedPath == name || filepath.Clean(project.Path) == filepath.Clean(name) {
			projectSessions, _ := store.SessionsForProject(project.EncodedPath)
			return project, projectSessions, nil
		}
	}
	return models.Project{}, nil, fmt.Errorf("no project matching %q", name)
}
