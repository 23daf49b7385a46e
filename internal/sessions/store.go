package sessions

import (
	"sync"

	"github.com/helmling/claude-recall/internal/config"
	"github.com/helmling/claude-recall/pkg/models"
)

// Store owns the last scan's aggregate and serves read-only lookups. The
// aggregate is rebuilt from scratch on every Scan and swapped in whole, so
// readers never observe a partially updated view.
type Store struct {
	mu       sync.RWMutex
	root     string
	projects []models.Project
	sessions map[string][]models.Session
}

// NewStore creates a store over the configured Claude projects directory.
func NewStore(cfg *config.Config) *Store {
	return &Store{
		root:     cfg.ProjectsDir(),
		sessions: make(map[string][]models.Session),
	}
}

// Scan re-runs discovery and replaces the aggregate.
func (s *Store) Scan() error {
	projects, sessions, err := ScanProjects(s.root)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.projects = projects
	s.sessions = sessions
	s.mu.Unlock()
	return nil
}

// Projects returns all discovered projects, most recently active first.
func (s *Store) Projects() []models.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.projects
}

// SessionsForProject returns the sessions recorded under the given encoded
// directory name, most recent first.
func (s *Store) SessionsForProject(encoded string) ([]models.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sessions, ok := s.sessions[encoded]
	return sessions, ok
}

// TotalSessionCount sums session counts across all projects.
func (s *Store) TotalSessionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, list := range s.sessions {
		n += len(list)
	}
	return n
}
