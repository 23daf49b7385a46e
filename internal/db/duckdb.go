// Package db holds the process-wide DuckDB connection used for ad-hoc
// analytics over the session log corpus.
package db

import (
	"database/sql"
	"fmt"
	"sync"

	_ "github.com/marcboeker/go-duckdb"
)

var (
	instance *sql.DB
	once     sync.Once
	initErr  error
)

// Get returns the singleton in-memory DuckDB connection with the JSON
// extension loaded.
func Get() (*sql.DB, error) {
	once.Do(func() {
		instance, initErr = open()
	})
	return instance, initErr
}

func open() (*sql.DB, error) {
	database, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, fmt.Errorf("failed to open DuckDB: %w", err)
	}

	// DuckDB works best over a single connection.
	database.SetMaxOpenConns(1)
	database.SetMaxIdleConns(1)

	if _, err := database.Exec("INSTALL json"); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to install JSON extension: %w", err)
	}
	if _, err := database.Exec("LOAD json"); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to load JSON extension: %w", err)
	}

	return database, nil
}
