// Package backend builds the repository selected by configuration.
package backend

import (
	"fmt"

	applog "github.com/RSABuilds/Salary-OT-Calculator/internal/log"
	"github.com/RSABuilds/Salary-OT-Calculator/internal/session"
	"github.com/RSABuilds/Salary-OT-Calculator/internal/store"
)

// Type names a storage backend.
type Type string

const (
	Memory Type = "memory"
	SQLite Type = "sqlite"
)

func (t Type) IsValid() bool {
	return t == Memory || t == SQLite
}

// CleanupFunc releases the resources held by a backend.
type CleanupFunc func() error

// Result is a ready repository and its cleanup function.
type Result struct {
	Repository session.Repository
	Cleanup    CleanupFunc
}

// Config holds configuration for backend creation
type Config struct {
	Type   Type
	DBPath string
}

// New opens the backend described by cfg.
func New(cfg Config, logger *applog.Logger) (*Result, error) {
	if logger == nil {
		logger = applog.Discard()
	}
	logger = logger.WithComponent(applog.ComponentBackend)

	switch cfg.Type {
	case SQLite:
		if cfg.DBPath == "" {
			return nil, fmt.Errorf("sqlite backend: empty database path")
		}
		s, err := store.New(cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("sqlite backend: %w", err)
		}
		version, _, err := s.SchemaVersion()
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("sqlite backend: %w", err)
		}
		logger.Info("initialized sqlite backend",
			applog.FieldBackend, string(cfg.Type),
			applog.FieldPath, cfg.DBPath,
			applog.FieldSchema, version)
		return &Result{Repository: s, Cleanup: s.Close}, nil

	case Memory:
		s, err := store.NewMemory()
		if err != nil {
			return nil, fmt.Errorf("memory backend: %w", err)
		}
		logger.Info("initialized memory backend, data is lost on exit", applog.FieldBackend, string(cfg.Type))
		return &Result{Repository: s, Cleanup: s.Close}, nil
	}
	return nil, fmt.Errorf("invalid backend type: %s", cfg.Type)
}
