package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/RSABuilds/Salary-OT-Calculator/internal/backend"
	"github.com/RSABuilds/Salary-OT-Calculator/internal/config"
	applog "github.com/RSABuilds/Salary-OT-Calculator/internal/log"
	"github.com/RSABuilds/Salary-OT-Calculator/internal/session"
	"github.com/RSABuilds/Salary-OT-Calculator/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := applog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger, logCloser, err := applog.NewFile(cfg.LogFile, level)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer logCloser.Close()
	applog.SetDefault(logger)
	logger = logger.WithComponent(applog.ComponentApp)

	be, err := backend.New(backend.Config{
		Type:   backend.Type(cfg.Backend),
		DBPath: cfg.DBPath,
	}, logger)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() {
		if err := be.Cleanup(); err != nil {
			logger.Error("closing backend", applog.FieldError, err)
		}
	}()

	sess := session.New(be.Repository, logger)
	if err := sess.Open(context.Background()); err != nil {
		return err
	}
	logger.Info("starting", applog.FieldOperation, applog.OpStartup, applog.FieldBackend, cfg.Backend)

	app := tui.NewApp(sess, cfg, logger)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return err
	}

	// Flush the last state; edits are already saved as they happen.
	err = sess.Persist(context.Background())
	if err != nil && !errors.Is(err, session.ErrNotLoggedIn) && !errors.Is(err, session.ErrStorageNotAuthorized) {
		logger.Warn("final save failed", applog.FieldError, err)
	}
	logger.Info("stopped", applog.FieldOperation, applog.OpShutdown)
	return nil
}
