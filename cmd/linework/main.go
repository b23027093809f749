package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/linework/internal/cli"
	"github.com/alexanderramin/linework/internal/cli/formatter"
	"github.com/alexanderramin/linework/internal/db"
	"github.com/alexanderramin/linework/internal/repository"
	"github.com/alexanderramin/linework/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.linework/linework.db
	dbPath := os.Getenv("LINEWORK_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".linework", "linework.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	uow := db.NewSQLiteUnitOfWork(database)
	runRepo := repository.NewSQLiteRunRepo(database)

	// Use-case telemetry goes to stderr when requested.
	var observers []service.UseCaseObserver
	if os.Getenv("LINEWORK_LOG") != "" {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	app := &cli.App{
		Schedule: service.NewScheduleService(uow, observers...),
		Runs:     service.NewRunService(runRepo),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}
	formatter.SetColorEnabled(app.IsInteractive())

	return cli.NewRootCmd(app).Execute()
}
