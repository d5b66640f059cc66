package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/paceboard/internal/cli"
	"github.com/alexanderramin/paceboard/internal/config"
	"github.com/alexanderramin/paceboard/internal/db"
	"github.com/alexanderramin/paceboard/internal/repository"
	"github.com/alexanderramin/paceboard/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	classRepo := repository.NewSQLiteClassRepo(database)
	studentRepo := repository.NewSQLiteStudentRepo(database)
	scheduleRepo := repository.NewSQLiteScheduleRepo(database)
	catalogRepo := repository.NewSQLiteCatalogRepo(database)
	assignmentRepo := repository.NewSQLiteAssignmentRepo(database)
	completionRepo := repository.NewSQLiteCompletionRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	var observers []service.UseCaseObserver
	if cfg.LogEvents {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	// Wire services
	pacingSvc := service.NewPacingService(classRepo, studentRepo, scheduleRepo, catalogRepo, assignmentRepo, completionRepo, observers...)
	progressSvc := service.NewProgressService(classRepo, studentRepo, scheduleRepo, catalogRepo, assignmentRepo, completionRepo, observers...)
	scheduleSvc := service.NewScheduleService(classRepo, scheduleRepo, uow, observers...)
	completionSvc := service.NewCompletionService(completionRepo, uow, observers...)
	importSvc := service.NewImportService(uow, observers...)

	app := &cli.App{
		Pacing:      pacingSvc,
		Progress:    progressSvc,
		Schedules:   scheduleSvc,
		Completions: completionSvc,
		Import:      importSvc,
		Classes:     service.NewClassService(classRepo, studentRepo),
		Config:      cfg,
	}

	// The unit picker of `board` only runs on a terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
