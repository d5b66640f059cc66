package cli

import (
	"time"

	"github.com/alexanderramin/paceboard/internal/config"
	"github.com/alexanderramin/paceboard/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Pacing      service.PacingService
	Progress    service.ProgressService
	Schedules   service.ScheduleService
	Completions service.CompletionService
	Import      service.ImportService
	Classes     service.ClassService

	// Use-case overrides; nil falls back to the services above.
	ClassifyPace     PacingUseCase
	StudentProgress  ProgressUseCase
	EditSchedule     ScheduleUseCase
	RecordCompletion RecordCompletionUseCase
	ImportClass      ImportClassUseCase

	Config config.Config

	// IsInteractive reports whether stdin is a terminal. Nil means false.
	IsInteractive func() bool
}

// today is the evaluation date commands use when --date is not given.
func (a *App) today() time.Time {
	return a.Config.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "paceboard" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "paceboard",
		Short:         "Classroom pacing board for unit section schedules",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newImportCmd(app),
		newScheduleCmd(app),
		newPaceCmd(app),
		newProgressCmd(app),
		newRecordCmd(app),
		newSectionsCmd(app),
		newClassesCmd(app),
		newBoardCmd(app),
	)

	return root
}
