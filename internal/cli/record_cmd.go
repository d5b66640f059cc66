package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/paceboard/internal/cli/formatter"
	"github.com/alexanderramin/paceboard/internal/domain"
	"github.com/alexanderramin/paceboard/internal/importer"
	"github.com/spf13/cobra"
)

func newRecordCmd(app *App) *cobra.Command {
	var student, activity string
	var incomplete bool
	var completedAt dateFlag

	cmd := &cobra.Command{
		Use:   "record",
		Short: "Record one student's completion of an activity",
		Long: `Record one student's result for one activity. Recording again for the
same student and activity replaces the earlier result.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if student == "" || activity == "" {
				return fmt.Errorf("--student and --activity are required")
			}
			rec := &domain.CompletionRecord{
				StudentID:     student,
				ActivityID:    activity,
				FullyComplete: !incomplete,
				SyncedAt:      time.Now().UTC(),
			}
			if completedAt.set {
				t := completedAt.t
				rec.CompletedAt = &t
			}
			if err := app.recordCompletionUseCase().Record(cmd.Context(), rec); err != nil {
				return err
			}
			state := formatter.StyleGreen.Render("complete")
			if incomplete {
				state = formatter.StyleYellow.Render("in progress")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s for %s: %s\n", activity, student, state)
			return nil
		},
	}

	cmd.Flags().StringVar(&student, "student", "", "Student id")
	cmd.Flags().StringVar(&activity, "activity", "", "Activity id")
	cmd.Flags().BoolVar(&incomplete, "incomplete", false, "Record the activity as started but not fully complete")
	cmd.Flags().Var(&completedAt, "completed-at", "Completion date (YYYY-MM-DD)")

	cmd.AddCommand(newRecordSyncCmd(app))
	return cmd
}

func newRecordSyncCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "sync FILE",
		Short: "Upsert a batch of completion records from a YAML or JSON file",
		Long: `Upsert a batch of completion records. FILE holds a "completions" list in
the same shape as a class bundle. The batch is written atomically.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := importer.LoadCompletionBatch(args[0])
			if err != nil {
				return err
			}
			n, err := app.recordCompletionUseCase().Sync(cmd.Context(), records)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Synced %d completion records\n", n)
			return nil
		},
	}
}
