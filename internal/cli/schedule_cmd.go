package cli

import (
	"fmt"

	"github.com/alexanderramin/paceboard/internal/cli/formatter"
	"github.com/alexanderramin/paceboard/internal/domain"
	"github.com/spf13/cobra"
)

func newScheduleCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Show and edit a unit's section windows",
	}
	cmd.AddCommand(
		newScheduleShowCmd(app),
		newScheduleSetCmd(app),
		newScheduleClearCmd(app),
		newScheduleUnitsCmd(app),
	)
	return cmd
}

func newScheduleShowCmd(app *App) *cobra.Command {
	var sf scopeFlags
	var on dateFlag

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the unit schedule with today's section marked",
		RunE: func(cmd *cobra.Command, args []string) error {
			scope, err := sf.scope()
			if err != nil {
				return err
			}
			view, err := app.scheduleUseCase().Show(cmd.Context(), scope, on.or(app.today()))
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSchedule(scope, view))
			return nil
		},
	}
	sf.register(cmd.Flags(), app)
	cmd.Flags().Var(&on, "date", "Evaluate on this date (YYYY-MM-DD)")
	return cmd
}

func newScheduleSetCmd(app *App) *cobra.Command {
	var sf scopeFlags
	var start, end dateFlag
	var name string
	var plannedDays int

	cmd := &cobra.Command{
		Use:   "set SECTION",
		Short: "Create or move one section window",
		Long: `Create or move one section window. SECTION is the section as the
schedule names it (A-H, "Ramp Up", "Unit Test", ...). Give --start and
--end together, or neither to record an unscheduled section.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scope, err := sf.scope()
			if err != nil {
				return err
			}
			w := domain.ScheduleWindow{
				SectionID:   args[0],
				Name:        name,
				StartDate:   start.t,
				EndDate:     end.t,
				PlannedDays: plannedDays,
			}
			sched, err := app.scheduleUseCase().SetWindow(cmd.Context(), scope, w)
			if err != nil {
				return err
			}
			view, err := app.scheduleUseCase().Show(cmd.Context(), scope, app.today())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.StyleGreen.Render(fmt.Sprintf("Saved %s for unit %d", args[0], sched.UnitNumber)))
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSchedule(scope, view))
			return nil
		},
	}
	sf.register(cmd.Flags(), app)
	cmd.Flags().Var(&start, "start", "First day of the window (YYYY-MM-DD)")
	cmd.Flags().Var(&end, "end", "Last day of the window, inclusive (YYYY-MM-DD)")
	cmd.Flags().StringVar(&name, "name", "", "Display name (defaults to the section name)")
	cmd.Flags().IntVar(&plannedDays, "planned-days", 0, "Instructional days planned (defaults to the window length)")
	return cmd
}

func newScheduleClearCmd(app *App) *cobra.Command {
	var sf scopeFlags

	cmd := &cobra.Command{
		Use:   "clear SECTION",
		Short: "Remove one section window",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scope, err := sf.scope()
			if err != nil {
				return err
			}
			if err := app.scheduleUseCase().ClearWindow(cmd.Context(), scope, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s from unit %d\n", args[0], scope.UnitNumber)
			return nil
		},
	}
	sf.register(cmd.Flags(), app)
	return cmd
}

func newScheduleUnitsCmd(app *App) *cobra.Command {
	var schoolYear, class string

	cmd := &cobra.Command{
		Use:   "units",
		Short: "List the units that have a schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			if class == "" {
				return fmt.Errorf("--class is required")
			}
			units, err := app.Schedules.ListUnits(cmd.Context(), schoolYear, class)
			if err != nil {
				return err
			}
			if len(units) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No unit schedules yet."))
				return nil
			}
			for _, u := range units {
				fmt.Fprintf(cmd.OutOrStdout(), "Unit %d\n", u)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&schoolYear, "year", app.Config.SchoolYear, "School year, e.g. 2025-2026")
	cmd.Flags().StringVarP(&class, "class", "c", "", "Class section, e.g. 802")
	return cmd
}
