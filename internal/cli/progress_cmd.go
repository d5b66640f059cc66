package cli

import (
	"fmt"

	"github.com/alexanderramin/paceboard/internal/cli/formatter"
	"github.com/alexanderramin/paceboard/internal/contract"
	"github.com/alexanderramin/paceboard/internal/curriculum"
	"github.com/spf13/cobra"
)

func newProgressCmd(app *App) *cobra.Command {
	var sf scopeFlags
	var section, student string

	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Show each student's practice and mastery-check completion",
		RunE: func(cmd *cobra.Command, args []string) error {
			scope, err := sf.scope()
			if err != nil {
				return err
			}
			req := contract.NewProgressRequest(scope.SchoolYear, scope.ClassSection, scope.UnitNumber)
			req.Section = section
			req.StudentID = student

			resp, err := app.progressUseCase().StudentProgress(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProgress(resp))
			return nil
		},
	}

	sf.register(cmd.Flags(), app)
	cmd.Flags().StringVarP(&section, "section", "s", curriculum.AllSectionsID, "Limit to one section (see `paceboard sections`)")
	cmd.Flags().StringVar(&student, "student", "", "Show one student's lessons in detail")
	return cmd
}

func newSectionsCmd(app *App) *cobra.Command {
	var sf scopeFlags

	cmd := &cobra.Command{
		Use:   "sections",
		Short: "List the unit's sections with lesson counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			scope, err := sf.scope()
			if err != nil {
				return err
			}
			req := contract.NewProgressRequest(scope.SchoolYear, scope.ClassSection, scope.UnitNumber)
			resp, err := app.progressUseCase().StudentProgress(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSections(scope, resp.Sections))
			return nil
		},
	}
	sf.register(cmd.Flags(), app)
	return cmd
}
