package cli

import (
	"fmt"

	"github.com/alexanderramin/paceboard/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newClassesCmd(app *App) *cobra.Command {
	var class string

	cmd := &cobra.Command{
		Use:   "classes",
		Short: "List imported class sections, or one section's roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			if class != "" {
				students, err := app.Classes.Roster(cmd.Context(), class)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRoster(class, students))
				return nil
			}
			classes, err := app.Classes.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatClasses(classes))
			return nil
		},
	}
	cmd.Flags().StringVarP(&class, "class", "c", "", "Show this class section's roster")
	return cmd
}
