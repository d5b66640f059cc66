package cli

import (
	"fmt"

	"github.com/alexanderramin/paceboard/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import a class bundle (YAML or JSON)",
		Long: `Import a class section bundle: roster, unit schedules, catalog lessons,
assignment configuration and completion records. The whole file is
validated first and written in a single transaction, so a bad file
changes nothing. Re-importing the same file is safe.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.importClassUseCase().Import(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatImportResult(res))
			return nil
		},
	}
}
