package cli

import (
	"fmt"

	"github.com/alexanderramin/paceboard/internal/cli/formatter"
	"github.com/alexanderramin/paceboard/internal/contract"
	"github.com/alexanderramin/paceboard/internal/domain"
	"github.com/spf13/cobra"
)

func newPaceCmd(app *App) *cobra.Command {
	var sf scopeFlags
	var on dateFlag
	var minZonePct float64
	var zoneFilter string

	cmd := &cobra.Command{
		Use:   "pace",
		Short: "Classify every student into a pacing zone",
		Long: `Classify every student of a class section relative to the section the
class is expected to be in today: far behind, behind, on track, ahead or
far ahead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			scope, err := sf.scope()
			if err != nil {
				return err
			}
			req := contract.NewPacingRequest(scope.SchoolYear, scope.ClassSection, scope.UnitNumber)
			now := on.or(app.today())
			req.Now = &now
			req.MinZonePct = app.Config.MinZonePct
			if cmd.Flags().Changed("min-zone-pct") {
				req.MinZonePct = minZonePct
			}

			resp, err := app.pacingUseCase().Classify(cmd.Context(), req)
			if err != nil {
				return err
			}

			if zoneFilter != "" {
				zone, err := domain.ParsePacingZone(zoneFilter)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatZoneStudents(resp, zone))
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPacing(resp))
			return nil
		},
	}

	sf.register(cmd.Flags(), app)
	cmd.Flags().Var(&on, "date", "Evaluate on this date instead of today (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&minZonePct, "min-zone-pct", app.Config.MinZonePct, "Minimum zone width in the zone bar, in percent")
	cmd.Flags().StringVar(&zoneFilter, "zone", "", "List only one zone (far-behind, behind, on-track, ahead, far-ahead)")

	return cmd
}
