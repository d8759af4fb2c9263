package main

import (
	"fmt"
	"house-engine/internal/adapters/chartfile"
	"house-engine/internal/domain"
	"house-engine/internal/platform/obs"
	"house-engine/internal/services"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) relocateCmd() *cobra.Command {
	var loc locationFlags
	var chartPath, label, mode string

	cmd := &cobra.Command{
		Use:   "relocate",
		Short: "Relocate a chart record to a new city at the original instant",
		Long: `Reads a chart record (YAML or JSON) carrying natal "angles" and "houses",
recomputes houses and angles for the target location at the same instant, and
prints the merged record. Natal fields are never modified; if relocation fails
the original record is printed unchanged.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			defer obs.Time(cmd.Context(), a.logger, "chartcalc.relocate")(&err)

			instant, err := loc.instant()
			if err != nil {
				return err
			}

			chart, err := chartfile.ReadChart(chartPath, cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("relocate: %w", err)
			}

			req := services.RelocationRequest{
				Instant: instant,
				Target:  domain.GeographicCoordinate{Lat: loc.lat, Lon: loc.lon},
				Label:   label,
				Mode:    services.NormalizeRelocationMode(firstNonEmpty(mode, a.cfg.RelocationMode), domain.RelocationBirthplace),
				System:  services.ParseHouseSystem(firstNonEmpty(loc.system, a.cfg.HouseSystem), domain.HousePlacidus),
			}

			outcome := services.NewRelocator(services.Calculator{}).Relocate(chart, req)
			switch {
			case outcome.Failure != nil:
				a.logger.Error("relocation failed; returning natal chart",
					zap.String("mode", string(req.Mode)),
					zap.Stringer("target", req.Target),
					zap.Error(outcome.Failure),
				)
			case !outcome.Applied:
				a.logger.Info("relocation mode inactive; chart unchanged", zap.String("mode", string(req.Mode)))
			}

			return writeJSON(cmd.OutOrStdout(), outcome.Chart.Record())
		},
	}

	loc.register(cmd)
	cmd.Flags().StringVar(&chartPath, "chart", chartfile.StdinPath, `chart record file, or "-" for stdin`)
	cmd.Flags().StringVar(&label, "label", "", "display name of the target city")
	cmd.Flags().StringVar(&mode, "mode", "", "relocation mode token (default from config)")
	return cmd
}
