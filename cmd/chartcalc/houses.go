package main

import (
	"fmt"
	"house-engine/internal/domain"
	"house-engine/internal/dto"
	"house-engine/internal/platform/obs"
	"house-engine/internal/services"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) housesCmd() *cobra.Command {
	var loc locationFlags
	var points []float64

	cmd := &cobra.Command{
		Use:   "houses",
		Short: "Print angles and house cusps for an instant and location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			defer obs.Time(cmd.Context(), a.logger, "chartcalc.houses")(&err)

			instant, err := loc.instant()
			if err != nil {
				return err
			}

			system := services.ParseHouseSystem(firstNonEmpty(loc.system, a.cfg.HouseSystem), domain.HousePlacidus)
			at := domain.GeographicCoordinate{Lat: loc.lat, Lon: loc.lon}

			res, err := services.Calculator{}.CalculateHouses(instant, at, system)
			if err != nil {
				return fmt.Errorf("houses: %w", err)
			}

			if res.Downgraded() {
				a.logger.Info("house system downgraded at polar latitude",
					zap.String("requested", string(res.Requested)),
					zap.String("used", string(res.System)),
					zap.Float64("lat", at.Lat),
				)
			}

			out := dto.NewHouseResultResponse(res)
			for _, p := range points {
				sign, _ := domain.SignOf(p)
				out.Points = append(out.Points, dto.PointResponse{
					Longitude: services.NormalizeDegrees(p),
					House:     services.HouseOf(p, res.Cusps),
					Sign:      sign.String(),
				})
			}

			return writeJSON(cmd.OutOrStdout(), out)
		},
	}

	loc.register(cmd)
	cmd.Flags().Float64SliceVar(&points, "point", nil, "ecliptic longitude to place in a house (repeatable)")
	return cmd
}
