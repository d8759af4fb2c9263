package main

import (
	"encoding/json"
	"fmt"
	"house-engine/internal/config"
	"house-engine/internal/logging"
	"house-engine/internal/platform/obs"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type app struct {
	cfg    config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: logging.NewNop()}
	var cfgFile string

	root := &cobra.Command{
		Use:           "chartcalc",
		Short:         "Compute chart angles, house cusps and relocations",
		Long:          "chartcalc computes the Ascendant, Midheaven and twelve house cusps for a UTC instant and location, and relocates existing chart records to a new city.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}

			logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
			if err != nil {
				return err
			}

			a.cfg = cfg
			a.logger = logger
			if !cfg.DotEnvLoaded {
				logger.Debug("no .env file found (using environment variables)")
			}

			cmd.SetContext(obs.WithRunID(cmd.Context(), uuid.NewString()))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml, toml or json)")

	root.AddCommand(a.housesCmd(), a.relocateCmd(), a.modeCmd())
	return root
}

// locationFlags are shared by every command that computes houses.
type locationFlags struct {
	at     string
	lat    float64
	lon    float64
	system string
}

func (f *locationFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.at, "at", "", "instant in RFC3339, e.g. 1990-01-01T12:00:00Z")
	cmd.Flags().Float64Var(&f.lat, "lat", 0, "latitude in decimal degrees (north positive)")
	cmd.Flags().Float64Var(&f.lon, "lon", 0, "longitude in decimal degrees (east positive)")
	cmd.Flags().StringVar(&f.system, "system", "", "house system: placidus or whole_sign (default from config)")
	_ = cmd.MarkFlagRequired("at")
	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("lon")
}

func (f *locationFlags) instant() (time.Time, error) {
	t, err := time.Parse(time.RFC3339, f.at)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse --at %q: %w", f.at, err)
	}
	return t.UTC(), nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
