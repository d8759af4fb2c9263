package main

import (
	"house-engine/internal/domain"
	"house-engine/internal/dto"
	"house-engine/internal/services"

	"github.com/spf13/cobra"
)

func (a *app) modeCmd() *cobra.Command {
	var label string

	cmd := &cobra.Command{
		Use:   "mode TOKEN...",
		Short: "Normalize relocation mode tokens and show their disclosure text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fallback := services.NormalizeRelocationMode(a.cfg.RelocationMode, domain.RelocationBirthplace)

			out := make([]dto.ModeResponse, 0, len(args))
			for _, raw := range args {
				mode := services.NormalizeRelocationMode(raw, fallback)
				out = append(out, dto.ModeResponse{
					Input:      raw,
					Mode:       string(mode),
					Active:     services.RelocationActive(mode),
					Disclosure: services.RelocationDisclosure(mode, label),
				})
			}

			return writeJSON(cmd.OutOrStdout(), out)
		},
	}

	cmd.Flags().StringVar(&label, "label", "", "city label substituted into the disclosure")
	return cmd
}
