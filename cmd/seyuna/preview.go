package main

import (
	"github.com/seyuna/seyuna"
	"github.com/seyuna/seyuna/internal/config"
	"github.com/seyuna/seyuna/internal/term"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Show the light and dark palettes in the terminal",
	Args:  cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadSettings(cmd)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := seyuna.LoadConfig(getStringWithFallback("config", "config", config.FileName))
		if err != nil {
			return err
		}
		if cfg.UI == nil {
			return seyuna.ErrMissingUISection
		}
		out := cmd.OutOrStdout()
		useColors := term.ShouldUseColors(out, getBoolWithFallback("color", "color", false))
		term.WritePreview(out, *cfg.UI, useColors)
		return nil
	},
}
