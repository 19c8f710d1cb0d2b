package main

import (
	"fmt"

	"github.com/seyuna/seyuna/internal/term"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "seyuna",
	Short: "Seyuna CLI",
	Long: fmt.Sprintf("%s\n\nVisit %s for more information on usage.",
		term.Primary("Seyuna CLI | "+version, true), "https://seyuna.com"),
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", "seyuna.json", "Path of the seyuna.json design configuration")
	rootCmd.PersistentFlags().String("settings", defaultSettingsFile, "CLI settings file path")

	rootCmd.AddCommand(uiCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
