package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/seyuna/seyuna"
	"github.com/seyuna/seyuna/internal/config"
	"github.com/seyuna/seyuna/internal/term"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configure Seyuna",
	Long:  `Create, inspect and edit the seyuna.json design configuration.`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadSettings(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if initFlag, _ := cmd.Flags().GetBool("init"); initFlag {
			return runConfigInit(cmd, args)
		}
		return cmd.Help()
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize Seyuna configuration",
	Long: `Write the default configuration to seyuna.json.
With --with-settings a commented .seyuna.yaml for the CLI itself is written too.`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the configuration merged over the defaults",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		path := getStringWithFallback("config", "config", config.FileName)
		cfg, err := seyuna.LoadConfig(path)
		if err != nil {
			return err
		}
		data, err := config.Marshal(cfg)
		if err != nil {
			return err
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}
		tree, err := term.JSONTree(path, data)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), tree)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <path> <json-value>",
	Short: "Set one field of seyuna.json",
	Long: `Set one field of seyuna.json in place, keeping the rest of the file untouched.
The path uses dots between keys and the value must be JSON.`,
	Example: `  seyuna config set ui.mode '"dark"'
  seyuna config set ui.theme.colors.brand 42
  seyuna config set ui.outputDir '"public/css"'`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := getStringWithFallback("config", "config", config.FileName)
		if err := setConfigValue(path, args[0], args[1]); err != nil {
			return err
		}
		newReporter(cmd.OutOrStdout()).Done(fmt.Sprintf("Set %s in %s", args[0], path))
		return nil
	},
}

func init() {
	configCmd.Flags().BoolP("init", "i", false, "Initialize Seyuna configuration")
	configCmd.Flags().Bool("force", false, "Overwrite existing files")
	configInitCmd.Flags().Bool("force", false, "Overwrite existing files")
	configInitCmd.Flags().Bool("with-settings", false, "Also write a default "+defaultSettingsFile)
	configShowCmd.Flags().Bool("json", false, "Print JSON instead of a tree")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	force, _ := cmd.Flags().GetBool("force")
	path := getStringWithFallback("config", "config", config.FileName)

	data, err := config.Marshal(config.Default())
	if err != nil {
		return err
	}
	if err := writeNew(path, data, force); err != nil {
		return err
	}

	r := newReporter(cmd.OutOrStdout())
	r.Done("Created " + path)

	if withSettings, _ := cmd.Flags().GetBool("with-settings"); withSettings {
		settingsPath, _ := cmd.Flags().GetString("settings")
		if settingsPath == "" {
			settingsPath = defaultSettingsFile
		}
		if err := writeNew(settingsPath, []byte(defaultSettings), force); err != nil {
			return err
		}
		r.Done("Created " + settingsPath)
	}
	return nil
}

// writeNew refuses to replace an existing file unless force is set.
func writeNew(path string, data []byte, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("%w: writing %s: %v", seyuna.ErrIO, path, err)
	}
	return nil
}

// setConfigValue edits key in the seyuna.json at path. The edited document must
// still be a valid configuration, otherwise the file is left as it was.
func setConfigValue(path, key, value string) error {
	if !gjson.Valid(value) {
		return fmt.Errorf("%w: %s: value %q is not valid JSON (quote strings, e.g. '\"dark\"')",
			seyuna.ErrConfigParse, key, value)
	}

	// #nosec G304 - path comes from trusted configuration
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: could not find %s, run `seyuna config init` first", seyuna.ErrConfigNotFound, path)
		}
		return fmt.Errorf("%w: read %s: %v", seyuna.ErrIO, path, err)
	}

	updated, err := sjson.SetRawBytes(data, key, []byte(value))
	if err != nil {
		return fmt.Errorf("%w: set %s: %v", seyuna.ErrConfigParse, key, err)
	}
	if _, err := config.Parse(updated); err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}

	if err := os.WriteFile(path, updated, 0644); err != nil {
		return fmt.Errorf("%w: write %s: %v", seyuna.ErrIO, path, err)
	}
	return nil
}

const defaultSettings = `# seyuna CLI settings
# Design tokens live in seyuna.json; this file only configures the CLI.

config: seyuna.json   # design configuration to compile
verbose: false
quiet: false
color: false

compile:
  target-chrome: 80   # oldest Chrome to support; 0 = evergreen (keeps oklch())
  reset: false        # prepend the built-in reset sheet
  output-name: seyuna-global.css
  include: []         # extra CSS globs appended to the output, e.g. "styles/src/**/*.css"
`
