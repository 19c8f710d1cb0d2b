package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/seyuna/seyuna"
	"github.com/seyuna/seyuna/internal/term"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const defaultSettingsFile = ".seyuna.yaml"

var k = koanf.New(".")

// loadSettings loads CLI settings with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadSettings(cmd *cobra.Command) error {
	settingsPath, _ := cmd.Flags().GetString("settings")
	if settingsPath == "" {
		settingsPath = defaultSettingsFile
	}

	if err := loadSettingsFromPath(settingsPath); err != nil {
		return err
	}

	// Only flags the user actually set; defaults must not shadow the file or env.
	flags := cmd.Flags()
	provider := posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed {
			return "", nil
		}
		return f.Name, posflag.FlagVal(flags, f)
	})
	if err := k.Load(provider, nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadSettingsFromPath loads settings from a file and environment variables.
// This is separated from loadSettings to allow testing without a cobra command.
func loadSettingsFromPath(settingsPath string) error {
	if _, err := os.Stat(settingsPath); err == nil {
		if err := k.Load(file.Provider(settingsPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading settings file %s: %w", settingsPath, err)
		}
	}

	if err := k.Load(env.Provider("SEYUNA_", ".", func(s string) string {
		// SEYUNA_COMPILE_RESET -> compile.reset
		// SEYUNA_VERBOSE -> verbose
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "SEYUNA_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildOptions constructs the library's Options from koanf state.
func buildOptions(w io.Writer) seyuna.Options {
	opts := seyuna.Options{
		ConfigPath:   getStringWithFallback("config", "config", "seyuna.json"),
		TargetChrome: getIntWithFallback("target-chrome", "compile.target-chrome", 80),
		Reset:        getBoolWithFallback("reset", "compile.reset", false),
		OutputName:   getStringWithFallback("output-name", "compile.output-name", seyuna.DefaultOutputName),
		Reporter:     newReporter(w),
	}
	// A configured 0 means evergreen; inside Options zero selects the default baseline.
	if opts.TargetChrome == 0 {
		opts.TargetChrome = -1
	}

	// Handle includes: check flag key first, then settings key
	if includes := k.Strings("include"); len(includes) > 0 {
		opts.Include = includes
	} else if includes := k.Strings("compile.include"); len(includes) > 0 {
		opts.Include = includes
	}

	return opts
}

func newReporter(w io.Writer) *term.Reporter {
	return term.NewReporter(w, term.ReporterOptions{
		Verbose: getBoolWithFallback("verbose", "verbose", false),
		Quiet:   getBoolWithFallback("quiet", "quiet", false),
		Color:   getBoolWithFallback("color", "color", false),
	})
}

// getStringWithFallback checks the flag key first, then the settings key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the settings key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getIntWithFallback checks the flag key first, then the settings key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}
