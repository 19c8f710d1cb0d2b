package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/seyuna/seyuna"
	"github.com/seyuna/seyuna/internal/config"
	"github.com/spf13/cobra"
)

var schemaCmd = &cobra.Command{
	Use:    "generate-json-schema",
	Short:  "Generates the JSON schema for seyuna.json",
	Hidden: true,
	Args:   cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		dir, _ := cmd.Flags().GetString("dir")
		path, err := writeSchema(dir, version)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

func init() {
	schemaCmd.Flags().String("dir", "schema", "Directory the schema file is written to")
}

// writeSchema writes <dir>/v-<version>.schema.json and returns its path.
func writeSchema(dir, version string) (string, error) {
	data, err := config.Schema(version)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("%w: create directory %s: %v", seyuna.ErrIO, dir, err)
	}
	path := filepath.Join(dir, config.SchemaFileName(version))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("%w: write %s: %v", seyuna.ErrIO, path, err)
	}
	return path, nil
}
