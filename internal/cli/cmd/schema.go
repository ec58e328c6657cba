package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/toolip/internal/infrastructure/config"
	"github.com/bnema/toolip/internal/infrastructure/schema"
)

var schemaConfig bool

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of settings exports",
	Long: `Print the JSON Schema describing files written by 'toolip export'.

With --config, print the schema of config.toml instead.`,
	Args: cobra.NoArgs,
	RunE: runSchema,
}

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.Flags().BoolVar(&schemaConfig, "config", false, "print the config file schema")
}

func runSchema(cmd *cobra.Command, _ []string) error {
	var (
		data []byte
		err  error
	)
	if schemaConfig {
		data, err = json.MarshalIndent(config.Schema(), "", "  ")
	} else {
		data, err = schema.ExportSchemaJSON()
	}
	if err != nil {
		return fmt.Errorf("failed to generate schema: %w", err)
	}

	_, err = cmd.OutOrStdout().Write(append(data, '\n'))
	return err
}
