package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bnema/toolip/internal/cli/styles"
	"github.com/bnema/toolip/internal/domain/entity"
	"github.com/bnema/toolip/internal/infrastructure/config"
	"github.com/bnema/toolip/internal/infrastructure/localstate"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show where toolip keeps its files",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as TOML",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd, configShowCmd)
}

type pathEntry struct {
	label string
	path  func() (string, error)
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	theme := styles.NewTheme(entity.DefaultTheme)
	entries := []pathEntry{
		{"config", config.GetConfigFile},
		{"database", config.GetDatabaseFile},
		{"state", func() (string, error) {
			dir, err := config.GetStateDir()
			return filepath.Join(dir, localstate.FileName), err
		}},
		{"logs", config.GetLogDir},
	}

	out := cmd.OutOrStdout()
	for _, e := range entries {
		p, err := e.path()
		if err != nil {
			return fmt.Errorf("failed to resolve %s path: %w", e.label, err)
		}
		fmt.Fprintln(out, theme.RenderKeyValue(e.label, p))
	}
	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	data, err := config.EncodeConfig(a.Config)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
