// Package cmd provides Cobra CLI commands for toolip.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/toolip/internal/cli"
	"github.com/bnema/toolip/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "toolip",
		Short: "A sidebar panel of your favourite sites",
		Long: `toolip keeps a list of sites one click away in a sidebar panel.

Every site lives in its own surface, so switching back and forth keeps
scroll position, forms and logins. The site list and theme are stored in
a settings database shared by every toolip process.

Use 'toolip panel' to open the terminal panel, or the subcommands below
to manage sites, themes and settings files.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if !needsApp(cmd) {
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			closeApp()
		},
	}
)

// needsApp reports whether cmd touches the settings database.
func needsApp(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "help", "completion", "version", "schema", "path":
		return false
	}
	return cmd.Runnable()
}

// Execute runs the root command.
func Execute() {
	err := rootCmd.Execute()
	// PersistentPostRun is skipped when a command fails
	closeApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func closeApp() {
	if app != nil {
		_ = app.Close()
		app = nil
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

func requireApp() (*cli.App, error) {
	a := GetApp()
	if a == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return a, nil
}
