package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/toolip/internal/domain/build"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, buildInfo.String())
		fmt.Fprintln(out, build.RepoURL())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
