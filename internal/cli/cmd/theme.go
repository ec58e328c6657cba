package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/toolip/internal/domain/entity"
	"github.com/bnema/toolip/internal/ui/dispatcher"
)

var themeCmd = &cobra.Command{
	Use:       "theme [light|dark]",
	Short:     "Show or change the panel theme",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: themeNames(),
	RunE:      runTheme,
}

func init() {
	rootCmd.AddCommand(themeCmd)
}

func themeNames() []string {
	themes := entity.Themes()
	out := make([]string, len(themes))
	for i, t := range themes {
		out[i] = string(t)
	}
	return out
}

func runTheme(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), a.Registry.GetTheme(a.Ctx()))
		return nil
	}

	theme, ok := entity.ParseTheme(args[0])
	if !ok {
		return fmt.Errorf("unknown theme %q (want %s)", args[0], strings.Join(themeNames(), " or "))
	}

	res := a.Dispatcher(a.Editor()).Dispatch(a.Ctx(), dispatcher.Command{Kind: dispatcher.ChangeTheme, Theme: theme})
	if !res.OK {
		return fmt.Errorf("failed to save theme %s", theme)
	}

	fmt.Fprintln(cmd.OutOrStdout(), a.Theme().RenderSuccess("theme set to %s", theme))
	return nil
}
