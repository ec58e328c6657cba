package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bnema/toolip/internal/application/usecase"
	"github.com/bnema/toolip/internal/cli/styles"
	"github.com/bnema/toolip/internal/ui/dispatcher"
)

var (
	siteTitle string
	siteIcon  string
	siteURL   string
	resetYes  bool
)

var sitesCmd = &cobra.Command{
	Use:   "sites",
	Short: "Manage the panel site list",
	Long: `List, add, edit, remove and reorder the sites shown in the panel.

Positions are 1-based, as printed by 'toolip sites list'.`,
}

var sitesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List sites in navigation order",
	Args:  cobra.NoArgs,
	RunE:  runSitesList,
}

var sitesAddCmd = &cobra.Command{
	Use:   "add <url>",
	Short: "Append a site",
	Long: `Append a site to the end of the list.

The title defaults to the domain name and the icon to the favicon service.

Examples:
  toolip sites add https://example.com
  toolip sites add https://news.ycombinator.com --title "Hacker News"`,
	Args: cobra.ExactArgs(1),
	RunE: runSitesAdd,
}

var sitesEditCmd = &cobra.Command{
	Use:   "edit <position>",
	Short: "Change a site's url, title or icon",
	Long: `Edit the site at position. Only the flags you pass change; the site keeps its id.

Clearing the icon with --icon "" switches back to the automatic favicon.`,
	Args: cobra.ExactArgs(1),
	RunE: runSitesEdit,
}

var sitesRemoveCmd = &cobra.Command{
	Use:     "remove <position>",
	Aliases: []string{"rm"},
	Short:   "Remove a site",
	Args:    cobra.ExactArgs(1),
	RunE:    runSitesRemove,
}

var sitesMoveCmd = &cobra.Command{
	Use:   "move <from> <to>",
	Short: "Move a site to another position",
	Args:  cobra.ExactArgs(2),
	RunE:  runSitesMove,
}

var sitesResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Replace the list with the built-in defaults",
	Args:  cobra.NoArgs,
	RunE:  runSitesReset,
}

func init() {
	rootCmd.AddCommand(sitesCmd)
	sitesCmd.AddCommand(sitesListCmd, sitesAddCmd, sitesEditCmd, sitesRemoveCmd, sitesMoveCmd, sitesResetCmd)

	sitesAddCmd.Flags().StringVarP(&siteTitle, "title", "t", "", "site title (default: domain name)")
	sitesAddCmd.Flags().StringVarP(&siteIcon, "icon", "i", "", "icon URL (default: favicon service)")

	sitesEditCmd.Flags().StringVarP(&siteURL, "url", "u", "", "new URL")
	sitesEditCmd.Flags().StringVarP(&siteTitle, "title", "t", "", "new title")
	sitesEditCmd.Flags().StringVarP(&siteIcon, "icon", "i", "", "new icon URL")

	sitesResetCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "skip confirmation")
}

// parsePosition converts a 1-based position argument to an index into a list of n.
func parsePosition(arg string, n int) (int, error) {
	pos, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid position %q: must be a number", arg)
	}
	if pos < 1 || pos > n {
		return 0, fmt.Errorf("position %d out of range (1-%d)", pos, n)
	}
	return pos - 1, nil
}

func runSitesList(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	sites := a.Registry.GetSites(a.Ctx())
	theme := a.Theme()
	fmt.Fprintln(cmd.OutOrStdout(), styles.RenderSiteTable(theme, sites))
	return nil
}

func runSitesAdd(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	editor := a.Editor()
	form := editor.AutoFill(usecase.SiteForm{URL: args[0], Title: siteTitle, Icon: siteIcon})

	d := a.Dispatcher(editor)
	res := d.Dispatch(a.Ctx(), dispatcher.Command{Kind: dispatcher.AddSite, Form: form})
	if res.Err != nil {
		return res.Err
	}
	if err := save(a.Ctx(), d); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), a.Theme().RenderSuccess("added %s at position %d", res.Site.Title, len(res.Sites)))
	return nil
}

func runSitesEdit(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	editor := a.Editor()
	index, err := parsePosition(args[0], len(editor.Sites()))
	if err != nil {
		return err
	}

	form, err := editor.BeginEdit(index)
	if err != nil {
		return err
	}
	editor.CancelEdit()

	flags := cmd.Flags()
	if flags.Changed("url") {
		form.URL = siteURL
	}
	if flags.Changed("title") {
		form.Title = siteTitle
	}
	if flags.Changed("icon") {
		form.Icon = siteIcon
	}

	d := a.Dispatcher(editor)
	res := d.Dispatch(a.Ctx(), dispatcher.Command{Kind: dispatcher.EditSite, Index: index, Form: form})
	if res.Err != nil {
		return res.Err
	}
	if err := save(a.Ctx(), d); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), a.Theme().RenderSuccess("updated %s", res.Site.Title))
	return nil
}

func runSitesRemove(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	editor := a.Editor()
	sites := editor.Sites()
	index, err := parsePosition(args[0], len(sites))
	if err != nil {
		return err
	}

	d := a.Dispatcher(editor)
	if res := d.Dispatch(a.Ctx(), dispatcher.Command{Kind: dispatcher.DeleteSite, Index: index}); res.Err != nil {
		return res.Err
	}
	if err := save(a.Ctx(), d); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), a.Theme().RenderSuccess("removed %s", sites[index].Title))
	return nil
}

func runSitesMove(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	editor := a.Editor()
	n := len(editor.Sites())
	from, err := parsePosition(args[0], n)
	if err != nil {
		return err
	}
	to, err := parsePosition(args[1], n)
	if err != nil {
		return err
	}

	d := a.Dispatcher(editor)
	res := d.Dispatch(a.Ctx(), dispatcher.Command{Kind: dispatcher.ReorderSite, Index: from, Target: to})
	if res.Err != nil {
		return res.Err
	}
	if !res.OK {
		fmt.Fprintln(cmd.OutOrStdout(), a.Theme().RenderHint("nothing to move"))
		return nil
	}
	if err := save(a.Ctx(), d); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), a.Theme().RenderSuccess("moved %s to position %d", res.Sites[to].Title, to+1))
	return nil
}

func runSitesReset(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	theme := a.Theme()
	if !resetYes {
		fmt.Fprintln(cmd.OutOrStdout(), theme.RenderHint("this replaces every site with the defaults; rerun with --yes"))
		return nil
	}

	res := a.Dispatcher(a.Editor()).Dispatch(a.Ctx(), dispatcher.Command{Kind: dispatcher.ResetSites})
	fmt.Fprintln(cmd.OutOrStdout(), theme.RenderSuccess("restored %d default sites", len(res.Sites)))
	return nil
}
