package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/bnema/toolip/internal/ui/dispatcher"
)

const exportFilePerm = 0o644

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export the site list to a settings file",
	Long: `Write the stored site list as a toolip settings file.

Without a file argument the export is written to
toolip-settings-YYYY-MM-DD.json in the current directory. Use "-" for stdout.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the site list with a settings file",
	Long: `Replace the stored site list with the sites of a toolip settings file.

The file must contain a "sites" array; anything else is rejected and the
current list is left untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(exportCmd, importCmd)
}

// exportTarget resolves the export destination. "" means stdout.
func exportTarget(args []string, defaultName string) string {
	if len(args) == 0 {
		return defaultName
	}
	if args[0] == "-" {
		return ""
	}
	return args[0]
}

func runExport(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	res := a.Dispatcher(a.Editor()).Dispatch(a.Ctx(), dispatcher.Command{Kind: dispatcher.ExportSites})
	if res.Err != nil {
		return res.Err
	}

	target := exportTarget(args, res.Filename)
	if target == "" {
		_, err := cmd.OutOrStdout().Write(append(res.Payload, '\n'))
		return err
	}

	if err := afero.WriteFile(a.Fs, target, res.Payload, exportFilePerm); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}

	abs, _ := filepath.Abs(target)
	fmt.Fprintln(cmd.OutOrStdout(), a.Theme().RenderSuccess("exported %d sites to %s", len(res.Sites), abs))
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	payload, err := afero.ReadFile(a.Fs, args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	res := a.Dispatcher(a.Editor()).Dispatch(a.Ctx(), dispatcher.Command{Kind: dispatcher.ImportSites, Payload: payload})
	if !res.OK {
		return fmt.Errorf("import rejected: %s is not a toolip settings file", args[0])
	}

	fmt.Fprintln(cmd.OutOrStdout(), a.Theme().RenderSuccess("imported %d sites", len(res.Sites)))
	return nil
}
