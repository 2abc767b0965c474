package cli

import (
	"github.com/spf13/cobra"
	"github.com/tacogips/plugtool/internal/app"
	"github.com/tacogips/plugtool/internal/plugin"
)

// mergeCmd represents the merge command
var mergeCmd = &cobra.Command{
	Use:   "merge <plugin-name> <substring>",
	Short: "Write template files next to a plugin's files for manual merging",
	Long: `Copy template files whose path contains <substring> (case-insensitive)
into the plugin with a .MERGE suffix, leaving the real files in place.
Use '*' to select every template file.

Examples:
  plugtool merge MyPlugin Build.cs
  plugtool merge MyPlugin '*'
  plugtool -command merge MyPlugin source

` + pluginNameHelp,
	Args: mergeArgs,
	RunE: runMerge,
}

// Merge command flags
var mergeFlags modeFlags

func init() {
	mergeCmd.Flags().BoolVarP(&mergeFlags.dryRun, FlagDryRun, "d", false, DescDryRun)
	mergeCmd.Flags().BoolVarP(&mergeFlags.verbose, FlagVerbose, "v", false, DescVerbose)
}

func mergeArgs(cmd *cobra.Command, args []string) error {
	switch {
	case len(args) == 0:
		return app.NewUsageError(msgArgumentCount, nil)
	case len(args) == 1:
		return app.NewUsageError(msgMissingFilter, nil)
	case len(args) > 2:
		return app.NewUsageError(msgArgumentCount, nil)
	}
	return nil
}

func runMerge(cmd *cobra.Command, args []string) error {
	return runMode(cmd, plugin.ModeMerge, args[0], args[1], mergeFlags)
}
