package cli

import (
	"github.com/spf13/cobra"
	"github.com/tacogips/plugtool/internal/plugin"
)

// updateCmd represents the update command
var updateCmd = &cobra.Command{
	Use:   "update <plugin-name>",
	Short: "Add template files missing from an existing plugin",
	Long: `Add template files that an existing plugin does not have yet.

Files already present in the plugin are never touched, so local edits are
safe. Build output under Binaries and Intermediate is ignored on both sides.

Examples:
  plugtool update MyPlugin
  plugtool update MyPlugin --dry-run
  plugtool -command update MyPlugin

` + pluginNameHelp,
	Args: pluginArgs,
	RunE: runUpdate,
}

// Update command flags
var updateFlags modeFlags

func init() {
	updateCmd.Flags().BoolVarP(&updateFlags.dryRun, FlagDryRun, "d", false, DescDryRun)
	updateCmd.Flags().BoolVarP(&updateFlags.verbose, FlagVerbose, "v", false, DescVerbose)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	return runMode(cmd, plugin.ModeUpdate, args[0], "", updateFlags)
}
