package cli

import (
	"github.com/spf13/cobra"
	"github.com/tacogips/plugtool/internal/plugin"
)

// newCmd represents the new command
var newCmd = &cobra.Command{
	Use:     "new <plugin-name>",
	Aliases: []string{"create"},
	Short:   "Generate a plugin from the template",
	Long: `Generate a plugin by copying every template file.

An existing plugin directory is deleted completely first, read-only files
included. Use 'plugtool update' for plugins that already exist.

When stdin is a terminal you are asked before anything is deleted.

Examples:
  plugtool new MyPlugin
  plugtool new MyPlugin --yes
  plugtool new MyPlugin --dry-run
  plugtool -command new MyPlugin

` + pluginNameHelp,
	Args: pluginArgs,
	RunE: runNew,
}

// New command flags
var newFlags modeFlags

func init() {
	newCmd.Flags().BoolVarP(&newFlags.yes, FlagYes, "y", false, DescYes)
	newCmd.Flags().BoolVarP(&newFlags.dryRun, FlagDryRun, "d", false, DescDryRun)
	newCmd.Flags().BoolVarP(&newFlags.verbose, FlagVerbose, "v", false, DescVerbose)
}

func runNew(cmd *cobra.Command, args []string) error {
	return runMode(cmd, plugin.ModeCreate, args[0], "", newFlags)
}
