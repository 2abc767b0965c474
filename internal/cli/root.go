package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"github.com/tacogips/plugtool/internal/app"
	"github.com/tacogips/plugtool/internal/config"
	"github.com/tacogips/plugtool/internal/debug"
	"github.com/tacogips/plugtool/internal/version"
)

// Alias version variables for compatibility
var (
	Version   = version.Version
	GitCommit = version.GitCommit
	BuildDate = version.BuildDate
)

// Global flags
var (
	globalConfig  string
	globalDir     string
	globalNoColor bool
	globalQuiet   bool
	globalDebug   bool
)

// printer is the console output shared by all commands.
var printer = NewPrinter(os.Stdout, false, false)

// loadedConfig is kept after a successful load so usage can echo its names.
var loadedConfig *config.Config

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "plugtool",
	Short: "Plugin scaffolding tool",
	Long: `plugtool creates and refreshes plugins from a template plugin.

The template lives at <root>/<TemplateDir>/<TemplatePlugin> and generated
plugins land in <root>/<SubFolder>/<PluginName>. Paths and file contents are
rewritten so every occurrence of the template name becomes the new name.

Both argument forms are accepted:
  plugtool new MyPlugin
  plugtool -command new MyPlugin`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Set debug mode
		debug.SetDebug(globalDebug)
		debug.SetNoColor(globalNoColor)
		printer = NewPrinter(cmd.OutOrStdout(), globalNoColor, globalQuiet)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.NewUsageError(msgMissingCommand, nil)
	},
}

// Execute normalizes args, runs the matching command, and returns the
// process exit code. This is called by main.main().
func Execute(args []string) int {
	printer = NewPrinter(rootCmd.OutOrStdout(), false, false)
	loadedConfig = nil

	normalized, err := NormalizeArgs(args)
	if err != nil {
		fail(err)
		return 1
	}
	debug.Debug("[cli] Arguments: %v", normalized)

	rootCmd.SetArgs(normalized)
	if err := rootCmd.Execute(); err != nil {
		fail(err)
		return 1
	}
	return 0
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&globalConfig, FlagConfig, "c", "", DescConfig)
	rootCmd.PersistentFlags().StringVar(&globalDir, FlagDir, "", DescDir)
	rootCmd.PersistentFlags().BoolVar(&globalNoColor, FlagNoColor, false, DescNoColor)
	rootCmd.PersistentFlags().BoolVarP(&globalQuiet, FlagQuiet, "q", false, DescQuiet)
	rootCmd.PersistentFlags().BoolVar(&globalDebug, FlagDebug, false, DescDebug)

	// Add subcommands
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(mergeCmd)
	rootCmd.AddCommand(versionCmd)
}

// fail prints err followed by the usage summary.
func fail(err error) {
	printer.Error(errorMessage(err))
	if !errors.Is(err, app.ErrAborted) {
		printUsage(printer, loadedConfig)
	}
}

// errorMessage picks the operator-facing text for err.
func errorMessage(err error) string {
	var cfgErr *config.ConfigError
	if errors.As(err, &cfgErr) {
		return cfgErr.Summary()
	}

	var appErr *app.AppError
	if errors.As(err, &appErr) {
		switch appErr.Type {
		case app.UsageFailed:
			if appErr.Cause == nil {
				return appErr.Message
			}
		case app.Aborted:
			return "Aborted: " + appErr.Message
		}
	}
	return "Error: " + err.Error()
}
