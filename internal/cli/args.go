package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/tacogips/plugtool/internal/app"
	"github.com/tacogips/plugtool/internal/plugin"
)

// Usage error messages, one per failure so operators can tell them apart.
const (
	msgMissingCommand = "Failed to find `-command` parameter!"
	msgArgumentCount  = "Invalid number of arguments!"
	msgMissingFilter  = "Invalid number of arguments for merge - missing argument for file substring!"
)

// NormalizeArgs rewrites the legacy "-command <mode> <plugin> [substring]"
// form into "<mode> <plugin> [substring]" so cobra can dispatch it as a
// subcommand. Arguments without the legacy flag are returned unchanged.
// Flags placed before "-command" are kept.
func NormalizeArgs(args []string) ([]string, error) {
	idx := -1
	for i, arg := range args {
		if arg == legacyCommandFlag || arg == "-"+legacyCommandFlag {
			idx = i
			break
		}
	}
	if idx < 0 {
		return args, nil
	}

	// The mode keyword and the plugin name must both follow the flag.
	if len(args) <= idx+2 {
		return nil, app.NewUsageError(msgArgumentCount, nil)
	}

	keyword := args[idx+1]
	mode, err := plugin.ParseMode(keyword)
	if err != nil {
		return nil, app.NewUsageError("Invalid command "+strings.ToLower(keyword)+"!", nil)
	}

	normalized := make([]string, 0, len(args)-1)
	normalized = append(normalized, args[:idx]...)
	normalized = append(normalized, mode.String())
	normalized = append(normalized, args[idx+2:]...)
	return normalized, nil
}

// pluginArgs requires exactly the plugin name.
func pluginArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return app.NewUsageError(msgArgumentCount, nil)
	}
	return nil
}
