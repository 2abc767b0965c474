package cli

// Common flag names and descriptions
const (
	// Flag names
	FlagConfig  = "config"
	FlagDir     = "dir"
	FlagDryRun  = "dry-run"
	FlagYes     = "yes"
	FlagVerbose = "verbose"
	FlagNoColor = "no-color"
	FlagQuiet   = "quiet"
	FlagDebug   = "debug"

	// Flag descriptions
	DescConfig  = "Path to config file (default: <dir>/Config.json)"
	DescDir     = "Working directory used to locate the project root (default: current directory)"
	DescDryRun  = "Show actions without execution"
	DescYes     = "Delete an existing plugin directory without asking"
	DescVerbose = "List every file copied"
	DescNoColor = "Disable colored output"
	DescQuiet   = "Suppress non-error output"
	DescDebug   = "Enable debug logging"
)

// legacyCommandFlag introduces the mode keyword in the legacy argument form:
//
//	plugtool -command new MyPlugin
const legacyCommandFlag = "-command"

// pluginNameHelp is appended to the help of every command taking a plugin name.
const pluginNameHelp = `Plugin names must start with a letter or underscore and contain only
letters, digits, and underscores (e.g. MyPlugin, My_Plugin), because the name
also forms the MYPLUGIN_API export macro. Names such as My-Plugin are rejected.`
