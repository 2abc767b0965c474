package cli

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/tacogips/plugtool/internal/app"
	"github.com/tacogips/plugtool/internal/config"
	"github.com/tacogips/plugtool/internal/debug"
	"github.com/tacogips/plugtool/internal/plugin"
)

// modeFlags holds the per-command flags shared by new, update, and merge.
type modeFlags struct {
	dryRun  bool
	verbose bool
	yes     bool
}

// runMode loads configuration and runs one plugin workflow.
func runMode(cmd *cobra.Command, mode plugin.Mode, pluginName, filter string, flags modeFlags) error {
	if err := config.ValidatePluginName(pluginName); err != nil {
		return app.NewUsageError("invalid plugin name", err)
	}

	workDir, err := resolveWorkDir()
	if err != nil {
		return err
	}

	cfg, err := loadConfig(workDir)
	if err != nil {
		return err
	}

	layout, err := app.ResolveLayout(workDir, cfg, pluginName)
	if err != nil {
		return err
	}

	if flags.dryRun {
		printer.Line(ToneInfo, "[DRY RUN] No files will be written or deleted")
	}
	switch mode {
	case plugin.ModeCreate:
		printer.Line(ToneNormal, "Generating new plugin {0} from `{1}`", pluginName, layout.SourceDir)
	case plugin.ModeUpdate:
		printer.Line(ToneNormal, "Updating existing plugin {0} from `{1}`", pluginName, layout.SourceDir)
	case plugin.ModeMerge:
		printer.Line(ToneNormal, "Merging files matching {0} into {1} from `{2}`", filter, pluginName, layout.SourceDir)
	}

	opts := app.Options{
		Mode:       mode,
		PluginName: pluginName,
		Filter:     filter,
		WorkDir:    workDir,
		Config:     cfg,
		DryRun:     flags.dryRun,
		OnPlan: func(p *plugin.Plan) {
			printPlanSummary(p)
		},
		OnCopy: func(entry plugin.FileEntry) {
			printer.Line(ToneNormal, "Copying {0} to {1}", entry.Source, entry.Target)
		},
	}
	if mode == plugin.ModeCreate && !flags.yes && stdinIsTerminal() {
		opts.Confirm = confirmDelete
	}

	result, err := app.Run(cmd.Context(), opts)
	if err != nil {
		return err
	}

	printResult(result, flags.verbose)
	return nil
}

// resolveWorkDir returns --dir, or the process working directory.
func resolveWorkDir() (string, error) {
	if globalDir != "" {
		return filepath.Abs(globalDir)
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", app.NewFilesystemError("failed to get working directory", err)
	}
	return wd, nil
}

// loadConfig reads --config, or Config.json in workDir.
func loadConfig(workDir string) (*config.Config, error) {
	path := globalConfig
	if path == "" {
		path = config.DefaultConfigPath(workDir)
	}

	cfg, err := config.NewLoader().Load(path)
	if err != nil {
		return nil, err
	}
	loadedConfig = cfg
	debug.DebugValue("[cli] Config file", path)
	return cfg, nil
}

func printPlanSummary(p *plugin.Plan) {
	n := strconv.Itoa(len(p.Selected))
	switch p.Mode {
	case plugin.ModeCreate:
		printer.Line(ToneNormal, "Found {0} files to copy", n)
	case plugin.ModeUpdate:
		printer.Line(ToneNormal, "Found {0} new files to update", n)
	case plugin.ModeMerge:
		printer.Line(ToneNormal, "Found {0} files to merge", n)
	}
}

func printResult(result *app.Result, verbose bool) {
	if result.Removed > 0 {
		printer.Verbose(verbose, "Removed "+strconv.Itoa(result.Removed)+" existing files")
	}
	if result.DryRun {
		printer.Success("Dry run complete: " + strconv.Itoa(len(result.Copied)) + " files would be written")
		return
	}
	printer.Verbose(verbose, "Wrote "+formatBytes(result.Bytes))
	printer.Success("Plugin " + filepath.Base(result.Layout.TargetDir) + " is ready")
}
