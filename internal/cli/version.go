package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/tacogips/plugtool/internal/config"
	"github.com/tacogips/plugtool/internal/debug"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information and the configured template",
	Long: `Display version information for plugtool.

When Config.json (or --config) can be loaded, the template plugin it points
at and the subfolder new plugins are written to are shown as well.

Examples:
  plugtool version
  plugtool version --short
  plugtool version --json`,
	Args: cobra.NoArgs,
	RunE: runVersion,
}

// Version command flags
var (
	versionShort bool
	versionJSON  bool
)

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Show version number only")
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Output as JSON")
}

// TemplateInfo names the template plugin configured for this project.
type TemplateInfo struct {
	Plugin    string `json:"plugin"`
	Dir       string `json:"dir"`
	SubFolder string `json:"sub_folder"`
}

// VersionInfo contains version information
type VersionInfo struct {
	Version   string        `json:"version"`
	Commit    string        `json:"commit"`
	BuildDate string        `json:"build_date"`
	Platform  string        `json:"platform"`
	GoVersion string        `json:"go_version"`
	Template  *TemplateInfo `json:"template,omitempty"`
}

func runVersion(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if versionShort {
		fmt.Fprintln(out, Version)
		return nil
	}

	info := VersionInfo{
		Version:   Version,
		Commit:    GitCommit,
		BuildDate: BuildDate,
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
		GoVersion: runtime.Version(),
		Template:  configuredTemplate(),
	}

	if versionJSON {
		data, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal version info: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	printVersion(out, info)
	return nil
}

// configuredTemplate loads the configuration if present. A missing or broken
// config is not an error for version output.
func configuredTemplate() *TemplateInfo {
	workDir, err := resolveWorkDir()
	if err != nil {
		return nil
	}
	path := globalConfig
	if path == "" {
		path = config.DefaultConfigPath(workDir)
	}
	cfg, err := config.NewLoader().Load(path)
	if err != nil {
		debug.Debug("[cli] No template shown: %v", err)
		return nil
	}
	return &TemplateInfo{
		Plugin:    cfg.TemplatePlugin,
		Dir:       cfg.TemplateDir,
		SubFolder: cfg.SubFolder,
	}
}

func printVersion(out io.Writer, info VersionInfo) {
	fmt.Fprintf(out, "plugtool %s (%s, built %s)\n", info.Version, info.Commit, info.BuildDate)
	fmt.Fprintf(out, "%s, %s\n", info.Platform, info.GoVersion)
	if info.Template != nil {
		fmt.Fprintf(out, "Template: %s/%s -> %s/<PluginName>\n", info.Template.Dir, info.Template.Plugin, info.Template.SubFolder)
	}
}
