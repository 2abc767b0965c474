package app

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tacogips/plugtool/internal/config"
)

// Layout holds the directories one run works with.
type Layout struct {
	// Root is the project root, derived from the working directory.
	Root string
	// SourceDir is <root>/<TemplateDir>/<TemplatePlugin>.
	SourceDir string
	// TargetDir is <root>/<SubFolder>/<pluginName>.
	TargetDir string
}

// ResolveRoot truncates workDir just after the first occurrence of marker.
func ResolveRoot(workDir, marker string) (string, error) {
	if marker == "" {
		return "", NewConfigError("root folder marker is empty", nil)
	}
	idx := strings.Index(workDir, marker)
	if idx < 0 {
		return "", NewConfigError(
			fmt.Sprintf("working directory %s is not inside root folder %q", workDir, marker), nil)
	}
	return workDir[:idx+len(marker)], nil
}

// ResolveLayout computes the template and plugin directories for pluginName.
func ResolveLayout(workDir string, cfg *config.Config, pluginName string) (*Layout, error) {
	if cfg == nil {
		return nil, NewConfigError("configuration not loaded", nil)
	}

	absWorkDir, err := filepath.Abs(workDir)
	if err != nil {
		return nil, NewFilesystemError("failed to resolve working directory", err)
	}

	root, err := ResolveRoot(absWorkDir, cfg.RootFolder)
	if err != nil {
		return nil, err
	}

	return &Layout{
		Root:      root,
		SourceDir: filepath.Join(root, cfg.TemplateDir, cfg.TemplatePlugin),
		TargetDir: filepath.Join(root, cfg.SubFolder, pluginName),
	}, nil
}
