package app

import (
	"context"

	"github.com/tacogips/plugtool/internal/debug"
	"github.com/tacogips/plugtool/internal/plugin"
)

// Update adds template files that the plugin does not have yet. Files
// already present are never touched.
func Update(ctx context.Context, opts Options) (*Result, error) {
	debug.DebugSection("[app] Update workflow start")
	debug.DebugValue("[app] Plugin name", opts.PluginName)
	opts.Mode = plugin.ModeUpdate

	s, err := prepare(opts)
	if err != nil {
		return nil, err
	}

	existing, err := s.existingFiles()
	if err != nil {
		return nil, err
	}

	selected := plugin.SelectMissing(s.targets, existing)
	debug.Debug("[app] %d of %d template files missing from plugin", len(selected), len(s.targets))

	return s.execute(ctx, s.executor(), s.plan(plugin.ModeUpdate, s.targets, selected), 0)
}
