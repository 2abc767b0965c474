package app

import (
	"context"

	"github.com/tacogips/plugtool/internal/debug"
	"github.com/tacogips/plugtool/internal/plugin"
)

// Merge writes freshly generated copies of the template files whose path
// contains opts.Filter next to the plugin's own files, with a .MERGE suffix,
// for manual comparison.
func Merge(ctx context.Context, opts Options) (*Result, error) {
	debug.DebugSection("[app] Merge workflow start")
	debug.DebugValue("[app] Plugin name", opts.PluginName)
	debug.DebugValue("[app] Filter", opts.Filter)
	opts.Mode = plugin.ModeMerge

	s, err := prepare(opts)
	if err != nil {
		return nil, err
	}

	// The plugin must already exist.
	if _, err := s.existingFiles(); err != nil {
		return nil, err
	}

	selected := plugin.SelectMatching(s.sources, opts.Filter)
	targets := plugin.WithSuffix(s.targets, plugin.MergeSuffix)
	debug.Debug("[app] %d of %d template files match %q", len(selected), len(s.sources), opts.Filter)

	return s.execute(ctx, s.executor(), s.plan(plugin.ModeMerge, targets, selected), 0)
}
