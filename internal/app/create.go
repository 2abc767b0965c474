package app

import (
	"context"

	"github.com/tacogips/plugtool/internal/debug"
	"github.com/tacogips/plugtool/internal/plugin"
)

// Create generates a plugin from the template. An existing plugin directory
// is deleted first, read-only files included; this cannot be undone.
func Create(ctx context.Context, opts Options) (*Result, error) {
	debug.DebugSection("[app] Create workflow start")
	debug.DebugValue("[app] Plugin name", opts.PluginName)
	opts.Mode = plugin.ModeCreate

	s, err := prepare(opts)
	if err != nil {
		return nil, err
	}

	p := s.plan(plugin.ModeCreate, s.targets, plugin.SelectAll(len(s.sources)))
	exec := s.executor()

	if s.enumerator.Exists(s.layout.TargetDir) && !opts.DryRun && opts.Confirm != nil {
		ok, err := opts.Confirm(s.layout.TargetDir)
		if err != nil {
			return nil, NewAppError(Aborted, "confirmation failed", err)
		}
		if !ok {
			return nil, NewAppError(Aborted, "plugin directory left untouched", ErrAborted)
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	removed, err := exec.Purge(s.layout.TargetDir)
	if err != nil {
		return nil, wrapPluginError("failed to remove existing plugin", err)
	}
	debug.DebugValue("[app] Files removed", removed)

	return s.execute(ctx, exec, p, removed)
}
