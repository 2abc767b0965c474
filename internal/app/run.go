package app

import (
	"context"
	"fmt"

	"github.com/spf13/afero"
	"github.com/tacogips/plugtool/internal/config"
	"github.com/tacogips/plugtool/internal/debug"
	"github.com/tacogips/plugtool/internal/plugin"
)

// Options holds options for a plugin run.
type Options struct {
	// Mode selects create, update, or merge.
	Mode plugin.Mode
	// PluginName is the name of the plugin to create or refresh.
	PluginName string
	// Filter is the merge substring; "*" selects every file. Merge only.
	Filter string
	// WorkDir is the directory the root folder marker is searched in.
	WorkDir string
	// Config is the loaded configuration.
	Config *config.Config
	// Fs is the filesystem to operate on. Nil means the OS filesystem.
	Fs afero.Fs
	// DryRun reports what would happen without writing or deleting.
	DryRun bool
	// Confirm, if set, is asked before an existing plugin directory is deleted.
	Confirm func(targetDir string) (bool, error)
	// OnPlan, if set, is called once the selection is known and before any copy.
	OnPlan func(p *plugin.Plan)
	// OnCopy, if set, is called before each file is written.
	OnCopy func(entry plugin.FileEntry)
}

// Result holds the result of a plugin run.
type Result struct {
	// Mode is the mode that ran.
	Mode plugin.Mode
	// Layout is the resolved directory layout.
	Layout *Layout
	// Plan is the selection that was executed.
	Plan *plugin.Plan
	// Copied lists the files written (or that would be, in dry-run mode).
	Copied []plugin.FileEntry
	// Removed is the number of files deleted before a create.
	Removed int
	// Bytes is the total number of bytes written.
	Bytes int64
	// DryRun reports whether the run skipped all writes.
	DryRun bool
}

// session carries the state shared by every mode after template discovery.
type session struct {
	opts       Options
	fs         afero.Fs
	layout     *Layout
	enumerator *plugin.Enumerator
	sources    []string
	targets    []string
}

// Run executes the mode selected in opts.
func Run(ctx context.Context, opts Options) (*Result, error) {
	switch opts.Mode {
	case plugin.ModeCreate:
		return Create(ctx, opts)
	case plugin.ModeUpdate:
		return Update(ctx, opts)
	case plugin.ModeMerge:
		return Merge(ctx, opts)
	}
	return nil, NewUsageError(fmt.Sprintf("invalid command %s", opts.Mode), nil)
}

// validateOptions rejects bad arguments before anything touches the filesystem.
func validateOptions(opts Options) error {
	if opts.Config == nil {
		return NewConfigError("configuration not loaded", nil)
	}
	if err := config.ValidatePluginName(opts.PluginName); err != nil {
		return NewUsageError("invalid plugin name", err)
	}
	if opts.Mode == plugin.ModeMerge && opts.Filter == "" {
		return NewUsageError("missing argument for file substring", nil)
	}
	return nil
}

// prepare validates options, enumerates the template, and maps target paths.
func prepare(opts Options) (*session, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	fsys := opts.Fs
	if fsys == nil {
		fsys = afero.NewOsFs()
	}

	workDir := opts.WorkDir
	if workDir == "" {
		workDir = "."
	}

	layout, err := ResolveLayout(workDir, opts.Config, opts.PluginName)
	if err != nil {
		return nil, err
	}
	debug.DebugValue("[app] Project root", layout.Root)
	debug.DebugValue("[app] Template directory", layout.SourceDir)
	debug.DebugValue("[app] Plugin directory", layout.TargetDir)

	enumerator := plugin.NewEnumerator(fsys)
	sources, err := enumerator.Gather(layout.SourceDir, true)
	if err != nil {
		return nil, wrapPluginError("failed to read template plugin", err)
	}

	mapper := plugin.NewMapper(opts.Config.TemplatePlugin, opts.Config.SubFolder)
	targets := mapper.Map(sources, opts.PluginName)
	if err := plugin.CheckParallel(sources, targets); err != nil {
		return nil, wrapPluginError("template and target file lists are not the same length", err)
	}

	return &session{
		opts:       opts,
		fs:         fsys,
		layout:     layout,
		enumerator: enumerator,
		sources:    sources,
		targets:    targets,
	}, nil
}

// existingFiles lists the plugin's current files, skipping build artifacts.
func (s *session) existingFiles() ([]string, error) {
	existing, err := s.enumerator.Gather(s.layout.TargetDir, true)
	if err != nil {
		return nil, wrapPluginError(fmt.Sprintf("plugin %s not found", s.opts.PluginName), err)
	}
	return existing, nil
}

func (s *session) plan(mode plugin.Mode, targets []string, selected []int) *plugin.Plan {
	return &plugin.Plan{
		Mode:      mode,
		SourceDir: s.layout.SourceDir,
		TargetDir: s.layout.TargetDir,
		Sources:   s.sources,
		Targets:   targets,
		Selected:  selected,
	}
}

func (s *session) executor() *plugin.Executor {
	return plugin.NewExecutor(s.fs, plugin.ExecutorOptions{
		Rewriter:         plugin.NewRewriter(s.opts.Config.TemplatePlugin, s.opts.PluginName),
		BinaryExtensions: s.opts.Config.BinaryExtensions,
		DryRun:           s.opts.DryRun,
		OnCopy:           s.opts.OnCopy,
	})
}

// execute copies the plan and folds the outcome into a Result.
func (s *session) execute(ctx context.Context, exec *plugin.Executor, p *plugin.Plan, removed int) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	debug.DebugFields("[app] Executing plan", map[string]interface{}{
		"mode":     p.Mode.String(),
		"selected": len(p.Selected),
		"total":    len(p.Sources),
		"dry_run":  s.opts.DryRun,
	})
	if s.opts.OnPlan != nil {
		s.opts.OnPlan(p)
	}

	copyResult, err := exec.Copy(p)
	result := &Result{
		Mode:    p.Mode,
		Layout:  s.layout,
		Plan:    p,
		Removed: removed,
		DryRun:  s.opts.DryRun,
	}
	if copyResult != nil {
		result.Copied = copyResult.Copied
		result.Bytes = copyResult.Bytes
	}
	if err != nil {
		return result, wrapPluginError("failed to copy template files", err)
	}

	debug.Debug("[app] %s workflow completed: %d files copied", p.Mode, len(result.Copied))
	return result, nil
}
