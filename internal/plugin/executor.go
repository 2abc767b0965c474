package plugin

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/tacogips/plugtool/internal/debug"
)

// ownerWrite is the permission bit cleared on read-only files.
const ownerWrite os.FileMode = 0200

// ExecutorOptions configures an Executor.
type ExecutorOptions struct {
	// Rewriter rewrites text file contents. Nil copies every file verbatim.
	Rewriter *Rewriter
	// BinaryExtensions lists extensions (with dot, any case) copied without rewriting.
	BinaryExtensions []string
	// DryRun reports what would happen without touching the filesystem.
	DryRun bool
	// OnCopy, if set, is called before each file is written.
	OnCopy func(entry FileEntry)
}

// CopyResult summarizes a Copy call.
type CopyResult struct {
	// Copied lists the entries written, in order.
	Copied []FileEntry
	// Rewritten counts files whose content went through the Rewriter.
	Rewritten int
	// Verbatim counts files copied byte for byte.
	Verbatim int
	// Bytes is the total number of bytes written.
	Bytes int64
}

// Executor applies plans to the filesystem.
type Executor struct {
	fs       afero.Fs
	rewriter *Rewriter
	binary   map[string]bool
	dryRun   bool
	onCopy   func(FileEntry)
}

// NewExecutor creates an Executor over the given filesystem.
func NewExecutor(fsys afero.Fs, opts ExecutorOptions) *Executor {
	binary := make(map[string]bool, len(opts.BinaryExtensions))
	for _, ext := range opts.BinaryExtensions {
		binary[strings.ToLower(ext)] = true
	}
	return &Executor{
		fs:       fsys,
		rewriter: opts.Rewriter,
		binary:   binary,
		dryRun:   opts.DryRun,
		onCopy:   opts.OnCopy,
	}
}

// IsBinary reports whether path is copied without rewriting.
func (e *Executor) IsBinary(path string) bool {
	return e.binary[strings.ToLower(filepath.Ext(path))]
}

// Purge deletes dir and everything in it. Files have their read-only bit
// cleared before removal. A missing dir is not an error. Returns the number
// of files removed (or that would be removed, in dry-run mode).
func (e *Executor) Purge(dir string) (int, error) {
	exists, err := afero.DirExists(e.fs, dir)
	if err != nil {
		return 0, newPluginError(PluginFilesystemFailed, "failed to check directory", dir, err)
	}
	if !exists {
		debug.Debug("[plugin] Nothing to purge at %s", dir)
		return 0, nil
	}

	files, err := NewEnumerator(e.fs).Gather(dir, false)
	if err != nil {
		return 0, err
	}

	if e.dryRun {
		debug.Debug("[plugin] Dry run: would remove %d files under %s", len(files), dir)
		return len(files), nil
	}

	for _, file := range files {
		if err := e.clearReadOnly(file); err != nil {
			return 0, err
		}
		if err := e.fs.Remove(file); err != nil {
			return 0, newPluginError(PluginFilesystemFailed, "failed to delete file", file, err)
		}
	}

	if err := e.fs.RemoveAll(dir); err != nil {
		return 0, newPluginError(PluginFilesystemFailed, "failed to remove directory", dir, err)
	}

	debug.Debug("[plugin] Removed %d files and directory %s", len(files), dir)
	return len(files), nil
}

// Copy materializes the plan's selected entries in order. The first failure
// aborts the run; files already written stay in place.
func (e *Executor) Copy(plan *Plan) (*CopyResult, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}

	result := &CopyResult{Copied: []FileEntry{}}
	for _, entry := range plan.Entries() {
		if e.onCopy != nil {
			e.onCopy(entry)
		}

		if e.dryRun {
			debug.Debug("[plugin] Dry run: would copy %s -> %s", entry.Source, entry.Target)
			result.Copied = append(result.Copied, entry)
			continue
		}

		n, rewritten, err := e.copyFile(entry)
		if err != nil {
			return result, err
		}

		result.Copied = append(result.Copied, entry)
		result.Bytes += int64(n)
		if rewritten {
			result.Rewritten++
		} else {
			result.Verbatim++
		}
	}

	return result, nil
}

func (e *Executor) copyFile(entry FileEntry) (int, bool, error) {
	dir := filepath.Dir(entry.Target)
	if err := e.fs.MkdirAll(dir, 0755); err != nil {
		return 0, false, newPluginError(PluginFilesystemFailed, "failed to create directory", dir, err)
	}

	if err := e.clearReadOnly(entry.Target); err != nil {
		return 0, false, err
	}

	info, err := e.fs.Stat(entry.Source)
	if err != nil {
		return 0, false, newPluginError(PluginFilesystemFailed, "failed to stat template file", entry.Source, err)
	}

	content, err := afero.ReadFile(e.fs, entry.Source)
	if err != nil {
		return 0, false, newPluginError(PluginFilesystemFailed, "failed to read template file", entry.Source, err)
	}

	rewritten := false
	if e.rewriter != nil && !e.IsBinary(entry.Source) {
		content = e.rewriter.Rewrite(content)
		rewritten = true
	}

	// Generated files are always owner-writable.
	mode := info.Mode().Perm() | 0600
	if err := afero.WriteFile(e.fs, entry.Target, content, mode); err != nil {
		return 0, false, newPluginError(PluginFilesystemFailed, "failed to write file", entry.Target, err)
	}

	debug.Debug("[plugin] Wrote %s (%d bytes, rewritten: %v)", entry.Target, len(content), rewritten)
	return len(content), rewritten, nil
}

// clearReadOnly restores the owner write bit on path if it exists.
func (e *Executor) clearReadOnly(path string) error {
	info, err := e.fs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return newPluginError(PluginFilesystemFailed, "failed to stat file", path, err)
	}
	perm := info.Mode().Perm()
	if perm&ownerWrite != 0 {
		return nil
	}
	if err := e.fs.Chmod(path, perm|ownerWrite); err != nil {
		return newPluginError(PluginFilesystemFailed, "failed to clear read-only attribute", path, err)
	}
	return nil
}
