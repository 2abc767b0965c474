package plugin

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
	"github.com/tacogips/plugtool/internal/debug"
)

// Build-artifact directory names excluded when intermediate files are skipped.
const (
	BinariesDir     = "Binaries"
	IntermediateDir = "Intermediate"
)

// IsBuildArtifact reports whether rel, a path relative to the walked root,
// lies under a build-artifact directory. A directory segment must equal a
// marker exactly (case-sensitive); file names and names that merely contain
// a marker, such as IntermediateKit, do not count.
func IsBuildArtifact(rel string) bool {
	dir := filepath.Dir(filepath.Clean(rel))
	if dir == "." {
		return false
	}
	for _, segment := range strings.Split(filepath.ToSlash(dir), "/") {
		if segment == BinariesDir || segment == IntermediateDir {
			return true
		}
	}
	return false
}

// Enumerator lists the files of a directory tree.
type Enumerator struct {
	fs afero.Fs
}

// NewEnumerator creates an Enumerator over the given filesystem.
func NewEnumerator(fsys afero.Fs) *Enumerator {
	return &Enumerator{fs: fsys}
}

// Gather returns every regular file under root, recursively, sorted lexically.
// When skipIntermediate is true, build-artifact paths are dropped. Only the
// part of the path below root is checked, so a project root that sits under
// an Intermediate folder is still enumerated.
// A missing root yields a PluginError wrapping fs.ErrNotExist.
func (e *Enumerator) Gather(root string, skipIntermediate bool) ([]string, error) {
	root = filepath.Clean(root)
	debug.Debug("[plugin] Gathering files under %s (skip intermediate: %v)", root, skipIntermediate)

	info, err := e.fs.Stat(root)
	if err != nil {
		return nil, newPluginError(PluginFilesystemFailed, "directory not found", root, err)
	}
	if !info.IsDir() {
		return nil, newPluginError(PluginFilesystemFailed, "not a directory", root, fs.ErrInvalid)
	}

	var files []string
	err = afero.Walk(e.fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.Mode().IsRegular() {
			return nil
		}
		if skipIntermediate {
			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}
			if IsBuildArtifact(rel) {
				return nil
			}
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, newPluginError(PluginFilesystemFailed, "failed to walk directory", root, err)
	}

	sort.Strings(files)
	debug.Debug("[plugin] Found %d files under %s", len(files), root)
	return files, nil
}

// Exists reports whether path exists on the enumerator's filesystem.
func (e *Enumerator) Exists(path string) bool {
	ok, err := afero.Exists(e.fs, path)
	return err == nil && ok
}
