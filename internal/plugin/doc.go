// Package plugin implements the file-set logic behind plugin scaffolding:
// enumerating template files, remapping their paths onto a new plugin,
// choosing which files a mode touches, rewriting plugin tokens in file
// content, and writing the result.
//
// The pipeline is strictly forward:
//
//	Enumerator -> Mapper -> Selector -> Rewriter -> Executor
//
// Source and target paths travel as two parallel slices paired by index.
// All filesystem access goes through an afero.Fs so the same code runs
// against the OS filesystem and an in-memory one.
package plugin
