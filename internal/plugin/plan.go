package plugin

import "fmt"

// FileEntry pairs a template file with the path it is written to.
type FileEntry struct {
	Source string
	Target string
}

// Plan is the outcome of mode selection: parallel path lists plus the
// indices to materialize, in copy order.
type Plan struct {
	Mode      Mode
	SourceDir string
	TargetDir string
	Sources   []string
	Targets   []string
	Selected  []int
}

// Validate checks the parallel-list invariant and that every selected index is in range.
func (p *Plan) Validate() error {
	if err := CheckParallel(p.Sources, p.Targets); err != nil {
		return err
	}
	for _, idx := range p.Selected {
		if idx < 0 || idx >= len(p.Sources) {
			return newPluginError(PluginInconsistent,
				fmt.Sprintf("selected index %d out of range [0, %d)", idx, len(p.Sources)), "", nil)
		}
	}
	return nil
}

// Entries returns the selected (source, target) pairs in selection order.
func (p *Plan) Entries() []FileEntry {
	entries := make([]FileEntry, 0, len(p.Selected))
	for _, idx := range p.Selected {
		entries = append(entries, FileEntry{Source: p.Sources[idx], Target: p.Targets[idx]})
	}
	return entries
}
