package plugin

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// Mode selects which template files a run materializes.
type Mode int

const (
	// ModeCreate copies every template file into a freshly emptied plugin directory.
	ModeCreate Mode = iota
	// ModeUpdate copies only template files missing from the plugin.
	ModeUpdate
	// ModeMerge copies matching template files next to the plugin's files with MergeSuffix.
	ModeMerge
)

const (
	// MergeSuffix is appended to every target path in merge mode.
	MergeSuffix = ".MERGE"
	// MatchAll is the merge filter that selects every file.
	MatchAll = "*"
)

// String returns the command keyword for the mode.
func (m Mode) String() string {
	switch m {
	case ModeCreate:
		return "new"
	case ModeUpdate:
		return "update"
	case ModeMerge:
		return "merge"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode resolves a command keyword, ignoring case.
func ParseMode(keyword string) (Mode, error) {
	switch strings.ToLower(keyword) {
	case "new", "create":
		return ModeCreate, nil
	case "update":
		return ModeUpdate, nil
	case "merge":
		return ModeMerge, nil
	}
	return 0, newPluginError(PluginUsageInvalid, fmt.Sprintf("invalid command %s", keyword), "", nil)
}

// SelectAll selects every index in [0, n).
func SelectAll(n int) []int {
	selected := make([]int, n)
	for i := range selected {
		selected[i] = i
	}
	return selected
}

// SelectMissing selects the indices whose target is not among existing.
func SelectMissing(targets, existing []string) []int {
	present := make(map[string]struct{}, len(existing))
	for _, p := range existing {
		present[p] = struct{}{}
	}

	selected := []int{}
	for i, target := range targets {
		if _, ok := present[target]; !ok {
			selected = append(selected, i)
		}
	}
	return selected
}

// SelectMatching selects the indices whose source path contains filter,
// compared case-insensitively. MatchAll selects everything.
func SelectMatching(sources []string, filter string) []int {
	if filter == MatchAll {
		return SelectAll(len(sources))
	}

	fold := cases.Fold()
	needle := fold.String(filter)

	selected := []int{}
	for i, src := range sources {
		if strings.Contains(fold.String(src), needle) {
			selected = append(selected, i)
		}
	}
	return selected
}

// WithSuffix returns a copy of paths with suffix appended to each.
func WithSuffix(paths []string, suffix string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = p + suffix
	}
	return out
}
