package plugin

import (
	"fmt"
	"path/filepath"
	"strings"
)

// TemplateFolder is the folder segment that holds template plugins. Mapped
// paths have it replaced by the configured plugin subfolder.
const TemplateFolder = "Templates"

// Mapper derives target paths from template paths.
type Mapper struct {
	templateName string
	subfolder    string
}

// NewMapper creates a Mapper for the given template plugin name and destination subfolder.
func NewMapper(templateName, subfolder string) *Mapper {
	return &Mapper{
		templateName: templateName,
		subfolder:    subfolder,
	}
}

// MapPath rewrites a single path. The template name is replaced first, then
// the template folder segment, so neither substitution sees the other's output.
func (m *Mapper) MapPath(path, newName string) string {
	if m.templateName != "" {
		path = strings.ReplaceAll(path, m.templateName, newName)
	}
	sep := string(filepath.Separator)
	return strings.ReplaceAll(path, TemplateFolder+sep, m.subfolder+sep)
}

// Map returns the target path for every source path, index for index.
func (m *Mapper) Map(sources []string, newName string) []string {
	targets := make([]string, len(sources))
	for i, src := range sources {
		targets[i] = m.MapPath(src, newName)
	}
	return targets
}

// CheckParallel verifies that sources and targets pair up one to one.
func CheckParallel(sources, targets []string) error {
	if len(sources) != len(targets) {
		return newPluginError(PluginInconsistent,
			fmt.Sprintf("template and target file lists differ in length (%d != %d)", len(sources), len(targets)),
			"", nil)
	}
	return nil
}
