package plugin

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapper_MapPath(t *testing.T) {
	m := NewMapper("SoloTemplate", "Plugins")

	tests := []struct {
		name     string
		source   string
		newName  string
		expected string
	}{
		{
			name:     "plugin file",
			source:   "/work/Templates/SoloTemplate/SoloTemplate.uplugin",
			newName:  "MyPlugin",
			expected: "/work/Plugins/MyPlugin/MyPlugin.uplugin",
		},
		{
			name:     "nested source file",
			source:   "/work/Templates/SoloTemplate/Source/SoloTemplate/Private/SoloTemplateModule.cpp",
			newName:  "MyPlugin",
			expected: "/work/Plugins/MyPlugin/Source/MyPlugin/Private/MyPluginModule.cpp",
		},
		{
			name:     "no template name",
			source:   "/work/Templates/SoloTemplate/Resources/Icon128.png",
			newName:  "MyPlugin",
			expected: "/work/Plugins/MyPlugin/Resources/Icon128.png",
		},
		{
			name:     "case sensitive name",
			source:   "/work/Templates/SoloTemplate/Docs/solotemplate.md",
			newName:  "MyPlugin",
			expected: "/work/Plugins/MyPlugin/Docs/solotemplate.md",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.MapPath(filepath.FromSlash(tt.source), tt.newName)
			assert.Equal(t, filepath.FromSlash(tt.expected), got)
		})
	}
}

func TestMapper_NameBeforeFolder(t *testing.T) {
	// A template literally named "Templates" is rewritten once, by name.
	m := NewMapper("Templates", "Plugins")
	got := m.MapPath(filepath.FromSlash("/work/Templates/Templates/Templates.h"), "Foo")
	assert.Equal(t, filepath.FromSlash("/work/Foo/Foo/Foo.h"), got)
}

func TestMapper_Map(t *testing.T) {
	m := NewMapper("Solo", "Plugins")
	sources := []string{
		filepath.FromSlash("/w/Templates/Solo/a.txt"),
		filepath.FromSlash("/w/Templates/Solo/Solo.h"),
		filepath.FromSlash("/w/Templates/Solo/x/y/z.cpp"),
	}

	targets := m.Map(sources, "Bar")
	assert.Len(t, targets, len(sources))
	assert.Equal(t, filepath.FromSlash("/w/Plugins/Bar/Bar.h"), targets[1])
	assert.NoError(t, CheckParallel(sources, targets))

	assert.Empty(t, m.Map(nil, "Bar"))
}

func TestCheckParallel(t *testing.T) {
	assert.NoError(t, CheckParallel([]string{"a"}, []string{"b"}))

	err := CheckParallel([]string{"a", "b"}, []string{"c"})
	assert.Error(t, err)
	assert.True(t, IsType(err, PluginInconsistent))
}
