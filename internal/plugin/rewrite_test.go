package plugin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPIToken(t *testing.T) {
	assert.Equal(t, "SOLOTEMPLATE_API", APIToken("SoloTemplate"))
	assert.Equal(t, "MYPLUGIN_API", APIToken("MyPlugin"))
}

func TestNewTokenSet(t *testing.T) {
	tokens := NewTokenSet("SoloTemplate", "MyPlugin")
	assert.Equal(t, TokenSet{
		Placeholder: "REPLACEME_API",
		Source:      "SOLOTEMPLATE_API",
		Target:      "MYPLUGIN_API",
	}, tokens)
}

func TestRewriter_Rewrite(t *testing.T) {
	r := NewRewriter("SoloTemplate", "MyPlugin")

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "api macro",
			input:    "SOLOTEMPLATE_API void Foo();",
			expected: "MYPLUGIN_API void Foo();",
		},
		{
			name:     "plain name",
			input:    "class FSoloTemplateModule : public IModuleInterface",
			expected: "class FMyPluginModule : public IModuleInterface",
		},
		{
			name:     "both",
			input:    "#include \"SoloTemplate.h\"\nclass SOLOTEMPLATE_API USoloTemplateSettings {};",
			expected: "#include \"MyPlugin.h\"\nclass MYPLUGIN_API UMyPluginSettings {};",
		},
		{
			name:     "other casing untouched",
			input:    "solotemplate SoloTEMPLATE",
			expected: "solotemplate SoloTEMPLATE",
		},
		{
			name:     "no tokens",
			input:    "int main() { return 0; }",
			expected: "int main() { return 0; }",
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, r.RewriteString(tt.input))
		})
	}
}

func TestRewriter_UppercaseTemplateName(t *testing.T) {
	// The API token starts with the plain name; parking it first keeps it intact.
	r := NewRewriter("SOLO", "Bar")
	assert.Equal(t, "BAR_API Bar", r.RewriteString("SOLO_API SOLO"))
}

func TestRewriter_RoundTrip(t *testing.T) {
	original := "FOO_API void Foo();\n// Foo module for FooGame\nclass UFooComponent;"

	forward := NewRewriter("Foo", "Bar").RewriteString(original)
	assert.Equal(t, "BAR_API void Bar();\n// Bar module for BarGame\nclass UBarComponent;", forward)

	back := NewRewriter("Bar", "Foo").RewriteString(forward)
	assert.Equal(t, original, back)
}
