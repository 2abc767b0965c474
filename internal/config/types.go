package config

// Config represents the plugtool configuration read from Config.json.
type Config struct {
	// RootFolder is the marker directory name; the working directory is
	// truncated just after its first occurrence to find the project root.
	RootFolder string `mapstructure:"RootFolder" json:"RootFolder"`
	// SubFolder is the folder under the root where plugins are generated.
	SubFolder string `mapstructure:"SubFolder" json:"SubFolder"`
	// TemplatePlugin is the name of the template plugin.
	TemplatePlugin string `mapstructure:"TemplatePlugin" json:"TemplatePlugin"`
	// TemplateDir is the root-relative directory holding the template plugin.
	TemplateDir string `mapstructure:"TemplateDir" json:"TemplateDir"`
	// BinaryExtensions are file extensions copied without token rewriting.
	BinaryExtensions []string `mapstructure:"BinaryExtensions" json:"BinaryExtensions,omitempty"`
}

// Configuration keys, as they appear in Config.json.
const (
	KeyRootFolder       = "RootFolder"
	KeySubFolder        = "SubFolder"
	KeyTemplatePlugin   = "TemplatePlugin"
	KeyTemplateDir      = "TemplateDir"
	KeyBinaryExtensions = "BinaryExtensions"
)

// RequiredKeys lists the keys every configuration must set.
var RequiredKeys = []string{KeyRootFolder, KeySubFolder, KeyTemplatePlugin, KeyTemplateDir}
