package cli

import "github.com/tacogips/plugtool/internal/config"

// Names shown in the usage summary when no configuration could be loaded.
const (
	usageTemplateDir    = "<TemplateDir>"
	usageTemplatePlugin = "<TemplatePlugin>"
	usageSubFolder      = "<SubFolder>"
)

// printUsage prints the legacy-form usage summary. Configured folder and
// template names are echoed when cfg is non-nil.
func printUsage(p *Printer, cfg *config.Config) {
	templateDir, templatePlugin, subFolder := usageTemplateDir, usageTemplatePlugin, usageSubFolder
	if cfg != nil {
		templateDir, templatePlugin, subFolder = cfg.TemplateDir, cfg.TemplatePlugin, cfg.SubFolder
	}

	p.Info("Usage:")
	p.Info("")
	p.Info("    plugtool -command new NewPlugin")
	p.Line(ToneInfo, "Clones the template project from '{0}/{1}' to the '{2}' subfolder.", templateDir, templatePlugin, subFolder)
	p.Line(ToneInfo, "The folder will be deleted completely - so make sure to use UPDATE for existing plugins.")
	p.Info("")
	p.Info("    plugtool -command update NewPlugin")
	p.Line(ToneInfo, "Updates the specified plugin from '{0}/{1}'.", templateDir, templatePlugin)
	p.Line(ToneInfo, "Any new files will be added, but existing files will be left untouched.")
	p.Info("")
	p.Info("    plugtool -command merge Plugin FilesSubstring")
	p.Line(ToneInfo, "For template files matching FilesSubstring, write a copy next to the target with a {0} suffix.", ".MERGE")
	p.Line(ToneInfo, "This is useful for manually merging in any changes from the template plugin.")
	p.Line(ToneInfo, "If FilesSubstring is '{0}' then all files will be copied.", "*")
	p.Info("")
	p.Line(ToneInfo, "Plugin names may contain only letters, digits, and underscores ({0}, not {1}).", "My_Plugin", "My-Plugin")
	p.Info("")
}
