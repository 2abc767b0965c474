package config

import "path/filepath"

const (
	// DefaultFileName is the configuration file looked up in the working directory.
	DefaultFileName = "Config.json"
	// EnvPrefix prefixes environment overrides, e.g. PLUGTOOL_SUBFOLDER.
	EnvPrefix = "PLUGTOOL"
)

// DefaultBinaryExtensions returns the default binary file extensions.
func DefaultBinaryExtensions() []string {
	return []string{
		// Engine assets
		".uasset", ".umap", ".ubulk", ".uexp",
		// Images
		".png", ".jpg", ".jpeg", ".gif", ".bmp", ".ico", ".tga", ".psd",
		// Archives
		".zip", ".tar", ".gz", ".7z",
		// Executables and libraries
		".exe", ".dll", ".so", ".dylib", ".a", ".lib", ".pdb",
		// Fonts
		".ttf", ".otf",
		// Media
		".mp3", ".mp4", ".wav", ".ogg",
	}
}

// DefaultConfigPath returns the configuration file path inside workDir.
func DefaultConfigPath(workDir string) string {
	return filepath.Join(workDir, DefaultFileName)
}

// applyDefaults fills optional fields left empty by the configuration source.
func applyDefaults(cfg *Config) {
	if len(cfg.BinaryExtensions) == 0 {
		cfg.BinaryExtensions = DefaultBinaryExtensions()
	}
}
