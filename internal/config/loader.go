package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"github.com/tacogips/plugtool/internal/debug"
)

// Loader defines the interface for loading configuration files.
type Loader interface {
	// Load loads and validates configuration from the specified file path.
	Load(path string) (*Config, error)
}

// FileLoader implements the Loader interface for file-based configuration loading.
// Values may be overridden by PLUGTOOL_-prefixed environment variables.
type FileLoader struct {
	fs afero.Fs
}

// NewLoader creates a new FileLoader reading from the OS filesystem.
func NewLoader() Loader {
	return &FileLoader{fs: afero.NewOsFs()}
}

// NewLoaderWithFs creates a new FileLoader reading from fsys.
func NewLoaderWithFs(fsys afero.Fs) Loader {
	return &FileLoader{fs: fsys}
}

// Load loads configuration from the specified file path. JSON is expected;
// YAML and TOML are accepted when the extension says so.
func (l *FileLoader) Load(path string) (*Config, error) {
	debug.Debug("[config] Loading configuration from %s", path)

	if _, err := l.fs.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, NewConfigErrorWithCause(ConfigNotFound, path, "configuration file not found", err)
		}
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "failed to read configuration file", err)
	}

	v := newViper(l.fs)
	v.SetConfigFile(path)
	if filepath.Ext(path) == "" {
		v.SetConfigType("json")
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "failed to parse configuration file", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "failed to decode configuration", err)
	}

	if err := Validate(&cfg, path); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)
	debug.DebugFields("[config] Configuration loaded", map[string]interface{}{
		"root_folder":     cfg.RootFolder,
		"sub_folder":      cfg.SubFolder,
		"template_plugin": cfg.TemplatePlugin,
		"template_dir":    cfg.TemplateDir,
	})
	return &cfg, nil
}

// newViper returns a viper instance bound to fsys with environment overrides
// for every known key.
func newViper(fsys afero.Fs) *viper.Viper {
	v := viper.New()
	v.SetFs(fsys)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	keys := append([]string{KeyBinaryExtensions}, RequiredKeys...)
	for _, key := range keys {
		// BindEnv only fails without a key argument.
		_ = v.BindEnv(key)
	}
	return v
}

// EnvVar returns the environment variable that overrides key.
func EnvVar(key string) string {
	return fmt.Sprintf("%s_%s", EnvPrefix, strings.ToUpper(key))
}
