package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tacogips/plugtool/internal/config"
)

// fixtureProject is a copied game project with a template plugin.
type fixtureProject struct {
	Root      string
	WorkDir   string
	Template  string
	PluginDir string
	Config    *config.Config
}

// copyFixtureToTemp copies a fixture project directory to a temp directory
// and loads its Config.json.
func copyFixtureToTemp(t *testing.T, fixtureName string) *fixtureProject {
	t.Helper()

	// Get the absolute path to the fixture
	fixtureDir, err := filepath.Abs(filepath.Join("../fixtures/projects", fixtureName))
	if err != nil {
		t.Fatalf("failed to get fixture path: %v", err)
	}

	destDir := filepath.Join(t.TempDir(), fixtureName)
	if err := os.MkdirAll(destDir, 0755); err != nil {
		t.Fatalf("failed to create destination directory: %v", err)
	}

	// Copy all files from fixture to destination
	err = filepath.Walk(fixtureDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(fixtureDir, path)
		if err != nil {
			return err
		}

		destPath := filepath.Join(destDir, relPath)

		if info.IsDir() {
			return os.MkdirAll(destPath, 0755)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		return os.WriteFile(destPath, data, 0644)
	})
	if err != nil {
		t.Fatalf("failed to copy fixture: %v", err)
	}

	workDir := filepath.Join(destDir, "Tools", "TemplateTool")
	cfg, err := config.NewLoader().Load(config.DefaultConfigPath(workDir))
	if err != nil {
		t.Fatalf("failed to load fixture config: %v", err)
	}

	return &fixtureProject{
		Root:      destDir,
		WorkDir:   workDir,
		Template:  filepath.Join(destDir, cfg.TemplateDir, cfg.TemplatePlugin),
		PluginDir: filepath.Join(destDir, cfg.SubFolder, "MyPlugin"),
		Config:    cfg,
	}
}

// readFile reads a file or fails the test.
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}

// fileExists reports whether path exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
