package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/kamal-hamza/inlinegen/pkg/config"
)

// Environment variables a host build may set instead of passing flags
const (
	EnvProjectDir = "PROJECT_DIR"
	EnvBuildDir   = "BUILD_DIR"
)

// Workspace holds the host-provided paths of one firmware project
type Workspace struct {
	ProjectPath string
	BuildPath   string
	DataPath    string // asset input directory
	GenPath     string // generated header directory, added to the include path
	ConfigPath  string
}

// LoadEnv loads a .env file from dir if present. Variables already set in
// the process environment win.
func LoadEnv(dir string) error {
	path := filepath.Join(dir, ".env")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// New resolves project and build directories. Empty arguments fall back to
// $PROJECT_DIR / $BUILD_DIR, then to the working directory and
// <project>/.pio/build.
func New(projectDir, buildDir string) (*Workspace, error) {
	if projectDir == "" {
		projectDir = os.Getenv(EnvProjectDir)
	}
	if projectDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to determine working directory: %w", err)
		}
		projectDir = wd
	}

	projectPath, err := filepath.Abs(projectDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project directory: %w", err)
	}

	if buildDir == "" {
		buildDir = os.Getenv(EnvBuildDir)
	}
	if buildDir == "" {
		buildDir = filepath.Join(projectPath, ".pio", "build")
	}

	buildPath, err := filepath.Abs(buildDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve build directory: %w", err)
	}

	return &Workspace{
		ProjectPath: projectPath,
		BuildPath:   buildPath,
		ConfigPath:  filepath.Join(projectPath, config.FileName),
	}, nil
}

// Apply derives the data and generated directories from cfg
func (w *Workspace) Apply(cfg *config.Config) {
	w.DataPath = resolve(w.ProjectPath, cfg.DataDir)
	w.GenPath = resolve(w.BuildPath, cfg.OutputDir)
}

// HeaderPath returns the full path of the generated header
func (w *Workspace) HeaderPath(headerName string) string {
	return filepath.Join(w.GenPath, headerName)
}

// DataExists checks if the asset directory is present
func (w *Workspace) DataExists() bool {
	info, err := os.Stat(w.DataPath)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// resolve joins p onto base unless p is already absolute
func resolve(base, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}
