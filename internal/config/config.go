// internal/config/config.go
//
// This package handles configuration and the .profile360 directory
// structure. Every project that runs the onboarding wizard gets a
// .profile360/ folder holding its config, logs, recorded media, and
// spooled submissions.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// AppDir is the name of the directory we create in each project.
	AppDir = ".profile360"

	defaultCommunityName = "The Gang"
	defaultMediaDir      = "media"
	defaultSubmitDir     = "submissions"
)

const defaultProjectConfigYAML = `# profile360 project configuration
version: 1

# Community branding shown on the welcome and selection screens.
community:
  name: The Gang

# Where recorded clips and spooled submissions are kept, relative to
# the .profile360 directory.
media:
  dir: media
submissions:
  dir: submissions
`

// CommunityConfig captures the membership community's display settings.
type CommunityConfig struct {
	Name string `yaml:"name"`
}

// DirConfig points at a storage directory, relative to .profile360
// unless absolute.
type DirConfig struct {
	Dir string `yaml:"dir"`
}

// ProjectConfig models .profile360/config.yaml.
type ProjectConfig struct {
	Version     int             `yaml:"version"`
	Community   CommunityConfig `yaml:"community"`
	Media       DirConfig       `yaml:"media"`
	Submissions DirConfig       `yaml:"submissions"`
}

// Config holds the runtime configuration for the wizard.
type Config struct {
	// ProjectDir is the directory where the user ran `profile360` from.
	ProjectDir string

	// AppProjectDir is ProjectDir/.profile360.
	AppProjectDir string

	Project ProjectConfig
}

// InitAppDir creates the .profile360 directory structure in the given
// project directory. Called on startup before the TUI launches.
//
// Structure created:
// .profile360/
// ├── logs/         <- Session journey log
// ├── media/        <- Finalized recording clips
// ├── submissions/  <- Spooled submission documents
// └── state/        <- Reserved for future session persistence
func InitAppDir(projectDir string) error {
	appDir := filepath.Join(projectDir, AppDir)

	dirs := []string{
		filepath.Join(appDir, "logs"),
		filepath.Join(appDir, defaultMediaDir),
		filepath.Join(appDir, defaultSubmitDir),
		filepath.Join(appDir, "state"),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	return ensureProjectConfig(filepath.Join(appDir, "config.yaml"))
}

// NewConfig creates a Config populated with project settings.
func NewConfig(projectDir string) (*Config, error) {
	cfg := &Config{
		ProjectDir:    projectDir,
		AppProjectDir: filepath.Join(projectDir, AppDir),
		Project:       defaultProjectConfig(),
	}
	if err := cfg.loadProjectConfig(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ProjectConfigPath returns the on-disk location for the config file.
func (c *Config) ProjectConfigPath() string {
	return filepath.Join(c.AppProjectDir, "config.yaml")
}

// LogPath returns the session journey log file.
func (c *Config) LogPath() string {
	return filepath.Join(c.AppProjectDir, "logs", "journey.log")
}

// MediaDir returns the directory that receives finalized clips.
func (c *Config) MediaDir() string {
	return resolvePath(c.AppProjectDir, c.Project.Media.Dir, defaultMediaDir)
}

// SubmissionsDir returns the spool directory for submission documents.
func (c *Config) SubmissionsDir() string {
	return resolvePath(c.AppProjectDir, c.Project.Submissions.Dir, defaultSubmitDir)
}

// CommunityName returns the community's display name.
func (c *Config) CommunityName() string {
	return c.Project.Community.Name
}

// SetCommunityName updates the community display name and persists it
// back to .profile360/config.yaml.
func (c *Config) SetCommunityName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("config: community name is required")
	}
	c.Project.Community.Name = name
	return c.saveProjectConfig()
}

func (c *Config) loadProjectConfig() error {
	path := c.ProjectConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	var parsed ProjectConfig
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	parsed.applyDefaults()
	if err := parsed.validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	c.Project = parsed
	return nil
}

func defaultProjectConfig() ProjectConfig {
	return ProjectConfig{
		Version:     1,
		Community:   CommunityConfig{Name: defaultCommunityName},
		Media:       DirConfig{Dir: defaultMediaDir},
		Submissions: DirConfig{Dir: defaultSubmitDir},
	}
}

func (pc *ProjectConfig) applyDefaults() {
	if pc.Version == 0 {
		pc.Version = 1
	}
	if strings.TrimSpace(pc.Community.Name) == "" {
		pc.Community.Name = defaultCommunityName
	}
	if strings.TrimSpace(pc.Media.Dir) == "" {
		pc.Media.Dir = defaultMediaDir
	}
	if strings.TrimSpace(pc.Submissions.Dir) == "" {
		pc.Submissions.Dir = defaultSubmitDir
	}
}

func (pc *ProjectConfig) validate() error {
	if pc.Version < 1 {
		return fmt.Errorf("config version must be >= 1")
	}
	return nil
}

func ensureProjectConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return os.WriteFile(path, []byte(defaultProjectConfigYAML), 0o644)
}

func (c *Config) saveProjectConfig() error {
	if c == nil {
		return fmt.Errorf("config: nil receiver")
	}
	c.Project.applyDefaults()
	if err := c.Project.validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := os.MkdirAll(c.AppProjectDir, 0o755); err != nil {
		return fmt.Errorf("config: ensure app dir: %w", err)
	}
	data, err := yaml.Marshal(c.Project)
	if err != nil {
		return fmt.Errorf("config: encode config: %w", err)
	}
	if err := os.WriteFile(c.ProjectConfigPath(), data, 0o644); err != nil {
		return fmt.Errorf("config: write project config: %w", err)
	}
	return nil
}

func resolvePath(base, candidate, fallback string) string {
	trimmed := strings.TrimSpace(candidate)
	if trimmed == "" {
		trimmed = fallback
	}
	if filepath.IsAbs(trimmed) {
		return filepath.Clean(trimmed)
	}
	return filepath.Clean(filepath.Join(base, trimmed))
}
