// Package config loads the optional YAML configuration of the mdbook-readme CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-mdbook-readme/internal/assets"
	"github.com/alnah/go-mdbook-readme/internal/fileutil"
	"github.com/alnah/go-mdbook-readme/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidFilename = errors.New("invalid output filename")
	ErrInvalidStyle    = errors.New("invalid preview style")
)

// Field length limits.
const (
	MaxRootLength     = 1024 // Link root, usually "." or a URL prefix
	MaxDirLength      = 4096 // PATH_MAX on Linux
	MaxFilenameLength = 255  // NAME_MAX on most filesystems
)

// DefaultFilename is the name of the generated page.
const DefaultFilename = "README.md"

// AppName names the per-user configuration directory.
const AppName = "mdbook-readme"

// allowedExtensions lists the accepted extensions for output.filename.
var allowedExtensions = []string{".md", ".markdown"}

// Config holds the CLI configuration. Zero values mean "not set" so that
// lower-precedence sources (book.toml, RenderContext) still apply.
type Config struct {
	Root    string        `yaml:"root"`    // Link root prefix (empty = book config or ".")
	Output  OutputConfig  `yaml:"output"`  // Generated file options
	Version VersionConfig `yaml:"version"` // mdbook compatibility options
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	Dir       string `yaml:"dir"`       // Output directory (empty = mdbook destination)
	Filename  string `yaml:"filename"`  // Output file name (default: README.md)
	HTML      *bool  `yaml:"html"`      // Also write an HTML preview (nil = book config)
	Style     string `yaml:"style"`     // Preview page style (empty = "default")
	AssetsDir string `yaml:"assetsDir"` // Directory with custom styles/{name}.css
}

// VersionConfig defines mdbook version check options.
type VersionConfig struct {
	SkipCheck bool `yaml:"skipCheck"` // Only warn on mdbook version mismatch
}

// Validate checks field lengths and the output filename.
// Called automatically by LoadConfig, but available for callers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("root", c.Root, MaxRootLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.dir", c.Output.Dir, MaxDirLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.filename", c.Output.Filename, MaxFilenameLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.style", c.Output.Style, MaxFilenameLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.assetsDir", c.Output.AssetsDir, MaxDirLength); err != nil {
		return err
	}
	if c.Output.Filename != "" {
		if err := fileutil.ValidateFilename(c.Output.Filename, allowedExtensions...); err != nil {
			return fmt.Errorf("%w: output.filename: %v", ErrInvalidFilename, err)
		}
	}
	if c.Output.Style != "" {
		if err := assets.ValidateAssetName(c.Output.Style); err != nil {
			return fmt.Errorf("%w: output.style: %v", ErrInvalidStyle, err)
		}
	}
	return nil
}

// OutputFilename returns the configured file name or DefaultFilename.
func (c *Config) OutputFilename() string {
	if c.Output.Filename == "" {
		return DefaultFilename
	}
	return c.Output.Filename
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a configuration with nothing set.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{Filename: DefaultFilename},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Marshal renders cfg as YAML, the format LoadConfig reads.
func (c *Config) Marshal() ([]byte, error) {
	return yamlutil.Marshal(c)
}

// SearchPaths lists the files a config name resolves to, in lookup order:
// ./name.yaml, ./name.yml, then the same names under the user config
// directory (~/.config/mdbook-readme/ on Linux).
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, AppName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing file of SearchPaths(name).
func resolveConfigPath(name string) (string, error) {
	triedPaths := SearchPaths(name)
	for _, path := range triedPaths {
		if fileutil.FileExists(path) {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
