package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/alnah/go-mdbook-readme/internal/config"
	"github.com/alnah/go-mdbook-readme/internal/hints"
)

// envPrefix is shared by every environment variable the CLI reads.
const envPrefix = "MDBOOK_README_"

// Environment variable names.
const (
	envConfigPath       = envPrefix + "CONFIG"
	envRoot             = envPrefix + "ROOT"
	envOutputDir        = envPrefix + "OUTPUT_DIR"
	envFilename         = envPrefix + "FILENAME"
	envHTML             = envPrefix + "HTML"
	envStyle            = envPrefix + "STYLE"
	envAssetsDir        = envPrefix + "ASSETS_DIR"
	envSkipVersionCheck = hints.SkipVersionCheckEnv
)

// envConfig holds configuration from environment variables.
// Provides CI-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath       string // MDBOOK_README_CONFIG: config file name or path
	Root             string // MDBOOK_README_ROOT: link root
	OutputDir        string // MDBOOK_README_OUTPUT_DIR: output directory
	Filename         string // MDBOOK_README_FILENAME: output file name
	HTML             *bool  // MDBOOK_README_HTML: write the HTML preview
	Style            string // MDBOOK_README_STYLE: preview page style
	AssetsDir        string // MDBOOK_README_ASSETS_DIR: custom styles directory
	SkipVersionCheck bool   // MDBOOK_README_SKIP_VERSION_CHECK: tolerate mdbook mismatch
}

// knownEnvVars lists valid MDBOOK_README_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	envConfigPath:       true,
	envRoot:             true,
	envOutputDir:        true,
	envFilename:         true,
	envHTML:             true,
	envStyle:            true,
	envAssetsDir:        true,
	envSkipVersionCheck: true,
}

// loadEnvConfig reads configuration from environment variables.
// Boolean values use strconv.ParseBool; unparsable values are ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv(envConfigPath),
		Root:       os.Getenv(envRoot),
		OutputDir:  os.Getenv(envOutputDir),
		Filename:   os.Getenv(envFilename),
		Style:      os.Getenv(envStyle),
		AssetsDir:  os.Getenv(envAssetsDir),
	}

	if v := os.Getenv(envHTML); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.HTML = &b
		}
	}

	if v := os.Getenv(envSkipVersionCheck); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.SkipVersionCheck = b
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized MDBOOK_README_* variables.
// Helps catch typos like MDBOOK_README_OUTPUTDIR.
func warnUnknownEnvVars(p *printer) {
	var unknown []string
	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name := strings.SplitN(env, "=", 2)[0]
		if !knownEnvVars[name] {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	for _, name := range unknown {
		p.warnf("unknown environment variable %s (typo?)", name)
	}
}

// applyEnvConfig applies environment variable values to config.
// Set variables override the config file, giving:
// CLI flags > env vars > config file > book config > defaults
// (CLI flags are applied later in resolveSettings).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Root != "" {
		cfg.Root = env.Root
	}
	if env.OutputDir != "" {
		cfg.Output.Dir = env.OutputDir
	}
	if env.Filename != "" {
		cfg.Output.Filename = env.Filename
	}
	if env.HTML != nil {
		html := *env.HTML
		cfg.Output.HTML = &html
	}
	if env.Style != "" {
		cfg.Output.Style = env.Style
	}
	if env.AssetsDir != "" {
		cfg.Output.AssetsDir = env.AssetsDir
	}
	if env.SkipVersionCheck {
		cfg.Version.SkipCheck = true
	}
}

// printEnvVars lists the recognized variables, one per line.
func printEnvVars(w io.Writer) {
	names := make([]string, 0, len(knownEnvVars))
	for name := range knownEnvVars {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %s\n", name)
	}
}
