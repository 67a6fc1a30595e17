package main

import (
	"fmt"
	"path/filepath"

	readme "github.com/alnah/go-mdbook-readme"
	"github.com/alnah/go-mdbook-readme/internal/assets"
	"github.com/alnah/go-mdbook-readme/internal/config"
	"github.com/alnah/go-mdbook-readme/internal/fileutil"
	"github.com/alnah/go-mdbook-readme/internal/hints"
)

// outputExtensions lists the accepted extensions of the generated page.
var outputExtensions = []string{".md", ".markdown"}

// bookDefaults holds what the book itself says about the output, read from
// the RenderContext in backend mode or from book.toml in build mode.
type bookDefaults struct {
	root        string
	destination string
	title       string
	html        bool
}

// settings is the resolved output configuration of one run.
type settings struct {
	root             string
	outputDir        string
	filename         string
	title            string
	html             bool
	style            string
	assetsDir        string
	skipVersionCheck bool
}

// outputPath returns the README path.
func (s settings) outputPath() string {
	return filepath.Join(s.outputDir, s.filename)
}

// loadConfig loads the YAML config named by the flag, else by
// MDBOOK_README_CONFIG, then applies environment overrides.
// Without a name the default config is used.
func loadConfig(name string, env *envConfig) (*config.Config, error) {
	if name == "" {
		name = env.ConfigPath
	}

	cfg := config.DefaultConfig()
	if name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			hint := ""
			if !fileutil.IsFilePath(name) {
				hint = hints.ForConfigNotFound(config.SearchPaths(name))
			}
			return nil, fmt.Errorf("loading config: %w%s", err, hint)
		}
		cfg = loaded
	}

	applyEnvConfig(env, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolveSettings merges the sources of output settings.
// Precedence: CLI flags > env vars (already in cfg) > config file > book > defaults.
func resolveSettings(f *outputFlags, cfg *config.Config, book bookDefaults) (settings, error) {
	s := settings{
		root:      readme.DefaultRoot,
		outputDir: book.destination,
		filename:  config.DefaultFilename,
		title:     book.title,
		html:      book.html,
		style:     assets.DefaultStyleName,
	}
	if s.outputDir == "" {
		s.outputDir = "."
	}
	if book.root != "" {
		s.root = book.root
	}

	if cfg.Root != "" {
		s.root = cfg.Root
	}
	if cfg.Output.Dir != "" {
		s.outputDir = cfg.Output.Dir
	}
	s.filename = cfg.OutputFilename()
	if cfg.Output.HTML != nil {
		s.html = *cfg.Output.HTML
	}
	if cfg.Output.Style != "" {
		s.style = cfg.Output.Style
	}
	s.assetsDir = cfg.Output.AssetsDir
	s.skipVersionCheck = cfg.Version.SkipCheck

	if f.root != "" {
		s.root = f.root
	}
	if f.dir != "" {
		s.outputDir = f.dir
	}
	if f.filename != "" {
		s.filename = f.filename
	}
	if f.htmlSet {
		s.html = f.html
	}
	if f.style != "" {
		s.style = f.style
	}
	if f.assetsDir != "" {
		s.assetsDir = f.assetsDir
	}

	if err := fileutil.ValidateFilename(s.filename, outputExtensions...); err != nil {
		return settings{}, fmt.Errorf("%w: %v", config.ErrInvalidFilename, err)
	}
	if err := assets.ValidateAssetName(s.style); err != nil {
		return settings{}, fmt.Errorf("%w: %v", config.ErrInvalidStyle, err)
	}
	return s, nil
}
