package config

// Notes:
// - resolveConfigPath: the user config directory case relies on
//   os.UserConfigDir honoring XDG_CONFIG_HOME, which only holds on Linux
//   and other non-Darwin unix systems. It is skipped elsewhere.
// - Tests that change the working directory cannot run in parallel.

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return path
}

func boolPtr(b bool) *bool { return &b }

// ---------------------------------------------------------------------------
// TestDefaultConfig - Defaults
// ---------------------------------------------------------------------------

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if cfg.Root != "" {
		t.Errorf("Root = %q, want empty", cfg.Root)
	}
	if cfg.Output.Dir != "" {
		t.Errorf("Output.Dir = %q, want empty", cfg.Output.Dir)
	}
	if cfg.Output.Filename != DefaultFilename {
		t.Errorf("Output.Filename = %q, want %q", cfg.Output.Filename, DefaultFilename)
	}
	if cfg.Output.HTML != nil {
		t.Errorf("Output.HTML = %v, want nil", *cfg.Output.HTML)
	}
	if cfg.Version.SkipCheck {
		t.Error("Version.SkipCheck = true, want false")
	}
}

func TestConfig_OutputFilename(t *testing.T) {
	t.Parallel()

	if got := (&Config{}).OutputFilename(); got != DefaultFilename {
		t.Errorf("OutputFilename() = %q, want %q", got, DefaultFilename)
	}
	cfg := &Config{Output: OutputConfig{Filename: "SUMMARY_INDEX.md"}}
	if got := cfg.OutputFilename(); got != "SUMMARY_INDEX.md" {
		t.Errorf("OutputFilename() = %q, want SUMMARY_INDEX.md", got)
	}
}

// ---------------------------------------------------------------------------
// TestConfig_Validate - Field validation
// ---------------------------------------------------------------------------

func TestValidateFieldLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		value     string
		maxLength int
		wantErr   bool
	}{
		{"empty value is valid", "", 10, false},
		{"value at limit is valid", "1234567890", 10, false},
		{"value under limit is valid", "12345", 10, false},
		{"value over limit returns error", "12345678901", 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := validateFieldLength("test.field", tt.value, tt.maxLength)
			if !tt.wantErr {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, ErrFieldTooLong) {
				t.Errorf("error = %v, want ErrFieldTooLong", err)
			}
			if !strings.Contains(err.Error(), "test.field") {
				t.Errorf("error %q should name the field", err)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{
			name: "empty config is valid",
			cfg:  Config{},
		},
		{
			name: "typical config is valid",
			cfg: Config{
				Root:   "https://example.com/book",
				Output: OutputConfig{Dir: "dist", Filename: "README.md", HTML: boolPtr(true)},
			},
		},
		{
			name: "markdown extension is valid",
			cfg:  Config{Output: OutputConfig{Filename: "index.markdown"}},
		},
		{
			name:    "root too long",
			cfg:     Config{Root: strings.Repeat("a", MaxRootLength+1)},
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "dir too long",
			cfg:     Config{Output: OutputConfig{Dir: strings.Repeat("d", MaxDirLength+1)}},
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "filename too long",
			cfg:     Config{Output: OutputConfig{Filename: strings.Repeat("f", MaxFilenameLength) + ".md"}},
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "filename with directory",
			cfg:     Config{Output: OutputConfig{Filename: "../README.md"}},
			wantErr: ErrInvalidFilename,
		},
		{
			name:    "filename with wrong extension",
			cfg:     Config{Output: OutputConfig{Filename: "README.txt"}},
			wantErr: ErrInvalidFilename,
		},
		{
			name: "style and assets dir are valid",
			cfg:  Config{Output: OutputConfig{Style: "dark", AssetsDir: "theme"}},
		},
		{
			name:    "style with extension",
			cfg:     Config{Output: OutputConfig{Style: "dark.css"}},
			wantErr: ErrInvalidStyle,
		},
		{
			name:    "style too long",
			cfg:     Config{Output: OutputConfig{Style: strings.Repeat("s", MaxFilenameLength+1)}},
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "assets dir too long",
			cfg:     Config{Output: OutputConfig{AssetsDir: strings.Repeat("a", MaxDirLength+1)}},
			wantErr: ErrFieldTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestLoadConfig - File loading
// ---------------------------------------------------------------------------

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("empty name returns ErrEmptyConfigName", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig("")
		if !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("valid file path loads config", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, t.TempDir(), "readme.yaml", `root: "docs"
output:
  dir: "dist"
  filename: "INDEX.md"
  html: true
version:
  skipCheck: true
`)

		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Root != "docs" {
			t.Errorf("Root = %q, want docs", cfg.Root)
		}
		if cfg.Output.Dir != "dist" {
			t.Errorf("Output.Dir = %q, want dist", cfg.Output.Dir)
		}
		if cfg.Output.Filename != "INDEX.md" {
			t.Errorf("Output.Filename = %q, want INDEX.md", cfg.Output.Filename)
		}
		if cfg.Output.HTML == nil || !*cfg.Output.HTML {
			t.Error("Output.HTML should be set to true")
		}
		if !cfg.Version.SkipCheck {
			t.Error("Version.SkipCheck = false, want true")
		}
	})

	t.Run("absent html stays unset", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, t.TempDir(), "readme.yaml", "root: \".\"\n")

		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Output.HTML != nil {
			t.Errorf("Output.HTML = %v, want nil", *cfg.Output.HTML)
		}
	})

	t.Run("explicit false html is kept", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, t.TempDir(), "readme.yaml", "output:\n  html: false\n")

		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Output.HTML == nil || *cfg.Output.HTML {
			t.Error("Output.HTML should be set to false")
		}
	})

	t.Run("nonexistent file path returns ErrConfigNotFound", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig("/nonexistent/path/readme.yaml")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("invalid YAML returns ErrConfigParse", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, t.TempDir(), "invalid.yaml", "root: [unclosed")
		_, err := LoadConfig(path)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("unknown field returns ErrConfigParse in strict mode", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, t.TempDir(), "unknown.yaml", "root: \".\"\nstyle: \"default\"\n")
		_, err := LoadConfig(path)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("invalid filename fails validation", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, t.TempDir(), "bad.yaml", "output:\n  filename: \"pages/README.md\"\n")
		_, err := LoadConfig(path)
		if !errors.Is(err, ErrInvalidFilename) {
			t.Errorf("error = %v, want ErrInvalidFilename", err)
		}
	})

	t.Run("unreadable file returns read error not ErrConfigNotFound", func(t *testing.T) {
		t.Parallel()

		if runtime.GOOS == "windows" || os.Getuid() == 0 {
			t.Skip("file permissions are not enforced")
		}
		path := writeConfig(t, t.TempDir(), "unreadable.yaml", "root: \".\"\n")
		if err := os.Chmod(path, 0o000); err != nil {
			t.Fatalf("setup chmod: %v", err)
		}
		defer func() { _ = os.Chmod(path, 0o600) }()

		_, err := LoadConfig(path)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, should not be ErrConfigNotFound", err)
		}
	})
}

func TestConfig_Marshal(t *testing.T) {
	t.Parallel()

	cfg := &Config{Root: "docs", Output: OutputConfig{Dir: "dist", Filename: "README.md", HTML: boolPtr(true)}}
	data, err := cfg.Marshal()
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	path := writeConfig(t, t.TempDir(), "roundtrip.yaml", string(data))
	got, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v\n%s", err, data)
	}
	if got.Root != cfg.Root || got.Output.Dir != cfg.Output.Dir || got.Output.Filename != cfg.Output.Filename {
		t.Errorf("LoadConfig(Marshal()) = %+v, want %+v", got, cfg)
	}
	if got.Output.HTML == nil || !*got.Output.HTML {
		t.Error("Output.HTML lost in round trip")
	}
}

// ---------------------------------------------------------------------------
// TestResolveConfigPath - Name lookup
// ---------------------------------------------------------------------------

func TestResolveConfigPath_CurrentDirectory(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeConfig(t, dir, "team.yml", "root: \".\"\n")

	got, err := resolveConfigPath("team")
	if err != nil {
		t.Fatalf("resolveConfigPath() error = %v", err)
	}
	if got != "team.yml" {
		t.Errorf("resolveConfigPath() = %q, want team.yml", got)
	}

	cfg, err := LoadConfig("team")
	if err != nil {
		t.Fatalf("LoadConfig(name) error = %v", err)
	}
	if cfg.Root != "." {
		t.Errorf("Root = %q, want .", cfg.Root)
	}
}

func TestResolveConfigPath_PrefersYAMLExtension(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeConfig(t, dir, "both.yaml", "root: \"yaml\"\n")
	writeConfig(t, dir, "both.yml", "root: \"yml\"\n")

	got, err := resolveConfigPath("both")
	if err != nil {
		t.Fatalf("resolveConfigPath() error = %v", err)
	}
	if got != "both.yaml" {
		t.Errorf("resolveConfigPath() = %q, want both.yaml", got)
	}
}

func TestResolveConfigPath_UserConfigDir(t *testing.T) {
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" || runtime.GOOS == "plan9" {
		t.Skip("os.UserConfigDir ignores XDG_CONFIG_HOME on this platform")
	}

	t.Chdir(t.TempDir())
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	appDir := filepath.Join(xdg, AppName)
	if err := os.MkdirAll(appDir, 0o750); err != nil {
		t.Fatal(err)
	}
	want := writeConfig(t, appDir, "shared.yaml", "root: \".\"\n")

	got, err := resolveConfigPath("shared")
	if err != nil {
		t.Fatalf("resolveConfigPath() error = %v", err)
	}
	if got != want {
		t.Errorf("resolveConfigPath() = %q, want %q", got, want)
	}
}

func TestResolveConfigPath_NotFoundListsTriedPaths(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := resolveConfigPath("missing")
	if !errors.Is(err, ErrConfigNotFound) {
		t.Fatalf("error = %v, want ErrConfigNotFound", err)
	}
	for _, want := range []string{"missing.yaml", "missing.yml"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should mention %s", err, want)
		}
	}
}

func TestSearchPaths(t *testing.T) {
	t.Parallel()

	paths := SearchPaths("team")
	if len(paths) < 2 {
		t.Fatalf("SearchPaths() = %v, want at least the local paths", paths)
	}
	if paths[0] != "team.yaml" || paths[1] != "team.yml" {
		t.Errorf("local paths = %v, want [team.yaml team.yml]", paths[:2])
	}
	for _, p := range paths[2:] {
		if filepath.Base(filepath.Dir(p)) != AppName {
			t.Errorf("user path %q should live under %s/", p, AppName)
		}
	}
}
