package mdbook

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	readme "github.com/alnah/go-mdbook-readme"
)

// Book layout defaults, matching mdbook.
const (
	ManifestFile    = "book.toml"
	SummaryFile     = "SUMMARY.md"
	DefaultSrcDir   = "src"
	DefaultBuildDir = "book"
)

// Manifest is the subset of book.toml this backend reads.
type Manifest struct {
	Path     string // book.toml path, empty when the book has none
	Title    string
	Src      string
	BuildDir string
	Root     string // [output.readme] root, readme.DefaultRoot when absent or not a string
	HTML     bool   // [output.readme] html
}

type manifestFile struct {
	Book struct {
		Title string `toml:"title"`
		Src   string `toml:"src"`
	} `toml:"book"`
	Build struct {
		BuildDir string `toml:"build-dir"`
	} `toml:"build"`
	Output struct {
		Readme struct {
			Root any `toml:"root"`
			HTML any `toml:"html"`
		} `toml:"readme"`
	} `toml:"output"`
}

// DefaultManifest returns the layout mdbook assumes without a book.toml.
func DefaultManifest() *Manifest {
	return &Manifest{
		Src:      DefaultSrcDir,
		BuildDir: DefaultBuildDir,
		Root:     readme.DefaultRoot,
	}
}

// LoadManifest reads book.toml from bookDir. A missing file yields defaults.
func LoadManifest(bookDir string) (*Manifest, error) {
	m := DefaultManifest()
	path := filepath.Join(bookDir, ManifestFile)

	var file manifestFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return m, nil
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrManifestParse, path, err)
	}

	m.Path = path
	m.Title = file.Book.Title
	if file.Book.Src != "" {
		m.Src = file.Book.Src
	}
	if file.Build.BuildDir != "" {
		m.BuildDir = file.Build.BuildDir
	}
	if root, ok := file.Output.Readme.Root.(string); ok && root != "" {
		m.Root = root
	}
	if html, ok := file.Output.Readme.HTML.(bool); ok {
		m.HTML = html
	}
	return m, nil
}

// SrcDir returns the chapter source directory of the book at bookDir.
func (m *Manifest) SrcDir(bookDir string) string {
	if filepath.IsAbs(m.Src) {
		return m.Src
	}
	return filepath.Join(bookDir, m.Src)
}

// Destination returns where mdbook would place this backend's output:
// <build-dir>/readme under the book.
func (m *Manifest) Destination(bookDir string) string {
	build := m.BuildDir
	if !filepath.IsAbs(build) {
		build = filepath.Join(bookDir, build)
	}
	return filepath.Join(build, RendererName)
}
