package assets

// DefaultStyleName is the built-in page style of the preview.
const DefaultStyleName = "default"

// StyleLoader loads a CSS style by name (without the .css extension).
// Implementations return ErrStyleNotFound for unknown styles and
// ErrInvalidAssetName for unsafe names.
type StyleLoader interface {
	LoadStyle(name string) (string, error)
}

// defaultLoader serves LoadStyle.
var defaultLoader = NewEmbeddedLoader()

// LoadStyle loads a built-in style by name.
func LoadStyle(name string) (string, error) {
	return defaultLoader.LoadStyle(name)
}
