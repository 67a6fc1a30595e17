// Package assets provides the stylesheets of the README HTML preview.
//
// # Loader Architecture
//
//	StyleLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - built-in styles compiled into the binary
//	    ├── FilesystemLoader  - styles from a user directory
//	    └── AssetResolver     - custom directory first, embedded fallback
//
// A custom directory holds one file per style:
//
//	{basePath}/
//	└── styles/
//	    └── {name}.css
//
// The resolver falls back to the embedded loader only when a style is not
// found, so an unreadable custom file is reported instead of hidden.
//
// # Security
//
// Style names are validated to prevent path traversal. FilesystemLoader
// resolves symlinks and verifies paths stay within basePath.
package assets
