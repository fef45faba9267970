// Package assets provides the page skeleton and the example site
// configuration shipped with htgen.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (default skeleton)
//	    ├── FilesystemLoader  - loads from a directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// EmbeddedLoader provides the built-in skeleton embedded at compile time.
//
// FilesystemLoader reads skeletons kept next to the page fragments, with
// path traversal protection and symlink resolution.
//
// AssetResolver is the loader used by the builder. It tries the
// FilesystemLoader first, falling back to EmbeddedLoader if the skeleton is
// not found. A site can therefore ship its own template.html or rely on the
// default one.
//
// # Directory Structure
//
//	{basePath}/
//	├── {name}.html      # skeleton, e.g. template.html
//	└── *.html           # page fragments (not read by this package)
//
// # Security
//
// Asset names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
