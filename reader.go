package htgen

import (
	"fmt"
	"os"
)

// SourceReader reads fragments and auxiliary documents.
// Implementations must wrap fs.ErrNotExist for absent documents.
type SourceReader interface {
	ReadSource(path string) (string, error)
}

// FileReader reads sources from the local filesystem.
type FileReader struct{}

// ReadSource returns the content of the file at path.
func (FileReader) ReadSource(path string) (string, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- paths come from the site registry
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// Compile-time interface check.
var _ SourceReader = FileReader{}
