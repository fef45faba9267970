package htgen

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alnah/go-htgen/internal/fileutil"
	"github.com/alnah/go-htgen/internal/hints"
)

// filePermissions is the mode of written pages.
const filePermissions = 0o644

// OutputWriter persists composed documents.
type OutputWriter interface {
	Write(name string, content []byte) error
}

// DirWriter writes documents flat into Root, overwriting existing files.
// Each file is replaced atomically, so a failed write leaves the previous
// version in place.
type DirWriter struct {
	Root string
}

// NewDirWriter creates a DirWriter for root.
func NewDirWriter(root string) *DirWriter {
	return &DirWriter{Root: root}
}

// Write stores content as <Root>/<name>, creating Root if needed.
func (w *DirWriter) Write(name string, content []byte) error {
	if err := validateFileName(name); err != nil {
		return err
	}
	if err := os.MkdirAll(w.Root, fileutil.DirPermissions); err != nil {
		return fmt.Errorf("creating output directory: %w%s", err, hints.ForOutputDirectory())
	}
	return fileutil.WriteFileAtomic(filepath.Join(w.Root, name), content, filePermissions)
}

// Compile-time interface check.
var _ OutputWriter = (*DirWriter)(nil)
