// Package fs provides the on-disk layout for batch output.
package fs

import (
	"fmt"
	"os"
	"path/filepath"
)

// Directory and file names under the output root.
const (
	FilesDirName    = "files"
	ContentFileName = "content.csv"
	DatabaseName    = "content.db"
)

// Layout describes where a batch writes its output.
//
//	<root>/files/<name><ext>   one file per fetched URL
//	<root>/content.csv         consolidated text table
//	<root>/content.db          optional SQLite copy of the table
type Layout struct {
	Root string
}

// NewLayout creates a Layout rooted at root.
func NewLayout(root string) *Layout {
	return &Layout{Root: root}
}

// Ensure creates the root and files directories if they do not exist.
func (l *Layout) Ensure() error {
	if l.Root == "" {
		return fmt.Errorf("output directory required")
	}
	if err := os.MkdirAll(l.FilesDir(), 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	return nil
}

// FilesDir returns the directory holding fetched files.
func (l *Layout) FilesDir() string {
	return filepath.Join(l.Root, FilesDirName)
}

// FilePath returns the path for a stored file name.
func (l *Layout) FilePath(filename string) string {
	return filepath.Join(l.FilesDir(), filename)
}

// ContentPath returns the path of the output table.
func (l *Layout) ContentPath() string {
	return filepath.Join(l.Root, ContentFileName)
}

// DatabasePath returns the path of the optional SQLite database.
func (l *Layout) DatabasePath() string {
	return filepath.Join(l.Root, DatabaseName)
}
