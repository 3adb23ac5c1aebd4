// Where: internal/infra/fileops/file_ops.go
// What: Filesystem operations for writing generated configuration files.
// Why: Replace outputs atomically so readers never see a partial file.
package fileops

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/moby/sys/atomicwriter"
)

// WriteFileAtomic writes data to a temporary file next to path and renames it
// into place. The parent directory must already exist; it is never created.
func WriteFileAtomic(path string, data []byte, perm fs.FileMode) error {
	dir := filepath.Dir(path)
	if !DirExists(dir) {
		return fmt.Errorf("output directory %s does not exist", dir)
	}
	if DirExists(path) {
		return fmt.Errorf("%s is a directory", path)
	}
	return atomicwriter.WriteFile(path, data, perm)
}

func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
