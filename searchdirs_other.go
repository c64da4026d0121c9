//go:build !linux && !darwin && !windows

package cudafind

import (
	"os"
	"path/filepath"
	"strings"
)

// defaultLibDirs returns a conservative default library search list for
// other Unix-like systems.
func defaultLibDirs() []string {
	var dirs []string
	for _, dir := range strings.Split(os.Getenv("LD_LIBRARY_PATH"), string(filepath.ListSeparator)) {
		if dir != "" {
			dirs = append(dirs, dir)
		}
	}
	return append(dirs, "/usr/local/lib", "/usr/lib", "/lib")
}

// defaultToolkitDirs returns the conventional install locations.
func defaultToolkitDirs() []string {
	return []string{"/usr/local/cuda", "/opt/cuda"}
}
