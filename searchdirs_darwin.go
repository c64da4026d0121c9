//go:build darwin

package cudafind

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// defaultLibDirs returns the directories dyld consults by default:
// DYLD_LIBRARY_PATH entries followed by the standard fallback directories.
func defaultLibDirs() []string {
	var dirs []string
	for _, dir := range strings.Split(os.Getenv("DYLD_LIBRARY_PATH"), string(filepath.ListSeparator)) {
		if dir != "" {
			dirs = append(dirs, dir)
		}
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, "lib"))
	}
	return append(dirs, "/usr/local/lib", "/opt/homebrew/lib", "/usr/lib")
}

// defaultToolkitDirs returns the conventional install locations, newest
// version first.
func defaultToolkitDirs() []string {
	versions := cudaVersions()
	dirs := make([]string, 0, len(versions)+1)
	for i := len(versions) - 1; i >= 0; i-- {
		v := versions[i]
		dirs = append(dirs, fmt.Sprintf("/Developer/NVIDIA/CUDA-%d.%d", v.Major, v.Minor))
	}
	return append(dirs, "/usr/local/cuda")
}
