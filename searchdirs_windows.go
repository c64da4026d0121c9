//go:build windows

package cudafind

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// defaultLibDirs returns the directories the Windows loader consults by
// default: the system directory followed by PATH entries.
func defaultLibDirs() []string {
	var dirs []string
	if root := os.Getenv("SystemRoot"); root != "" {
		dirs = append(dirs, filepath.Join(root, "System32"))
	}
	for _, dir := range strings.Split(os.Getenv("PATH"), string(filepath.ListSeparator)) {
		if dir != "" {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

// defaultToolkitDirs returns the conventional install locations under
// Program Files, newest version first. A 64-bit toolkit never installs under
// the 32-bit Program Files, so ProgramW6432 takes precedence when set.
func defaultToolkitDirs() []string {
	programFiles := os.Getenv("ProgramFiles")
	if w6432 := os.Getenv("ProgramW6432"); w6432 != "" {
		programFiles = w6432
	}
	if programFiles == "" {
		programFiles = `C:\Program Files`
	}
	base := filepath.Join(programFiles, "NVIDIA GPU Computing Toolkit", "CUDA")
	versions := cudaVersions()
	dirs := make([]string, 0, len(versions))
	for i := len(versions) - 1; i >= 0; i-- {
		v := versions[i]
		dirs = append(dirs, filepath.Join(base, fmt.Sprintf("v%d.%d", v.Major, v.Minor)))
	}
	return dirs
}
