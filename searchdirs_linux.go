//go:build linux

package cudafind

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// multiarch returns the Debian-style multiarch tuple for the running
// architecture.
func multiarch() string {
	switch runtime.GOARCH {
	case "amd64":
		return "x86_64-linux-gnu"
	case "arm64":
		return "aarch64-linux-gnu"
	case "ppc64le":
		return "powerpc64le-linux-gnu"
	default:
		return runtime.GOARCH + "-linux-gnu"
	}
}

// defaultLibDirs returns the directories the dynamic linker consults by
// default: LD_LIBRARY_PATH entries followed by the standard system library
// directories.
func defaultLibDirs() []string {
	var dirs []string
	for _, dir := range strings.Split(os.Getenv("LD_LIBRARY_PATH"), string(filepath.ListSeparator)) {
		if dir != "" {
			dirs = append(dirs, dir)
		}
	}
	dirs = append(dirs,
		"/usr/local/lib",
		filepath.Join("/usr/lib", multiarch()),
		filepath.Join("/lib", multiarch()),
		"/usr/lib64",
		"/lib64",
		"/usr/lib",
		"/lib",
	)
	return dirs
}

// defaultToolkitDirs returns the conventional install locations, newest
// version first. Version-suffixed prefixes come before the unsuffixed
// symlink so that the newest concrete install wins.
func defaultToolkitDirs() []string {
	versions := cudaVersions()
	dirs := make([]string, 0, len(versions)+2)
	for i := len(versions) - 1; i >= 0; i-- {
		v := versions[i]
		dirs = append(dirs, fmt.Sprintf("/usr/local/cuda-%d.%d", v.Major, v.Minor))
	}
	return append(dirs, "/usr/local/cuda", "/opt/cuda")
}
