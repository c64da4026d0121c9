package cudafind

import (
	"path/filepath"
	"runtime"
	"strings"
)

// targetArch maps the Go architecture name onto the token used by the
// toolkit's targets/<arch>-linux layout. NVIDIA names the arm64 server
// target "sbsa".
func targetArch() string {
	switch runtime.GOARCH {
	case "amd64":
		return "x86_64"
	case "arm64":
		return "sbsa"
	case "ppc64le":
		return "ppc64le"
	default:
		return runtime.GOARCH
	}
}

// libDirs expands candidate roots into the directories where the toolkit
// installs libraries. Each root is listed before its derived subdirectories
// so that a file directly under the root wins.
func libDirs(roots []string) []string {
	var dirs []string
	for _, root := range roots {
		dirs = append(dirs, root, filepath.Join(root, "lib"))
		if wordSize == 64 {
			dirs = append(dirs,
				filepath.Join(root, "lib64"),
				filepath.Join(root, "libx64"),
			)
		}
		switch runtime.GOOS {
		case "windows":
			dirs = append(dirs, filepath.Join(root, "bin"))
			if wordSize == 64 {
				dirs = append(dirs, filepath.Join(root, "bin", "x64"))
			} else {
				dirs = append(dirs, filepath.Join(root, "bin", "Win32"))
			}
		case "linux":
			dirs = append(dirs, filepath.Join(root, "targets", targetArch()+"-linux", "lib"))
		}
	}
	return dirs
}

// binDirs expands candidate roots into the directories where the toolkit
// installs binaries. Narrower than the library expansion.
func binDirs(roots []string) []string {
	var dirs []string
	for _, root := range roots {
		dirs = append(dirs, root, filepath.Join(root, "bin"))
	}
	return dirs
}

// extraLibRoots returns additional roots for libraries that live outside the
// generic layout. The CUPTI family sits under extras/CUPTI of roots that have
// an extras folder; the NVVM library sits under an nvvm subdirectory.
func extraLibRoots(name string, roots []string) []string {
	var extra []string
	switch {
	case name == "cupti" || strings.HasPrefix(name, "nvperf") || strings.HasPrefix(name, "pcsampling"):
		for _, root := range roots {
			if dirExists(filepath.Join(root, "extras")) {
				extra = append(extra, filepath.Join(root, "extras", "CUPTI"))
			}
		}
	case name == "nvvm":
		for _, root := range roots {
			extra = append(extra, filepath.Join(root, "nvvm"))
		}
	}
	return extra
}

// extraBinRoots returns additional roots for binaries shipped outside bin/.
// The compute sanitizer has shipped both under extras and at the top level.
func extraBinRoots(name string, roots []string) []string {
	if name != "compute-sanitizer" {
		return nil
	}
	var extra []string
	for _, root := range roots {
		extra = append(extra,
			filepath.Join(root, "extras", "compute-sanitizer"),
			filepath.Join(root, "compute-sanitizer"),
		)
	}
	return extra
}
