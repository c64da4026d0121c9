package cudafind

import (
	"os"
	"path/filepath"
)

// maxSymlinkHops bounds symlink-chain resolution so that cyclic or
// pathological chains terminate.
const maxSymlinkHops = 10

// resolveSymlinks follows a chain of symlinks to the real file, up to
// maxSymlinkHops deep. On a cycle or an over-long chain it returns the path
// reached at the cutoff. Unreadable links are treated as the end of the chain.
func resolveSymlinks(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	for i := 0; i < maxSymlinkHops; i++ {
		target, err := os.Readlink(path)
		if err != nil {
			break
		}
		if !filepath.IsAbs(target) {
			target = filepath.Join(filepath.Dir(path), target)
		}
		path = target
	}
	return filepath.Clean(path)
}

// validDirs filters candidates down to existing directories, resolving
// symlinks and dropping duplicates while preserving order.
func validDirs(candidates []string) []string {
	seen := make(map[string]struct{}, len(candidates))
	var dirs []string
	for _, candidate := range candidates {
		resolved := resolveSymlinks(candidate)
		if _, ok := seen[resolved]; ok {
			continue
		}
		info, err := os.Stat(resolved)
		if err != nil || !info.IsDir() {
			continue
		}
		seen[resolved] = struct{}{}
		dirs = append(dirs, resolved)
	}
	return dirs
}

// fileExists returns true if the given path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// dirExists returns true if the given path exists and is a directory.
func dirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
