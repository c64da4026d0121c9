package cudafind

import (
	"os/exec"
	"path/filepath"
)

// ResolvedPath is the terminal artifact of discovery for one component: an
// absolute, symlink-free path confirmed to exist. For libraries opened during
// discovery, Handle carries the loader handle.
type ResolvedPath struct {
	Path   string
	Kind   Kind
	Handle uintptr
}

// findLibrary searches the candidate roots for a library, trying every
// generated file name in every expanded directory, location-major. It falls
// back to the dynamic linker's default search directories. The returned path
// is symlink-resolved; the directory holding the matched name is not
// necessarily the directory holding the real file.
func (d *discoverer) findLibrary(roots []string, name string, versions []Version) (string, bool) {
	names := libNames(name, versions)
	dirs := validDirs(libDirs(append(append([]string(nil), roots...), extraLibRoots(name, roots)...)))
	if path, ok := probe(dirs, names); ok {
		return path, true
	}
	return probe(validDirs(defaultLibDirs()), names)
}

// findBinary searches the candidate roots for a binary, falling back to a
// PATH lookup of the bare name.
func (d *discoverer) findBinary(roots []string, name string) (string, bool) {
	dirs := validDirs(binDirs(append(append([]string(nil), roots...), extraBinRoots(name, roots)...)))
	if path, ok := probe(dirs, binNames(name)); ok {
		return path, true
	}
	if path, err := exec.LookPath(name); err == nil {
		return resolveSymlinks(path), true
	}
	return "", false
}

// probe tries every (dir, name) pair in dir-major order and returns the
// symlink-resolved path of the first existing file. Stat failures of any kind
// count as "not found".
func probe(dirs, names []string) (string, bool) {
	for _, dir := range dirs {
		for _, name := range names {
			path := filepath.Join(dir, name)
			if fileExists(path) {
				return resolveSymlinks(path), true
			}
		}
	}
	return "", false
}

// library locates and opens a library component. The unversioned names are
// tried first; only when they miss is the full version catalog consulted.
// Absence of an optional component yields (nil, nil).
func (d *discoverer) library(roots []string, name string, optional bool) (*ResolvedPath, error) {
	path, ok := d.findLibrary(roots, name, nil)
	if !ok {
		path, ok = d.findLibrary(roots, name, versionsFor(name))
	}
	if !ok {
		if optional {
			d.log.Debug("optional library not found", "name", name)
			return nil, nil
		}
		return nil, &NotFoundError{Name: name, Kind: KindLibrary}
	}
	handle, err := openLibrary(path)
	if err != nil {
		return nil, &LoadError{Name: name, Path: path, Err: err}
	}
	d.log.Debug("loaded library", "name", name, "path", path)
	return &ResolvedPath{Path: path, Kind: KindLibrary, Handle: handle}, nil
}

// binary locates a binary component. Binaries are located but never executed
// or opened here.
func (d *discoverer) binary(roots []string, name string, optional bool) (*ResolvedPath, error) {
	path, ok := d.findBinary(roots, name)
	if !ok {
		if optional {
			d.log.Debug("optional binary not found", "name", name)
			return nil, nil
		}
		return nil, &NotFoundError{Name: name, Kind: KindBinary}
	}
	d.log.Debug("found binary", "name", name, "path", path)
	return &ResolvedPath{Path: path, Kind: KindBinary}, nil
}
