package cudafind

import (
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
)

// rootEnvVars are the explicit toolkit-root overrides, checked in order. Any
// that is set to an existing path wins over every heuristic.
var rootEnvVars = [...]string{"CUDA_HOME", "CUDA_PATH", "CUDA_ROOT"}

// superRootEnvVar points at an NVIDIA HPC SDK installation, which nests the
// toolkit under <root>/cuda/<version>.
const superRootEnvVar = "NVHPC_ROOT"

// versionDirPattern matches version-looking directory names ("12.4", "v12.4",
// "2024.1.0").
var versionDirPattern = regexp.MustCompile(`^v?[0-9]+(\.[0-9]+)*$`)

// findToolkit returns plausible toolkit installation roots, most preferred
// first. Explicit environment configuration short-circuits every heuristic;
// the remaining branches accumulate: a root inferred from nvcc on PATH, a
// root inferred from the runtime library in the default linker search, and
// the conventional install directories newest-first.
func (d *discoverer) findToolkit() []string {
	if roots := d.rootsFromEnv(); len(roots) > 0 {
		if len(roots) > 1 {
			d.log.Warn("multiple CUDA environment overrides point at different directories", "roots", roots)
		}
		return roots
	}

	var candidates []string
	if path, err := exec.LookPath(binNames("nvcc")[0]); err == nil {
		candidates = append(candidates, stripToolDir(filepath.Dir(resolveSymlinks(path))))
	}
	if path, ok := d.defaultSearchLibrary("cudart"); ok {
		candidates = append(candidates, stripToolDir(filepath.Dir(path)))
	}
	candidates = append(candidates, defaultToolkitDirs()...)
	return validDirs(candidates)
}

// rootsFromEnv collects roots from the override variables, deduplicated and
// filtered to existing directories.
func (d *discoverer) rootsFromEnv() []string {
	var roots []string
	for _, name := range rootEnvVars {
		if dir := os.Getenv(name); dir != "" {
			roots = append(roots, dir)
		}
	}
	if super := os.Getenv(superRootEnvVar); super != "" {
		if dir, ok := d.deriveFromSuperRoot(super); ok {
			roots = append(roots, dir)
		}
	}
	return validDirs(roots)
}

// deriveFromSuperRoot resolves the toolkit directory nested inside an HPC SDK
// installation: <super>/cuda/<version>, where the version comes from the
// preferences lookup or, failing that, from a sole version-looking
// subdirectory. With zero or several candidate subdirectories the derivation
// gives up for this variable only.
func (d *discoverer) deriveFromSuperRoot(super string) (string, bool) {
	base := filepath.Join(super, "cuda")
	if version, ok := d.prefs.PreferredVersion(); ok {
		return filepath.Join(base, version), true
	}

	entries, err := os.ReadDir(base)
	if err != nil {
		return "", false
	}
	var versioned []string
	for _, entry := range entries {
		if entry.IsDir() && versionDirPattern.MatchString(entry.Name()) {
			versioned = append(versioned, entry.Name())
		}
	}
	if len(versioned) != 1 {
		d.log.Debug("cannot derive toolkit from super-root", "base", base, "candidates", len(versioned))
		return "", false
	}
	return filepath.Join(base, versioned[0]), true
}

// defaultSearchLibrary locates a library using only the dynamic linker's
// default search directories, unversioned names first.
func (d *discoverer) defaultSearchLibrary(name string) (string, bool) {
	dirs := validDirs(defaultLibDirs())
	if path, ok := probe(dirs, libNames(name, nil)); ok {
		return path, true
	}
	return probe(dirs, libNames(name, versionsFor(name)))
}

// stripToolDir walks up out of a generic bin- or lib-looking directory, so
// that a tool found at <root>/bin/nvcc yields <root>.
func stripToolDir(dir string) string {
	switch filepath.Base(dir) {
	case "bin", "bin32", "bin64", "lib", "lib64", "libx64":
		return filepath.Dir(dir)
	}
	return dir
}
