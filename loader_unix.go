//go:build unix

package cudafind

import "github.com/ebitengine/purego"

// openLibrary maps the shared object at path into the process and returns the
// handle. The load is eager so that an incomplete or foreign-architecture
// library fails here rather than at first use.
func openLibrary(path string) (uintptr, error) {
	return purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
}
