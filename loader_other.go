//go:build !unix && !windows

package cudafind

import "errors"

// openLibrary reports that library loading is unsupported on this platform.
func openLibrary(path string) (uintptr, error) {
	return 0, errors.New("shared library loading is not supported on this platform")
}
