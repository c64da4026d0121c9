//go:build windows

package cudafind

import "golang.org/x/sys/windows"

// openLibrary maps the DLL at path into the process and returns the handle.
func openLibrary(path string) (uintptr, error) {
	handle, err := windows.LoadLibrary(path)
	if err != nil {
		return 0, err
	}
	return uintptr(handle), nil
}
