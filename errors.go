package cudafind

import (
	"errors"
	"fmt"
)

// ErrNotAvailable is returned when no CUDA toolkit installation could be
// located on the host.
var ErrNotAvailable = errors.New("cuda toolkit not available")

// Kind distinguishes libraries from binaries in discovery results.
type Kind int

const (
	// KindLibrary denotes a shared library component.
	KindLibrary Kind = iota
	// KindBinary denotes an executable component.
	KindBinary
)

func (k Kind) String() string {
	if k == KindBinary {
		return "binary"
	}
	return "library"
}

// NotFoundError reports that a component could not be located anywhere.
// Discovery tolerates it for optional components; for required components it
// aborts the pass.
type NotFoundError struct {
	Name string
	Kind Kind
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("cuda %s %q not found; set CUDA_HOME to the toolkit installation root", e.Kind, e.Name)
}

// LoadError reports that a library was located but could not be opened as a
// shared object. Always fatal: a broken install is not improved by ignoring it.
type LoadError struct {
	Name string
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("cuda library %q at %s failed to load: %v", e.Name, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
