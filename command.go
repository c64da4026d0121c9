package cudafind

import (
	"context"
	"os/exec"
)

// Nvcc wraps the resolved compiler driver as an invocable command.
type Nvcc struct {
	// Path is the resolved location of the nvcc binary.
	Path string
}

// Nvcc returns the compiler wrapper if nvcc resolved during discovery.
func (r *Report) Nvcc() (*Nvcc, bool) {
	rp, ok := r.Lookup("nvcc")
	if !ok {
		return nil, false
	}
	return &Nvcc{Path: rp.Path}, true
}

// Command returns an exec.Cmd invoking nvcc with the given arguments.
func (n *Nvcc) Command(ctx context.Context, args ...string) *exec.Cmd {
	return exec.CommandContext(ctx, n.Path, args...)
}

// Run invokes nvcc with the given arguments and returns its combined output.
func (n *Nvcc) Run(ctx context.Context, args ...string) ([]byte, error) {
	return n.Command(ctx, args...).CombinedOutput()
}
