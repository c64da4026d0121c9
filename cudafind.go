// Package cudafind locates an installed NVIDIA CUDA toolkit on the host
// without manual path configuration. It enumerates the file names and
// directories a versioned toolkit component might use on the current
// platform, finds the installation root from environment overrides or
// heuristics, resolves each component, and opens the libraries it finds.
package cudafind

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"
)

// Component declares one toolkit component to resolve during discovery.
type Component struct {
	Name     string
	Kind     Kind
	Optional bool
}

// components lists everything discovery resolves, in resolution order. A
// fatal error on a required component aborts the remainder of the pass.
var components = []Component{
	{Name: "nvcc", Kind: KindBinary},
	{Name: "nvdisasm", Kind: KindBinary, Optional: true},
	{Name: "compute-sanitizer", Kind: KindBinary, Optional: true},
	{Name: "cudart", Kind: KindLibrary},
	{Name: "nvvm", Kind: KindLibrary},
	{Name: "nvrtc", Kind: KindLibrary, Optional: true},
	{Name: "cublas", Kind: KindLibrary, Optional: true},
	{Name: "cufft", Kind: KindLibrary, Optional: true},
	{Name: "curand", Kind: KindLibrary, Optional: true},
	{Name: "cusparse", Kind: KindLibrary, Optional: true},
	{Name: "cusolver", Kind: KindLibrary, Optional: true},
	{Name: "cupti", Kind: KindLibrary, Optional: true},
}

// Options configures a discovery pass. The zero value is ready to use: a
// discard logger and file-backed preferences.
type Options struct {
	// Logger receives discovery diagnostics. Nil discards them.
	Logger *log.Logger
	// Preferences supplies packaging-level hints. Nil reads the user's
	// config file.
	Preferences Preferences
}

// Report is the immutable result of one discovery pass.
type Report struct {
	// Roots holds the toolkit roots the pass searched, most preferred first.
	Roots []string
	// Available is true only if every required component resolved and every
	// required library was opened.
	Available bool

	resolved map[string]ResolvedPath
}

// Lookup returns the resolved path for a component by logical name.
func (r *Report) Lookup(name string) (ResolvedPath, bool) {
	rp, ok := r.resolved[name]
	return rp, ok
}

// Components returns the names of all components that resolved.
func (r *Report) Components() []string {
	names := make([]string, 0, len(r.resolved))
	for _, c := range components {
		if _, ok := r.resolved[c.Name]; ok {
			names = append(names, c.Name)
		}
	}
	return names
}

// discoverer carries the collaborators of one discovery pass.
type discoverer struct {
	log   *log.Logger
	prefs Preferences
}

// Discover runs one discovery pass and returns its report. The report is
// always non-nil; on error it is well-formed with Available false. Errors are
// *NotFoundError for a missing required component, *LoadError for a library
// that would not load, or ErrNotAvailable when no installation root could be
// found at all.
func Discover(opts Options) (*Report, error) {
	d := &discoverer{log: opts.Logger, prefs: opts.Preferences}
	if d.log == nil {
		d.log = log.New(io.Discard)
	}
	if d.prefs == nil {
		d.prefs = loadPreferences()
	}

	report := &Report{resolved: make(map[string]ResolvedPath)}
	report.Roots = d.findToolkit()
	if len(report.Roots) == 0 {
		return report, ErrNotAvailable
	}
	d.log.Debug("searching toolkit roots", "roots", report.Roots)

	for _, c := range components {
		var rp *ResolvedPath
		var err error
		switch c.Kind {
		case KindBinary:
			rp, err = d.binary(report.Roots, c.Name, c.Optional)
		default:
			rp, err = d.library(report.Roots, c.Name, c.Optional)
		}
		if err != nil {
			return report, err
		}
		if rp != nil {
			report.resolved[c.Name] = *rp
		}
	}
	report.Available = true
	return report, nil
}

var (
	defaultOnce   sync.Once
	defaultReport *Report
)

// Default runs discovery once per process and returns the memoized report.
// Failures leave the report unavailable; they do not propagate.
func Default() *Report {
	defaultOnce.Do(func() {
		defaultReport, _ = Discover(Options{})
	})
	return defaultReport
}
