package cudafind

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// clearDiscoveryEnv blanks every variable the finder consults so tests see a
// host with no explicit configuration.
func clearDiscoveryEnv(t *testing.T) {
	t.Helper()
	for _, name := range rootEnvVars {
		t.Setenv(name, "")
	}
	t.Setenv(superRootEnvVar, "")
}

func TestFindToolkit_EnvOverride(t *testing.T) {
	clearDiscoveryEnv(t)
	root := t.TempDir()
	t.Setenv("CUDA_HOME", root)

	got := newTestDiscoverer().findToolkit()
	exp := resolveSymlinks(root)
	if len(got) != 1 || got[0] != exp {
		t.Errorf("expected [%q]; got %v", exp, got)
	}
}

func TestFindToolkit_EnvOverrideDeduplicates(t *testing.T) {
	clearDiscoveryEnv(t)
	root := t.TempDir()
	t.Setenv("CUDA_HOME", root)
	t.Setenv("CUDA_PATH", root)

	got := newTestDiscoverer().findToolkit()
	if len(got) != 1 {
		t.Errorf("expected a single deduplicated root; got %v", got)
	}
}

func TestFindToolkit_EnvOverrideAmbiguous(t *testing.T) {
	clearDiscoveryEnv(t)
	a := t.TempDir()
	b := t.TempDir()
	t.Setenv("CUDA_HOME", a)
	t.Setenv("CUDA_ROOT", b)

	got := newTestDiscoverer().findToolkit()
	if len(got) != 2 {
		t.Fatalf("expected both roots; got %v", got)
	}
	if got[0] != resolveSymlinks(a) || got[1] != resolveSymlinks(b) {
		t.Errorf("expected [%q %q]; got %v", resolveSymlinks(a), resolveSymlinks(b), got)
	}
}

func TestFindToolkit_EnvOverrideMissingDir(t *testing.T) {
	clearDiscoveryEnv(t)
	t.Setenv("PATH", "")
	t.Setenv("CUDA_HOME", filepath.Join(t.TempDir(), "missing"))

	// A dangling override contributes nothing; discovery falls through to
	// the heuristics, which on a bare host find nothing either.
	got := newTestDiscoverer().findToolkit()
	for _, root := range got {
		if strings.Contains(root, "missing") {
			t.Errorf("dangling override leaked into roots: %v", got)
		}
	}
}

func TestDeriveFromSuperRoot_SoleVersionDir(t *testing.T) {
	super := t.TempDir()
	if err := os.MkdirAll(filepath.Join(super, "cuda", "12.4"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	got, ok := newTestDiscoverer().deriveFromSuperRoot(super)
	if !ok {
		t.Fatal("expected derivation to succeed")
	}
	exp := filepath.Join(super, "cuda", "12.4")
	if got != exp {
		t.Errorf("expected %q; got %q", exp, got)
	}
}

func TestDeriveFromSuperRoot_AmbiguousFails(t *testing.T) {
	super := t.TempDir()
	for _, v := range []string{"12.3", "12.4"} {
		if err := os.MkdirAll(filepath.Join(super, "cuda", v), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
	}

	if _, ok := newTestDiscoverer().deriveFromSuperRoot(super); ok {
		t.Error("expected derivation to fail with two version directories")
	}
}

func TestDeriveFromSuperRoot_EmptyFails(t *testing.T) {
	super := t.TempDir()
	if err := os.MkdirAll(filepath.Join(super, "cuda"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	if _, ok := newTestDiscoverer().deriveFromSuperRoot(super); ok {
		t.Error("expected derivation to fail with no version directories")
	}
}

type staticPrefs string

func (p staticPrefs) PreferredVersion() (string, bool) { return string(p), p != "" }

func TestDeriveFromSuperRoot_PreferenceWins(t *testing.T) {
	super := t.TempDir()
	for _, v := range []string{"12.3", "12.4"} {
		if err := os.MkdirAll(filepath.Join(super, "cuda", v), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
	}

	d := newTestDiscoverer()
	d.prefs = staticPrefs("12.3")
	got, ok := d.deriveFromSuperRoot(super)
	if !ok {
		t.Fatal("expected derivation to succeed")
	}
	exp := filepath.Join(super, "cuda", "12.3")
	if got != exp {
		t.Errorf("expected %q; got %q", exp, got)
	}
}

func TestVersionDirPattern(t *testing.T) {
	for _, name := range []string{"12.4", "v12.4", "2024.1.0", "9"} {
		if !versionDirPattern.MatchString(name) {
			t.Errorf("expected %q to look like a version", name)
		}
	}
	for _, name := range []string{"cuda", "12.4-rc", "bin", ""} {
		if versionDirPattern.MatchString(name) {
			t.Errorf("expected %q to not look like a version", name)
		}
	}
}

func TestDefaultToolkitDirs_NewestFirst(t *testing.T) {
	if runtime.GOOS != "linux" && runtime.GOOS != "darwin" {
		t.Skip("conventional directories differ on this platform")
	}
	dirs := defaultToolkitDirs()

	index := func(want string) int {
		for i, d := range dirs {
			if strings.HasSuffix(d, want) {
				return i
			}
		}
		t.Fatalf("expected %q in %v", want, dirs)
		return -1
	}

	if index("-12.4") >= index("-12.3") {
		t.Error("expected 12.4 before 12.3")
	}
	if index("-12.4") >= index("/usr/local/cuda") {
		t.Error("expected version-suffixed prefix before the unsuffixed one")
	}
}

func TestStripToolDir(t *testing.T) {
	cases := []struct{ in, exp string }{
		{filepath.Join("opt", "cuda", "bin"), filepath.Join("opt", "cuda")},
		{filepath.Join("opt", "cuda", "bin64"), filepath.Join("opt", "cuda")},
		{filepath.Join("opt", "cuda", "lib64"), filepath.Join("opt", "cuda")},
		{filepath.Join("opt", "cuda"), filepath.Join("opt", "cuda")},
	}
	for _, c := range cases {
		if got := stripToolDir(c.in); got != c.exp {
			t.Errorf("stripToolDir(%q): expected %q; got %q", c.in, c.exp, got)
		}
	}
}
