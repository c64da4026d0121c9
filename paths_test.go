package cudafind

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestResolveSymlinks_Chain(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink creation requires privileges on windows")
	}
	dir := t.TempDir()
	target := filepath.Join(dir, "real")
	if err := os.WriteFile(target, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	link := filepath.Join(dir, "link")
	if err := os.Symlink(target, link); err != nil {
		t.Fatalf("symlink: %v", err)
	}

	if got := resolveSymlinks(link); got != target {
		t.Errorf("expected %q; got %q", target, got)
	}
}

func TestResolveSymlinks_CycleTerminates(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink creation requires privileges on windows")
	}
	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	b := filepath.Join(dir, "b")
	if err := os.Symlink(a, b); err != nil {
		t.Fatalf("symlink: %v", err)
	}
	if err := os.Symlink(b, a); err != nil {
		t.Fatalf("symlink: %v", err)
	}

	got := resolveSymlinks(a)
	if got != a && got != b {
		t.Errorf("expected cutoff at %q or %q; got %q", a, b, got)
	}
}

func TestResolveSymlinks_PlainFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plain")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if got := resolveSymlinks(path); got != path {
		t.Errorf("expected %q; got %q", path, got)
	}
}

func TestValidDirs(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	file := filepath.Join(dir, "file")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	got := validDirs([]string{sub, sub, file, filepath.Join(dir, "missing")})
	if len(got) != 1 || got[0] != sub {
		t.Errorf("expected [%q]; got %v", sub, got)
	}
}

func TestValidDirs_Idempotent(t *testing.T) {
	dir := t.TempDir()
	once := validDirs([]string{dir, dir})
	twice := validDirs(once)
	if len(once) != len(twice) {
		t.Fatalf("expected same length; got %d and %d", len(once), len(twice))
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Errorf("entry %d: expected %q; got %q", i, once[i], twice[i])
		}
	}
}

func TestValidDirs_DeduplicatesSymlinkedDirs(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink creation requires privileges on windows")
	}
	dir := t.TempDir()
	real := filepath.Join(dir, "real")
	if err := os.Mkdir(real, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	alias := filepath.Join(dir, "alias")
	if err := os.Symlink(real, alias); err != nil {
		t.Fatalf("symlink: %v", err)
	}

	got := validDirs([]string{real, alias})
	if len(got) != 1 || got[0] != real {
		t.Errorf("expected [%q]; got %v", real, got)
	}
}
