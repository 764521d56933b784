package appdir

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func stubExecutable(t *testing.T, path string, err error) {
	t.Helper()
	orig := Executable
	Executable = func() (string, error) { return path, err }
	t.Cleanup(func() { Executable = orig })
}

func TestDir(t *testing.T) {
	tmpDir := t.TempDir()
	exe := filepath.Join(tmpDir, "tasks")
	if err := os.WriteFile(exe, []byte("#!/bin/sh\n"), 0755); err != nil {
		t.Fatalf("write executable: %v", err)
	}
	stubExecutable(t, exe, nil)

	dir, err := Dir()
	if err != nil {
		t.Fatalf("Dir failed: %v", err)
	}
	want, _ := filepath.EvalSymlinks(tmpDir)
	if dir != want {
		t.Errorf("Dir: got %q, want %q", dir, want)
	}
}

func TestDirFollowsSymlink(t *testing.T) {
	realDir := t.TempDir()
	linkDir := t.TempDir()
	exe := filepath.Join(realDir, "tasks")
	if err := os.WriteFile(exe, []byte("#!/bin/sh\n"), 0755); err != nil {
		t.Fatalf("write executable: %v", err)
	}
	link := filepath.Join(linkDir, "tasks")
	if err := os.Symlink(exe, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
	stubExecutable(t, link, nil)

	dir, err := Dir()
	if err != nil {
		t.Fatalf("Dir failed: %v", err)
	}
	want, _ := filepath.EvalSymlinks(realDir)
	if dir != want {
		t.Errorf("Dir: got %q, want %q", dir, want)
	}
}

func TestDirError(t *testing.T) {
	stubExecutable(t, "", errors.New("no executable"))

	if _, err := Dir(); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestPaths(t *testing.T) {
	dir := filepath.Join("opt", "tasks")
	if got := StoragePath(dir); got != filepath.Join(dir, "tasks.json") {
		t.Errorf("StoragePath: got %q", got)
	}
	if got := ConfigPath(dir); got != filepath.Join(dir, "tasks.toml") {
		t.Errorf("ConfigPath: got %q", got)
	}
}
