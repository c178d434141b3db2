package osfilesystem

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSystem_ListFiles(t *testing.T) {
	fs := New()

	tmpDir, err := os.MkdirTemp("", "osfilesystem_test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	// Create out of order to prove sorting.
	for _, name := range []string{"0003.exr", "0001.exr", "0002.exr", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(tmpDir, name), []byte("x"), 0644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	if err := os.Mkdir(filepath.Join(tmpDir, "sub.exr"), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	paths, err := fs.ListFiles(tmpDir, ".exr")
	if err != nil {
		t.Fatalf("ListFiles failed: %v", err)
	}

	want := []string{
		filepath.Join(tmpDir, "0001.exr"),
		filepath.Join(tmpDir, "0002.exr"),
		filepath.Join(tmpDir, "0003.exr"),
	}
	if len(paths) != len(want) {
		t.Fatalf("got %d paths, want %d: %v", len(paths), len(want), paths)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("paths[%d] = %s, want %s", i, paths[i], want[i])
		}
	}
}

func TestFileSystem_ListFiles_MissingDir(t *testing.T) {
	fs := New()
	if _, err := fs.ListFiles("/nonexistent/path", ".exr"); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestFileSystem_IsDir(t *testing.T) {
	fs := New()

	tmpDir, err := os.MkdirTemp("", "osfilesystem_test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	ok, err := fs.IsDir(tmpDir)
	if err != nil || !ok {
		t.Errorf("IsDir(%s) = %v, %v; want true, nil", tmpDir, ok, err)
	}

	file := filepath.Join(tmpDir, "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	ok, err = fs.IsDir(file)
	if err != nil || ok {
		t.Errorf("IsDir(file) = %v, %v; want false, nil", ok, err)
	}

	ok, err = fs.IsDir(filepath.Join(tmpDir, "missing"))
	if err != nil || ok {
		t.Errorf("IsDir(missing) = %v, %v; want false, nil", ok, err)
	}
}
