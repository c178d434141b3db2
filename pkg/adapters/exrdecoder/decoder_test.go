package exrdecoder

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDecodeChannel_MissingFile(t *testing.T) {
	d := New()
	if _, err := d.DecodeChannel("/nonexistent/frame.exr", "Z"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestDecodeChannel_NotAnEXR(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "bogus.exr")
	if err := os.WriteFile(path, []byte("this is not an exr file"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	d := New()
	if _, err := d.DecodeChannel(path, "Z"); err == nil {
		t.Error("expected error for invalid magic")
	}
}
