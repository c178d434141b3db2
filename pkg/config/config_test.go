package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "depthreel.yaml")

	yaml := `
channel: depth.Z
output: render.mkv
fps: 24
normalize: true
log_level: debug
`
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Channel != "depth.Z" {
		t.Errorf("channel = %q, want depth.Z", cfg.Channel)
	}
	if cfg.Output != "render.mkv" {
		t.Errorf("output = %q, want render.mkv", cfg.Output)
	}
	if cfg.FPS != 24 {
		t.Errorf("fps = %g, want 24", cfg.FPS)
	}
	if !cfg.Normalize {
		t.Error("expected normalize true")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/depthreel.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "bad.yaml")
	if err := os.WriteFile(path, []byte("channel: [unclosed"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid yaml")
	}
}

func TestToOrchestratorConfig_Defaults(t *testing.T) {
	cfg := Config{}.ToOrchestratorConfig("/frames")

	if cfg.InputDir != "/frames" {
		t.Errorf("input dir = %q, want /frames", cfg.InputDir)
	}
	if cfg.Channel != "Z" || cfg.FileExt != ".exr" || cfg.OutputPath != "output.mkv" || cfg.FPS != 30.0 {
		t.Errorf("defaults not applied: %+v", cfg)
	}
	if cfg.Normalize {
		t.Error("normalize must default to false")
	}
}

func TestToOrchestratorConfig_Overrides(t *testing.T) {
	fileCfg := Config{
		Channel:   "Y",
		FileExt:   ".sxr",
		Output:    "depth.mkv",
		FPS:       60,
		Normalize: true,
	}

	cfg := fileCfg.ToOrchestratorConfig("/frames")

	if cfg.Channel != "Y" || cfg.FileExt != ".sxr" || cfg.OutputPath != "depth.mkv" || cfg.FPS != 60 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if !cfg.Normalize {
		t.Error("expected normalize true")
	}
}
