package config

import (
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Image.Name != "claude-code" {
		t.Errorf("defaultConfig().Image.Name = %q, want %q", cfg.Image.Name, "claude-code")
	}

	if cfg.Image.Dockerfile != "Dockerfile" {
		t.Errorf("defaultConfig().Image.Dockerfile = %q, want %q", cfg.Image.Dockerfile, "Dockerfile")
	}

	if cfg.Home.Path == "" {
		t.Error("defaultConfig().Home.Path should not be empty")
	}

	// Limits default to unset so the run command omits them entirely
	if cfg.Container.Memory != "" {
		t.Errorf("defaultConfig().Container.Memory = %q, want empty", cfg.Container.Memory)
	}

	if cfg.Container.CPUs != "" {
		t.Errorf("defaultConfig().Container.CPUs = %q, want empty", cfg.Container.CPUs)
	}

	if cfg.Container.Shell != "/bin/bash" {
		t.Errorf("defaultConfig().Container.Shell = %q, want %q", cfg.Container.Shell, "/bin/bash")
	}
}

func TestDefaultHomePath(t *testing.T) {
	path := DefaultHomePath()

	if !strings.HasSuffix(path, HomeFolderName) {
		t.Errorf("DefaultHomePath() = %q, want suffix %q", path, HomeFolderName)
	}
}
