package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestExpandPathTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory in test environment")
	}

	if got := expandPath("~/projects"); got != filepath.Join(home, "projects") {
		t.Errorf("expandPath(~/projects) = %q", got)
	}

	if got := expandPath("~"); got != home {
		t.Errorf("expandPath(~) = %q", got)
	}
}

func TestExpandPathPassthrough(t *testing.T) {
	for _, p := range []string{"/abs/path", "./relative", "plain", "~user/other"} {
		if got := expandPath(p); got != p {
			t.Errorf("expandPath(%q) = %q, want unchanged", p, got)
		}
	}
}

func TestRenderDefaultConfig(t *testing.T) {
	content, err := renderDefaultConfig()
	if err != nil {
		t.Fatalf("renderDefaultConfig failed: %v", err)
	}

	if !strings.HasPrefix(string(content), "# ccd configuration") {
		t.Errorf("rendered config missing header: %q", content[:40])
	}

	var parsed map[string]map[string]string
	if err := yaml.Unmarshal(content, &parsed); err != nil {
		t.Fatalf("rendered config is not valid YAML: %v", err)
	}

	if parsed["image"]["name"] != "claude-code" {
		t.Errorf("image.name = %q, want claude-code", parsed["image"]["name"])
	}
	if parsed["container"]["shell"] != "/bin/bash" {
		t.Errorf("container.shell = %q, want /bin/bash", parsed["container"]["shell"])
	}
}
