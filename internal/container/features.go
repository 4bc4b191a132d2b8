package container

import (
	"fmt"
	"strings"
)

// Feature is an optional tool the image build can include or skip via a
// build argument. The set is fixed at compile time and validated at the
// CLI edge.
type Feature struct {
	Name     string // CLI-facing name
	BuildArg string // build argument toggled by the feature
}

// Features is the fixed feature table, in build-argument order.
var Features = []Feature{
	{Name: "claude", BuildArg: "WITH_CLAUDE"},
	{Name: "codex", BuildArg: "WITH_CODEX"},
	{Name: "gemini", BuildArg: "WITH_GEMINI"},
	{Name: "opencode", BuildArg: "WITH_OPENCODE"},
	{Name: "copilot", BuildArg: "WITH_COPILOT"},
	{Name: "rust", BuildArg: "WITH_RUST"},
}

// Component maps a per-tool version override flag to its build argument.
type Component struct {
	Name     string // flag name stem: --{name}-version
	BuildArg string
}

// Components lists the tools whose versions can be pinned at build time.
var Components = []Component{
	{Name: "claude", BuildArg: "CLAUDE_VERSION"},
	{Name: "codex", BuildArg: "CODEX_VERSION"},
	{Name: "gemini", BuildArg: "GEMINI_VERSION"},
	{Name: "opencode", BuildArg: "OPENCODE_VERSION"},
	{Name: "copilot", BuildArg: "COPILOT_VERSION"},
	{Name: "rust", BuildArg: "RUST_VERSION"},
	{Name: "node", BuildArg: "NODE_VERSION"},
	{Name: "go", BuildArg: "GO_VERSION"},
}

// FeatureNames returns the valid feature names in table order.
func FeatureNames() []string {
	names := make([]string, len(Features))
	for i, f := range Features {
		names[i] = f.Name
	}
	return names
}

// ResolveFeatures turns the --with/--without lists into ordered
// KEY=VALUE build arguments.
//
// --with enables exactly the listed features and disables every other one;
// --without disables the listed features and enables the rest. The two are
// mutually exclusive, and supplying neither emits no feature arguments at
// all so the image defaults apply. An unknown name aborts before any
// argument is produced.
func ResolveFeatures(with, without []string) ([]string, error) {
	if len(with) > 0 && len(without) > 0 {
		return nil, fmt.Errorf("--with and --without are mutually exclusive")
	}
	if len(with) == 0 && len(without) == 0 {
		return nil, nil
	}

	listed, enabled, rest := with, "1", "0"
	if len(without) > 0 {
		listed, enabled, rest = without, "0", "1"
	}

	selected := make(map[string]bool, len(Features))
	for _, f := range Features {
		selected[f.Name] = false
	}
	for _, name := range listed {
		name = strings.ToLower(strings.TrimSpace(name))
		if _, ok := selected[name]; !ok {
			return nil, fmt.Errorf("unknown feature %q (valid features: %s)",
				name, strings.Join(FeatureNames(), ", "))
		}
		selected[name] = true
	}

	args := make([]string, 0, len(Features))
	for _, f := range Features {
		value := rest
		if selected[f.Name] {
			value = enabled
		}
		args = append(args, f.BuildArg+"="+value)
	}
	return args, nil
}
