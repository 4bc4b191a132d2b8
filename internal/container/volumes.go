package container

import (
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/ccd-dev/ccd/internal/config"
	"github.com/rs/zerolog"
)

// DefaultSpecs returns the fixed bind-mount set for a sandbox: the project
// folder at /app plus the per-tool configuration state under the container's
// home directory. The order is fixed and the rendered flags keep it.
func DefaultSpecs(appPath, homePath string) []PathSpec {
	home := config.ContainerHome
	return []PathSpec{
		{Source: appPath, Target: config.AppMountTarget, Kind: KindDir},
		// Claude Code config
		{Source: filepath.Join(homePath, ".claude"), Target: path.Join(home, ".claude"), Kind: KindDir},
		{Source: filepath.Join(homePath, ".claude.json"), Target: path.Join(home, ".claude.json"), Kind: KindFile},
		// Gemini config
		{Source: filepath.Join(homePath, ".gemini"), Target: path.Join(home, ".gemini"), Kind: KindDir},
		// Codex config
		{Source: filepath.Join(homePath, ".codex"), Target: path.Join(home, ".codex"), Kind: KindDir},
		// Copilot config
		{Source: filepath.Join(homePath, ".copilot"), Target: path.Join(home, ".copilot"), Kind: KindDir},
	}
}

// Prepare creates any missing mount sources. All directories are created
// before any file so that a file's parent directory exists. Existing
// directories and files are left untouched; calling this repeatedly is safe.
func Prepare(specs []PathSpec, log zerolog.Logger) error {
	for _, spec := range specs {
		if spec.Kind != KindDir {
			continue
		}
		log.Debug().Str("path", spec.Source).Msg("ensuring directory")
		if err := os.MkdirAll(spec.Source, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", spec.Source, err)
		}
	}

	for _, spec := range specs {
		if spec.Kind != KindFile {
			continue
		}
		log.Debug().Str("path", spec.Source).Msg("ensuring file")
		f, err := os.OpenFile(spec.Source, os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("create file %s: %w", spec.Source, err)
		}
		f.Close()
	}

	return nil
}

// MountFlags renders the engine's mount flag pairs. Preparation and the
// engine invocation are separate steps, so every source is re-checked here
// and a source that vanished in between aborts the launch.
func MountFlags(specs []PathSpec) ([]string, error) {
	flags := make([]string, 0, len(specs)*2)
	for _, spec := range specs {
		if _, err := os.Stat(spec.Source); err != nil {
			return nil, fmt.Errorf("mount source does not exist: %s", spec.Source)
		}
		flags = append(flags, "-v", spec.Source+":"+spec.Target)
	}
	return flags, nil
}
