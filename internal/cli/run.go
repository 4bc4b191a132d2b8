package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/ccd-dev/ccd/internal/config"
	"github.com/ccd-dev/ccd/internal/container"
	"github.com/ccd-dev/ccd/internal/ui"
	"github.com/docker/go-units"
	"github.com/moby/term"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(dotCmd)
	addRunFlags(runCmd)
	addRunFlags(dotCmd)
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().String("home", "", "host folder backing the tool-config mounts (default: ~/"+config.HomeFolderName+")")
	cmd.Flags().String("memory", "", `container memory limit, e.g. "4g"`)
	cmd.Flags().String("cpus", "", `container CPU limit, e.g. "2"`)
	cmd.Flags().Bool("root", false, "run as root inside the container")
}

var runCmd = &cobra.Command{
	Use:   "run [app_folder]",
	Short: "Start a new sandbox container",
	Long: `Start a new sandbox container for a project folder (default: ` + config.DefaultAppFolder + `).

The project folder is mounted at ` + config.AppMountTarget + ` and the tool-config state from
the home folder is bind-mounted into the container's home directory. The
container name is the first free ccd-{project}-{NN} slot among the
currently running containers.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		appFolder := config.DefaultAppFolder
		if len(args) == 1 {
			appFolder = args[0]
		}
		return launch(cmd, appFolder)
	},
}

var dotCmd = &cobra.Command{
	Use:   ".",
	Short: "Start a new sandbox for the current directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return launch(cmd, ".")
	},
}

func launch(cmd *cobra.Command, appFolder string) error {
	homeFolder, _ := cmd.Flags().GetString("home")
	if homeFolder == "" {
		homeFolder = cfg.Home.Path
	}
	memory, _ := cmd.Flags().GetString("memory")
	if memory == "" {
		memory = cfg.Container.Memory
	}
	cpus, _ := cmd.Flags().GetString("cpus")
	if cpus == "" {
		cpus = cfg.Container.CPUs
	}
	root, _ := cmd.Flags().GetBool("root")

	// Validate the limit here rather than letting the engine reject it
	// mid-launch; the engine accepts the same unit suffixes.
	if memory != "" {
		if _, err := units.RAMInBytes(memory); err != nil {
			return fmt.Errorf("invalid memory limit %q: %w", memory, err)
		}
	}

	appPath, err := filepath.Abs(expandPath(appFolder))
	if err != nil {
		return fmt.Errorf("invalid app folder %q: %w", appFolder, err)
	}
	homePath, err := filepath.Abs(expandPath(homeFolder))
	if err != nil {
		return fmt.Errorf("invalid home folder %q: %w", homeFolder, err)
	}

	log.Debug().Str("app", appPath).Str("home", homePath).Msg("resolved sandbox folders")

	specs := container.DefaultSpecs(appPath, homePath)
	if err := container.Prepare(specs, log); err != nil {
		return err
	}
	mounts, err := container.MountFlags(specs)
	if err != nil {
		return err
	}

	eng := container.NewEngine(log)
	running, err := eng.Sandboxes(context.Background())
	if err != nil {
		return err
	}

	project := container.SanitizeProject(filepath.Base(appPath))
	name := container.NextFreeName(project, running)
	log.Debug().Str("name", name).Msg("selected container name")

	opts := container.RunOptions{
		Image:    cfg.Image.Name,
		Name:     name,
		Memory:   memory,
		CPUs:     cpus,
		Root:     root,
		Mounts:   mounts,
		Terminal: term.IsTerminal(os.Stdin.Fd()),
	}

	ui.Info("Starting container %q", name)
	log.Info().Str("app", appPath).Str("home", homePath).Msg("sandbox folders")

	// The child owns the terminal, so a Ctrl-C lands on it as well; an
	// interrupt here means the user ended the session, not a failure.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	defer signal.Stop(sigCh)

	err = eng.Run(context.Background(), opts)

	interrupted := false
	select {
	case <-sigCh:
		interrupted = true
	default:
	}

	if err != nil {
		if interrupted {
			ui.Info("Container stopped by user")
			return nil
		}
		return err
	}

	ui.Success("Container %q exited", name)
	return nil
}

// expandPath resolves a leading ~ against the user's home directory.
func expandPath(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	return p
}
