package cli

import (
	"context"

	"github.com/ccd-dev/ccd/internal/container"
	"github.com/ccd-dev/ccd/internal/ui"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringSlice("with", nil, "features to install, comma-separated; every other feature is skipped")
	buildCmd.Flags().StringSlice("without", nil, "features to skip, comma-separated; every other feature is installed")
	buildCmd.MarkFlagsMutuallyExclusive("with", "without")

	buildCmd.Flags().StringP("file", "f", "", "path to the build recipe (default: from config)")
	buildCmd.Flags().StringP("tag", "t", "", "image tag (default: from config)")

	for _, c := range container.Components {
		buildCmd.Flags().String(c.Name+"-version", "", "pin the "+c.Name+" version baked into the image")
	}
}

var buildCmd = &cobra.Command{
	Use:   "build [--with LIST | --without LIST] [flags] [-- docker flags...]",
	Short: "Build the sandbox image",
	Long: `Build the sandbox image from the Dockerfile, streamed to the engine
on stdin. Feature toggles and version pins become image build arguments;
anything after -- is handed to the engine untouched.

Examples:
  ccd build                            # Everything the image defaults to
  ccd build --with claude,rust         # Only Claude Code and the Rust toolchain
  ccd build --without gemini           # Everything except Gemini
  ccd build --claude-version 1.0.42    # Pin a tool version
  ccd build -- --no-cache              # Pass flags through to the engine`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		with, _ := cmd.Flags().GetStringSlice("with")
		without, _ := cmd.Flags().GetStringSlice("without")

		buildArgs, err := container.ResolveFeatures(with, without)
		if err != nil {
			return err
		}

		for _, c := range container.Components {
			if v, _ := cmd.Flags().GetString(c.Name + "-version"); v != "" {
				buildArgs = append(buildArgs, c.BuildArg+"="+v)
			}
		}

		dockerfile, _ := cmd.Flags().GetString("file")
		if dockerfile == "" {
			dockerfile = cfg.Image.Dockerfile
		}
		tag, _ := cmd.Flags().GetString("tag")
		if tag == "" {
			tag = cfg.Image.Name
		}

		opts := container.BuildOptions{
			Dockerfile:  dockerfile,
			Tag:         tag,
			Passthrough: args,
			BuildArgs:   buildArgs,
		}

		ui.Info("Building image %s from %s", tag, dockerfile)
		log.Debug().Strs("argv", container.BuildArgv(opts)).Msg("composed build command")

		eng := container.NewEngine(log)
		if err := eng.Build(context.Background(), opts); err != nil {
			return err
		}

		ui.Success("Build completed")
		return nil
	},
}
