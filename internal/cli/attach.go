package cli

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/ccd-dev/ccd/internal/container"
	"github.com/ccd-dev/ccd/internal/ui"
	"github.com/moby/term"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(attachCmd)

	attachCmd.Flags().Bool("root", false, "open the shell as root")
}

var attachCmd = &cobra.Command{
	Use:   "attach",
	Short: "Open a shell in a running sandbox",
	Long: `Open an interactive shell in a running sandbox container.

With a single running sandbox the choice is implicit. With several, an
indexed list is shown; pick by name, by number, or press Enter for the
first one.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, _ := cmd.Flags().GetBool("root")

		eng := container.NewEngine(log)
		running, err := eng.Sandboxes(context.Background())
		if err != nil {
			return err
		}

		isTTY := term.IsTerminal(os.Stdin.Fd())

		var name string
		if isTTY {
			name, err = container.SelectContainer(running, os.Stdin, os.Stdout)
		} else {
			// Non-interactive callers get the lexicographic default.
			name, err = container.SelectContainer(running, strings.NewReader("\n"), io.Discard)
		}
		if err != nil {
			return err
		}

		ui.Info("Attaching to container %q", name)

		return eng.Exec(context.Background(), container.ExecOptions{
			Name:     name,
			Shell:    cfg.Container.Shell,
			Root:     root,
			Terminal: isTTY,
		})
	},
}
