package cli

import (
	"fmt"
	"os"

	"github.com/ccd-dev/ccd/internal/config"
	"github.com/ccd-dev/ccd/internal/logging"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile   string
	verbosity int
	cfg       *config.Config
	log       zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "ccd",
	Short: "Run coding-assistant tools in a containerized sandbox",
	Long: `ccd builds, runs and attaches to a Docker-based development sandbox
preconfigured for coding-assistant CLIs (Claude Code, Codex, Gemini,
OpenCode, Copilot).

The project folder is mounted at /app, and each tool's configuration
state is bind-mounted from a host-side home folder so sessions survive
the container.

Examples:
  ccd build                       # Build the sandbox image
  ccd build --with claude,rust    # Install only the listed tools
  ccd run ~/src/myapp             # Start a sandbox for a project
  ccd .                           # Start a sandbox for the current directory
  ccd attach                      # Open a shell in a running sandbox`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log = logging.New(verbosity)
		log.Debug().Int("verbosity", verbosity).Msg("logging configured")
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/ccd/config.yaml)")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase verbosity (repeatable: -v, -vv, -vvv)")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Warning: could not find home directory:", err)
			return
		}

		// Search for config in standard locations
		viper.AddConfigPath(home + "/.config/ccd")
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	// Environment variables
	viper.SetEnvPrefix("CCD")
	viper.AutomaticEnv()

	// Read config file (ignore if not found)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintln(os.Stderr, "Warning: error reading config file:", err)
		}
	}

	// Load into config struct
	cfg = config.LoadConfig()
}
