package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/ccd-dev/ccd/internal/config"
	"github.com/docker/go-units"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage ccd configuration",
	Long: `Manage ccd configuration settings.

Commands:
  list    List all configuration settings
  get     Get a configuration value
  set     Set a configuration value
  path    Show configuration file path
  init    Create default configuration file

Examples:
  ccd config list
  ccd config get image.name
  ccd config set container.memory 4g
  ccd config set home.path ~/sandbox-home`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := viper.AllSettings()
		printSettingsFlat("", settings)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]
		if !viper.IsSet(key) {
			return fmt.Errorf("key not found: %s", key)
		}
		value := viper.Get(key)
		// Handle nested maps by printing them in a readable format
		if m, ok := value.(map[string]interface{}); ok {
			printSettingsFlat(key, m)
		} else {
			fmt.Println(value)
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]

		if err := validateConfigKey(key, value); err != nil {
			return err
		}

		configPath := getConfigPath()

		configDir := filepath.Dir(configPath)
		if err := os.MkdirAll(configDir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}

		viper.Set(key, value)

		if err := viper.WriteConfigAs(configPath); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}

		fmt.Printf("Set %s = %s\n", key, value)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show configuration file path",
	Run: func(cmd *cobra.Command, args []string) {
		if cfgFile := viper.ConfigFileUsed(); cfgFile != "" {
			fmt.Println(cfgFile)
		} else {
			fmt.Println(getConfigPath())
		}
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create default configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath := getConfigPath()
		configDir := filepath.Dir(configPath)

		if err := os.MkdirAll(configDir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}

		if _, err := os.Stat(configPath); err == nil {
			return fmt.Errorf("config file already exists at %s", configPath)
		}

		content, err := renderDefaultConfig()
		if err != nil {
			return fmt.Errorf("failed to render default config: %w", err)
		}

		if err := os.WriteFile(configPath, content, 0644); err != nil {
			return fmt.Errorf("failed to write config file: %w", err)
		}

		fmt.Printf("Created config file at %s\n", configPath)
		return nil
	},
}

// renderDefaultConfig serializes the built-in defaults so the generated file
// always matches what the tool would use without one.
func renderDefaultConfig() ([]byte, error) {
	defaults := map[string]interface{}{
		"image": map[string]string{
			"name":       config.DefaultImageName,
			"dockerfile": config.DefaultDockerfile,
		},
		"home": map[string]string{
			"path": config.DefaultHomePath(),
		},
		"container": map[string]string{
			"memory": "",
			"cpus":   "",
			"shell":  config.DefaultShell,
		},
	}

	body, err := yaml.Marshal(defaults)
	if err != nil {
		return nil, err
	}

	header := "# ccd configuration\n" +
		"# Values here are overridden by CCD_* environment variables and flags.\n\n"
	return append([]byte(header), body...), nil
}

// printSettingsFlat prints settings in dot notation
func printSettingsFlat(prefix string, settings map[string]interface{}) {
	keys := make([]string, 0, len(settings))
	for key := range settings {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := settings[key]
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		if nested, ok := value.(map[string]interface{}); ok {
			printSettingsFlat(fullKey, nested)
		} else {
			fmt.Printf("%s: %v\n", fullKey, value)
		}
	}
}

// getConfigPath returns the default config file path
func getConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "ccd", "config.yaml")
}

// validateConfigKey validates values for keys with constrained formats
func validateConfigKey(key, value string) error {
	switch key {
	case "container.memory":
		if value == "" {
			return nil
		}
		if _, err := units.RAMInBytes(value); err != nil {
			return fmt.Errorf("invalid value for %s: %s (expected a size like 4g or 512m)", key, value)
		}
	}
	return nil // Unknown keys pass through
}
