package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents the full configuration structure
type Config struct {
	Image     ImageConfig     `mapstructure:"image"`
	Home      HomeConfig      `mapstructure:"home"`
	Container ContainerConfig `mapstructure:"container"`
}

// ImageConfig configures the sandbox image
type ImageConfig struct {
	Name       string `mapstructure:"name"`
	Dockerfile string `mapstructure:"dockerfile"`
}

// HomeConfig configures the host-side folder whose subpaths are bind-mounted
// into the container's home directory
type HomeConfig struct {
	Path string `mapstructure:"path"`
}

// ContainerConfig configures container runtime settings
type ContainerConfig struct {
	Memory string `mapstructure:"memory"` // e.g. "4g"; empty omits the limit
	CPUs   string `mapstructure:"cpus"`   // e.g. "2"; empty omits the limit
	Shell  string `mapstructure:"shell"`  // shell opened by attach
}

// LoadConfig loads configuration from viper with defaults
func LoadConfig() *Config {
	setDefaults()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		// Return defaults on error
		return defaultConfig()
	}

	return cfg
}

// DefaultHomePath returns the default host-side home folder,
// {user home}/.claude-code-docker.
func DefaultHomePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return HomeFolderName
	}
	return filepath.Join(home, HomeFolderName)
}

func setDefaults() {
	viper.SetDefault("image.name", DefaultImageName)
	viper.SetDefault("image.dockerfile", DefaultDockerfile)

	viper.SetDefault("home.path", DefaultHomePath())

	viper.SetDefault("container.memory", "")
	viper.SetDefault("container.cpus", "")
	viper.SetDefault("container.shell", DefaultShell)
}

func defaultConfig() *Config {
	return &Config{
		Image: ImageConfig{
			Name:       DefaultImageName,
			Dockerfile: DefaultDockerfile,
		},
		Home: HomeConfig{
			Path: DefaultHomePath(),
		},
		Container: ContainerConfig{
			Shell: DefaultShell,
		},
	}
}
