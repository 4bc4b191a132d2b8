package config

// Image defaults
const (
	DefaultImageName  = "claude-code"
	DefaultDockerfile = "Dockerfile"
)

// Container-side paths
const (
	// ContainerHome is the home directory of the image's default user.
	// The tool-config bind mounts land underneath it.
	ContainerHome = "/home/ubuntu"

	// AppMountTarget is where the project folder appears inside the container.
	AppMountTarget = "/app"
)

// Host-side defaults
const (
	// NamePrefix seeds generated container names: {prefix}-{project}-{NN}.
	NamePrefix = "ccd"

	// HomeFolderName is the folder under the user's home directory that
	// backs the tool-config bind mounts.
	HomeFolderName = ".claude-code-docker"

	DefaultAppFolder = "./app"
	DefaultShell     = "/bin/bash"
)
