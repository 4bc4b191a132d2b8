package container

// Kind selects how a mount source is prepared on the host.
type Kind int

const (
	KindDir Kind = iota
	KindFile
)

// PathSpec pairs a host path with its mount target inside the container.
type PathSpec struct {
	Source string // host path, created on demand
	Target string // path inside the container
	Kind   Kind
}

// RunOptions configures a sandbox launch
type RunOptions struct {
	Image    string
	Name     string   // used for both --name and --hostname
	Memory   string   // e.g. "4g"; empty omits the limit
	CPUs     string   // e.g. "2"; empty omits the limit
	Root     bool     // run as root instead of the image's default user
	Mounts   []string // rendered mount flags, order preserved
	Terminal bool     // allocate an interactive TTY
}

// BuildOptions configures an image build
type BuildOptions struct {
	Dockerfile  string   // build recipe, streamed to the engine on stdin
	Tag         string
	Passthrough []string // raw engine flags supplied after --
	BuildArgs   []string // KEY=VALUE pairs, already ordered
}

// ExecOptions configures an interactive shell in a running sandbox
type ExecOptions struct {
	Name     string
	Shell    string
	Root     bool
	Terminal bool
}
