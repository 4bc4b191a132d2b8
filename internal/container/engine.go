package container

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"
)

const engineBinary = "docker"

// ErrEngineNotFound is returned when the engine binary is not on the
// search path.
var ErrEngineNotFound = errors.New("docker not found; ensure Docker is installed and in PATH")

// ExitError reports a non-zero exit from an engine invocation.
type ExitError struct {
	Op   string
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s failed with exit code %d", e.Op, e.Code)
}

// Engine drives the external container engine binary. Every invocation is an
// explicit argument vector handed to the process-spawn API; no shell is
// interposed, so no token is ever re-interpreted.
type Engine struct {
	bin string
	log zerolog.Logger
}

// NewEngine returns an engine client that logs through the given logger.
func NewEngine(log zerolog.Logger) *Engine {
	return &Engine{bin: engineBinary, log: log}
}

// ListRunning returns the names of all currently running containers.
func (e *Engine) ListRunning(ctx context.Context) ([]string, error) {
	argv := []string{"ps", "--format", "{{.Names}}"}
	e.trace(argv)

	out, err := exec.CommandContext(ctx, e.bin, argv...).Output()
	if err != nil {
		return nil, e.wrap("container listing", err)
	}

	var names []string
	for _, line := range strings.Split(string(out), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			names = append(names, line)
		}
	}
	return names, nil
}

// Sandboxes returns the running containers created by this tool,
// lexicographically sorted.
func (e *Engine) Sandboxes(ctx context.Context) ([]string, error) {
	running, err := e.ListRunning(ctx)
	if err != nil {
		return nil, err
	}
	sandboxes := FilterSandboxes(running)
	e.log.Debug().Strs("containers", sandboxes).Msg("currently running sandboxes")
	return sandboxes, nil
}

// Build builds the sandbox image. The build recipe is streamed on stdin and
// the engine's output goes straight to the console.
func (e *Engine) Build(ctx context.Context, opts BuildOptions) error {
	recipe, err := os.Open(opts.Dockerfile)
	if err != nil {
		return fmt.Errorf("open build recipe: %w", err)
	}
	defer recipe.Close()

	argv := BuildArgv(opts)
	e.trace(argv)

	cmd := exec.CommandContext(ctx, e.bin, argv...)
	cmd.Stdin = recipe
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return e.wrap("build", cmd.Run())
}

// Run starts a sandbox container and blocks until it exits. The child
// inherits the controlling terminal and owns interactive input/output for
// its lifetime.
func (e *Engine) Run(ctx context.Context, opts RunOptions) error {
	argv := RunArgv(opts)
	e.trace(argv)

	cmd := exec.CommandContext(ctx, e.bin, argv...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return e.wrap("container run", cmd.Run())
}

// Exec opens a shell inside a running sandbox and blocks until it exits.
func (e *Engine) Exec(ctx context.Context, opts ExecOptions) error {
	argv := ExecArgv(opts)
	e.trace(argv)

	cmd := exec.CommandContext(ctx, e.bin, argv...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return e.wrap("attach", cmd.Run())
}

// BuildArgv assembles the engine's build argument vector. Passthrough flags
// keep their position between the verb and the tag; the "-" context token
// must stay last because the engine reads the build context from stdin.
func BuildArgv(opts BuildOptions) []string {
	argv := []string{"build"}
	argv = append(argv, opts.Passthrough...)
	argv = append(argv, "-t", opts.Tag)
	for _, kv := range opts.BuildArgs {
		argv = append(argv, "--build-arg", kv)
	}
	return append(argv, "-")
}

// RunArgv assembles the engine's run argument vector: terminal and
// auto-remove first, then resource limits, the hostname/name pair, the
// optional root override, the mounts, and finally the image.
func RunArgv(opts RunOptions) []string {
	argv := []string{"run"}
	if opts.Terminal {
		argv = append(argv, "-it")
	}
	argv = append(argv, "--rm")
	if opts.Memory != "" {
		argv = append(argv, "--memory", opts.Memory)
	}
	if opts.CPUs != "" {
		argv = append(argv, "--cpus", opts.CPUs)
	}
	argv = append(argv, "--hostname", opts.Name, "--name", opts.Name)
	if opts.Root {
		argv = append(argv, "--user", "root")
	}
	argv = append(argv, opts.Mounts...)
	return append(argv, opts.Image)
}

// ExecArgv assembles the engine's exec argument vector.
func ExecArgv(opts ExecOptions) []string {
	argv := []string{"exec"}
	if opts.Terminal {
		argv = append(argv, "-it")
	}
	if opts.Root {
		argv = append(argv, "--user", "root")
	}
	return append(argv, opts.Name, opts.Shell)
}

// wrap translates a subprocess failure into this tool's error taxonomy:
// a missing binary gets the remediation hint, a non-zero exit carries the
// child's code.
func (e *Engine) wrap(op string, err error) error {
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		e.log.Debug().Int("exit_code", exitErr.ExitCode()).Msgf("%s returned non-zero", op)
		return &ExitError{Op: op, Code: exitErr.ExitCode()}
	}
	if errors.Is(err, exec.ErrNotFound) {
		return ErrEngineNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}

func (e *Engine) trace(argv []string) {
	e.log.Trace().Str("cmd", e.bin+" "+strings.Join(argv, " ")).Msg("engine invocation")
}
