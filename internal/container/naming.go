package container

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/ccd-dev/ccd/internal/config"
)

// ErrNoContainers is returned when a selection is requested but nothing
// is running.
var ErrNoContainers = errors.New("no running containers found")

// FilterSandboxes keeps only the names this tool generates and sorts them
// lexicographically.
func FilterSandboxes(names []string) []string {
	var sandboxes []string
	for _, name := range names {
		if strings.HasPrefix(name, config.NamePrefix+"-") {
			sandboxes = append(sandboxes, name)
		}
	}
	sort.Strings(sandboxes)
	return sandboxes
}

// NextFreeName picks the smallest unused {prefix}-{project}-{NN} name. The
// suffix is zero-padded for formatting only and grows naturally past 99.
//
// This is a best-effort probe: nothing prevents another invocation from
// claiming the same name between this check and the engine starting the
// container.
func NextFreeName(project string, running []string) string {
	taken := make(map[string]struct{}, len(running))
	for _, name := range running {
		taken[name] = struct{}{}
	}

	for suffix := 1; ; suffix++ {
		candidate := fmt.Sprintf("%s-%s-%02d", config.NamePrefix, project, suffix)
		if _, ok := taken[candidate]; !ok {
			return candidate
		}
	}
}

// SanitizeProject maps a project folder name into the engine's container-name
// alphabet, lowercased so the name can double as a hostname. An empty result
// falls back to "app".
func SanitizeProject(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '.', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}

	sanitized := strings.Trim(b.String(), "-.")
	if sanitized == "" {
		return "app"
	}
	return sanitized
}

// SelectContainer resolves which running sandbox to attach to. A single
// candidate is returned without prompting. With several, an indexed list is
// printed and one line read per attempt: empty input picks the first name,
// an exact name or an in-range index picks that container, anything else
// reprints the list with an error. The end of the input stream aborts.
func SelectContainer(running []string, in io.Reader, out io.Writer) (string, error) {
	if len(running) == 0 {
		return "", ErrNoContainers
	}
	if len(running) == 1 {
		return running[0], nil
	}

	defaultName := running[0]
	reader := bufio.NewReader(in)

	for {
		fmt.Fprintln(out, "Running containers:")
		for i, name := range running {
			fmt.Fprintf(out, "  [%d] %s\n", i, name)
		}
		fmt.Fprintf(out, "Enter container name, number or press Enter for default (%s): ", defaultName)

		line, readErr := reader.ReadString('\n')
		choice := strings.TrimSpace(line)

		switch {
		case choice == "" && readErr == nil:
			return defaultName, nil
		case slices.Contains(running, choice):
			return choice, nil
		default:
			if index, err := strconv.Atoi(choice); err == nil {
				if index >= 0 && index < len(running) {
					return running[index], nil
				}
				fmt.Fprintf(out, "Invalid number. Please enter a number between 0 and %d.\n", len(running)-1)
			} else if choice != "" {
				fmt.Fprintln(out, "Invalid input. Please enter a valid container name or number.")
			}
		}

		if readErr != nil {
			return "", fmt.Errorf("read selection: %w", readErr)
		}
	}
}
