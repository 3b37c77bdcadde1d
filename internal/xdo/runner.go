package xdo

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

const DefaultBinary = "xdotool"

// Output is what one process invocation produced.
type Output struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Runner abstracts where a batch runs so it can run locally or over SSH.
// A non-zero exit is reported in Output, not as an error; the error is
// reserved for failing to run the process at all.
type Runner interface {
	HostName() string
	Run(bin string, args []string) (Output, error)
}

// FindXdotool locates the xdotool binary.
func FindXdotool() (string, error) {
	return exec.LookPath(DefaultBinary)
}

// LocalRunner runs the binary on this machine.
type LocalRunner struct {
	// Display overrides DISPLAY for the child process when set.
	Display string
}

func (l *LocalRunner) HostName() string { return "" }

func (l *LocalRunner) Run(bin string, args []string) (Output, error) {
	cmd := exec.Command(bin, args...)
	if l.Display != "" {
		cmd.Env = append(os.Environ(), "DISPLAY="+l.Display)
	}
	return runCommand(cmd)
}

func runCommand(cmd *exec.Cmd) (Output, error) {
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	out := Output{Stdout: stdout.String(), Stderr: stderr.String()}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		out.ExitCode = exitErr.ExitCode()
	default:
		return out, fmt.Errorf("failed to run %s: %w", cmd.Path, err)
	}
	return out, nil
}
