package execx

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Runner abstracts external command execution so operations can be tested
// without spawning real git/gh processes.
type Runner interface {
	// Run executes a command in dir, captures stdout and returns it trimmed.
	// A non-zero exit is returned as a *CommandError carrying stderr.
	Run(dir, name string, args ...string) (string, error)

	// RunInteractive executes a command in dir with stdio inherited from the
	// calling process, for commands that prompt on their own (e.g. gh auth).
	RunInteractive(dir, name string, args ...string) error
}

// CommandError describes a failed external command invocation.
type CommandError struct {
	Name   string
	Args   []string
	Stderr string
	Err    error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("%s %s failed", e.Name, strings.Join(e.Args, " "))
	if e.Stderr != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Stderr)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// ExecRunner is the default Runner backed by os/exec.
type ExecRunner struct{}

// New creates the default exec-backed runner.
func New() *ExecRunner {
	return &ExecRunner{}
}

// Run implements Runner.Run.
func (r *ExecRunner) Run(dir, name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", &CommandError{
			Name:   name,
			Args:   args,
			Stderr: strings.TrimSpace(stderr.String()),
			Err:    err,
		}
	}
	return strings.TrimSpace(stdout.String()), nil
}

// RunInteractive implements Runner.RunInteractive.
func (r *ExecRunner) RunInteractive(dir, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return &CommandError{Name: name, Args: args, Err: err}
	}
	return nil
}
