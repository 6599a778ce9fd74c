package execx

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunCapturesTrimmedStdout(t *testing.T) {
	r := New()

	out, err := r.Run(t.TempDir(), "sh", "-c", "echo hello")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if out != "hello" {
		t.Errorf("out = %q, want hello", out)
	}
}

func TestRunWrapsFailure(t *testing.T) {
	r := New()

	_, err := r.Run(t.TempDir(), "sh", "-c", "echo broken >&2; exit 3")
	if err == nil {
		t.Fatal("expected error")
	}

	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) {
		t.Fatalf("expected *CommandError, got %T", err)
	}
	if cmdErr.Stderr != "broken" {
		t.Errorf("Stderr = %q, want broken", cmdErr.Stderr)
	}
	if cmdErr.Name != "sh" {
		t.Errorf("Name = %q, want sh", cmdErr.Name)
	}
}

func TestRunUsesWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	r := New()

	if _, err := r.Run(dir, "sh", "-c", "touch marker"); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "marker")); err != nil {
		t.Errorf("command did not run in %s: %v", dir, err)
	}
}

func TestCommandErrorMessage(t *testing.T) {
	err := &CommandError{
		Name:   "git",
		Args:   []string{"push", "origin", "main"},
		Stderr: "remote rejected",
		Err:    errors.New("exit status 1"),
	}

	msg := err.Error()
	for _, want := range []string{"git push origin main", "remote rejected", "exit status 1"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error message missing %q: %s", want, msg)
		}
	}
}
