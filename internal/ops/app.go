// Package ops implements the repobak operations. Every handler works on an
// explicit App value; there is no package-level mutable state.
package ops

import (
	"errors"
	"fmt"
	"time"

	"repobak/internal/gh"
	"repobak/internal/git"
	"repobak/internal/model"
	"repobak/internal/ui"
)

// Sentinel errors surfaced to the command layer.
var (
	// ErrAborted means the user declined a confirmation prompt. No side
	// effects have happened when it is returned.
	ErrAborted = errors.New("aborted by user")

	// ErrNotRepository means the project directory is not a git repository.
	ErrNotRepository = errors.New("not a git repository (run `repobak init` first)")

	// ErrNoConfig means the operation needs a config that does not exist.
	ErrNoConfig = errors.New("no repobak configuration (run `repobak init` first)")
)

// App bundles everything an operation needs.
type App struct {
	Dir    string
	Config *model.Config
	Git    *git.Client
	Hub    *gh.Client
	Prompt ui.Prompter
	Out    *ui.Printer
}

func (a *App) requireConfig() error {
	if a.Config == nil {
		return ErrNoConfig
	}
	return nil
}

func (a *App) requireRepo() error {
	if !a.Git.IsRepository() {
		return ErrNotRepository
	}
	return nil
}

// authorEmail derives the GitHub noreply address for the configured user.
func (a *App) authorEmail() string {
	return a.Config.GithubUsername + "@users.noreply.github.com"
}

func timestamp() string {
	return time.Now().Format("2006-01-02 15:04:05")
}

func branchTimestamp() string {
	return time.Now().Format("20060102-150405")
}

// describeSync renders a sync state as a one-line human summary.
func describeSync(st model.SyncStatus) string {
	switch st.Sync {
	case model.SyncUpToDate:
		return "up to date with origin"
	case model.SyncBehind:
		return "behind origin (remote has new commits, consider pulling)"
	case model.SyncAhead:
		return "ahead of origin (local commits not pushed yet)"
	case model.SyncDiverged:
		return "diverged from origin (local and remote histories differ)"
	case model.SyncNoRemote:
		return "no remote branch to compare against"
	default:
		return "sync state could not be determined"
	}
}

// reportStatus prints the standard status block used by several operations.
func (a *App) reportStatus(branch string, st model.SyncStatus) {
	a.Out.Statusf("Branch:  %s", branch)
	if st.HasChanges {
		a.Out.Statusf("Changes: uncommitted changes present")
	} else {
		a.Out.Statusf("Changes: working tree clean")
	}
	a.Out.Statusf("Sync:    %s", describeSync(st))
	if st.LocalHash != "" {
		a.Out.Infof("  local  %s", short(st.LocalHash))
	}
	if st.RemoteHash != "" {
		a.Out.Infof("  remote %s", short(st.RemoteHash))
	}
}

func short(hash string) string {
	if len(hash) > 8 {
		return hash[:8]
	}
	return hash
}

// backupMessage builds the generated commit message for automatic backups.
func backupMessage() string {
	return fmt.Sprintf("repobak: backup %s", timestamp())
}
