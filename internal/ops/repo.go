package ops

import (
	"fmt"

	"repobak/internal/gh"
)

// DeleteRepo removes the linked GitHub repository after a double
// confirmation, then drops the origin remote locally. The local repository
// and its history are untouched.
func (a *App) DeleteRepo() error {
	if err := a.requireRepo(); err != nil {
		return err
	}

	url, err := a.Git.RemoteURL("origin")
	if err != nil {
		return fmt.Errorf("no origin remote configured, nothing to delete")
	}
	info, err := gh.ParseRemoteURL(url)
	if err != nil {
		return err
	}

	ok, err := a.Prompt.Confirm(fmt.Sprintf(
		"Delete the GitHub repository %s? This cannot be undone.", info.FullName()), false)
	if err != nil {
		return err
	}
	if !ok {
		return ErrAborted
	}

	typed, err := a.Prompt.Input(fmt.Sprintf("Type %q to confirm", info.Name), "")
	if err != nil {
		return err
	}
	if typed != info.Name {
		return ErrAborted
	}

	if err := a.Hub.DeleteRepo(info.FullName()); err != nil {
		return err
	}
	if err := a.Git.RemoveRemote("origin"); err != nil {
		a.Out.Warnf("Repository deleted on GitHub but removing the origin remote failed: %v", err)
		return nil
	}

	a.Out.Successf("Deleted %s and removed the origin remote", info.FullName())
	return nil
}

// Status prints the current branch, working-tree state and sync
// classification.
func (a *App) Status() error {
	if err := a.requireRepo(); err != nil {
		return err
	}

	branch, err := a.Git.CurrentBranch()
	if err != nil {
		return err
	}
	a.reportStatus(branch, a.Git.Status(branch))
	return nil
}
