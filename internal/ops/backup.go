package ops

import (
	"fmt"

	"repobak/internal/model"
)

// QuickBackup stages everything, commits with a generated message and pushes
// the current branch. With a clean working tree it only reports status.
func (a *App) QuickBackup() error {
	if err := a.requireRepo(); err != nil {
		return err
	}

	branch, err := a.Git.CurrentBranch()
	if err != nil {
		return err
	}

	st := a.Git.Status(branch)
	if !st.HasChanges {
		a.Out.Infof("Nothing to back up.")
		a.reportStatus(branch, st)
		return nil
	}

	if err := a.commitAndPush(branch, backupMessage(), st); err != nil {
		return err
	}
	a.Out.Successf("Backup complete on %s", branch)
	return nil
}

// Commit backs up with a user-supplied message. With no local changes the
// user may choose an empty commit; declining makes no commit and only the
// sync status is reported.
func (a *App) Commit(msg string) error {
	if err := a.requireRepo(); err != nil {
		return err
	}

	branch, err := a.Git.CurrentBranch()
	if err != nil {
		return err
	}
	st := a.Git.Status(branch)

	if !st.HasChanges {
		ok, err := a.Prompt.Confirm("No local changes. Create an empty commit?", false)
		if err != nil {
			return err
		}
		if !ok {
			a.reportStatus(branch, st)
			return nil
		}
		if msg == "" {
			msg = backupMessage()
		}
		if err := a.Git.CommitEmpty(msg); err != nil {
			return err
		}
		return a.pushBranch(branch, st)
	}

	if msg == "" {
		msg, err = a.Prompt.Input("Commit message", backupMessage())
		if err != nil {
			return err
		}
	}
	if err := a.commitAndPush(branch, msg, st); err != nil {
		return err
	}
	a.Out.Successf("Committed and pushed on %s", branch)
	return nil
}

// NewBranchBackup commits the working tree on a fresh backup branch and
// pushes it. If the push fails the previous branch is restored and the new
// branch deleted; a failure of that recovery itself is reported as a warning.
func (a *App) NewBranchBackup() error {
	if err := a.requireRepo(); err != nil {
		return err
	}

	prev, err := a.Git.CurrentBranch()
	if err != nil {
		return err
	}

	name, err := a.Prompt.Input("New backup branch name", "backup-"+branchTimestamp())
	if err != nil {
		return err
	}
	if err := a.Git.CreateBranch(name); err != nil {
		return err
	}

	changes, err := a.Git.HasChanges()
	if err != nil {
		return err
	}
	if changes {
		if err := a.Git.StageAll(); err != nil {
			return err
		}
		if err := a.Git.Commit(backupMessage()); err != nil {
			return err
		}
	}

	if err := a.Git.PushSetUpstream(name); err != nil {
		a.Out.Warnf("Push failed, restoring branch %s", prev)
		if rerr := a.recoverBranch(prev, name); rerr != nil {
			a.Out.Warnf("Recovery failed, repository may be on branch %s: %v", name, rerr)
		}
		return err
	}

	a.Out.Successf("Backed up to new branch %s", name)
	return nil
}

func (a *App) recoverBranch(prev, created string) error {
	if err := a.Git.Checkout(prev); err != nil {
		return err
	}
	return a.Git.DeleteBranch(created)
}

// commitAndPush is the shared stage-commit-push tail of the backup handlers.
func (a *App) commitAndPush(branch, msg string, st model.SyncStatus) error {
	if err := a.Git.StageAll(); err != nil {
		return err
	}
	if err := a.Git.Commit(msg); err != nil {
		return err
	}
	return a.pushBranch(branch, st)
}

// pushBranch pushes the branch, setting upstream when no remote branch
// exists yet.
func (a *App) pushBranch(branch string, st model.SyncStatus) error {
	if st.Sync == model.SyncNoRemote {
		if _, err := a.Git.RemoteURL("origin"); err != nil {
			return fmt.Errorf("no origin remote configured, run `repobak init` first")
		}
		return a.Git.PushSetUpstream(branch)
	}
	return a.Git.Push(branch)
}
