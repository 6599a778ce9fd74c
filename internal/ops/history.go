package ops

import (
	"fmt"

	"repobak/internal/git"
)

// CleanHistory rewrites the current branch based on commit authorship. When
// any commit matches the configured GitHub username, history is hard-reset to
// the earliest such commit, discarding every later commit wholesale. When no
// commit matches, the branch is replaced by an orphan branch holding a single
// fresh commit authored as the configured user. Both paths offer a force
// push afterwards.
func (a *App) CleanHistory() error {
	if err := a.requireConfig(); err != nil {
		return err
	}
	if err := a.requireRepo(); err != nil {
		return err
	}
	if a.Config.GithubUsername == "" {
		return fmt.Errorf("no GitHub username configured: %w", ErrNoConfig)
	}

	branch, err := a.Git.CurrentBranch()
	if err != nil {
		return err
	}

	commits, err := a.Git.Log()
	if err != nil {
		return err
	}
	mine, others := git.PartitionByAuthor(commits, a.Config.GithubUsername)
	a.Out.Infof("Found %d commits by %s and %d by other authors",
		len(mine), a.Config.GithubUsername, len(others))

	if len(mine) > 0 {
		// Log is newest-first, so the earliest own commit is the last entry.
		earliest := mine[len(mine)-1]
		ok, err := a.Prompt.Confirm(fmt.Sprintf(
			"Reset %s to %s (%q), discarding all later commits?",
			branch, short(earliest.Hash), earliest.Subject), false)
		if err != nil {
			return err
		}
		if !ok {
			return ErrAborted
		}
		if err := a.Git.ResetHard(earliest.Hash); err != nil {
			return err
		}
		a.Out.Successf("Reset %s to %s", branch, short(earliest.Hash))
	} else {
		ok, err := a.Prompt.Confirm(fmt.Sprintf(
			"No commits by %s found. Replace ALL history on %s with a single fresh commit?",
			a.Config.GithubUsername, branch), false)
		if err != nil {
			return err
		}
		if !ok {
			return ErrAborted
		}
		msg := fmt.Sprintf("repobak: clean history %s", timestamp())
		if err := a.rewriteOrphan(branch, msg, true); err != nil {
			return err
		}
		a.Out.Successf("Replaced history on %s with a single commit", branch)
	}

	return a.offerForcePush(branch)
}

// CleanAll unconditionally replaces the entire history of the current branch
// with one commit containing the current working-tree files.
func (a *App) CleanAll() error {
	if err := a.requireRepo(); err != nil {
		return err
	}

	branch, err := a.Git.CurrentBranch()
	if err != nil {
		return err
	}

	ok, err := a.Prompt.Confirm(fmt.Sprintf(
		"Replace ALL history on %s with a single commit of the current files?", branch), false)
	if err != nil {
		return err
	}
	if !ok {
		return ErrAborted
	}

	msg := fmt.Sprintf("repobak: fresh start %s", timestamp())
	if err := a.rewriteOrphan(branch, msg, false); err != nil {
		return err
	}
	a.Out.Successf("Replaced history on %s with a single commit", branch)

	return a.offerForcePush(branch)
}

// rewriteOrphan moves branch onto a new orphan commit of the working tree.
// asUser stamps the commit with the configured GitHub identity. On a failure
// after the orphan checkout a best-effort switch back to the original branch
// is attempted, with a warning if that also fails.
func (a *App) rewriteOrphan(branch, msg string, asUser bool) error {
	tmp := "repobak-rewrite-" + branchTimestamp()
	if err := a.Git.CheckoutOrphan(tmp); err != nil {
		return err
	}

	fail := func(err error) error {
		if rerr := a.Git.Checkout(branch); rerr != nil {
			a.Out.Warnf("Could not switch back to %s: %v", branch, rerr)
		}
		return err
	}

	if err := a.Git.StageAll(); err != nil {
		return fail(err)
	}

	if asUser && a.Config != nil && a.Config.GithubUsername != "" {
		if err := a.Git.CommitAs(msg, a.Config.GithubUsername, a.authorEmail()); err != nil {
			return fail(err)
		}
	} else {
		if err := a.Git.Commit(msg); err != nil {
			return fail(err)
		}
	}

	if err := a.Git.RenameBranch(branch); err != nil {
		return fail(err)
	}
	return nil
}

func (a *App) offerForcePush(branch string) error {
	ok, err := a.Prompt.Confirm("Force push rewritten history to origin? This cannot be undone.", false)
	if err != nil {
		return err
	}
	if !ok {
		a.Out.Infof("Skipped push. Run `repobak qbackup` later or push manually.")
		return nil
	}
	if err := a.Git.ForcePush(branch); err != nil {
		return err
	}
	a.Out.Successf("Force pushed %s to origin", branch)
	return nil
}
