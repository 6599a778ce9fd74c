package ops

import (
	"errors"
)

const (
	menuStatus       = "Show status"
	menuQuickBackup  = "Quick backup (stage, commit, push)"
	menuCommit       = "Commit with a message"
	menuNewBranch    = "Back up to a new branch"
	menuCleanHistory = "Clean old user commits"
	menuCleanAll     = "Wipe history (fresh start)"
	menuDeleteRepo   = "Delete GitHub repository"
	menuQuit         = "Quit"
)

// Menu runs an interactive loop over the available operations until the user
// quits. A declined confirmation inside an operation returns to the menu
// instead of exiting.
func (a *App) Menu() error {
	options := []string{
		menuStatus,
		menuQuickBackup,
		menuCommit,
		menuNewBranch,
		menuCleanHistory,
		menuCleanAll,
		menuDeleteRepo,
		menuQuit,
	}

	for {
		choice, err := a.Prompt.Select("What would you like to do?", options)
		if err != nil {
			return err
		}

		switch choice {
		case menuStatus:
			err = a.Status()
		case menuQuickBackup:
			err = a.QuickBackup()
		case menuCommit:
			err = a.Commit("")
		case menuNewBranch:
			err = a.NewBranchBackup()
		case menuCleanHistory:
			err = a.CleanHistory()
		case menuCleanAll:
			err = a.CleanAll()
		case menuDeleteRepo:
			err = a.DeleteRepo()
		case menuQuit:
			return nil
		}

		if errors.Is(err, ErrAborted) {
			a.Out.Infof("Aborted.")
			continue
		}
		if err != nil {
			a.Out.Errorf("%v", err)
		}
	}
}
