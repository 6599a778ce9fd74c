package ops

import (
	"fmt"

	"repobak/internal/config"
	"repobak/internal/gh"
)

// Init links the project to a GitHub repository: it verifies gh
// authentication, creates the config if absent, initializes git if needed,
// validates or recreates the origin remote, creates the remote repository
// (resolving name collisions with a numeric suffix) and pushes an initial
// commit.
func (a *App) Init() error {
	if err := a.Hub.CheckAuth(); err != nil {
		return err
	}

	login, err := a.Hub.Login()
	if err != nil {
		return err
	}

	cfg, err := config.LoadOrCreate(a.Dir)
	if err != nil {
		return err
	}
	a.Config = cfg

	if cfg.GithubUsername != login {
		cfg.GithubUsername = login
		if err := config.Save(a.Dir, cfg); err != nil {
			return err
		}
	}
	a.Out.Infof("Authenticated as %s", login)

	if !a.Git.IsRepository() {
		if err := a.Git.Init(cfg.BackupBranch); err != nil {
			return err
		}
		a.Out.Successf("Initialized git repository on branch %s", cfg.BackupBranch)
	}

	keepRemote, err := a.ensureRemote(login)
	if err != nil {
		return err
	}
	if !keepRemote {
		if err := a.createRemoteRepo(login); err != nil {
			return err
		}
	}

	return a.initialPush()
}

// ensureRemote validates an existing origin against the authenticated
// account. It returns true when origin is present and usable. A remote that
// belongs to someone else or is inaccessible is removed after confirmation.
func (a *App) ensureRemote(login string) (bool, error) {
	url, err := a.Git.RemoteURL("origin")
	if err != nil {
		return false, nil // no origin yet
	}

	info, err := gh.ParseRemoteURL(url)
	if err == nil && info.Owner == login && a.Hub.RepoExists(info.FullName()) {
		a.Out.Infof("Remote origin already points at %s", info.FullName())
		return true, nil
	}

	if err != nil {
		a.Out.Warnf("Remote origin (%s) is not a GitHub URL", url)
	} else {
		a.Out.Warnf("Remote origin (%s) belongs to a different account or is inaccessible", url)
	}

	ok, err := a.Prompt.Confirm("Remove origin and create a new repository?", false)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, ErrAborted
	}

	if err := a.Git.RemoveRemote("origin"); err != nil {
		return false, err
	}
	return false, nil
}

// createRemoteRepo creates the GitHub repository and wires it up as origin.
// When the preferred name is taken, the collision suffix chosen by
// AvailableName becomes the new project name and is persisted.
func (a *App) createRemoteRepo(login string) error {
	name, err := a.Hub.AvailableName(login, a.Config.ProjectName, a.Config.MaxBackupAttempts)
	if err != nil {
		return err
	}

	if name != a.Config.ProjectName {
		a.Out.Warnf("Repository name %q is taken, using %q", a.Config.ProjectName, name)
		a.Config.ProjectName = name
		if err := config.Save(a.Dir, a.Config); err != nil {
			return err
		}
	}

	full := login + "/" + name
	if err := a.Hub.CreateRepo(full); err != nil {
		return err
	}
	if err := a.Git.AddRemote("origin", gh.RemoteURLFor(full)); err != nil {
		return err
	}

	a.Out.Successf("Created private repository %s", full)
	return nil
}

// initialPush makes sure there is at least one commit and pushes the backup
// branch with upstream tracking.
func (a *App) initialPush() error {
	changes, err := a.Git.HasChanges()
	if err != nil {
		return err
	}
	if changes {
		if err := a.Git.StageAll(); err != nil {
			return err
		}
		if err := a.Git.Commit(fmt.Sprintf("repobak: initial backup of %s", a.Config.ProjectName)); err != nil {
			return err
		}
	}

	branch, err := a.Git.CurrentBranch()
	if err != nil || branch == "" {
		branch = a.Config.BackupBranch
	}
	if err := a.Git.PushSetUpstream(branch); err != nil {
		return err
	}

	a.Out.Successf("Pushed %s to origin", branch)
	return nil
}
