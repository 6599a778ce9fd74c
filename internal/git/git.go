package git

import (
	"fmt"

	"repobak/internal/execx"
)

// Client runs git commands against a single working directory.
type Client struct {
	dir string
	run execx.Runner
}

// New creates a git client for the given working directory.
func New(dir string, run execx.Runner) *Client {
	return &Client{dir: dir, run: run}
}

func (c *Client) git(args ...string) (string, error) {
	return c.run.Run(c.dir, "git", args...)
}

// IsRepository reports whether the working directory is inside a git repo.
func (c *Client) IsRepository() bool {
	_, err := c.git("rev-parse", "--is-inside-work-tree")
	return err == nil
}

// Init initializes a new repository with the given initial branch name.
func (c *Client) Init(branch string) error {
	if _, err := c.git("init", "-b", branch); err != nil {
		return fmt.Errorf("git init failed: %w", err)
	}
	return nil
}

// CurrentBranch returns the name of the checked-out branch.
func (c *Client) CurrentBranch() (string, error) {
	out, err := c.git("branch", "--show-current")
	if err != nil {
		return "", fmt.Errorf("failed to get current branch: %w", err)
	}
	return out, nil
}

// HasChanges reports whether the working tree has uncommitted changes.
func (c *Client) HasChanges() (bool, error) {
	out, err := c.git("status", "--porcelain")
	if err != nil {
		return false, fmt.Errorf("git status failed: %w", err)
	}
	return out != "", nil
}

// StageAll stages every change in the working tree, including deletions.
func (c *Client) StageAll() error {
	if _, err := c.git("add", "-A"); err != nil {
		return fmt.Errorf("failed to stage changes: %w", err)
	}
	return nil
}

// Commit creates a commit with the given message.
func (c *Client) Commit(msg string) error {
	if _, err := c.git("commit", "-m", msg); err != nil {
		return fmt.Errorf("git commit failed: %w", err)
	}
	return nil
}

// CommitEmpty creates a commit even when nothing is staged.
func (c *Client) CommitEmpty(msg string) error {
	if _, err := c.git("commit", "--allow-empty", "-m", msg); err != nil {
		return fmt.Errorf("git commit failed: %w", err)
	}
	return nil
}

// CommitAs creates a commit with an explicit author identity.
func (c *Client) CommitAs(msg, authorName, authorEmail string) error {
	author := fmt.Sprintf("%s <%s>", authorName, authorEmail)
	if _, err := c.git("commit", "-m", msg, "--author", author); err != nil {
		return fmt.Errorf("git commit failed: %w", err)
	}
	return nil
}

// Push pushes a branch to origin.
func (c *Client) Push(branch string) error {
	if _, err := c.git("push", "origin", branch); err != nil {
		return fmt.Errorf("git push failed: %w", err)
	}
	return nil
}

// PushSetUpstream pushes a branch to origin and records it as upstream.
func (c *Client) PushSetUpstream(branch string) error {
	if _, err := c.git("push", "-u", "origin", branch); err != nil {
		return fmt.Errorf("git push failed: %w", err)
	}
	return nil
}

// ForcePush overwrites the remote branch with local history. Destructive and
// irreversible server-side.
func (c *Client) ForcePush(branch string) error {
	if _, err := c.git("push", "--force", "origin", branch); err != nil {
		return fmt.Errorf("git push --force failed: %w", err)
	}
	return nil
}

// Pull pulls the current branch from origin.
func (c *Client) Pull() error {
	if _, err := c.git("pull"); err != nil {
		return fmt.Errorf("git pull failed: %w", err)
	}
	return nil
}

// RemoteUpdate refreshes remote-tracking refs for origin.
func (c *Client) RemoteUpdate() error {
	if _, err := c.git("remote", "update", "origin"); err != nil {
		return fmt.Errorf("git remote update failed: %w", err)
	}
	return nil
}

// RemoteURL returns the URL of the named remote, or an error if the remote
// does not exist.
func (c *Client) RemoteURL(name string) (string, error) {
	return c.git("remote", "get-url", name)
}

// AddRemote registers a new remote.
func (c *Client) AddRemote(name, url string) error {
	if _, err := c.git("remote", "add", name, url); err != nil {
		return fmt.Errorf("failed to add remote %s: %w", name, err)
	}
	return nil
}

// RemoveRemote deletes a remote.
func (c *Client) RemoveRemote(name string) error {
	if _, err := c.git("remote", "remove", name); err != nil {
		return fmt.Errorf("failed to remove remote %s: %w", name, err)
	}
	return nil
}

// Hash resolves a revision to its commit hash.
func (c *Client) Hash(rev string) (string, error) {
	return c.git("rev-parse", rev)
}

// RemoteHash resolves origin/<branch> to a hash. The error indicates the
// remote branch does not exist.
func (c *Client) RemoteHash(branch string) (string, error) {
	return c.git("rev-parse", "--verify", "--quiet", "origin/"+branch)
}

// MergeBase returns the most recent common ancestor of two revisions.
func (c *Client) MergeBase(a, b string) (string, error) {
	return c.git("merge-base", a, b)
}

// Checkout switches to an existing branch.
func (c *Client) Checkout(branch string) error {
	if _, err := c.git("checkout", branch); err != nil {
		return fmt.Errorf("git checkout failed: %w", err)
	}
	return nil
}

// CreateBranch creates and checks out a new branch.
func (c *Client) CreateBranch(branch string) error {
	if _, err := c.git("checkout", "-b", branch); err != nil {
		return fmt.Errorf("failed to create branch %s: %w", branch, err)
	}
	return nil
}

// CheckoutOrphan creates and checks out a branch with no history.
func (c *Client) CheckoutOrphan(branch string) error {
	if _, err := c.git("checkout", "--orphan", branch); err != nil {
		return fmt.Errorf("failed to create orphan branch %s: %w", branch, err)
	}
	return nil
}

// DeleteBranch force-deletes a local branch.
func (c *Client) DeleteBranch(branch string) error {
	if _, err := c.git("branch", "-D", branch); err != nil {
		return fmt.Errorf("failed to delete branch %s: %w", branch, err)
	}
	return nil
}

// RenameBranch renames the current branch, replacing any branch that already
// holds the target name.
func (c *Client) RenameBranch(name string) error {
	if _, err := c.git("branch", "-M", name); err != nil {
		return fmt.Errorf("failed to rename branch to %s: %w", name, err)
	}
	return nil
}

// ResetHard discards all commits and working-tree state after the given
// revision.
func (c *Client) ResetHard(rev string) error {
	if _, err := c.git("reset", "--hard", rev); err != nil {
		return fmt.Errorf("git reset --hard failed: %w", err)
	}
	return nil
}
