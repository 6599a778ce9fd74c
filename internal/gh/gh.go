// Package gh wraps the GitHub CLI. All repository queries and mutations on
// the GitHub side go through `gh` so repobak inherits its authentication.
package gh

import (
	"fmt"
	"regexp"

	"repobak/internal/execx"
	"repobak/internal/model"
)

// Client runs gh commands from a single working directory.
type Client struct {
	dir string
	run execx.Runner
}

// New creates a gh client for the given working directory.
func New(dir string, run execx.Runner) *Client {
	return &Client{dir: dir, run: run}
}

func (c *Client) gh(args ...string) (string, error) {
	return c.run.Run(c.dir, "gh", args...)
}

// CheckAuth verifies that the gh CLI is authenticated.
func (c *Client) CheckAuth() error {
	if _, err := c.gh("auth", "status"); err != nil {
		return fmt.Errorf("gh is not authenticated (run `gh auth login`): %w", err)
	}
	return nil
}

// Login returns the authenticated GitHub username.
func (c *Client) Login() (string, error) {
	out, err := c.gh("api", "user", "--jq", ".login")
	if err != nil {
		return "", fmt.Errorf("failed to resolve GitHub user: %w", err)
	}
	if out == "" {
		return "", fmt.Errorf("gh api user returned an empty login")
	}
	return out, nil
}

// RepoExists reports whether owner/name is visible to the authenticated user.
func (c *Client) RepoExists(fullName string) bool {
	_, err := c.gh("repo", "view", fullName, "--json", "name")
	return err == nil
}

// CreateRepo creates a private repository under the authenticated account.
func (c *Client) CreateRepo(fullName string) error {
	if _, err := c.gh("repo", "create", fullName, "--private"); err != nil {
		return fmt.Errorf("failed to create repository %s: %w", fullName, err)
	}
	return nil
}

// DeleteRepo deletes a repository on GitHub. Irreversible.
func (c *Client) DeleteRepo(fullName string) error {
	if _, err := c.gh("repo", "delete", fullName, "--yes"); err != nil {
		return fmt.Errorf("failed to delete repository %s: %w", fullName, err)
	}
	return nil
}

// AvailableName finds a repository name derived from base that is not taken
// under owner, appending an incrementing numeric suffix on collision. The
// search gives up after maxAttempts tries.
func (c *Client) AvailableName(owner, base string, maxAttempts int) (string, error) {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	for i := 0; i < maxAttempts; i++ {
		name := base
		if i > 0 {
			name = fmt.Sprintf("%s-%d", base, i)
		}
		if !c.RepoExists(owner + "/" + name) {
			return name, nil
		}
	}
	return "", fmt.Errorf("no available repository name for %q after %d attempts", base, maxAttempts)
}

var remoteURLPattern = regexp.MustCompile(`github\.com[:/]([^/]+)/([^/]+?)(?:\.git)?/?$`)

// ParseRemoteURL extracts owner and repository name from an HTTPS or SSH
// GitHub remote URL.
func ParseRemoteURL(url string) (model.RemoteInfo, error) {
	m := remoteURLPattern.FindStringSubmatch(url)
	if m == nil {
		return model.RemoteInfo{}, fmt.Errorf("not a GitHub remote URL: %q", url)
	}
	return model.RemoteInfo{Owner: m[1], Name: m[2]}, nil
}

// RemoteURLFor builds the HTTPS remote URL for a repository.
func RemoteURLFor(fullName string) string {
	return "https://github.com/" + fullName + ".git"
}
