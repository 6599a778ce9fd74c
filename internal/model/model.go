package model

import (
	"time"
)

// Config is the per-project configuration stored in .repobak/config.json.
type Config struct {
	ProjectName       string    `json:"projectName"`
	GithubUsername    string    `json:"githubUsername"`
	BackupBranch      string    `json:"backupBranch"`
	AutoIgnoreFiles   []string  `json:"autoIgnoreFiles"`
	MaxBackupAttempts int       `json:"maxBackupAttempts"`
	CreatedAt         time.Time `json:"createdAt"`
	Version           string    `json:"version"`
}

// SyncState classifies the relationship between the local branch and its
// counterpart on origin.
type SyncState string

const (
	SyncUpToDate SyncState = "uptodate"
	SyncBehind   SyncState = "behind"
	SyncAhead    SyncState = "ahead"
	SyncDiverged SyncState = "diverged"
	SyncNoRemote SyncState = "no_remote"
	SyncError    SyncState = "error"
)

// SyncStatus is the transient snapshot computed before each operation.
// It is never persisted.
type SyncStatus struct {
	HasChanges bool      `json:"hasChanges"`
	IsRepo     bool      `json:"isRepo"`
	Sync       SyncState `json:"sync"`
	LocalHash  string    `json:"localHash"`
	RemoteHash string    `json:"remoteHash"`
	BaseHash   string    `json:"baseHash"`
}

// Commit is a single entry parsed from git log output.
type Commit struct {
	Hash        string `json:"hash"`
	AuthorName  string `json:"authorName"`
	AuthorEmail string `json:"authorEmail"`
	Subject     string `json:"subject"`
}

// RemoteInfo identifies a GitHub repository extracted from a remote URL.
type RemoteInfo struct {
	Owner string `json:"owner"`
	Name  string `json:"name"`
}

// FullName returns the owner/name form used by the gh CLI.
func (r RemoteInfo) FullName() string {
	return r.Owner + "/" + r.Name
}
