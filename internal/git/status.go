package git

import (
	"repobak/internal/model"
)

// Classify maps a (local, remote, merge-base) hash triple to a sync state.
// It is a pure function: the same triple always yields the same state, and
// the states are mutually exclusive and exhaustive.
func Classify(local, remote, base string, remoteExists bool) model.SyncState {
	switch {
	case !remoteExists:
		return model.SyncNoRemote
	case local == remote:
		return model.SyncUpToDate
	case local == base:
		return model.SyncBehind
	case remote == base:
		return model.SyncAhead
	default:
		return model.SyncDiverged
	}
}

// Status computes the sync snapshot for the given branch. Command failures
// while gathering the hash triple degrade to SyncError rather than returning
// an error, so callers always get a usable snapshot.
func (c *Client) Status(branch string) model.SyncStatus {
	st := model.SyncStatus{Sync: model.SyncError}

	if !c.IsRepository() {
		return st
	}
	st.IsRepo = true

	changes, err := c.HasChanges()
	if err != nil {
		return st
	}
	st.HasChanges = changes

	local, err := c.Hash("HEAD")
	if err != nil {
		// Unborn branch: nothing committed yet, nothing to compare.
		st.Sync = model.SyncNoRemote
		return st
	}
	st.LocalHash = local

	if _, err := c.RemoteURL("origin"); err != nil {
		st.Sync = model.SyncNoRemote
		return st
	}

	if err := c.RemoteUpdate(); err != nil {
		return st
	}

	remote, err := c.RemoteHash(branch)
	if err != nil {
		st.Sync = model.SyncNoRemote
		return st
	}
	st.RemoteHash = remote

	base, err := c.MergeBase("HEAD", "origin/"+branch)
	if err != nil {
		return st
	}
	st.BaseHash = base

	st.Sync = Classify(local, remote, base, true)
	return st
}
