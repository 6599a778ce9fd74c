package git

import (
	"fmt"
	"strings"

	"repobak/internal/model"
)

// logFormat keeps log output machine-parseable. The subject is last so pipes
// inside it survive a bounded split.
const logFormat = "%H|%an|%ae|%s"

// Log returns the commit history of HEAD, newest first.
func (c *Client) Log() ([]model.Commit, error) {
	out, err := c.git("log", "--pretty=format:"+logFormat)
	if err != nil {
		return nil, fmt.Errorf("git log failed: %w", err)
	}
	return ParseLog(out)
}

// ParseLog parses pipe-delimited log lines into commits. A line that does not
// match the expected shape is a hard error rather than silently skipped.
func ParseLog(out string) ([]model.Commit, error) {
	if strings.TrimSpace(out) == "" {
		return nil, nil
	}

	var commits []model.Commit
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.SplitN(line, "|", 4)
		if len(parts) != 4 || parts[0] == "" {
			return nil, fmt.Errorf("malformed log line: %q", line)
		}
		commits = append(commits, model.Commit{
			Hash:        parts[0],
			AuthorName:  parts[1],
			AuthorEmail: parts[2],
			Subject:     parts[3],
		})
	}
	return commits, nil
}

// PartitionByAuthor splits commits into those authored by the given user and
// the rest. The match is a case-sensitive substring test against the author
// name and email, so "alice" matches both "alice" and "alice@users.noreply".
func PartitionByAuthor(commits []model.Commit, username string) (mine, others []model.Commit) {
	for _, c := range commits {
		if username != "" &&
			(strings.Contains(c.AuthorName, username) || strings.Contains(c.AuthorEmail, username)) {
			mine = append(mine, c)
		} else {
			others = append(others, c)
		}
	}
	return mine, others
}
