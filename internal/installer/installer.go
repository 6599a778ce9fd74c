// Package installer copies repobak into a target project so the project can
// carry its own backup tooling.
package installer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"repobak/internal/config"
	"repobak/internal/model"
)

const (
	markerBegin = "# >>> repobak >>>"
	markerEnd   = "# <<< repobak <<<"
)

// Install copies the executable at binPath into <target>/.repobak/, writes a
// default config there if none exists, and adds the tool's ignore entries to
// the target's .gitignore.
func Install(binPath, target string) (*model.Config, error) {
	info, err := os.Stat(target)
	if err != nil {
		return nil, fmt.Errorf("target directory %s: %w", target, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("target %s is not a directory", target)
	}

	toolDir := filepath.Join(target, config.ToolDir)
	if err := os.MkdirAll(toolDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", toolDir, err)
	}

	if err := copyExecutable(binPath, filepath.Join(toolDir, filepath.Base(binPath))); err != nil {
		return nil, err
	}

	cfg, err := config.LoadOrCreate(target)
	if err != nil {
		return nil, err
	}

	entries := append([]string{config.ToolDir + "/"}, cfg.AutoIgnoreFiles...)
	if err := UpdateGitignore(filepath.Join(target, ".gitignore"), entries); err != nil {
		return nil, err
	}

	return cfg, nil
}

func copyExecutable(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0755)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("failed to copy %s: %w", src, err)
	}
	return nil
}

// UpdateGitignore makes sure the given entries appear in a marker-guarded
// block of the .gitignore at path. The block is rebuilt in place, so applying
// the update twice yields the same file content as applying it once.
func UpdateGitignore(path string, entries []string) error {
	existing := ""
	data, err := os.ReadFile(path)
	if err == nil {
		existing = string(data)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	updated := replaceManagedBlock(existing, buildManagedBlock(entries))
	if updated == existing {
		return nil
	}

	if err := os.WriteFile(path, []byte(updated), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func buildManagedBlock(entries []string) string {
	seen := make(map[string]bool, len(entries))
	lines := []string{markerBegin}
	for _, e := range entries {
		e = strings.TrimSpace(e)
		if e == "" || seen[e] {
			continue
		}
		seen[e] = true
		lines = append(lines, e)
	}
	lines = append(lines, markerEnd)
	return strings.Join(lines, "\n") + "\n"
}

// replaceManagedBlock swaps the existing marker-guarded block for the new
// one, or appends the block when no markers are present.
func replaceManagedBlock(content, block string) string {
	begin := strings.Index(content, markerBegin)
	end := strings.Index(content, markerEnd)

	if begin >= 0 && end > begin {
		after := content[end+len(markerEnd):]
		after = strings.TrimPrefix(after, "\n")
		return content[:begin] + block + after
	}

	if content == "" {
		return block
	}
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	return content + block
}
