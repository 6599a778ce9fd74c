package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"repobak/internal/model"
)

const (
	// ToolDir is the per-project directory holding repobak state.
	ToolDir = ".repobak"

	configFile = "config.json"

	// Version written into freshly created configs.
	Version = "1.0.0"

	// DefaultBackupBranch is used when no branch is configured.
	DefaultBackupBranch = "main"

	// DefaultMaxBackupAttempts bounds the repo-name collision search.
	DefaultMaxBackupAttempts = 10
)

// ErrNotFound signals that no config file exists for the project.
var ErrNotFound = errors.New("no repobak configuration found")

// Path returns the config file location for a project directory.
func Path(dir string) string {
	return filepath.Join(dir, ToolDir, configFile)
}

// Exists reports whether the project has a config file.
func Exists(dir string) bool {
	_, err := os.Stat(Path(dir))
	return err == nil
}

// Default builds a fresh config for a project directory. The project name is
// the directory's basename.
func Default(dir string) *model.Config {
	abs, err := filepath.Abs(dir)
	if err != nil {
		abs = dir
	}
	return &model.Config{
		ProjectName:       filepath.Base(abs),
		BackupBranch:      DefaultBackupBranch,
		AutoIgnoreFiles:   []string{ToolDir + "/", "*.log"},
		MaxBackupAttempts: DefaultMaxBackupAttempts,
		CreatedAt:         time.Now().UTC(),
		Version:           Version,
	}
}

// Load reads the project config.
func Load(dir string) (*model.Config, error) {
	data, err := os.ReadFile(Path(dir))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg model.Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// Save writes the project config, creating the tool directory if needed.
func Save(dir string, cfg *model.Config) error {
	toolDir := filepath.Join(dir, ToolDir)
	if err := os.MkdirAll(toolDir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", toolDir, err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(Path(dir), data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// LoadOrCreate returns the existing config or writes and returns a default
// one.
func LoadOrCreate(dir string) (*model.Config, error) {
	cfg, err := Load(dir)
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	cfg = Default(dir)
	if err := Save(dir, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
