package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"gup.dev/gup/internal/message"
)

// FileName is the repository configuration file, relative to the repository root
const FileName = ".gup.yaml"

const defaultRemote = "origin"

var (
	defaultProtectedBranches = []string{"main", "master"}
	defaultIgnoredChecks     = []string{"SonarQube Code Analysis"}
)

// RepoConfig represents the repository configuration
type RepoConfig struct {
	ProtectedBranches []string `yaml:"protectedBranches,omitempty"`
	DefaultKind       string   `yaml:"defaultKind,omitempty"`
	IgnoredChecks     []string `yaml:"ignoredChecks,omitempty"`
	Remote            string   `yaml:"remote,omitempty"`
}

// GetRepoConfig reads the repository configuration.
// A missing file yields the defaults.
func GetRepoConfig(repoRoot string) (*RepoConfig, error) {
	configPath := filepath.Join(repoRoot, FileName)

	data, err := os.ReadFile(configPath)
	if errors.Is(err, fs.ErrNotExist) {
		return &RepoConfig{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read repo config: %w", err)
	}

	var config RepoConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse repo config %s: %w", configPath, err)
	}

	if _, err := config.Kind(); err != nil {
		return nil, fmt.Errorf("invalid defaultKind in %s: %w", configPath, err)
	}

	return &config, nil
}

// SaveRepoConfig writes the repository configuration
func SaveRepoConfig(repoRoot string, config *RepoConfig) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal repo config: %w", err)
	}
	return os.WriteFile(filepath.Join(repoRoot, FileName), data, 0600)
}

// IsProtected reports whether commits must not be pushed from the branch
func (c *RepoConfig) IsProtected(branchName string) bool {
	branches := c.ProtectedBranches
	if len(branches) == 0 {
		branches = defaultProtectedBranches
	}
	return lo.Contains(branches, branchName)
}

// Kind returns the configured default kind, or nil when none is set
func (c *RepoConfig) Kind() (*message.Kind, error) {
	if c.DefaultKind == "" {
		return nil, nil
	}
	kind, err := message.ParseKind(c.DefaultKind)
	if err != nil {
		return nil, err
	}
	return &kind, nil
}

// IgnoredCheckNames returns the check runs whose conclusion does not count
func (c *RepoConfig) IgnoredCheckNames() []string {
	if c.IgnoredChecks == nil {
		return defaultIgnoredChecks
	}
	return c.IgnoredChecks
}

// RemoteName returns the remote to push to, "origin" by default
func (c *RepoConfig) RemoteName() string {
	if c.Remote == "" {
		return defaultRemote
	}
	return c.Remote
}
