package config

import (
	"path/filepath"
)

const (
	RepoDir    = "vcs"
	CommitsDir = "commits"
	ConfigFile = "config.txt"
	IndexFile  = "index.txt"
	LogFile    = "log.txt"
)

// RepoConfig holds the resolved paths of one repository and its working tree.
// It is passed to every component constructor instead of relying on the process cwd.
type RepoConfig struct {
	WorkingTreeDir string // directory whose files are tracked
	RepoDir        string // repository data directory (vcs)
	AuthorOverride string // when non-empty, replaces the author read from config.txt
	Debug          bool
}

// NewRepoConfig builds a RepoConfig for a working tree with the default repository dir inside it.
func NewRepoConfig(workingTreeDir string) *RepoConfig {
	return &RepoConfig{
		WorkingTreeDir: workingTreeDir,
		RepoDir:        filepath.Join(workingTreeDir, RepoDir),
	}
}

func (c *RepoConfig) CommitsDir() string { return filepath.Join(c.RepoDir, CommitsDir) }
func (c *RepoConfig) ConfigFile() string { return filepath.Join(c.RepoDir, ConfigFile) }
func (c *RepoConfig) IndexFile() string  { return filepath.Join(c.RepoDir, IndexFile) }
func (c *RepoConfig) LogFile() string    { return filepath.Join(c.RepoDir, LogFile) }

// CommitDir returns the snapshot directory of a fingerprint.
func (c *RepoConfig) CommitDir(fingerprint string) string {
	return filepath.Join(c.CommitsDir(), fingerprint)
}
