package config

import (
	"fmt"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Env is the environment-driven part of the configuration.
type Env struct {
	WorkingTree string `env:"SVCS_WORKTREE" envDefault:"."`
	RepoDir     string `env:"SVCS_DIR"      envDefault:"vcs"`
	Author      string `env:"SVCS_AUTHOR"`
	Debug       bool   `env:"SVCS_DEBUG"`
}

// ParseEnv loads Env from environment variables.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}

// Load resolves the RepoConfig for the current process.
// A relative SVCS_DIR is taken relative to the working tree.
func Load() (*RepoConfig, error) {
	e, err := ParseEnv()
	if err != nil {
		return nil, err
	}
	return e.RepoConfig(), nil
}

// RepoConfig turns the parsed environment into resolved repository paths.
func (e Env) RepoConfig() *RepoConfig {
	worktree := filepath.Clean(e.WorkingTree)

	repoDir := e.RepoDir
	if repoDir == "" {
		repoDir = RepoDir
	}
	if !filepath.IsAbs(repoDir) {
		repoDir = filepath.Join(worktree, repoDir)
	}

	return &RepoConfig{
		WorkingTreeDir: worktree,
		RepoDir:        repoDir,
		AuthorOverride: e.Author,
		Debug:          e.Debug,
	}
}
