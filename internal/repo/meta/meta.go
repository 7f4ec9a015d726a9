package meta

import (
	"fmt"

	"github.com/keshon/svcs/internal/config"
	"github.com/keshon/svcs/internal/fs"
)

// MetaContext owns the human-readable repository files: the commit log and the author config.
type MetaContext struct {
	Config *config.RepoConfig
	FS     fs.FS
}

// NewMeta creates a MetaContext for cfg.
func NewMeta(cfg *config.RepoConfig, fs fs.FS) (*MetaContext, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil RepoConfig provided")
	}
	return &MetaContext{Config: cfg, FS: fs}, nil
}

// readOptional returns the file content, or nil if the file does not exist.
func (mc *MetaContext) readOptional(path string) ([]byte, error) {
	data, err := mc.FS.ReadFile(path)
	if err != nil {
		if mc.FS.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}
