package meta

import (
	"fmt"
	"strings"

	"github.com/keshon/svcs/internal/fs"
)

// Author returns the configured username, or "" when none is set.
// A non-empty AuthorOverride in the config takes precedence over config.txt.
func (mc *MetaContext) Author() (string, error) {
	if mc.Config.AuthorOverride != "" {
		return mc.Config.AuthorOverride, nil
	}
	data, err := mc.readOptional(mc.Config.ConfigFile())
	if err != nil {
		return "", fmt.Errorf("read config: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

// SetAuthor stores the username in config.txt.
func (mc *MetaContext) SetAuthor(name string) error {
	if err := fs.WriteFileAtomic(mc.FS, mc.Config.ConfigFile(), []byte(name), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
