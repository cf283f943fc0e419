package rules

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	securejoin "github.com/cyphar/filepath-securejoin"
)

// ExpandPath resolves a path written in a configuration file. A leading
// "~" is the user's home directory. Relative paths are joined under
// baseDir and cannot escape it; with an empty baseDir they are returned
// unchanged.
func ExpandPath(p, baseDir string) (string, error) {
	if p == "~" || strings.HasPrefix(p, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home directory: %w", err)
		}
		return filepath.Join(home, p[1:]), nil
	}

	if filepath.IsAbs(p) || baseDir == "" {
		return p, nil
	}

	joined, err := securejoin.SecureJoin(baseDir, p)
	if err != nil {
		return "", fmt.Errorf("invalid path %q: %w", p, err)
	}
	return joined, nil
}
