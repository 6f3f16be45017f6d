package fs

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandHomeDir replaces the leading ~ in path with the current user's home directory.
// The path is returned as is if it doesn't start with ~/ or the home directory can't be determined.
func ExpandHomeDir(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
