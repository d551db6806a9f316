package cache

import (
	"fmt"
	"os"
	"path/filepath"
)

// FilterKey returns the cache key for a platform filter built from the
// projects table at path. The key changes whenever the file's size or
// modification time changes.
func FilterKey(path, platform string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", err
	}
	src := fmt.Sprintf("%s\x00%d\x00%d\x00%s", abs, info.Size(), info.ModTime().UnixNano(), platform)
	return "filter:" + Hash([]byte(src)), nil
}
