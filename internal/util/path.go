package util

import (
	"os"
	"path/filepath"
	"runtime"
	"sync"
)

var (
	projectRootDir     string
	projectRootDirOnce sync.Once
)

// GetProjectRootDir returns the path as string to the project root dir.
// PROJECT_ROOT_DIR wins if set, otherwise the dir is derived from this source file's location.
func GetProjectRootDir() string {
	projectRootDirOnce.Do(func() {
		if val, ok := os.LookupEnv("PROJECT_ROOT_DIR"); ok {
			projectRootDir = val
			return
		}

		_, b, _, _ := runtime.Caller(0) //nolint:dogsled

		// internal/util/path.go -> project root
		projectRootDir = filepath.Join(filepath.Dir(b), "../..")
	})

	return projectRootDir
}
