package test

import (
	"os"
	"path/filepath"
	"testing"

	"github/chapool/nft-mint/internal/config"
	"github/chapool/nft-mint/internal/util"
)

// DotEnvLoadLocalOrSkipTest applies the project's .env.local through t.Setenv, or skips the
// test when there is no such file. Use it for tests that need real external endpoints.
func DotEnvLoadLocalOrSkipTest(t *testing.T) {
	t.Helper()

	absolutePathToEnvFile := filepath.Join(util.GetProjectRootDir(), ".env.local")

	if _, err := os.Stat(absolutePathToEnvFile); err != nil {
		t.Skipf("Skipping test, as no .env.local file is available at %q", absolutePathToEnvFile)
		return
	}

	config.DotEnvTryLoad(absolutePathToEnvFile, func(k string, v string) error {
		t.Setenv(k, v)
		return nil
	})
}
