package config

import (
	"os"
	"runtime"
	"strings"
)

func setEnv(key string, value string) error {
	return os.Setenv(key, value)
}

func runtimeNumCPU() int {
	return runtime.NumCPU()
}

// runningInTest reports whether we are running inside "go test" (binaries end in .test).
func runningInTest() bool {
	return strings.HasSuffix(os.Args[0], ".test")
}
