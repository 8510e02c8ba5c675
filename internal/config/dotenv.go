package config

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/subosito/gotenv"
)

// DotEnvTryLoad forcefully overrides ENV variables through **a maybe available** .env file.
//
// This function always SILENTLY NOOPS if the .env file does not exist or cannot be read.
// It is intended for local development only, deployments are configured through the real environment.
func DotEnvTryLoad(absolutePathToEnvFile string, setEnvFn func(key string, value string) error) {
	file, err := os.Open(absolutePathToEnvFile)
	if err != nil {
		return
	}
	defer file.Close()

	env, err := gotenv.StrictParse(file)
	if err != nil {
		log.Warn().Err(err).Str("envFile", absolutePathToEnvFile).Msg(".env file found but could not be parsed, skipping")
		return
	}

	for key, value := range env {
		if err := setEnvFn(key, value); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("Failed to set env var from .env file")
		}
	}

	log.Warn().Str("envFile", absolutePathToEnvFile).Int("overrides", len(env)).Msg(".env overrides ENV variables!")
}
