package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment,
// loading an optional .env file next to the working directory first.
// Variables that are unset leave the corresponding field untouched.
func parseEnv(cfg *Config) {
	for _, path := range []string{".env", "../.env"} {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}

	if err := env.Parse(cfg); err != nil {
		panic(err)
	}
}
