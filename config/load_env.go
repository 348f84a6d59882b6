package config

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/subosito/gotenv"
)

// LoadEnv loads the local .env file when present; without one the process
// runs on the OS environment alone.
func LoadEnv() {
	if err := gotenv.Load(); err != nil {
		slog.Warn("No .env file found, using OS environment")
	}
}

// EnvInt reads a positive integer from the environment, falling back to
// def when unset or unparsable.
func EnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("ignoring invalid env value", "key", key, "value", v)
		return def
	}
	return n
}
