// Package config loads optimizer parameters from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/sonnes/chitrashala/optimize"
)

// Environment variables read by Load.
const (
	EnvQuality  = "WEBP_QUALITY"
	EnvMaxWidth = "MAX_W"
	EnvMethod   = "WEBP_METHOD"
)

// LoadEnv reads KEY=value pairs from the given .env files into the process
// environment. Variables that are already set keep their value. Missing
// files are ignored.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		err := godotenv.Load(f)
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug("no env file", "path", f)
			continue
		}
		if err != nil {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// Load returns optimizer options from the environment, falling back to
// optimize.DefaultOptions for unset variables. Unparsable values are errors.
// Ranges are not checked here; callers apply their overrides and then call
// Options.Validate.
func Load() (optimize.Options, error) {
	def := optimize.DefaultOptions()

	var err error
	opts := optimize.Options{}
	if opts.Quality, err = getEnvAsInt(EnvQuality, def.Quality); err != nil {
		return opts, err
	}
	if opts.MaxWidth, err = getEnvAsInt(EnvMaxWidth, def.MaxWidth); err != nil {
		return opts, err
	}
	if opts.Method, err = getEnvAsInt(EnvMethod, def.Method); err != nil {
		return opts, err
	}
	return opts, nil
}

func getEnvAsInt(key string, defaultVal int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not an integer", key, value)
	}
	return n, nil
}
