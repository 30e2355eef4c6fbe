// Package config loads the settings for the game from a .env file, the
// environment and the command line, in that order of precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config represents the settings for a game session.
type Config struct {
	NoticeDuration time.Duration
	Sound          bool
	LogFile        string
	Debug          bool
	SnapshotDir    string
}

// Default settings.
const (
	defNoticeDuration = 3 * time.Second
	defLogFile        = "log.txt"
	defSnapshotDir    = "snapshots"
)

// Load reads the .env file if one exists, then the environment, then the
// command line arguments.
func Load(envFile string, args []string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	cfg := Config{
		NoticeDuration: defNoticeDuration,
		LogFile:        defLogFile,
		SnapshotDir:    defSnapshotDir,
	}

	var err error

	if cfg.NoticeDuration, err = envDuration("CONNECT_NOTICE", cfg.NoticeDuration); err != nil {
		return Config{}, err
	}

	if cfg.Sound, err = envBool("CONNECT_SOUND", cfg.Sound); err != nil {
		return Config{}, err
	}

	if cfg.Debug, err = envBool("CONNECT_DEBUG", cfg.Debug); err != nil {
		return Config{}, err
	}

	cfg.LogFile = envString("CONNECT_LOG", cfg.LogFile)
	cfg.SnapshotDir = envString("CONNECT_SNAPSHOTS", cfg.SnapshotDir)

	// -------------------------------------------------------------------------
	// Command line overrides

	flags := flag.NewFlagSet("connect", flag.ContinueOnError)
	flags.DurationVar(&cfg.NoticeDuration, "notice", cfg.NoticeDuration, "how long round results stay on screen")
	flags.BoolVar(&cfg.Sound, "sound", cfg.Sound, "announce round results with speech")
	flags.StringVar(&cfg.LogFile, "log", cfg.LogFile, "file to write logs to")
	flags.BoolVar(&cfg.Debug, "debug", cfg.Debug, "write debug logs")
	flags.StringVar(&cfg.SnapshotDir, "snapshots", cfg.SnapshotDir, "folder for board snapshots")

	if err := flags.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}

	if cfg.NoticeDuration < 0 {
		return Config{}, fmt.Errorf("notice duration can't be negative: %s", cfg.NoticeDuration)
	}

	return cfg, nil
}

// =============================================================================

func envString(key string, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}

func envBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}

	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}

	return b, nil
}

func envDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}

	return d, nil
}
