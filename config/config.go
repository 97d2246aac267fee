// Package config reads ppin settings from the environment, optionally
// seeded from a .env file.
//
// Variables (defaults in parentheses):
//
//	PPIN_DATA             data directory (./data)
//	PPIN_NETWORK_BACKEND  "list" or "mat" (mat)
//	PPIN_NETWORK_SOURCE   interaction database tag in network file names (iref)
//	PPIN_FILE_VERSION     data release number in file names (89)
//	PPIN_FIXTURE_PREFIX   species prefix served from fixtures (test)
//	PPIN_FIXTURE_DIR      fixture directory (testbed)
//	PPIN_ORTHOLOG_DB      SQLite ortholog database; empty reads ortholog files
//	PPIN_LOG_LEVEL        zap level name (info)
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

// ErrUnknownBackend indicates a PPIN_NETWORK_BACKEND other than "list" or "mat".
var ErrUnknownBackend = errors.New("config: unknown network backend")

// Backend selects the Network implementation.
type Backend string

const (
	// BackendList is core.SparseNetwork.
	BackendList Backend = "list"
	// BackendMatrix is matrix.DenseNetwork.
	BackendMatrix Backend = "mat"
)

// Defaults.
const (
	DefaultDataDir       = "./data"
	DefaultBackend       = BackendMatrix
	DefaultNetworkSource = "iref"
	DefaultFileVersion   = 89
	DefaultFixturePrefix = "test"
	DefaultFixtureDir    = "testbed"
)

// Config is the resolved set of settings.
type Config struct {
	DataDir       string
	Backend       Backend
	NetworkSource string
	FileVersion   int
	FixturePrefix string
	FixtureDir    string
	OrthologDB    string
	LogLevel      zapcore.Level

	// DotenvFound reports whether a .env file was read.
	DotenvFound bool
}

// Default returns the configuration used when no variable is set.
func Default() Config {
	return Config{
		DataDir:       DefaultDataDir,
		Backend:       DefaultBackend,
		NetworkSource: DefaultNetworkSource,
		FileVersion:   DefaultFileVersion,
		FixturePrefix: DefaultFixturePrefix,
		FixtureDir:    DefaultFixtureDir,
		LogLevel:      zapcore.InfoLevel,
	}
}

// Load reads the given .env files (".env" when none are named) into the
// process environment without overriding variables already set, then
// resolves Config from the environment. A missing .env file is not an error.
func Load(files ...string) (Config, error) {
	found := godotenv.Load(files...) == nil
	cfg, err := FromEnv()
	cfg.DotenvFound = found

	return cfg, err
}

// FromEnv resolves Config from the process environment only.
func FromEnv() (Config, error) {
	cfg := Default()
	cfg.DataDir = getenv("PPIN_DATA", cfg.DataDir)
	cfg.NetworkSource = getenv("PPIN_NETWORK_SOURCE", cfg.NetworkSource)
	cfg.FixturePrefix = getenv("PPIN_FIXTURE_PREFIX", cfg.FixturePrefix)
	cfg.FixtureDir = getenv("PPIN_FIXTURE_DIR", cfg.FixtureDir)
	cfg.OrthologDB = os.Getenv("PPIN_ORTHOLOG_DB")

	backend, err := ParseBackend(getenv("PPIN_NETWORK_BACKEND", string(cfg.Backend)))
	if err != nil {
		return cfg, err
	}
	cfg.Backend = backend

	if v := os.Getenv("PPIN_FILE_VERSION"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return cfg, fmt.Errorf("config: PPIN_FILE_VERSION %q is not a release number", v)
		}
		cfg.FileVersion = n
	}

	if v := os.Getenv("PPIN_LOG_LEVEL"); v != "" {
		level, err := zapcore.ParseLevel(v)
		if err != nil {
			return cfg, fmt.Errorf("config: PPIN_LOG_LEVEL: %w", err)
		}
		cfg.LogLevel = level
	}

	return cfg, nil
}

// ParseBackend validates a backend name.
func ParseBackend(s string) (Backend, error) {
	switch b := Backend(s); b {
	case BackendList, BackendMatrix:
		return b, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownBackend, s)
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
