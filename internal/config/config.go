// Package config reads the scheduler's configuration from a small TOML
// file, following the same ReadConfigFromDirectory / CurrentConfig
// parent-directory-walk idiom used by the rest of this code base.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jcalvez/srscore/pkg/resync"
	"github.com/pelletier/go-toml/v2"
)

// How many parent directories to traverse before giving up.
const maxDepth = 10

const DefaultConfig = `
[core]
day_starts_at = 3
`

var (
	configOnce      resync.Once
	configSingleton *Config
)

// ConfigFile mirrors the on-disk TOML shape. Fields must be public for the
// toml package to unmarshal them.
type ConfigFile struct {
	Core ConfigCore
}

type ConfigCore struct {
	// DayStartsAt is the local hour (0-23) at which a new day begins for
	// scheduling purposes, consumed by AdjustedNow.
	DayStartsAt int `toml:"day_starts_at"`
}

// Config is the resolved, in-memory configuration.
type Config struct {
	RootDirectory string
	ConfigFile    ConfigFile
}

// DayStartsAt returns the configured day-start hour.
func (c *Config) DayStartsAt() int {
	return c.ConfigFile.Core.DayStartsAt
}

// CurrentConfig returns the process-wide configuration, reading it from
// disk (or using the built-in defaults) on first access.
func CurrentConfig() *Config {
	configOnce.Do(func() {
		var err error
		configSingleton, err = ReadConfigFromDirectory(currentHome())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Unable to read current configuration: %v\n", err)
			os.Exit(1)
		}
	})
	return configSingleton
}

// SetCurrentConfig overrides the singleton directly, useful for tests.
func SetCurrentConfig(c *Config) {
	configSingleton = c
	configOnce.Do(func() {})
}

// Reset clears the singleton so the next CurrentConfig call re-reads it.
func Reset() {
	configOnce.Reset()
	configSingleton = nil
}

func currentHome() string {
	// Supports overriding the root directory, mainly for testing purposes.
	if path, ok := os.LookupEnv("SRS_HOME"); ok {
		abspath, err := filepath.Abs(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, "failed to evaluate $SRS_HOME")
			os.Exit(1)
		}
		return abspath
	}
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "unable to determine current directory: %v\n", err)
		os.Exit(1)
	}
	return cwd
}

// ReadConfigFromDirectory searches path and its parents for a .srs
// directory, reading .srs/config if found, falling back to defaults
// otherwise.
func ReadConfigFromDirectory(path string) (*Config, error) {
	rootPath := path
	i := 0
	for {
		i++
		if i > maxDepth {
			rootPath = path
			break
		}
		srsPath := filepath.Join(rootPath, ".srs")
		if _, err := os.Stat(srsPath); err == nil {
			break
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error while searching for configuration directory: %w", err)
		}
		if len(strings.Split(rootPath, string(os.PathSeparator))) <= 2 {
			rootPath = path
			break
		}
		rootPath = filepath.Clean(filepath.Join(rootPath, ".."))
	}

	configPath := filepath.Join(rootPath, ".srs", "config")
	content, err := os.ReadFile(configPath)
	var configFile *ConfigFile
	if os.IsNotExist(err) {
		configFile, err = parseConfigFile(DefaultConfig)
		if err != nil {
			return nil, fmt.Errorf("default configuration is broken: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("failed to read .srs/config: %w", err)
	} else {
		configFile, err = parseConfigFile(string(content))
		if err != nil {
			return nil, fmt.Errorf("failed to parse .srs/config: %w", err)
		}
	}

	return &Config{
		RootDirectory: rootPath,
		ConfigFile:    *configFile,
	}, nil
}

func parseConfigFile(content string) (*ConfigFile, error) {
	r := strings.NewReader(content)
	d := toml.NewDecoder(r)
	d.DisallowUnknownFields()
	var result ConfigFile
	if err := d.Decode(&result); err != nil {
		return nil, err
	}
	return &result, nil
}

// InitConfigFromDirectory creates the .srs directory with a default config file.
func InitConfigFromDirectory(path string) (*Config, error) {
	srsPath := filepath.Join(path, ".srs")
	if _, err := os.Stat(srsPath); err == nil {
		return nil, fmt.Errorf("configuration already exists at %s", srsPath)
	}
	if err := os.Mkdir(srsPath, 0755); err != nil {
		return nil, err
	}
	configPath := filepath.Join(srsPath, "config")
	if err := os.WriteFile(configPath, []byte(strings.TrimSpace(DefaultConfig)+"\n"), 0644); err != nil {
		return nil, err
	}
	return ReadConfigFromDirectory(path)
}
