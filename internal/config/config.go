package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/gofoot-labs/gofoot/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Keys recognized by `gofoot config`. Unknown keys are rejected so typos
// do not silently persist.
const (
	KeyAuthor       = "author"        // default author in generated manifests and LICENSE
	KeyModulePrefix = "module_prefix" // default module path prefix for generated go.mod files
	KeyMirror       = "mirror"        // mirror base URL for release downloads
)

var knownKeys = map[string]string{
	KeyAuthor:       "Author name used in generated manifests and license stubs",
	KeyModulePrefix: "Module path prefix for generated go.mod files (e.g., github.com/you)",
	KeyMirror:       "Mirror base URL for downloading CLI release archives",
}

// KnownKeys returns the recognized configuration keys in sorted order.
func KnownKeys() []string {
	keys := make([]string, 0, len(knownKeys))
	for k := range knownKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Describe returns the help text for a known key, or empty string.
func Describe(key string) string {
	return knownKeys[key]
}

// IsKnown reports whether key is a recognized configuration key.
func IsKnown(key string) bool {
	_, ok := knownKeys[key]
	return ok
}

// Dir returns the path to the gofoot config directory (~/.gofoot/).
// The directory can be relocated for tests via the GOFOOT_HOME env var.
func Dir() string {
	if custom := os.Getenv(branding.EnvVar("HOME")); custom != "" {
		return custom
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.gofoot/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if !IsKnown(key) {
		return fmt.Errorf("unknown config key %q (known keys: %v)", key, KnownKeys())
	}

	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
