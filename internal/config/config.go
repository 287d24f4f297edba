package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/semi-framework/cli/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Known keys.
const (
	KeyPackageManager = "package_manager"
	KeyLogLevel       = "log_level"
	KeyModulesExpress = "modules.express"
	KeyModulesAuth    = "modules.auth"
	KeyModulesMongo   = "modules.mongoose"
	KeyModulesRedis   = "modules.redis"
)

// Dir returns the path to the config directory (~/.semi/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.semi/config.yaml).
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

// keys lists every known setting. Each one can be overridden by an
// environment variable, e.g. modules.express by SEMI_MODULES_EXPRESS.
var keys = []string{
	KeyPackageManager,
	KeyLogLevel,
	KeyModulesExpress,
	KeyModulesAuth,
	KeyModulesMongo,
	KeyModulesRedis,
}

var envKeyReplacer = strings.NewReplacer(".", "_")

// EnvName returns the environment variable that overrides key.
func EnvName(key string) string {
	return branding.EnvVar(envKeyReplacer.Replace(key))
}

// Load initializes Viper to read from the config file and environment.
// A missing config file is not an error; an unreadable or malformed one is.
func Load() error {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)

	for _, key := range keys {
		if err := viper.BindEnv(key, EnvName(key)); err != nil {
			return fmt.Errorf("binding %s to %s: %w", key, EnvName(key), err)
		}
	}

	viper.SetDefault(KeyPackageManager, "")
	viper.SetDefault(KeyLogLevel, "info")
	viper.SetDefault(KeyModulesExpress, true)
	viper.SetDefault(KeyModulesAuth, true)
	viper.SetDefault(KeyModulesMongo, true)
	viper.SetDefault(KeyModulesRedis, true)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", FilePath(), err)
	}
	return nil
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// GetBool returns a boolean config value. Strings such as "false" or "0"
// written by Set are converted.
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// All returns every known setting as sorted "key=value" lines.
func All() []string {
	keys := viper.AllKeys()
	sort.Strings(keys)
	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("%s=%v", k, viper.Get(k)))
	}
	return lines
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
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
