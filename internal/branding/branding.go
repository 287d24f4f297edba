// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed, so a fork only edits the YAML.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName      string `yaml:"cli_name"`
	DisplayName  string `yaml:"display_name"`
	Description  string `yaml:"description"`
	HomeDir      string `yaml:"home_dir"`
	EnvPrefix    string `yaml:"env_prefix"`
	CLIPackage   string `yaml:"cli_package"`
	UtilsPackage string `yaml:"utils_package"`
	AuthPackage  string `yaml:"auth_package"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:      "semi-cli",
			DisplayName:  "Semi",
			Description:  "Scaffolding tool for Semi full-stack projects",
			HomeDir:      ".semi",
			EnvPrefix:    "SEMI",
			CLIPackage:   "@semi-framework/cli",
			UtilsPackage: "@semi-framework/utils",
			AuthPackage:  "@semi-framework/node-auth",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "semi-cli").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "Semi").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".semi").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "SEMI").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// CLIPackage returns the npm package that provides the CLI inside generated projects.
func CLIPackage() string { load(); return defaults.CLIPackage }

// UtilsPackage returns the npm package with the shared runtime helpers.
func UtilsPackage() string { load(); return defaults.UtilsPackage }

// AuthPackage returns the npm package providing backend authentication.
func AuthPackage() string { load(); return defaults.AuthPackage }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("HOME") → "SEMI_HOME".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
